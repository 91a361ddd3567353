package dictionary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Source yields dictionary words one at a time, in the style of
// bufio.Scanner: call Next until it returns false, then check Err.
type Source interface {
	Next() bool
	Word() string
	Err() error
}

// maxTokenSize bounds a single token read by a TextSource. Tokens longer
// than MaxWordLength are still returned so that Insert can reject them.
const maxTokenSize = 64 * 1024

// TextSource reads whitespace-delimited words from a text stream.
type TextSource struct {
	scanner *bufio.Scanner
}

// NewTextSource returns a Source over the words in r.
func NewTextSource(r io.Reader) *TextSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	return &TextSource{scanner: scanner}
}

func (s *TextSource) Next() bool   { return s.scanner.Scan() }
func (s *TextSource) Word() string { return s.scanner.Text() }
func (s *TextSource) Err() error   { return s.scanner.Err() }

// ChunkSource reads a chunked binary dictionary: a little-endian int32 word
// count followed by, for every word, a uint16 length, the word bytes and a
// uint16 frequency rank.
type ChunkSource struct {
	reader *bufio.Reader
	total  int
	read   int
	word   string
	rank   uint16
	err    error
}

// NewChunkSource reads the chunk header from r and returns a Source over its
// words.
func NewChunkSource(r io.Reader) (*ChunkSource, error) {
	reader := bufio.NewReader(r)

	var total int32
	if err := binary.Read(reader, binary.LittleEndian, &total); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncatedChunk
		}
		return nil, fmt.Errorf("failed to read chunk header: %w", err)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: negative word count %d", ErrInvalidChunk, total)
	}
	return &ChunkSource{reader: reader, total: int(total)}, nil
}

// Len returns the word count declared by the chunk header.
func (s *ChunkSource) Len() int { return s.total }

func (s *ChunkSource) Next() bool {
	if s.err != nil || s.read >= s.total {
		return false
	}

	var wordLen uint16
	if err := binary.Read(s.reader, binary.LittleEndian, &wordLen); err != nil {
		s.fail(err)
		return false
	}
	wordBytes := make([]byte, wordLen)
	if _, err := io.ReadFull(s.reader, wordBytes); err != nil {
		s.fail(err)
		return false
	}
	if err := binary.Read(s.reader, binary.LittleEndian, &s.rank); err != nil {
		s.fail(err)
		return false
	}

	s.word = string(wordBytes)
	s.read++
	return true
}

func (s *ChunkSource) Word() string { return s.word }

// Rank returns the frequency rank of the current word; 1 is the most
// frequent.
func (s *ChunkSource) Rank() uint16 { return s.rank }

func (s *ChunkSource) Err() error { return s.err }

func (s *ChunkSource) fail(err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = fmt.Errorf("%w: read %d of %d words", ErrTruncatedChunk, s.read, s.total)
		return
	}
	s.err = fmt.Errorf("failed to read word %d: %w", s.read+1, err)
}

// WriteChunk encodes words in the chunked binary format, ranking them by
// position starting at 1.
func WriteChunk(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, int32(len(words))); err != nil {
		return err
	}
	for i, word := range words {
		if len(word) > 0xFFFF {
			return fmt.Errorf("word %d is %d bytes: %w", i+1, len(word), ErrWordTooLong)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(word))); err != nil {
			return err
		}
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		rank := uint16(min(i+1, 0xFFFF))
		if err := binary.Write(bw, binary.LittleEndian, rank); err != nil {
			return err
		}
	}
	return bw.Flush()
}
