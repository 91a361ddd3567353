package speller

import (
	"bufio"
	"errors"
	"io"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
)

// Tokenizer splits text into checkable words: runs of ASCII letters and
// apostrophes, where an apostrophe cannot start a word. Runs containing a
// digit and runs longer than dictionary.MaxWordLength are skipped whole.
type Tokenizer struct {
	r    *bufio.Reader
	buf  [dictionary.MaxWordLength]byte
	n    int
	word string
	err  error
}

// NewTokenizer returns a tokenizer reading from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{r: bufio.NewReader(r)}
}

// Next advances to the next word. It returns false at end of input or on a
// read error, which Err reports.
func (t *Tokenizer) Next() bool {
	if t.err != nil {
		return false
	}
	t.n = 0
	for {
		c, err := t.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.err = err
				return false
			}
			// A word running into end of input still counts.
			if t.n > 0 {
				t.word = string(t.buf[:t.n])
				t.n = 0
				return true
			}
			return false
		}

		switch {
		case utils.IsLetter(c) || (c == '\'' && t.n > 0):
			if t.n == len(t.buf) {
				t.skipRun(false)
				t.n = 0
				continue
			}
			t.buf[t.n] = c
			t.n++
		case utils.IsDigit(c):
			t.skipRun(true)
			t.n = 0
		case t.n > 0:
			t.word = string(t.buf[:t.n])
			return true
		}
	}
}

// skipRun consumes the rest of the current run of letters and apostrophes
// (and digits when alnum is set). It is only called mid-run, so an
// apostrophe here never starts a new word.
func (t *Tokenizer) skipRun(alnum bool) {
	for {
		c, err := t.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.err = err
			}
			return
		}
		if utils.IsLetter(c) || c == '\'' || (alnum && utils.IsDigit(c)) {
			continue
		}
		_ = t.r.UnreadByte()
		return
	}
}

// Word returns the most recent word found by Next.
func (t *Tokenizer) Word() string { return t.word }

// Err returns the first non-EOF read error.
func (t *Tokenizer) Err() error { return t.err }
