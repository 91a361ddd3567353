package dictionary

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat identifies how a dictionary is stored on disk.
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatText                // whitespace separated words
	FormatChunk               // single dict_NNNN.bin chunk
	FormatChunkDir            // directory of dict_NNNN.bin chunks
)

// FormatInfo contains metadata about a dictionary format.
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Dictionary",
		Extensions:  []string{".txt", ""},
		MinSize:     0,
	},
	FormatChunk: {
		Format:      FormatChunk,
		Description: "Chunked Binary Dictionary",
		Extensions:  []string{".bin"},
		MinSize:     4, // word count header
	},
	FormatChunkDir: {
		Format:      FormatChunkDir,
		Description: "Directory of Chunked Binary Dictionaries",
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFileFormat works out the format of the dictionary at path. Chunk
// files are recognised by their dict_ prefix and .bin extension; anything
// else with a .txt extension, or none at all, is read as text.
func DetectFileFormat(path string) (FileFormat, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if fileInfo.IsDir() {
		chunks, err := ChunkFiles(path)
		if err != nil {
			return FormatUnknown, err
		}
		if len(chunks) == 0 {
			return FormatUnknown, fmt.Errorf("%w: no chunk files in %s", ErrUnknownFormat, path)
		}
		return FormatChunkDir, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	basename := strings.ToLower(filepath.Base(path))

	if ext == ".bin" {
		if !strings.HasPrefix(basename, "dict_") {
			log.Warnf("Binary dictionary %s does not follow the dict_NNNN.bin naming", path)
		}
		if err := validateChunkFile(path, fileInfo.Size()); err != nil {
			return FormatUnknown, err
		}
		return FormatChunk, nil
	}

	for _, valid := range supportedFormats[FormatText].Extensions {
		if ext == valid {
			return FormatText, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// ChunkFiles lists the dict_*.bin files in dir in lexical order, which for
// zero padded names is chunk order.
func ChunkFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "dict_*.bin"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}
	return files, nil
}

// validateChunkFile checks that a chunk holds at least its header and that
// the declared word count is sane.
func validateChunkFile(path string, size int64) error {
	if size < supportedFormats[FormatChunk].MinSize {
		return fmt.Errorf("%w: %s is %d bytes", ErrTruncatedChunk, path, size)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var wordCount int32
	if err := binary.Read(file, binary.LittleEndian, &wordCount); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	if wordCount < 0 {
		return fmt.Errorf("%w: %s declares %d words", ErrInvalidChunk, path, wordCount)
	}

	log.Debugf("Binary file %s validated: %d words", path, wordCount)
	return nil
}
