package dictionary

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Loader feeds words from a Source into a Table. A failed load unloads the
// table so a partially built index is never left behind.
type Loader struct {
	table    *Table
	onInsert []func(word string)
}

// LoaderStats summarises a completed load.
type LoaderStats struct {
	Words    int
	Capacity int
	Grows    int
	Elapsed  time.Duration
}

// NewLoader returns a loader inserting into t.
func NewLoader(t *Table) *Loader {
	return &Loader{table: t}
}

// OnInsert registers fn to be called with every word after it has been
// inserted successfully.
func (l *Loader) OnInsert(fn func(word string)) *Loader {
	l.onInsert = append(l.onInsert, fn)
	return l
}

// Table returns the table being loaded.
func (l *Loader) Table() *Table {
	return l.table
}

// Load inserts every word src yields and returns how many were inserted.
// On the first failure the table is unloaded and the error is returned with
// the position of the offending word.
func (l *Loader) Load(src Source) (int, error) {
	n := 0
	for src.Next() {
		word := src.Word()
		if err := l.table.Insert(word); err != nil {
			l.table.Unload()
			return n, fmt.Errorf("word %d (%.20q): %w", n+1, word, err)
		}
		n++
		for _, fn := range l.onInsert {
			fn(word)
		}
	}
	if err := src.Err(); err != nil {
		l.table.Unload()
		return n, fmt.Errorf("reading words: %w", err)
	}
	return n, nil
}

// LoadFile detects the format of path and loads it into l's table.
func (l *Loader) LoadFile(path string) (LoaderStats, error) {
	start := time.Now()

	format, err := DetectFileFormat(path)
	if err != nil {
		l.table.Unload()
		return LoaderStats{}, err
	}
	log.Debugf("Loading %s as %s", path, format)

	switch format {
	case FormatText:
		err = l.loadText(path)
	case FormatChunk:
		err = l.loadChunk(path)
	case FormatChunkDir:
		var files []string
		if files, err = ChunkFiles(path); err != nil {
			l.table.Unload()
			break
		}
		for _, file := range files {
			if err = l.loadChunk(file); err != nil {
				break
			}
		}
	}
	if err != nil {
		return LoaderStats{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	stats := LoaderStats{
		Words:    l.table.Size(),
		Capacity: l.table.Capacity(),
		Grows:    l.table.Stats().Grows,
		Elapsed:  time.Since(start),
	}
	log.Debugf("Loaded %d words into %d buckets in %v", stats.Words, stats.Capacity, stats.Elapsed)
	return stats, nil
}

func (l *Loader) loadText(path string) error {
	file, err := os.Open(path)
	if err != nil {
		l.table.Unload()
		return err
	}
	defer file.Close()

	_, err = l.Load(NewTextSource(file))
	return err
}

func (l *Loader) loadChunk(path string) error {
	file, err := os.Open(path)
	if err != nil {
		l.table.Unload()
		return err
	}
	defer file.Close()

	src, err := NewChunkSource(file)
	if err != nil {
		l.table.Unload()
		return err
	}
	n, err := l.Load(src)
	if err != nil {
		return err
	}
	log.Debugf("Chunk %s loaded: %d words", path, n)
	return nil
}

// LoadFile builds a table from the dictionary at path.
func LoadFile(path string, capacity int, opts ...Option) (*Table, error) {
	t, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := NewLoader(t).LoadFile(path); err != nil {
		return nil, err
	}
	return t, nil
}
