/*
Package dictionary implements the in-memory word index behind wordcheck.

A Table is a chained hash table of ASCII case-folded words. Entries live in a
single arena and chains link them by handle, so growing the table relinks
existing entries instead of copying them:

	t, err := dictionary.New(dictionary.DefaultCapacity)
	if err != nil {
		return err
	}
	defer t.Unload()

	if err := t.Insert("Apple"); err != nil {
		return err
	}
	t.Contains("APPLE") // true

Before every insert the table checks its load factor and doubles its bucket
count once words/buckets exceeds MaxLoadFactor. Growth is all-or-nothing: if
the larger bucket array cannot be obtained the table is left as it was and
the insert fails with ErrLoadFailure.

A Table is not safe for concurrent mutation. Once loading has finished any
number of goroutines may call Contains.
*/
package dictionary

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

const (
	// DefaultCapacity is the bucket count used when none is configured.
	DefaultCapacity = 1024

	// MaxLoadFactor is the words/buckets ratio above which the table grows.
	MaxLoadFactor = 0.75

	// maxCapacity bounds the bucket array to the int32 handle space. Doubling
	// past it is treated as an allocation failure.
	maxCapacity = math.MaxInt32

	// nilHandle terminates a chain.
	nilHandle int32 = -1
)

// entry is a stored word and the handle of the next entry in its bucket.
type entry struct {
	word string
	next int32
}

// Table is a chained hash table of normalized words.
type Table struct {
	entries  []entry
	buckets  []int32
	grows    int
	unloaded bool

	maxBuckets int
	maxEntries int
	logger     *log.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithMaxBuckets caps the bucket array. Growth that would exceed n fails
// with ErrAllocation.
func WithMaxBuckets(n int) Option {
	return func(t *Table) {
		if n > 0 && n < t.maxBuckets {
			t.maxBuckets = n
		}
	}
}

// WithMaxEntries caps the number of stored words. Inserts beyond n fail
// with ErrAllocation.
func WithMaxEntries(n int) Option {
	return func(t *Table) {
		if n > 0 && n < t.maxEntries {
			t.maxEntries = n
		}
	}
}

// WithLogger sets the logger receiving growth events.
func WithLogger(l *log.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// New allocates an empty table with the given number of buckets.
func New(capacity int, opts ...Option) (*Table, error) {
	t := &Table{
		maxBuckets: maxCapacity,
		maxEntries: math.MaxInt32,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	buckets, err := t.allocBuckets(capacity)
	if err != nil {
		return nil, err
	}
	t.buckets = buckets
	return t, nil
}

// Insert stores the normalized form of word. It fails with ErrWordTooLong
// before touching the table, with ErrLoadFailure when a required growth
// could not complete, and with ErrAllocation when no entry can be stored.
// A failed insert leaves the table unchanged.
func (t *Table) Insert(word string) error {
	if t.unloaded {
		return ErrUnloaded
	}
	if len(word) > MaxWordLength {
		return ErrWordTooLong
	}

	if len(t.entries) >= t.maxEntries {
		return ErrAllocation
	}

	if t.overloaded() {
		if err := t.grow(); err != nil {
			return fmt.Errorf("%w: %w", ErrLoadFailure, err)
		}
	}

	var buf [MaxWordLength]byte
	key := string(fold(buf[:0], word))
	idx := BucketIndex(key, len(t.buckets))
	h := int32(len(t.entries))
	t.entries = append(t.entries, entry{word: key, next: t.buckets[idx]})
	t.buckets[idx] = h
	return nil
}

// Contains reports whether word, compared without regard to ASCII case, has
// been inserted. Words longer than MaxWordLength are never found.
func (t *Table) Contains(word string) bool {
	if t.unloaded || len(word) > MaxWordLength {
		return false
	}

	var buf [MaxWordLength]byte
	key := fold(buf[:0], word)
	for h := t.buckets[BucketIndex(key, len(t.buckets))]; h != nilHandle; h = t.entries[h].next {
		if t.entries[h].word == string(key) {
			return true
		}
	}
	return false
}

// Size returns the number of successful inserts.
func (t *Table) Size() int {
	return len(t.entries)
}

// Capacity returns the current bucket count.
func (t *Table) Capacity() int {
	return len(t.buckets)
}

// Unload releases every entry and the bucket array. Further inserts fail
// with ErrUnloaded and lookups report false. Calling Unload again is a no-op.
func (t *Table) Unload() error {
	if t.unloaded {
		return nil
	}
	for i := range t.entries {
		t.entries[i] = entry{}
	}
	t.entries = nil
	t.buckets = nil
	t.unloaded = true
	return nil
}

// Stats describes the shape of a table.
type Stats struct {
	Words        int
	Capacity     int
	LoadFactor   float64
	Grows        int
	UsedBuckets  int
	LongestChain int
}

// Stats walks every chain and reports the table's shape.
func (t *Table) Stats() Stats {
	s := Stats{
		Words:    len(t.entries),
		Capacity: len(t.buckets),
		Grows:    t.grows,
	}
	if s.Capacity == 0 {
		return s
	}
	s.LoadFactor = float64(s.Words) / float64(s.Capacity)

	for _, head := range t.buckets {
		if head == nilHandle {
			continue
		}
		s.UsedBuckets++
		n := 0
		for h := head; h != nilHandle; h = t.entries[h].next {
			n++
		}
		s.LongestChain = max(s.LongestChain, n)
	}
	return s
}
