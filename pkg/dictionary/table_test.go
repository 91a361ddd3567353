package dictionary

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, capacity int, opts ...Option) *Table {
	t.Helper()
	table, err := New(capacity, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { table.Unload() })
	return table
}

// checkInvariants walks every chain and verifies that each entry sits in the
// bucket its word hashes to, that no entry is reachable twice and that every
// entry is reachable.
func checkInvariants(t *testing.T, table *Table) {
	t.Helper()
	seen := make(map[int32]bool, len(table.entries))
	for i, head := range table.buckets {
		for h := head; h != nilHandle; h = table.entries[h].next {
			require.Falsef(t, seen[h], "entry %d reachable twice", h)
			seen[h] = true
			word := table.entries[h].word
			require.Equalf(t, i, BucketIndex(word, len(table.buckets)), "word %q in wrong bucket", word)
		}
	}
	require.Len(t, seen, table.Size(), "every entry must be reachable from exactly one bucket")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		opts     []Option
		wantErr  error
	}{
		{"default capacity", DefaultCapacity, nil, nil},
		{"single bucket", 1, nil, nil},
		{"zero capacity", 0, nil, ErrInvalidCapacity},
		{"negative capacity", -4, nil, ErrInvalidCapacity},
		{"over bucket budget", 16, []Option{WithMaxBuckets(8)}, ErrAllocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := New(tt.capacity, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, table.Capacity())
			assert.Equal(t, 0, table.Size())
		})
	}
}

func TestContainsEmptyTable(t *testing.T) {
	table := newTable(t, 4)
	for _, w := range []string{"", "a", "apple", strings.Repeat("x", MaxWordLength+10)} {
		assert.Falsef(t, table.Contains(w), "empty table must not contain %q", w)
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	table := newTable(t, 4)
	require.NoError(t, table.Insert("Apple"))

	for _, q := range []string{"Apple", "apple", "APPLE", "ApPlE"} {
		assert.Truef(t, table.Contains(q), "expected %q to be found", q)
	}
	for _, q := range []string{"apples", "appl", "aple", ""} {
		assert.Falsef(t, table.Contains(q), "expected %q not to be found", q)
	}
}

func TestSizeCountsSuccessfulInserts(t *testing.T) {
	table := newTable(t, 2)
	words := []string{"cat", "Cat", "dog", "cat"}
	for i, w := range words {
		require.NoError(t, table.Insert(w))
		assert.Equal(t, i+1, table.Size())
	}

	require.ErrorIs(t, table.Insert(strings.Repeat("a", MaxWordLength+1)), ErrWordTooLong)
	assert.Equal(t, len(words), table.Size(), "rejected words are not counted")
	checkInvariants(t, table)
}

func TestGrowthThreshold(t *testing.T) {
	table := newTable(t, 4)
	words := []string{"alpha", "bravo", "charlie", "delta"}

	// 3/4 is not above the threshold, so four words fit in four buckets.
	for _, w := range words {
		require.NoError(t, table.Insert(w))
	}
	assert.Equal(t, 4, table.Capacity())

	// The fifth insert sees 4/4 and doubles first.
	require.NoError(t, table.Insert("echo"))
	assert.Equal(t, 8, table.Capacity())
	assert.Equal(t, 5, table.Size())
	assert.Equal(t, 1, table.Stats().Grows)

	for _, w := range append(words, "echo") {
		assert.Truef(t, table.Contains(w), "lost %q after growth", w)
	}
	checkInvariants(t, table)
}

func TestEndToEnd(t *testing.T) {
	table := newTable(t, 4)
	for _, w := range []string{"cat", "dog", "bird", "fish", "ant"} {
		require.NoError(t, table.Insert(w))
	}

	assert.Equal(t, 5, table.Size())
	assert.GreaterOrEqual(t, table.Capacity(), 8)
	assert.True(t, table.Contains("CAT"))
	assert.False(t, table.Contains("cow"))
}

func TestMonotonicMembership(t *testing.T) {
	table := newTable(t, 1)
	var inserted []string
	lastCapacity := table.Capacity()

	for i := 0; i < 2000; i++ {
		w := fmt.Sprintf("Word%04d", i)
		require.NoError(t, table.Insert(w))
		inserted = append(inserted, w)

		if table.Capacity() != lastCapacity {
			assert.Equal(t, lastCapacity*2, table.Capacity(), "growth must double")
			lastCapacity = table.Capacity()
			for _, prev := range inserted {
				require.Truef(t, table.Contains(prev), "lost %q growing to %d", prev, lastCapacity)
			}
			checkInvariants(t, table)
		}
		require.LessOrEqual(t, float64(table.Size()-1)/float64(table.Capacity()), MaxLoadFactor)
	}

	assert.Equal(t, len(inserted), table.Size())
	assert.False(t, table.Contains("word2000"))
	assert.False(t, table.Contains("word"))
	checkInvariants(t, table)
}

func TestWordLengthBoundary(t *testing.T) {
	table := newTable(t, 4)
	exact := strings.Repeat("Q", MaxWordLength)
	over := strings.Repeat("Q", MaxWordLength+1)

	require.NoError(t, table.Insert(exact))
	assert.True(t, table.Contains(strings.ToLower(exact)))

	assert.ErrorIs(t, table.Insert(over), ErrWordTooLong)
	assert.False(t, table.Contains(over))
	assert.Equal(t, 1, table.Size())
}

func TestGrowthRefused(t *testing.T) {
	table := newTable(t, 4, WithMaxBuckets(4))
	words := []string{"one", "two", "three", "four"}
	for _, w := range words {
		require.NoError(t, table.Insert(w))
	}

	err := table.Insert("five")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailure)
	assert.ErrorIs(t, err, ErrAllocation)

	// Nothing changed: same capacity, same words, still consistent.
	assert.Equal(t, 4, table.Capacity())
	assert.Equal(t, 4, table.Size())
	assert.False(t, table.Contains("five"))
	for _, w := range words {
		assert.True(t, table.Contains(w))
	}
	checkInvariants(t, table)

	// Retrying fails the same way.
	assert.ErrorIs(t, table.Insert("five"), ErrLoadFailure)
}

func TestEntryBudget(t *testing.T) {
	table := newTable(t, 8, WithMaxEntries(2))
	require.NoError(t, table.Insert("one"))
	require.NoError(t, table.Insert("two"))

	err := table.Insert("three")
	assert.ErrorIs(t, err, ErrAllocation)
	assert.NotErrorIs(t, err, ErrLoadFailure)
	assert.Equal(t, 2, table.Size())
	assert.False(t, table.Contains("three"))
}

func TestCapacityBoundedByHandleSpace(t *testing.T) {
	assert.Equal(t, math.MaxInt32, maxCapacity)
	if strconv.IntSize == 32 {
		t.Skip("int cannot express a capacity past the handle space")
	}
	limit := int64(maxCapacity) + 1
	_, err := New(int(limit))
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestEntryBudgetDoesNotGrow(t *testing.T) {
	table := newTable(t, 4, WithMaxEntries(4))
	for _, w := range []string{"one", "two", "three", "four"} {
		require.NoError(t, table.Insert(w))
	}
	require.True(t, table.overloaded(), "next insert would trigger growth")

	err := table.Insert("five")
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, 4, table.Capacity())
	assert.Equal(t, 0, table.Stats().Grows)
	assert.Equal(t, 4, table.Size())
	assert.False(t, table.Contains("five"))
}

func TestUnload(t *testing.T) {
	table, err := New(4)
	require.NoError(t, err)
	require.NoError(t, table.Insert("cat"))

	require.NoError(t, table.Unload())
	require.NoError(t, table.Unload(), "second unload is a no-op")

	// Use after unload is outside the contract; the table refuses rather than
	// touching released memory.
	assert.Equal(t, 0, table.Size())
	assert.Equal(t, 0, table.Capacity())
	assert.False(t, table.Contains("cat"))
	assert.ErrorIs(t, table.Insert("dog"), ErrUnloaded)
	assert.Equal(t, Stats{}, table.Stats())
}

func TestStats(t *testing.T) {
	table := newTable(t, 4)
	// "ab" and "ba" land in different buckets of 4; "ab" twice shares one.
	for _, w := range []string{"ab", "AB", "ba"} {
		require.NoError(t, table.Insert(w))
	}

	s := table.Stats()
	assert.Equal(t, 3, s.Words)
	assert.Equal(t, 4, s.Capacity)
	assert.InDelta(t, 0.75, s.LoadFactor, 1e-9)
	assert.Equal(t, 0, s.Grows)
	assert.Equal(t, 2, s.UsedBuckets)
	assert.Equal(t, 2, s.LongestChain)
}

func TestConcurrentReaders(t *testing.T) {
	table := newTable(t, DefaultCapacity)
	for i := 0; i < 5000; i++ {
		require.NoError(t, table.Insert(fmt.Sprintf("w%d", i)))
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := g; i < 5000; i += 8 {
				if !table.Contains(fmt.Sprintf("W%d", i)) {
					errs <- fmt.Sprintf("W%d", i)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for w := range errs {
		t.Errorf("reader could not find %q", w)
	}
}
