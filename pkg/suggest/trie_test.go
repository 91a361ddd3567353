package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(ss []Suggestion) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Word
	}
	return out
}

func newIndex(ws ...string) *Index {
	idx := New()
	for _, w := range ws {
		idx.Add(w)
	}
	return idx
}

func TestAddDeduplicates(t *testing.T) {
	idx := newIndex("Apple", "apple", "APPLE", "banana")
	assert.Equal(t, 2, idx.Len())
}

func TestSuggest(t *testing.T) {
	idx := newIndex("cat", "catalog", "cats", "cart", "care", "dog", "dot")

	tests := []struct {
		name   string
		word   string
		limit  int
		want   []string
		shared int
	}{
		{"extends known prefix", "catz", 3, []string{"cats", "cat", "catalog"}, 3},
		{"falls back to shorter prefix", "cabbage", 2, []string{"catalog", "care"}, 2},
		{"never suggests itself", "cat", 5, []string{"cats", "catalog"}, 3},
		{"case folded", "DOX", 5, []string{"dog", "dot"}, 2},
		{"limit respected", "ca", 1, []string{"cat"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Suggest(tt.word, tt.limit)
			assert.Equal(t, tt.want, words(got))
			for _, s := range got {
				assert.Equal(t, tt.shared, s.Shared)
			}
		})
	}
}

func TestSuggestNothing(t *testing.T) {
	idx := newIndex("cat", "dog")
	assert.Empty(t, idx.Suggest("zebra", 3))
	assert.Empty(t, idx.Suggest("cat", 0))
	assert.Empty(t, idx.Suggest("", 3))
	assert.Empty(t, New().Suggest("cat", 3))
}
