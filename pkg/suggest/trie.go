package suggest

import (
	"errors"
	"sort"
	"strings"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// maxCandidates bounds how many words one prefix visit collects before
// ranking.
const maxCandidates = 256

var errEnough = errors.New("suggest: enough candidates")

// Suggestion is a dictionary word offered as a replacement.
type Suggestion struct {
	Word string
	// Shared is the length of the prefix shared with the queried word.
	Shared int
}

// Index is a prefix index over dictionary words. Words are stored lower
// cased; the zero value is not usable, use New.
type Index struct {
	trie  *patricia.Trie
	words int
}

// New returns an empty index.
func New() *Index {
	return &Index{trie: patricia.NewTrie()}
}

// Add indexes word. Duplicates, compared case-insensitively, are ignored.
func (i *Index) Add(word string) {
	if i.trie.Insert(patricia.Prefix(strings.ToLower(word)), len(word)) {
		i.words++
	}
}

// Len returns the number of distinct words indexed.
func (i *Index) Len() int {
	return i.words
}

// Suggest returns up to limit dictionary words sharing the longest possible
// prefix with word, closest in length first. The word itself is never
// suggested.
func (i *Index) Suggest(word string, limit int) []Suggestion {
	if limit <= 0 || word == "" {
		return nil
	}
	lower := strings.ToLower(word)

	for n := len(lower); n > 0; n-- {
		candidates := i.collect(lower, n)
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(a, b int) bool {
			da, db := lengthDelta(candidates[a], lower), lengthDelta(candidates[b], lower)
			if da != db {
				return da < db
			}
			return candidates[a] < candidates[b]
		})

		out := make([]Suggestion, 0, min(limit, len(candidates)))
		for _, c := range candidates[:min(limit, len(candidates))] {
			out = append(out, Suggestion{Word: c, Shared: n})
		}
		return out
	}
	return nil
}

// collect gathers words starting with the first n bytes of lower, excluding
// lower itself.
func (i *Index) collect(lower string, n int) []string {
	filter := utils.NewSuggestionFilter(lower)
	var candidates []string

	err := i.trie.VisitSubtree(patricia.Prefix(lower[:n]), func(p patricia.Prefix, _ patricia.Item) error {
		w := string(p)
		if !filter.ShouldInclude(w) {
			return nil
		}
		candidates = append(candidates, w)
		if len(candidates) >= maxCandidates {
			return errEnough
		}
		return nil
	})
	if err != nil && !errors.Is(err, errEnough) {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return candidates
}

func lengthDelta(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		return -d
	}
	return d
}
