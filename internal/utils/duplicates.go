package utils

import (
	"strings"
)

// SuggestionFilter drops duplicate suggestions, compared case-insensitively,
// and the word being corrected itself.
type SuggestionFilter struct {
	seenWords map[string]bool
}

// NewSuggestionFilter creates a new filter instance that will exclude the given input word
func NewSuggestionFilter(input string) *SuggestionFilter {
	return &SuggestionFilter{
		seenWords: map[string]bool{strings.ToLower(input): true},
	}
}

// ShouldInclude returns true the first time a word is seen and false for
// every later duplicate.
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	lowerWord := strings.ToLower(word)
	if f.seenWords[lowerWord] {
		return false
	}
	f.seenWords[lowerWord] = true
	return true
}
