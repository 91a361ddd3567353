// Package suggest offers spelling suggestions from a patricia trie of the
// loaded dictionary words.
package suggest

// ISuggester defines the interface for suggestion engines
type ISuggester interface {
	// Add indexes a dictionary word
	Add(word string)

	// Suggest returns up to limit distinct dictionary words close to word,
	// never word itself
	Suggest(word string, limit int) []Suggestion

	// Len returns the number of distinct indexed words
	Len() int
}
