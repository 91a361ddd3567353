package speller

import (
	"errors"
	"strings"
	"testing"

	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, text string) []string {
	t.Helper()
	tok := NewTokenizer(strings.NewReader(text))
	var words []string
	for tok.Next() {
		words = append(words, tok.Word())
	}
	require.NoError(t, tok.Err())
	return words
}

func TestTokenizer(t *testing.T) {
	long := strings.Repeat("a", dictionary.MaxWordLength)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"punctuation", "Hello, world!", []string{"Hello", "world"}},
		{"apostrophes", "don't 'quoted' rock'n'roll", []string{"don't", "quoted'", "rock'n'roll"}},
		{"digits skip the run", "abc123 def 4ever ok", []string{"def", "ok"}},
		{"hyphen splits", "well-known", []string{"well", "known"}},
		{"max length kept", long + " x", []string{long, "x"}},
		{"overlong skipped", long + "b next", []string{"next"}},
		{"overlong with apostrophe suffix", long + "aaaaa's ok", []string{"ok"}},
		{"digit run with apostrophe", "4'ever rock", []string{"rock"}},
		{"word at end of input", "the end", []string{"the", "end"}},
		{"non ascii splits", "café au lait", []string{"caf", "au", "lait"}},
		{"only separators", " ,.;' 42 ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokens(t, tt.text))
		})
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestTokenizerReadError(t *testing.T) {
	tok := NewTokenizer(errReader{})
	assert.False(t, tok.Next())
	assert.EqualError(t, tok.Err(), "broken pipe")
}

func newDictionary(t *testing.T, words ...string) *dictionary.Table {
	t.Helper()
	table, err := dictionary.New(4)
	require.NoError(t, err)
	t.Cleanup(func() { table.Unload() })
	for _, w := range words {
		require.NoError(t, table.Insert(w))
	}
	return table
}

func TestCheck(t *testing.T) {
	dict := newDictionary(t, "the", "cat", "sat", "on", "mat")
	checker := NewChecker(dict)

	report, err := checker.Check(strings.NewReader("The cat szt on the 2nd mat, hapily."))
	require.NoError(t, err)

	assert.Equal(t, 7, report.Checked)
	require.Len(t, report.Misspelled, 2)
	assert.Equal(t, "szt", report.Misspelled[0].Word)
	assert.Equal(t, "hapily", report.Misspelled[1].Word)
	assert.Nil(t, report.Misspelled[0].Suggestions)
}

func TestCheckWithSuggestions(t *testing.T) {
	words := []string{"happily", "happy", "hat", "the"}
	dict := newDictionary(t, words...)
	index := suggest.New()
	for _, w := range words {
		index.Add(w)
	}

	checker := NewChecker(dict, WithSuggestions(index, 2))
	ok, suggestions := checker.CheckWord("Hapily")
	assert.False(t, ok)
	assert.Equal(t, []string{"happily", "happy"}, suggestions)

	ok, suggestions = checker.CheckWord("THE")
	assert.True(t, ok)
	assert.Nil(t, suggestions)
}

func TestCheckHTML(t *testing.T) {
	dict := newDictionary(t, "hello", "world", "title")
	checker := NewChecker(dict)

	page := `<html><head><title>Title</title><style>body { colr: red }</style></head>
<body><p>Hello</p><p>world</p><script>var misspeld = 1;</script><div>wrld</div></body></html>`

	report, err := checker.CheckHTML(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, 3, report.Checked)
	require.Len(t, report.Misspelled, 1)
	assert.Equal(t, "wrld", report.Misspelled[0].Word)
}

func TestExtractTextSeparatesBlocks(t *testing.T) {
	text, err := ExtractText(strings.NewReader("<p>one</p><p>two</p>"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, tokens(t, text))
}
