// Package speller reports words of a text that a dictionary does not
// contain.
package speller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Dictionary is the membership index a Checker consults.
type Dictionary interface {
	Contains(word string) bool
}

// Misspelling is a word not found in the dictionary, in text order.
type Misspelling struct {
	Word        string
	Suggestions []string
}

// Report is the result of checking one text.
type Report struct {
	Misspelled []Misspelling
	// Checked counts every word looked up, found or not.
	Checked int
	Elapsed time.Duration
}

// Checker checks text against a dictionary, optionally suggesting
// corrections for each misspelled word.
type Checker struct {
	dict      Dictionary
	suggester suggest.ISuggester
	limit     int
}

// Option configures a Checker.
type Option func(*Checker)

// WithSuggestions makes the checker attach up to limit suggestions from s to
// every misspelling.
func WithSuggestions(s suggest.ISuggester, limit int) Option {
	return func(c *Checker) {
		c.suggester = s
		c.limit = limit
	}
}

// NewChecker returns a checker backed by dict.
func NewChecker(dict Dictionary, opts ...Option) *Checker {
	c := &Checker{dict: dict}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckWord reports whether word is spelled correctly and, if not, the
// suggestions the checker is configured to give.
func (c *Checker) CheckWord(word string) (bool, []string) {
	if c.dict.Contains(word) {
		return true, nil
	}
	return false, c.suggestions(word)
}

func (c *Checker) suggestions(word string) []string {
	if c.suggester == nil || c.limit <= 0 {
		return nil
	}
	found := c.suggester.Suggest(word, c.limit)
	if len(found) == 0 {
		return nil
	}
	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.Word
	}
	return out
}

// Check tokenizes r and looks up every word.
func (c *Checker) Check(r io.Reader) (*Report, error) {
	start := time.Now()
	report := &Report{}

	tok := NewTokenizer(r)
	for tok.Next() {
		report.Checked++
		word := tok.Word()
		if ok, suggestions := c.CheckWord(word); !ok {
			report.Misspelled = append(report.Misspelled, Misspelling{
				Word:        word,
				Suggestions: suggestions,
			})
		}
	}
	report.Elapsed = time.Since(start)
	if err := tok.Err(); err != nil {
		return report, fmt.Errorf("reading text: %w", err)
	}

	log.Debugf("Checked %d words, %d misspelled in %v", report.Checked, len(report.Misspelled), report.Elapsed)
	return report, nil
}

// CheckHTML extracts the visible text of an HTML document and checks it.
// Script and style elements are ignored.
func (c *Checker) CheckHTML(r io.Reader) (*Report, error) {
	text, err := ExtractText(r)
	if err != nil {
		return nil, err
	}
	return c.Check(strings.NewReader(text))
}

// ExtractText returns the text content of an HTML document with script,
// style and noscript elements removed. Block elements are separated by a
// newline so adjacent words are not glued together.
func ExtractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		writeText(&b, s)
	})
	if b.Len() == 0 {
		// Fragments without a body still have a document root.
		return doc.Text(), nil
	}
	return b.String(), nil
}

func writeText(b *strings.Builder, s *goquery.Selection) {
	if goquery.NodeName(s) == "#text" {
		b.WriteString(s.Text())
		return
	}
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		writeText(b, child)
	})
	b.WriteByte('\n')
}
