// Package cli runs an interactive spelling lookup loop, mostly for
// debugging dictionaries and suggestions.
package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Checker answers single word lookups.
type Checker interface {
	CheckWord(word string) (bool, []string)
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	missStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

// InputHandler reads words line by line and reports whether each one is
// in the dictionary, with suggestions for the ones that are not.
type InputHandler struct {
	checker      Checker
	in           io.Reader
	out          *log.Logger
	requestCount int
	noFilter     bool
}

// NewInputHandler creates a handler reading from in and printing to out.
// With noFilter set, tokens with digits or symbols are looked up too.
func NewInputHandler(checker Checker, in io.Reader, out io.Writer, noFilter bool) *InputHandler {
	return &InputHandler{
		checker:  checker,
		in:       in,
		out:      logger.NewWithConfig(out, "", log.InfoLevel, false, false, log.TextFormatter),
		noFilter: noFilter,
	}
}

// Start begins the interface loop. It returns nil when the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("wordcheck repl")
	h.out.Print("type words and press Enter to check them (Ctrl+D to exit):")

	reader := bufio.NewReader(h.in)
	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			for _, word := range strings.Fields(line) {
				h.handleInput(word)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Requests returns the number of words looked up so far.
func (h *InputHandler) Requests() int {
	return h.requestCount
}

func (h *InputHandler) handleInput(word string) {
	if !h.noFilter && !utils.IsValidInput(word) {
		h.out.Printf("skipping %q: not a word", word)
		return
	}
	h.requestCount++

	start := time.Now()
	ok, suggestions := h.checker.CheckWord(word)
	log.Debugf("Took [ %v ] for word '%s'", time.Since(start), word)

	if ok {
		h.out.Printf("%s: ok", okStyle.Render(word))
		return
	}
	if len(suggestions) == 0 {
		h.out.Printf("%s: not found", missStyle.Render(word))
		return
	}
	h.out.Printf("%s: not found, did you mean:", missStyle.Render(word))
	for i, s := range suggestions {
		h.out.Printf("%2d. %s", i+1, hintStyle.Render(s))
	}
}
