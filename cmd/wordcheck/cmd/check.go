package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/speller"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/spf13/cobra"
)

func DefineCheckCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report misspelled words in text files",
		Long: `The 'check' command loads the dictionary, prints every word of the given texts
that it does not contain and finishes with a summary of word counts and timings.
Standard input is read when no file is given. Files ending in .html or .htm are
checked as HTML.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, g, args)
		},
	}

	cmd.Flags().Bool("html", false, "treat every input as HTML")
	cmd.Flags().Int("suggest", 0, "number of suggestions to print per misspelled word")
	cmd.Flags().Bool("progress", false, "show a progress bar while loading")
	return cmd
}

// checkTimes are the phases of a check run, reported like the classic
// speller benchmark.
type checkTimes struct {
	load, check, size, unload time.Duration
}

func (t checkTimes) total() time.Duration {
	return t.load + t.check + t.size + t.unload
}

func runCheck(cmd *cobra.Command, g *globals, args []string) error {
	html := g.cfg.Check.HTML
	if cmd.Flags().Changed("html") {
		html, _ = cmd.Flags().GetBool("html")
	}
	limit := g.cfg.Check.Suggestions
	if cmd.Flags().Changed("suggest") {
		limit, _ = cmd.Flags().GetInt("suggest")
	}
	progress := g.cfg.Check.Progress
	if cmd.Flags().Changed("progress") {
		progress, _ = cmd.Flags().GetBool("progress")
	}

	var opts loadOptions
	opts.progress = progress
	if limit > 0 {
		opts.index = suggest.New()
	}

	var times checkTimes
	table, stats, err := g.loadDictionary(opts)
	if err != nil {
		return err
	}
	times.load = stats.Elapsed

	var checkerOpts []speller.Option
	if opts.index != nil {
		checkerOpts = append(checkerOpts, speller.WithSuggestions(opts.index, limit))
	}
	checker := speller.NewChecker(table, checkerOpts...)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, "\nMISSPELLED WORDS\n\n")

	misspelled, checked := 0, 0
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		report, err := checkInput(cmd, checker, path, html)
		if err != nil {
			table.Unload()
			return err
		}
		printMisspellings(out, report)
		misspelled += len(report.Misspelled)
		checked += report.Checked
		times.check += report.Elapsed
	}

	start := time.Now()
	size := table.Size()
	times.size = time.Since(start)

	start = time.Now()
	if err := table.Unload(); err != nil {
		return fmt.Errorf("could not unload dictionary: %w", err)
	}
	times.unload = time.Since(start)

	fmt.Fprintf(out, "\nWORDS MISSPELLED:     %d\n", misspelled)
	fmt.Fprintf(out, "WORDS IN DICTIONARY:  %d\n", size)
	fmt.Fprintf(out, "WORDS IN TEXT:        %d\n", checked)
	fmt.Fprintf(out, "TIME IN load:         %s\n", utils.FormatSeconds(times.load))
	fmt.Fprintf(out, "TIME IN check:        %s\n", utils.FormatSeconds(times.check))
	fmt.Fprintf(out, "TIME IN size:         %s\n", utils.FormatSeconds(times.size))
	fmt.Fprintf(out, "TIME IN unload:       %s\n", utils.FormatSeconds(times.unload))
	fmt.Fprintf(out, "TIME IN TOTAL:        %s\n\n", utils.FormatSeconds(times.total()))
	return nil
}

func checkInput(cmd *cobra.Command, checker *speller.Checker, path string, html bool) (*speller.Report, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %s: %w", path, err)
		}
		defer file.Close()
		r = file

		ext := strings.ToLower(filepath.Ext(path))
		html = html || ext == ".html" || ext == ".htm"
	}

	if html {
		return checker.CheckHTML(r)
	}
	return checker.Check(r)
}

func printMisspellings(w io.Writer, report *speller.Report) {
	for _, m := range report.Misspelled {
		if len(m.Suggestions) == 0 {
			fmt.Fprintln(w, m.Word)
			continue
		}
		fmt.Fprintf(w, "%s (%s)\n", m.Word, strings.Join(m.Suggestions, ", "))
	}
}
