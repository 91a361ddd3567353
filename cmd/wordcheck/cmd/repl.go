package cmd

import (
	"os"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/pkg/speller"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func DefineReplCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "repl",
		Short:        "Look words up interactively",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			noFilter, _ := cmd.Flags().GetBool("no-filter")
			return runRepl(g, limit, noFilter)
		},
	}

	cmd.Flags().Int("limit", 5, "number of suggestions for a misspelled word")
	cmd.Flags().Bool("no-filter", false, "look up tokens with digits or symbols too")
	return cmd
}

func runRepl(g *globals, limit int, noFilter bool) error {
	index := suggest.New()
	table, _, err := g.loadDictionary(loadOptions{index: index})
	if err != nil {
		return err
	}
	defer table.Unload()

	log.SetReportTimestamp(false)
	log.Debug("Input info:", "limit", limit, "noFilter", noFilter)

	checker := speller.NewChecker(table, speller.WithSuggestions(index, limit))
	return cli.NewInputHandler(checker, os.Stdin, os.Stdout, noFilter).Start()
}
