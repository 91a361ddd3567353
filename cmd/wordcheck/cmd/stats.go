package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/spf13/cobra"
)

func DefineStatsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:          "stats",
		Short:        "Load the dictionary and print the shape of its table",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, loaded, err := g.loadDictionary(loadOptions{})
			if err != nil {
				return err
			}
			defer table.Unload()

			s := table.Stats()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "words\t%s\n", utils.FormatWithCommas(s.Words))
			fmt.Fprintf(w, "buckets\t%s\n", utils.FormatWithCommas(s.Capacity))
			fmt.Fprintf(w, "load factor\t%.3f\n", s.LoadFactor)
			fmt.Fprintf(w, "grows\t%d\n", s.Grows)
			fmt.Fprintf(w, "used buckets\t%s\n", utils.FormatWithCommas(s.UsedBuckets))
			fmt.Fprintf(w, "longest chain\t%d\n", s.LongestChain)
			fmt.Fprintf(w, "load time\t%ss\n", utils.FormatSeconds(loaded.Elapsed))
			return w.Flush()
		},
	}
}
