package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func DefineServeCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer msgpack requests on stdin/stdout",
		Long: `The 'serve' command loads the dictionary and a suggestion index, then reads
msgpack encoded check, suggest and stats requests from standard input until EOF,
writing one msgpack response per request to standard output.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(g)
		},
	}
	return cmd
}

func runServe(g *globals) error {
	index := suggest.New()
	table, stats, err := g.loadDictionary(loadOptions{index: index})
	if err != nil {
		return err
	}
	defer table.Unload()

	srvCfg := g.cfg.Server
	srv := server.NewServer(table,
		server.WithSuggester(index),
		server.WithMaxBatch(srvCfg.MaxBatch),
		server.WithDefaultLimit(srvCfg.DefaultLimit),
		server.WithRateLimit(srvCfg.RequestsPerSecond, srvCfg.Burst),
	)

	showStartupInfo(stats.Words, index.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Debugf("Served %d requests", srv.Requests())
	return nil
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(words, indexed int) {
	log.Debugf("Version: %s", Version)
	log.Debugf("Process ID: [ %d ]", os.Getpid())
	log.Debugf("words: %s, indexed: %s", utils.FormatWithCommas(words), utils.FormatWithCommas(indexed))
	log.Debug("status: ready")
}
