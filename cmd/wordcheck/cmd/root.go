package cmd

import (
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	AppName = "wordcheck"
	Version = "0.3.0"
	gh      = "https://github.com/bastiangx/wordcheck"
)

// globals holds the persistent flags and the config they resolve to.
type globals struct {
	configPath string
	dictPath   string
	debug      bool

	cfg        *config.Config
	loadedFrom string
}

// Execute builds the command tree and runs it.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the wordcheck command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         AppName + " - fast dictionary lookups and spell checking",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to a config.toml (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&g.dictPath, "dict", "", "dictionary file or chunk directory (overrides [dict] path)")
	rootCmd.PersistentFlags().BoolVarP(&g.debug, "debug", "d", false, "toggle debug logging")

	rootCmd.AddCommand(
		DefineCheckCommand(g),
		DefineServeCommand(g),
		DefineReplCommand(g),
		DefineStatsCommand(g),
		DefineVersionCommand(),
	)
	return rootCmd
}

func (g *globals) setup() error {
	cfg, path, err := config.LoadConfigWithPriority(g.configPath)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.loadedFrom = path

	log.SetFormatter(logger.ParseFormatter(cfg.Log.Format))
	if g.debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		logger.SetLevel(cfg.Log.Level)
	}
	if g.dictPath != "" {
		cfg.Dict.Path = g.dictPath
	}

	log.Debugf("Using config: %s", config.GetActiveConfigPath(path))
	return nil
}
