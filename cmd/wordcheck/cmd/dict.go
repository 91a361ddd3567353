package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
)

const progressThrottle = 65 * time.Millisecond

// loadOptions controls how a command loads its dictionary.
type loadOptions struct {
	// index, when set, receives every loaded word.
	index    *suggest.Index
	progress bool
}

// loadDictionary resolves the configured dictionary path and loads it.
func (g *globals) loadDictionary(opts loadOptions) (*dictionary.Table, dictionary.LoaderStats, error) {
	dictCfg := g.cfg.Dict

	path := dictCfg.Path
	if pr, err := utils.NewPathResolver(); err == nil {
		if resolved, err := pr.GetDictPath(path); err == nil {
			path = resolved
		}
	} else {
		log.Warnf("Could not resolve dictionary path: %v", err)
	}
	log.Debugf("Using dictionary at: %s", path)

	capacity := dictCfg.InitialCapacity
	if capacity <= 0 {
		capacity = dictionary.DefaultCapacity
	}
	tableOpts := []dictionary.Option{dictionary.WithLogger(logger.New("dictionary"))}
	if dictCfg.MaxBuckets > 0 {
		tableOpts = append(tableOpts, dictionary.WithMaxBuckets(dictCfg.MaxBuckets))
	}
	if dictCfg.MaxEntries > 0 {
		tableOpts = append(tableOpts, dictionary.WithMaxEntries(dictCfg.MaxEntries))
	}

	table, err := dictionary.New(capacity, tableOpts...)
	if err != nil {
		return nil, dictionary.LoaderStats{}, err
	}

	loader := dictionary.NewLoader(table)
	if opts.index != nil {
		loader.OnInsert(opts.index.Add)
	}

	var bar *progressbar.ProgressBar
	if opts.progress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Loading dictionary..."),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(progressThrottle),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
		loader.OnInsert(func(string) { _ = bar.Add(1) })
	}

	stats, err := loader.LoadFile(path)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return nil, stats, fmt.Errorf("could not load %s: %w", path, err)
	}
	return table, stats, nil
}
