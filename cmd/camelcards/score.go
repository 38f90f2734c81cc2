package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lox/camelcards/cmd/camelcards/shared"
	"github.com/lox/camelcards/internal/deck"
	"github.com/lox/camelcards/internal/fileutil"
	"github.com/lox/camelcards/internal/game"
	"github.com/lox/camelcards/internal/input"
	"github.com/lox/camelcards/internal/report"
)

const stdinName = "-"

// ScoreCmd ranks one session per input and prints its total winnings.
type ScoreCmd struct {
	Files      []string `arg:"" optional:"" name:"file" help:"Puzzle input files, '-' for stdin (the default)"`
	Variant    string   `short:"m" help:"Rank mapping: standard or wildcard (overrides config)" env:"CAMELCARDS_VARIANT"`
	Strict     bool     `help:"Fail on malformed lines instead of skipping them"`
	Table      bool     `short:"t" help:"Print the ranked hands before the total"`
	Descending bool     `help:"List the strongest hand first in the table"`
	NoColor    bool     `help:"Disable colour in the table"`
	Output     string   `short:"o" help:"Also write the totals to this file"`
}

// scored is one ranked input
type scored struct {
	name    string
	session *game.Session
	stats   input.Stats
}

func (cmd *ScoreCmd) Validate() error {
	stdin := 0
	for _, f := range cmd.Files {
		if f == stdinName {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("stdin ('-') can only be read once")
	}
	return nil
}

func (cmd *ScoreCmd) Run(g *Globals) error {
	e, err := g.environment()
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandler(e.logger)
	defer stop()

	return cmd.run(ctx, e)
}

func (cmd *ScoreCmd) run(ctx context.Context, e *env) error {
	mapping, err := e.mapping(cmd.Variant)
	if err != nil {
		return err
	}

	results, err := cmd.score(ctx, e, mapping)
	if err != nil {
		return err
	}

	if cmd.Table {
		order := game.Ascending
		if cmd.Descending {
			order = game.Descending
		}
		renderer := report.NewRenderer(e.stdout, !cmd.NoColor)
		for _, r := range results {
			if err := renderer.Standings(r.name, r.session.Standings(order)); err != nil {
				return err
			}
		}
	}

	writeTotals := func(w io.Writer) error {
		for _, r := range results {
			var err error
			if len(results) == 1 {
				_, err = fmt.Fprintln(w, r.session.TotalWinnings())
			} else {
				_, err = fmt.Fprintf(w, "%s: %d\n", r.name, r.session.TotalWinnings())
			}
			if err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeTotals(e.stdout); err != nil {
		return err
	}
	if cmd.Output != "" {
		if err := fileutil.WriteAtomic(cmd.Output, 0o644, writeTotals); err != nil {
			return fmt.Errorf("writing %s: %w", cmd.Output, err)
		}
		e.logger.Debug("Wrote totals", "file", cmd.Output)
	}
	return nil
}

// score loads every input into its own session. Inputs are read
// concurrently; each session is ranked on its own.
func (cmd *ScoreCmd) score(ctx context.Context, e *env, mapping *deck.Mapping) ([]scored, error) {
	names := cmd.Files
	if len(names) == 0 {
		names = []string{stdinName}
	}
	strict := cmd.Strict || e.cfg.Strict

	results := make([]scored, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := e.clock.Now()
			r, closeFn, err := e.open(name)
			if err != nil {
				return err
			}
			defer closeFn()

			logger := e.logger.With("input", name)
			session := game.NewSession(mapping)
			stats, err := input.Load(r, session, input.Options{Strict: strict, Logger: logger})
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			logger.Info("Ranked session",
				"hands", session.Len(),
				"skipped", stats.Skipped,
				"elapsed", e.clock.Since(start))
			results[i] = scored{name: name, session: session, stats: stats}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *env) open(name string) (io.Reader, func(), error) {
	if name == stdinName {
		return e.stdin, func() {}, nil
	}
	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
