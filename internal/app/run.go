package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"lifelog/internal/core"
	"lifelog/internal/engine"
	"lifelog/internal/pattern"
	"lifelog/internal/record"
)

// NewEngine builds an engine from cfg and seeds its initial pattern.
func NewEngine(cfg *Config, rec record.Recorder, log *slog.Logger) (*engine.Engine, error) {
	if log == nil {
		log = slog.Default()
	}
	policy, err := engine.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	eng := engine.New(cfg.Size, rec,
		engine.WithPolicy(policy),
		engine.WithRetry(cfg.Retries, cfg.Backoff),
		engine.WithLogger(log),
	)
	if err := Seed(cfg, eng.Current()); err != nil {
		return nil, err
	}
	log.Info("engine ready",
		"grid", eng.Current().ID(),
		"size", cfg.Size.String(),
		"pattern", cfg.Pattern,
		"population", eng.Current().Population(),
		"policy", policy.String(),
	)
	return eng, nil
}

// Seed writes the configured initial pattern into g.
func Seed(cfg *Config, g *core.Grid) error {
	if cfg.Pattern == "random" {
		pattern.Random(g, cfg.Seed, cfg.Density)
		return nil
	}
	p, ok := pattern.Lookup(cfg.Pattern)
	if !ok {
		return fmt.Errorf("unknown pattern %q", cfg.Pattern)
	}
	if err := p.Seed(cfg.Origin, g); err != nil {
		return fmt.Errorf("seed %s at %s: %w", p.Name, cfg.Origin, err)
	}
	return nil
}

// RunTerminal prints the grid, waits cfg.Delay and advances cfg.StepsPerFrame
// generations, repeating for cfg.Frames frames or until ctx is done.
func RunTerminal(ctx context.Context, eng *engine.Engine, w io.Writer, cfg *Config) error {
	pacer := core.NewPacer(cfg.Delay)
	for frame := 0; cfg.Frames == 0 || frame < cfg.Frames; frame++ {
		if _, err := fmt.Fprintln(w, eng.Render()); err != nil {
			return err
		}
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
		if err := eng.Simulate(ctx, cfg.StepsPerFrame); err != nil {
			return err
		}
	}
	return nil
}
