// Package engine advances a Conway's Game of Life grid one generation at a
// time and hands every generation to a recorder.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lifelog/internal/core"
	"lifelog/internal/record"

	"github.com/google/uuid"
)

// AliveGlyph marks a live cell in Render output.
const AliveGlyph = '•'

// Engine owns the current grid and a buffer of identical bounds. Each step
// computes into the buffer and then exchanges the two.
type Engine struct {
	generation uint64
	cur, buf   *core.Grid
	rec        record.Recorder

	policy  Policy
	retries int
	backoff time.Duration
	log     *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithID fixes the grid id instead of generating a UUID.
func WithID(id string) Option {
	return func(e *Engine) {
		e.cur = core.NewGrid(id, e.cur.Bounds())
		e.buf = e.cur.Clone()
	}
}

// WithPolicy selects how recorder failures are handled.
func WithPolicy(p Policy) Option { return func(e *Engine) { e.policy = p } }

// WithRetry sets the attempt count and the base backoff used by PolicyRetry.
// The n-th retry waits n*backoff.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(e *Engine) {
		if attempts < 1 {
			attempts = 1
		}
		e.retries = attempts
		e.backoff = backoff
	}
}

// WithLogger sets the logger used for skipped and retried recordings.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New returns an engine with two dead grids of the given bounds sharing a
// fresh id. A nil recorder is replaced with record.Nop. Non-positive
// dimensions are clamped to 1 by core.NewGrid; callers taking bounds from
// users should reject them first, as app.Config.Validate does.
func New(bounds core.Bounds, rec record.Recorder, opts ...Option) *Engine {
	if rec == nil {
		rec = record.Nop{}
	}
	cur := core.NewGrid(uuid.NewString(), bounds)
	e := &Engine{
		cur:     cur,
		buf:     cur.Clone(),
		rec:     rec,
		policy:  PolicyAbort,
		retries: 3,
		backoff: 100 * time.Millisecond,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generation returns the number of completed steps.
func (e *Engine) Generation() uint64 { return e.generation }

// Current returns the grid holding the latest generation. It is valid until
// the next Step; writes to it before the first Step seed the simulation.
func (e *Engine) Current() *core.Grid { return e.cur }

// NextState applies the Life rule to a cell with n live neighbors.
func NextState(alive bool, n int) bool {
	switch n {
	case 2:
		return alive
	case 3:
		return true
	default:
		return false
	}
}

// Step advances the simulation by one generation and records it. The grid
// advances and the counter increments even when recording fails; the failure
// is returned according to the engine's policy.
func (e *Engine) Step(ctx context.Context) error {
	b := e.cur.Bounds()
	for r := 0; r < b.Width; r++ {
		for c := 0; c < b.Height; c++ {
			pt := core.Coord{Row: r, Col: c}
			alive, err := e.cur.Get(pt)
			if err != nil {
				return fmt.Errorf("read %s: %w", pt, err)
			}
			next := NextState(alive, e.cur.NeighborCount(pt))
			if _, err := e.buf.Set(pt, next); err != nil {
				return fmt.Errorf("write %s: %w", pt, err)
			}
		}
	}
	e.cur, e.buf = e.buf, e.cur

	gen := e.generation
	err := e.record(ctx, gen)
	e.generation++
	return err
}

// Simulate runs n steps in order, stopping at the first error.
func (e *Engine) Simulate(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := e.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Render draws the current grid with RenderGrid.
func (e *Engine) Render() string { return RenderGrid(e.cur) }

// RenderGrid draws g as text, one line per row, with AliveGlyph for live
// cells and a space for dead ones. Rows without any live cell are left out.
func RenderGrid(g *core.Grid) string {
	b := g.Bounds()
	cells := g.Cells()
	var out, line strings.Builder
	for r := 0; r < b.Width; r++ {
		line.Reset()
		row := cells[r*b.Height : (r+1)*b.Height]
		for _, alive := range row {
			if alive {
				line.WriteRune(AliveGlyph)
			} else {
				line.WriteByte(' ')
			}
		}
		if strings.TrimSpace(line.String()) == "" {
			continue
		}
		out.WriteString(line.String())
		out.WriteByte('\n')
	}
	return out.String()
}
