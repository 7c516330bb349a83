package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifelog/internal/core"
	"lifelog/internal/pattern"
	"lifelog/internal/record"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			want := (alive && n == 2) || n == 3
			if got := NextState(alive, n); got != want {
				t.Fatalf("NextState(%v, %d) = %v, want %v", alive, n, got, want)
			}
		}
	}
}

func TestNewEngine(t *testing.T) {
	e := New(core.Bounds{Width: 5, Height: 7}, nil)
	if e.Generation() != 0 {
		t.Fatalf("generation %d, want 0", e.Generation())
	}
	if e.Current().ID() == "" {
		t.Fatal("engine should assign a grid id")
	}
	if e.Current() == e.buf || e.Current().ID() != e.buf.ID() {
		t.Fatal("current and buffer must be distinct grids sharing one id")
	}
	if e.Current().Bounds() != e.buf.Bounds() {
		t.Fatal("current and buffer bounds differ")
	}
}

func TestNewClampsNonPositiveBounds(t *testing.T) {
	e := New(core.Bounds{Width: 0, Height: 5}, nil)
	if got := e.Current().Bounds(); got != (core.Bounds{Width: 1, Height: 5}) {
		t.Fatalf("bounds %s, want 1:5", got)
	}
	if err := e.Step(context.Background()); err != nil {
		t.Fatalf("step on clamped grid: %v", err)
	}
}

func TestStepEmptyGrid(t *testing.T) {
	e := New(core.Bounds{Width: 8, Height: 8}, nil)
	if err := e.Step(context.Background()); err != nil {
		t.Fatalf("step: %v", err)
	}
	if n := e.Current().Population(); n != 0 {
		t.Fatalf("empty grid produced %d live cells", n)
	}
	if e.Generation() != 1 {
		t.Fatalf("generation %d, want 1", e.Generation())
	}
}

func TestStepSwapsBuffers(t *testing.T) {
	e := New(core.Bounds{Width: 4, Height: 4}, nil)
	first, second := e.cur, e.buf
	e.Step(context.Background())
	if e.cur != second || e.buf != first {
		t.Fatal("step should exchange the grids rather than copy cells")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := New(core.Bounds{Width: 5, Height: 5}, nil)
	g := e.Current()
	for _, c := range []int{1, 2, 3} {
		g.Set(core.Coord{Row: 2, Col: c}, true)
	}
	start := g.Clone()

	e.Step(context.Background())
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := c == 2 && r >= 1 && r <= 3
			if alive, _ := e.Current().Get(core.Coord{Row: r, Col: c}); alive != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, alive, want)
			}
		}
	}

	e.Step(context.Background())
	if !e.Current().Equal(start) {
		t.Fatal("blinker should return to its start after two steps")
	}
}

func TestGliderTranslates(t *testing.T) {
	e := New(core.Bounds{Width: 16, Height: 16}, nil)
	if err := pattern.SeedGlider(core.Coord{}, e.Current()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	want := core.NewGrid("want", core.Bounds{Width: 16, Height: 16})
	pattern.SeedGlider(core.Coord{Row: 1, Col: 1}, want)

	hist := &record.Memory{}
	e.rec = hist
	if err := e.Simulate(context.Background(), 4); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !e.Current().Equal(want) {
		t.Fatalf("glider did not move by (+1,+1):\n%s", e.Render())
	}
	for _, s := range hist.Snapshots() {
		if n := s.Grid.Population(); n != 5 {
			t.Fatalf("generation %d has %d live cells, want 5", s.Generation, n)
		}
	}
}

func TestRecordContract(t *testing.T) {
	rec := &record.Memory{}
	e := New(core.Bounds{Width: 6, Height: 6}, rec, WithID("fixed"))
	pattern.SeedGlider(core.Coord{Row: 1, Col: 1}, e.Current())

	for i := 0; i < 5; i++ {
		if err := e.Step(context.Background()); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		snaps := rec.Snapshots()
		if len(snaps) != i+1 {
			t.Fatalf("after %d steps recorder saw %d calls", i+1, len(snaps))
		}
		last := snaps[i]
		if last.Generation != uint64(i) {
			t.Fatalf("step %d recorded as generation %d", i, last.Generation)
		}
		if last.Grid.ID() != "fixed" {
			t.Fatalf("snapshot id %q, want fixed", last.Grid.ID())
		}
		if !last.Grid.Equal(e.Current()) {
			t.Fatalf("step %d recorded a grid other than the post-step state", i)
		}
	}
	if e.Generation() != 5 {
		t.Fatalf("generation %d, want 5", e.Generation())
	}
}

func TestRecordAbort(t *testing.T) {
	boom := errors.New("sink down")
	rec := record.Func(func(context.Context, uint64, *core.Grid) error { return boom })
	e := New(core.Bounds{Width: 3, Height: 3}, rec)

	err := e.Simulate(context.Background(), 3)
	var re *RecordingError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RecordingError, got %v", err)
	}
	if !errors.Is(err, boom) || re.Generation != 0 || re.Attempts != 1 {
		t.Fatalf("unexpected recording error %+v", re)
	}
	if e.Generation() != 1 {
		t.Fatalf("simulate should stop after the failing step, generation %d", e.Generation())
	}
}

func TestRecordSkip(t *testing.T) {
	calls := 0
	rec := record.Func(func(context.Context, uint64, *core.Grid) error {
		calls++
		return errors.New("sink down")
	})
	e := New(core.Bounds{Width: 3, Height: 3}, rec, WithPolicy(PolicySkip), WithLogger(quietLogger()))

	if err := e.Simulate(context.Background(), 4); err != nil {
		t.Fatalf("skip policy should swallow recording errors: %v", err)
	}
	if calls != 4 || e.Generation() != 4 {
		t.Fatalf("calls=%d generation=%d, want 4/4", calls, e.Generation())
	}
}

func TestRecordRetry(t *testing.T) {
	calls := 0
	rec := record.Func(func(context.Context, uint64, *core.Grid) error {
		calls++
		if calls < 3 {
			return errors.New("flaky")
		}
		return nil
	})
	e := New(core.Bounds{Width: 3, Height: 3}, rec,
		WithPolicy(PolicyRetry), WithRetry(3, time.Millisecond), WithLogger(quietLogger()))

	if err := e.Step(context.Background()); err != nil {
		t.Fatalf("third attempt should succeed: %v", err)
	}
	if calls != 3 {
		t.Fatalf("recorder called %d times, want 3", calls)
	}
}

func TestRecordRetryExhausted(t *testing.T) {
	rec := record.Func(func(context.Context, uint64, *core.Grid) error { return errors.New("down") })
	e := New(core.Bounds{Width: 3, Height: 3}, rec,
		WithPolicy(PolicyRetry), WithRetry(2, 0), WithLogger(quietLogger()))

	err := e.Step(context.Background())
	var re *RecordingError
	if !errors.As(err, &re) || re.Attempts != 2 {
		t.Fatalf("expected RecordingError after 2 attempts, got %v", err)
	}
}

func TestRecordRetryCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sinkErr := errors.New("conn refused")
	rec := record.Func(func(context.Context, uint64, *core.Grid) error {
		cancel()
		return sinkErr
	})
	e := New(core.Bounds{Width: 3, Height: 3}, rec,
		WithPolicy(PolicyRetry), WithRetry(3, time.Hour), WithLogger(quietLogger()))

	err := e.Step(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancellation during backoff should be reported, got %v", err)
	}
	var re *RecordingError
	if !errors.As(err, &re) || re.Attempts != 1 || !errors.Is(err, sinkErr) {
		t.Fatalf("expected RecordingError wrapping the sink error after 1 attempt, got %v", err)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyAbort, PolicySkip, PolicyRetry} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("ParsePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("ignore"); err == nil {
		t.Fatal("unknown policy should fail")
	}
}

func TestRenderSkipsDeadRows(t *testing.T) {
	e := New(core.Bounds{Width: 4, Height: 5}, nil)
	pattern.SeedGlider(core.Coord{}, e.Current())

	want := " •   \n" +
		"  •  \n" +
		"•••  \n"
	if got := e.Render(); got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}

	empty := New(core.Bounds{Width: 3, Height: 3}, nil)
	if got := empty.Render(); got != "" {
		t.Fatalf("empty grid rendered %q", got)
	}
}

func TestRenderOmitsGapRows(t *testing.T) {
	e := New(core.Bounds{Width: 5, Height: 2}, nil)
	e.Current().Set(core.Coord{Row: 0, Col: 0}, true)
	e.Current().Set(core.Coord{Row: 4, Col: 1}, true)
	if got, want := e.Render(), "• \n •\n"; got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
}
