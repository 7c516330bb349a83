package engine

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Policy decides what Step does when the recorder fails.
type Policy int

const (
	// PolicyAbort returns the failure from Step.
	PolicyAbort Policy = iota
	// PolicySkip logs the failure and carries on.
	PolicySkip
	// PolicyRetry retries with linear backoff and returns the last failure
	// once the attempts are exhausted.
	PolicyRetry
)

var policyNames = map[Policy]string{
	PolicyAbort: "abort",
	PolicySkip:  "skip",
	PolicyRetry: "retry",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "abort", "skip" or "retry" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown record policy %q", s)
}

// RecordingError wraps a recorder failure with the generation it concerned.
type RecordingError struct {
	Generation uint64
	Attempts   int
	Err        error
}

func (e *RecordingError) Error() string {
	return fmt.Sprintf("record generation %d (%d attempts): %v", e.Generation, e.Attempts, e.Err)
}

func (e *RecordingError) Unwrap() error { return e.Err }

func (e *Engine) record(ctx context.Context, gen uint64) error {
	attempts := 1
	if e.policy == PolicyRetry {
		attempts = e.retries
	}

	var err error
	tried := 0
	for i := 1; i <= attempts; i++ {
		tried = i
		if err = e.rec.Record(ctx, gen, e.cur); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		e.log.Warn("recording failed, retrying", "generation", gen, "attempt", i, "err", err)
		if werr := sleep(ctx, time.Duration(i)*e.backoff); werr != nil {
			err = errors.Join(err, werr)
			break
		}
	}

	if e.policy == PolicySkip {
		e.log.Warn("recording failed, skipping generation", "generation", gen, "err", err)
		return nil
	}
	return &RecordingError{Generation: gen, Attempts: tried, Err: err}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
