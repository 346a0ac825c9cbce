package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the run after N steps; 0 runs until the app stops.
	Ticks uint64
	// Unpaced steps as fast as possible instead of at Hz.
	Unpaced bool
}

// RunHeadless runs the app without opening a window. A step returning
// ErrStop ends the run with a nil error.
func RunHeadless(ctx context.Context, cfg Config, newApp func(HAL) (func() error, error), hc HeadlessConfig) error {
	return runHeadless(ctx, newHost(cfg, os.Stdout), newApp, hc)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	var tc <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(d)
		defer t.Stop()
		tc = t.C
	}

	var tick uint64
	for {
		if tc != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tc:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		h.t.stepN(uint64(d / time.Millisecond))
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
