package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int

	// Events are replayed one per tick before the app step runs.
	Events []Event

	// Done runs once after the last tick, with the final framebuffer contents.
	Done func(HAL) error
}

// RunHeadless runs the viewer without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h := newHost(os.Stdout, cfg.Width, cfg.Height)
	return runHeadless(ctx, h, newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if tick < uint64(len(cfg.Events)) {
				h.in.emit(cfg.Events[tick])
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				if cfg.Done != nil {
					return cfg.Done(h)
				}
				return nil
			}
		}
	}
}
