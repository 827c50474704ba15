package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultTickLength = time.Second * 2
)

// Manager is advanced once per driver tick. The game clock and the script
// runner are managers.
type Manager interface {
	Tick(context.Context) error
}

type GameDriver struct {
	tickLength time.Duration
	managers   []Manager
	ticks      uint64
}

func NewGameDriver(managers []Manager, opts ...GameDriverOpt) *GameDriver {
	d := &GameDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *GameDriver) Start(ctx context.Context) error {
	slog.Info("starting game driver", "tick_length", d.tickLength, "managers", len(d.managers))

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("stopping game driver", "ticks", d.ticks)
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

// Tick advances every manager in order, stopping at the first error.
func (d *GameDriver) Tick(ctx context.Context) error {
	d.ticks++
	for i, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return fmt.Errorf("tick %d, manager %d: %w", d.ticks, i, err)
		}
	}
	return nil
}

// Ticks returns the number of ticks run so far.
func (d *GameDriver) Ticks() uint64 {
	return d.ticks
}
