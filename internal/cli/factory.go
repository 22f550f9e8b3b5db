package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/minuterie/internal/adapters/console"
	"github.com/aretw0/minuterie/internal/adapters/memory"
	"github.com/aretw0/minuterie/internal/adapters/periph"
	"github.com/aretw0/minuterie/internal/adapters/redis"
	"github.com/aretw0/minuterie/internal/config"
	"github.com/aretw0/minuterie/pkg/ports"
)

// devices is the I/O selected by the driver.
type devices struct {
	button ports.Input
	light  ports.Output
	// presser is non-nil when the button can be pressed from software.
	presser interface{ Press() }
	// background runs next to the control loop, if set.
	background func(ctx context.Context) error
	close      func() error
}

// openDevices builds the button and the light for cfg.Driver. quit is called when the
// user asks to stop from the console.
func openDevices(cfg config.Config, opts RunOptions, quit func(), logger *slog.Logger) (*devices, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverSim:
		button := &memory.Button{}
		return &devices{
			button:  button,
			light:   &memory.Light{},
			presser: button,
			close:   noop,
		}, nil

	case config.DriverConsole:
		restore := noop
		if f, ok := opts.Stdin.(*os.File); ok {
			r, err := console.RawMode(int(f.Fd()))
			if err != nil {
				return nil, fmt.Errorf("failed to enter raw mode: %w", err)
			}
			restore = r
		}
		kb := console.NewKeyboard(opts.Stdin, quit, logger)
		return &devices{
			button:     kb,
			light:      console.NewLight(opts.Stdout),
			presser:    kb,
			background: kb.Run,
			close:      restore,
		}, nil

	case config.DriverGPIO:
		b, l, err := periph.Open(
			periph.Line{Name: cfg.Button.Pin, ActiveLow: cfg.Button.ActiveLow, Pull: cfg.Button.Pull},
			periph.Line{Name: cfg.Light.Pin, ActiveLow: cfg.Light.ActiveLow},
		)
		if err != nil {
			return nil, err
		}
		return &devices{
			button: b,
			light:  l,
			// Leave the light off on exit.
			close: func() error { return l.Set(false) },
		}, nil
	}

	return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
}

// journal is the event log selected by cfg.Journal, or nil when disabled.
type journal interface {
	ports.EventLog
	Close() error
}

type memoryJournal struct{ *memory.Journal }

func (memoryJournal) Close() error { return nil }

func openJournal(ctx context.Context, cfg config.JournalConfig) (journal, error) {
	switch cfg.Backend {
	case config.JournalNone, "":
		return nil, nil

	case config.JournalMemory:
		return memoryJournal{memory.NewJournal(cfg.Size)}, nil

	case config.JournalRedis:
		j := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			redis.WithStream(cfg.Stream),
			redis.WithMaxLen(int64(cfg.Size)),
		)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := j.Ping(pingCtx); err != nil {
			_ = j.Close()
			return nil, err
		}
		return j, nil
	}

	return nil, fmt.Errorf("unknown journal backend %q", cfg.Backend)
}
