package internal

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const defaultLongPress = 2 * time.Second

// PowerButtonConfig describes the evdev node of the hardware power key.
type PowerButtonConfig struct {
	DevicePath  string        // e.g. /dev/input/event1
	LongPress   time.Duration // Holding at least this long exits; shorter presses suspend
	SuspendPath string        // Written with "mem" on suspend, usually /sys/power/state
}

// PowerButton watches the power key on its own goroutine. The frame loop
// only ever sees the two atomic flags.
type PowerButton struct {
	cfg       PowerButtonConfig
	dev       *evdev.InputDevice
	wg        sync.WaitGroup
	pressedAt time.Time

	exit    *atomic.Bool
	suspend *atomic.Bool
}

func newPowerButton(cfg PowerButtonConfig) *PowerButton {
	if cfg.LongPress <= 0 {
		cfg.LongPress = defaultLongPress
	}
	return &PowerButton{
		cfg:     cfg,
		exit:    atomic.NewBool(false),
		suspend: atomic.NewBool(false),
	}
}

// OpenPowerButton opens the device and starts reading it.
func OpenPowerButton(cfg PowerButtonConfig) (*PowerButton, error) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("open power button %s: %w", cfg.DevicePath, err)
	}

	p := newPowerButton(cfg)
	p.dev = dev

	p.wg.Add(1)
	go p.run()

	GetInternalLogger().Debug("Power button handler started", "device", cfg.DevicePath)
	return p, nil
}

func (p *PowerButton) run() {
	defer p.wg.Done()
	for {
		ev, err := p.dev.ReadOne()
		if err != nil {
			if !errors.Is(err, os.ErrClosed) {
				GetInternalLogger().Warn("Power button read failed", "error", err)
			}
			return
		}
		p.handle(ev, time.Now())
	}
}

func (p *PowerButton) handle(ev *evdev.InputEvent, now time.Time) {
	if ev.Type != evdev.EV_KEY || ev.Code != evdev.KEY_POWER {
		return
	}

	switch ev.Value {
	case 1:
		p.pressedAt = now
	case 0:
		if p.pressedAt.IsZero() {
			return
		}
		held := now.Sub(p.pressedAt)
		p.pressedAt = time.Time{}

		if held >= p.cfg.LongPress {
			GetInternalLogger().Info("Power button held, exiting", "held", held)
			p.exit.Store(true)
		} else {
			p.suspend.Store(true)
		}
	}
}

// ExitRequested reports whether a long press happened.
func (p *PowerButton) ExitRequested() bool {
	return p.exit.Load()
}

// TakeSuspend reports and clears a pending short press.
func (p *PowerButton) TakeSuspend() bool {
	return p.suspend.Swap(false)
}

// Close stops the reader goroutine and releases the device.
func (p *PowerButton) Close() error {
	if p.dev == nil {
		return nil
	}
	err := p.dev.Close()
	p.wg.Wait()
	return err
}

// Wrap returns a Source that ends once the power button asks to exit and
// suspends the device between frames on a short press.
func (p *PowerButton) Wrap(src input.Source) input.Source {
	return &powerSource{Source: src, button: p}
}

type powerSource struct {
	input.Source
	button *PowerButton
}

func (s *powerSource) Poll() (input.Snapshot, bool) {
	if s.button.ExitRequested() {
		return input.Snapshot{}, false
	}
	if s.button.TakeSuspend() {
		s.button.suspendDevice()
	}
	return s.Source.Poll()
}

func (s *powerSource) Close() error {
	return errors.Join(s.Source.Close(), s.button.Close())
}

func (p *PowerButton) suspendDevice() {
	if p.cfg.SuspendPath == "" {
		GetInternalLogger().Debug("Suspend requested without a suspend path")
		return
	}
	if err := os.WriteFile(p.cfg.SuspendPath, []byte("mem"), 0644); err != nil {
		GetInternalLogger().Error("Suspend failed", "path", p.cfg.SuspendPath, "error", err)
	}
}
