package render

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/ghostchase/internal/world"
)

// ErrQuit is returned by Viewer.Run when the user quits.
var ErrQuit = errors.New("viewer quit")

// Source is what the viewer draws.
type Source interface {
	View() world.View
	Done() <-chan struct{}
}

// Viewer owns the terminal: it feeds key events to the keyboard and redraws
// the scene at a fixed frame interval.
type Viewer struct {
	screen   tcell.Screen
	renderer *Renderer
	source   Source
	keys     *Keyboard
	interval time.Duration
}

// NewViewer creates a viewer. The screen must already be initialized.
func NewViewer(screen tcell.Screen, source Source, keys *Keyboard, interval time.Duration) *Viewer {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen),
		source:   source,
		keys:     keys,
		interval: interval,
	}
}

// Run draws until ctx is canceled, the user quits, or the run is over and
// acknowledged with a key press. Returns ErrQuit when the user quit
// mid-run.
func (v *Viewer) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 32)
	go pollEvents(v.screen, events, done)

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	v.renderer.DrawFrame(v.source.View())

	finished := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
			case *tcell.EventKey:
				if finished {
					return nil
				}
				v.keys.HandleKey(ev)
			}

		case <-v.keys.Quit():
			slog.Info("viewer quit requested")
			return ErrQuit

		case <-ticker.C:
			v.renderer.DrawFrame(v.source.View())
			if !finished {
				select {
				case <-v.source.Done():
					finished = true
				default:
				}
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
