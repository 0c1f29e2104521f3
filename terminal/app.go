package terminal

import (
	"context"
	"time"

	"grid-snake/game"

	"github.com/gdamore/tcell/v2"
)

// App runs a session on a tcell screen. Ticks come from a scheduler
// goroutine, keys from a poll goroutine; the Session serialises both.
type App struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *Renderer
	interval time.Duration
}

func NewApp(screen tcell.Screen, session *game.Session, interval time.Duration) *App {
	return &App{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(screen),
		interval: interval,
	}
}

// Run blocks until the player quits or ctx is cancelled. The screen must
// already be initialised; Run does not call Fini.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	redraw := make(chan struct{}, 1)
	stop := a.startScheduler(ctx, redraw)
	defer func() { stop() }()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-redraw:
			a.draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
				a.draw()
			case *tcell.EventKey:
				action, dir := MapKey(ev.Key(), ev.Rune())
				switch action {
				case ActionTurn:
					a.session.SetDirection(dir)
				case ActionReset:
					if !a.session.Snapshot().GameOver {
						continue
					}
					stop()
					if err := a.session.Restart(); err != nil {
						return err
					}
					stop = a.startScheduler(ctx, redraw)
					a.draw()
				case ActionQuit:
					return nil
				}
			}
		}
	}
}

// startScheduler drives the session until game over and returns a func
// that stops it and waits for it to exit.
func (a *App) startScheduler(ctx context.Context, redraw chan<- struct{}) func() {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = game.NewScheduler(a.interval).Run(runCtx, a.session, func(game.Snapshot) {
			select {
			case redraw <- struct{}{}:
			default:
			}
		})
	}()
	return func() {
		cancel()
		<-done
	}
}

func (a *App) draw() {
	a.renderer.Draw(a.session.Snapshot(), a.session.Stats().HighScore())
}
