package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"grid-snake/audio"
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/terminal"
	"grid-snake/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup restores the logger
// and the speaker before main reports the error.
func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cfg.Frontend == config.FrontendTerminal {
		// The screen owns stdout; keep the log out of it.
		closeLog := config.RedirectLog(cfg.LogFile)
		defer closeLog()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g, err := game.New(cfg.GridWidth(), cfg.GridHeight(), game.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	session := game.NewSession(g, manager.NewStatsManager())

	if cfg.Audio {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("[WARN] audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
			session.OnEat(func(game.Snapshot) { sound.PlayEat() })
			session.OnGameOver(func(game.Snapshot) { sound.PlayGameOver() })
		}
	}

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(session, cfg.TickInterval)
	default:
		err = ui.Run(session, cfg.TickInterval, cfg.TileSize, cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Frontend, err)
	}

	stats := session.Stats()
	log.Printf("played %d games, best score %d", stats.GamesPlayed(), stats.HighScore())
	return nil
}

func runTerminal(session *game.Session, interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = terminal.NewApp(screen, session, interval).Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}
