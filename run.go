package engine

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens the window described by g's RunConfig, loads the scene and
// blocks running the frame loop until the window closes or Escape is
// pressed. Returns nil on a normal exit.
func Run(g *Game) error {
	cfg := g.cfg
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.ShowFPS {
		if err := g.root.Add(NewFPSCounter()); err != nil {
			return err
		}
	}
	if err := g.Load(); err != nil {
		return err
	}

	g.log.Info().
		Str("title", cfg.Title).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("starting frame loop")
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
