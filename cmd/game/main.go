// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/state"
	"go-artillery/internal/ui"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	})
	go func() {
		logger.Error("pprof listener stopped", "err", http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadDefaults(); err != nil {
		logger.Fatal("load definitions", "err", err)
	}
	faces, err := ui.LoadFaces()
	if err != nil {
		logger.Fatal("load fonts", "err", err)
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, "STAGE_PLAINS", faces, logger))
	} else {
		sm.SetState(state.NewMenuState(sm, faces, logger))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Artillery")
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("run", "err", err)
	}
}
