// internal/state/game_state.go
package state

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-artillery/internal/app"
	"go-artillery/internal/ui"
)

// GameState — состояние игры: симуляция плюс HUD поверх мира.
type GameState struct {
	sm      *StateMachine
	game    *app.Game
	hud     *ui.HUD
	faces   *ui.Faces
	logger  *log.Logger
	entered bool
}

func NewGameState(sm *StateMachine, stageID string, faces *ui.Faces, logger *log.Logger) *GameState {
	game, err := app.NewGame(stageID, time.Now().UnixNano(), logger)
	if err != nil {
		logger.Fatal("create game", "err", err)
	}
	return &GameState{
		sm:     sm,
		game:   game,
		hud:    ui.NewHUD(game.ECS, game.CameraSystem, faces),
		faces:  faces,
		logger: logger,
	}
}

// Game открывает игровую логику состоянию паузы.
func (s *GameState) Game() *app.Game { return s.game }

// Enter запускает партию один раз; возврат из паузы партию не трогает.
func (s *GameState) Enter() {
	if s.entered {
		return
	}
	s.entered = true
	s.game.StartGame()
}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s, s.faces))
		return
	}
	if s.game.IsEnded() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if err := s.game.Restart(); err != nil {
				s.logger.Error("restart", "err", err)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			s.sm.SetState(NewMenuState(s.sm, s.faces, s.logger))
			return
		}
	}
	s.game.Update(deltaTime)
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.hud.Draw(screen)
}

func (s *GameState) Exit() {}
