// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-artillery/internal/config"
	"go-artillery/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState — пауза поверх игрового состояния: мир остаётся на экране,
// симуляция стоит.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
	faces    *ui.Faces
}

func NewPauseState(sm *StateMachine, previous *GameState, faces *ui.Faces) *PauseState {
	return &PauseState{sm: sm, previous: previous, faces: faces}
}

func (s *PauseState) Enter() {
	s.previous.Game().SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0,
		float32(config.ScreenWidth), float32(config.ScreenHeight),
		color.RGBA{0, 0, 0, 128}, true)

	label := "PAUSED"
	bounds := text.BoundString(s.faces.Title, label)
	text.Draw(screen, label, s.faces.Title,
		(config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.previous.Game().SetPaused(false)
}
