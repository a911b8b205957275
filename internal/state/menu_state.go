// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-artillery/internal/config"
	"go-artillery/internal/ui"
)

// MenuState — стартовое меню: выбор уровня и запуск партии.
type MenuState struct {
	sm      *StateMachine
	faces   *ui.Faces
	logger  *log.Logger
	buttons []*ui.Button
	stages  []string
}

func NewMenuState(sm *StateMachine, faces *ui.Faces, logger *log.Logger) *MenuState {
	m := &MenuState{
		sm:     sm,
		faces:  faces,
		logger: logger,
		stages: []string{"STAGE_PLAINS", "STAGE_RAMPARTS"},
	}
	for i, stageID := range m.stages {
		rect := image.Rect(
			config.ScreenWidth/2-120, 280+i*70,
			config.ScreenWidth/2+120, 280+i*70+50)
		m.buttons = append(m.buttons, ui.NewButton(rect, stageID, faces.Regular))
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.stages[0], m.faces, m.logger))
		return
	}
	for i, b := range m.buttons {
		if b.IsClicked() {
			m.sm.SetState(NewGameState(m.sm, m.stages[i], m.faces, m.logger))
			return
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "ARTILLERY"
	bounds := text.BoundString(m.faces.Title, title)
	text.Draw(screen, title, m.faces.Title,
		(config.ScreenWidth-bounds.Dx())/2, 180, config.TextLightColor)

	for _, b := range m.buttons {
		b.Draw(screen)
	}
}

func (m *MenuState) Exit() {}
