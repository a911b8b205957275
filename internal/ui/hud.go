// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/system"
)

// HUD рисует игровой интерфейс: полоски здоровья над стрелками,
// всплывающие числа урона и баннер текущей фазы хода.
type HUD struct {
	ecs    *entity.ECS
	camera *system.CameraSystem
	faces  *Faces
}

func NewHUD(ecs *entity.ECS, camera *system.CameraSystem, faces *Faces) *HUD {
	return &HUD{ecs: ecs, camera: camera, faces: faces}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.drawHealthBars(screen)
	h.drawFloatingTexts(screen)
	h.drawTurnBanner(screen)
}

func (h *HUD) drawHealthBars(screen *ebiten.Image) {
	for id := range h.ecs.Shooters {
		health := h.ecs.Healths[id]
		pos := h.ecs.Positions[id]
		if health == nil || pos == nil || health.Dead {
			continue
		}
		x, y := h.camera.WorldToScreen(pos.Vec())
		barX := float32(x - config.HealthBarWidth/2)
		barY := float32(y - config.HealthBarOffsetY - config.HealthBarHeight)

		vector.DrawFilledRect(screen, barX, barY,
			float32(config.HealthBarWidth), float32(config.HealthBarHeight), config.HealthBarBack, true)

		frac := 0.0
		if health.Max > 0 {
			frac = health.Current / health.Max
		}
		fill := config.HealthBarFill
		if frac < 0.3 {
			fill = config.HealthBarLow
		}
		vector.DrawFilledRect(screen, barX, barY,
			float32(config.HealthBarWidth*frac), float32(config.HealthBarHeight), fill, true)
	}
}

func (h *HUD) drawFloatingTexts(screen *ebiten.Image) {
	for id, ft := range h.ecs.FloatingTexts {
		pos := h.ecs.Positions[id]
		if pos == nil {
			continue
		}
		x, y := h.camera.WorldToScreen(pos.Vec())
		col := ft.Color
		// Затухание во второй половине жизни
		if ft.Lifetime > 0 {
			age := ft.Age / ft.Lifetime
			if age > 0.5 {
				col.A = uint8(float64(col.A) * (1 - age) * 2)
			}
		}
		bounds := text.BoundString(h.faces.Regular, ft.Text)
		text.Draw(screen, ft.Text, h.faces.Regular, int(x)-bounds.Dx()/2, int(y), col)
	}
}

func (h *HUD) drawTurnBanner(screen *ebiten.Image) {
	gs := h.ecs.GameState
	if !gs.Started {
		return
	}
	label := ""
	col := config.TransitionColor
	switch gs.Phase {
	case component.PlayerTurn:
		label = "YOUR TURN"
		col = config.PlayerTurnColor
	case component.EnemyTurn:
		label = "ENEMY TURN"
		col = config.EnemyTurnColor
	case component.TurnTransition:
		label = "..."
	case component.GameOver:
		label = "GAME OVER"
		col = config.GameOverColor
	case component.StageCleared:
		label = "STAGE CLEARED"
		col = config.StageClearedColor
	}
	if label == "" {
		return
	}
	bounds := text.BoundString(h.faces.Title, label)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, label, h.faces.Title, x, 56, col)

	if gs.Phase == component.GameOver || gs.Phase == component.StageCleared {
		hint := "R - restart, M - menu"
		hintBounds := text.BoundString(h.faces.Regular, hint)
		text.Draw(screen, hint, h.faces.Regular,
			(config.ScreenWidth-hintBounds.Dx())/2, 92, config.TextLightColor)
		return
	}
	counter := fmt.Sprintf("enemies left: %d", gs.EnemiesLeft)
	text.Draw(screen, counter, h.faces.Regular, 16, 28, config.TextLightColor)
}
