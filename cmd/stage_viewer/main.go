// cmd/stage_viewer/main.go
//
// Просмотрщик уровней: рисует рельеф, силовые поля и точки спавна из
// stages.json. Инструмент для настройки уровней, в игру не входит.
package main

import (
	"fmt"
	"log"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-artillery/internal/defs"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// viewport — панорамирование и масштаб просмотра.
type viewport struct {
	offsetX, offsetY float32 // экранное смещение начала координат
	scale            float32 // пикселей на мировую единицу
}

// worldToScreen переводит мировые координаты (ось Y вверх) в экранные.
func (v *viewport) worldToScreen(x, y float64) rl.Vector2 {
	return rl.NewVector2(
		v.offsetX+float32(x)*v.scale,
		v.offsetY-float32(y)*v.scale,
	)
}

func main() {
	if err := defs.LoadDefaults(); err != nil {
		log.Fatal(err)
	}
	var stageIDs []string
	for id := range defs.StageLibrary {
		stageIDs = append(stageIDs, id)
	}
	sort.Strings(stageIDs)
	if len(stageIDs) == 0 {
		log.Fatal("no stages loaded")
	}
	current := 0

	rl.InitWindow(screenWidth, screenHeight, "Stage Viewer | Tab - Next Stage, Drag - Pan, Wheel - Zoom")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	view := &viewport{offsetX: 100, offsetY: screenHeight - 120, scale: 28}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyTab) {
			current = (current + 1) % len(stageIDs)
		}
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			delta := rl.GetMouseDelta()
			view.offsetX += delta.X
			view.offsetY += delta.Y
		}
		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			view.scale += wheel * 2
			if view.scale < 4 {
				view.scale = 4
			} else if view.scale > 120 {
				view.scale = 120
			}
		}

		stage := defs.StageLibrary[stageIDs[current]]

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

		// Силовые поля
		for _, f := range stage.Fields {
			topLeft := view.worldToScreen(f.Min.X, f.Max.Y)
			bottomRight := view.worldToScreen(f.Max.X, f.Min.Y)
			rl.DrawRectangleRec(rl.NewRectangle(
				topLeft.X, topLeft.Y,
				bottomRight.X-topLeft.X, bottomRight.Y-topLeft.Y,
			), rl.NewColor(120, 70, 150, 90))
		}

		// Рельеф: земля серо-синяя, отражающие поверхности песочные
		for _, s := range stage.Segments {
			col := rl.NewColor(70, 100, 120, 255)
			if s.Kind == "bounce" {
				col = rl.NewColor(194, 178, 128, 255)
			}
			rl.DrawLineEx(
				view.worldToScreen(s.A.X, s.A.Y),
				view.worldToScreen(s.B.X, s.B.Y),
				3, col)
		}

		// Спавны
		playerAt := view.worldToScreen(stage.PlayerSpawn.X, stage.PlayerSpawn.Y)
		rl.DrawCircleV(playerAt, 8, rl.Green)
		rl.DrawText("P", int32(playerAt.X)-4, int32(playerAt.Y)-28, 20, rl.Green)

		for _, e := range stage.Enemies {
			at := view.worldToScreen(e.Position.X, e.Position.Y)
			rl.DrawCircleV(at, 8, rl.Red)
			label := fmt.Sprintf("%s d=%.2f", e.EnemyID, e.Difficulty)
			rl.DrawText(label, int32(at.X)-40, int32(at.Y)-28, 10, rl.RayWhite)
		}

		header := fmt.Sprintf("%s (%s)  [%d/%d]", stage.Name, stage.ID, current+1, len(stageIDs))
		rl.DrawText(header, 16, 16, 20, rl.RayWhite)

		rl.EndDrawing()
	}
}
