// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/utils"
	"go-artillery/pkg/geom"
)

// RenderSystem рисует мир: рельеф, силовые поля, следы снарядов,
// стрелков, снаряды и предпросмотр прицеливания. Мировые координаты
// переводятся в экранные через камеру.
type RenderSystem struct {
	ecs        *entity.ECS
	camera     *CameraSystem
	world      *geom.World
	aimPreview []geom.Vec2
}

func NewRenderSystem(ecs *entity.ECS, camera *CameraSystem) *RenderSystem {
	return &RenderSystem{ecs: ecs, camera: camera, world: &geom.World{}}
}

func (s *RenderSystem) SetWorld(w *geom.World) {
	if w == nil {
		w = &geom.World{}
	}
	s.world = w
}

// SetAimPreview задаёт точки предпросмотра траектории на этот кадр;
// пустой срез скрывает предпросмотр.
func (s *RenderSystem) SetAimPreview(points []geom.Vec2) {
	s.aimPreview = points
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	s.drawTerrain(screen)
	s.drawFields(screen)
	s.drawTrails(screen)
	s.drawEntities(screen)
	s.drawProjectiles(screen, gameTime)
	s.drawAimPreview(screen)
}

func (s *RenderSystem) drawTerrain(screen *ebiten.Image) {
	for _, seg := range s.world.Segments {
		ax, ay := s.camera.WorldToScreen(seg.A)
		bx, by := s.camera.WorldToScreen(seg.B)
		col := config.GroundColor
		if seg.Kind == geom.SurfaceBounce {
			col = config.BounceColor
		}
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), float32(config.StrokeWidth)*2, col, true)
	}
}

func (s *RenderSystem) drawFields(screen *ebiten.Image) {
	for _, field := range s.world.Fields {
		// Min/Max — мировые углы, на экране Y инвертирован
		x0, y1 := s.camera.WorldToScreen(field.Min)
		x1, y0 := s.camera.WorldToScreen(field.Max)
		vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), config.FieldColor, true)
	}
}

func (s *RenderSystem) drawTrails(screen *ebiten.Image) {
	for _, trail := range s.ecs.Trails {
		for i := 1; i < len(trail.Points); i++ {
			a := geom.Vec2{X: trail.Points[i-1][0], Y: trail.Points[i-1][1]}
			b := geom.Vec2{X: trail.Points[i][0], Y: trail.Points[i][1]}
			ax, ay := s.camera.WorldToScreen(a)
			bx, by := s.camera.WorldToScreen(b)
			vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1.5, config.TrailColor, true)
		}
	}
}

func (s *RenderSystem) drawEntities(screen *ebiten.Image) {
	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if _, isProjectile := s.ecs.Projectiles[id]; isProjectile {
			continue // снаряды рисуются отдельно, со спином
		}
		x, y := s.camera.WorldToScreen(pos.Vec())
		if render.HasStroke {
			vector.DrawFilledCircle(screen, float32(x), float32(y), render.Radius+2, config.TextLightColor, true)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), render.Radius, render.Color, true)
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image, gameTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos, hasPos := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		x, y := s.camera.WorldToScreen(pos.Vec())
		vector.DrawFilledCircle(screen, float32(x), float32(y), render.Radius, render.Color, true)

		// Косметический спин: штрих от центра, вращающийся с SpinRate
		if proj.SpinRate != 0 {
			angle := utils.Deg2Rad(proj.SpinAngle)
			r := float64(render.Radius)
			dx := math.Cos(angle) * r
			dy := math.Sin(angle) * r
			vector.StrokeLine(screen, float32(x-dx), float32(y-dy), float32(x+dx), float32(y+dy), 1.5, config.BackgroundColor, true)
		}
	}
}

func (s *RenderSystem) drawAimPreview(screen *ebiten.Image) {
	for _, p := range s.aimPreview {
		x, y := s.camera.WorldToScreen(p)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3, config.AimPreviewColor, true)
	}
}
