// internal/app/game.go
package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-artillery/internal/ballistics"
	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/interfaces"
	"go-artillery/internal/system"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
	"go-artillery/pkg/geom"
)

// ShotRecord — запись журнала выстрелов: достаточно, чтобы воспроизвести
// партию по номеру сессии и начальным условиям каждого снаряда.
type ShotRecord struct {
	Seq      int
	Session  string
	Team     types.Team
	Origin   geom.Vec2
	Velocity geom.Vec2
	Time     float64
}

var _ interfaces.Game = (*Game)(nil)

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Scheduler          *system.Scheduler
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	AISystem           *system.AISystem
	TurnSystem         *system.TurnSystem
	CameraSystem       *system.CameraSystem
	FloatingTextSystem *system.FloatingTextSystem
	RenderSystem       *system.RenderSystem
	Rng                *utils.PRNGService
	Logger             *log.Logger

	PlayerID types.EntityID
	enemyIDs []types.EntityID

	stage     defs.StageDefinition
	world     *geom.World
	sessionID string
	shotLog   []ShotRecord

	gameTime float64
	isPaused bool
	aiming   bool
}

// NewGame initializes a new game instance. Определения (снаряды,
// противники, уровни) должны быть загружены до вызова.
func NewGame(stageID string, seed int64, logger *log.Logger) (*Game, error) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	scheduler := system.NewScheduler()
	rng := utils.NewPRNGService(seed)
	sessionID := uuid.NewString()
	logger = logger.With("session", sessionID)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Scheduler:       scheduler,
		Rng:             rng,
		Logger:          logger,
		PlayerID:        types.NoEntity,
		world:           &geom.World{},
		sessionID:       sessionID,
	}
	g.CombatSystem = system.NewCombatSystem(ecs, dispatcher, logger)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher, g.CombatSystem, logger)
	g.AISystem = system.NewAISystem(ecs, g.ProjectileSystem, rng, logger)
	g.TurnSystem = system.NewTurnSystem(ecs, dispatcher, scheduler, g.AISystem, logger)
	g.CameraSystem = system.NewCameraSystem(ecs)
	g.FloatingTextSystem = system.NewFloatingTextSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs, g.CameraSystem)

	dispatcher.Subscribe(g, event.ProjectileFired, event.GameEnded)

	if err := g.LoadStage(stageID); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadStage строит уровень: геометрию, игрока и противников.
// Вызывается и при первом старте, и при перезапуске.
func (g *Game) LoadStage(stageID string) error {
	stage, ok := defs.StageLibrary[stageID]
	if !ok {
		return fmt.Errorf("load stage %q: not found", stageID)
	}
	g.stage = stage

	// Пересборка с нуля: прежние сущности уровня не переживают перезапуск
	for id := range g.ECS.Positions {
		g.ECS.RemoveEntity(id)
	}
	g.Scheduler.Reset()
	g.ECS.GameState = &component.GameState{Phase: component.PlayerTurn}
	g.enemyIDs = g.enemyIDs[:0]
	g.shotLog = g.shotLog[:0]
	g.gameTime = 0

	g.world = buildWorld(stage)
	g.ProjectileSystem.SetWorld(g.world)
	g.AISystem.SetWorld(g.world)
	g.RenderSystem.SetWorld(g.world)

	g.PlayerID = g.spawnPlayer(stage)
	for _, spawn := range stage.Enemies {
		id, err := g.spawnEnemy(spawn)
		if err != nil {
			return err
		}
		g.enemyIDs = append(g.enemyIDs, id)
	}
	g.TurnSystem.SetCombatants(g.PlayerID, g.enemyIDs)

	g.CameraSystem.SetFocus(g.PlayerID)
	g.CameraSystem.SnapTo(geom.Vec2{X: stage.PlayerSpawn.X, Y: stage.PlayerSpawn.Y})

	g.Logger.Info("stage loaded", "stage", stage.ID, "enemies", len(g.enemyIDs))
	return nil
}

func buildWorld(stage defs.StageDefinition) *geom.World {
	w := &geom.World{}
	for _, s := range stage.Segments {
		kind := geom.SurfaceGround
		if s.Kind == "bounce" {
			kind = geom.SurfaceBounce
		}
		w.Segments = append(w.Segments, geom.Segment{
			A:    geom.Vec2{X: s.A.X, Y: s.A.Y},
			B:    geom.Vec2{X: s.B.X, Y: s.B.Y},
			Kind: kind,
		})
	}
	for _, f := range stage.Fields {
		w.Fields = append(w.Fields, geom.Field{
			Min: geom.Vec2{X: f.Min.X, Y: f.Min.Y},
			Max: geom.Vec2{X: f.Max.X, Y: f.Max.Y},
		})
	}
	return w
}

func (g *Game) spawnPlayer(stage defs.StageDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: stage.PlayerSpawn.X, Y: stage.PlayerSpawn.Y}
	g.ECS.Healths[id] = component.NewHealth(stage.PlayerHealth, types.TeamPlayer)
	g.ECS.Shooters[id] = &component.Shooter{
		Team:         types.TeamPlayer,
		ProjectileID: stage.PlayerProjectile,
		MuzzleOffset: geom.Vec2{X: 0, Y: 0.6},
		Radius:       0.5,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    float32(0.5 * config.PixelsPerUnit),
		HasStroke: true,
	}
	return id
}

func (g *Game) spawnEnemy(spawn defs.EnemySpawnDef) (types.EntityID, error) {
	def, ok := defs.EnemyLibrary[spawn.EnemyID]
	if !ok {
		return types.NoEntity, fmt.Errorf("spawn enemy %q: not found", spawn.EnemyID)
	}
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: spawn.Position.X, Y: spawn.Position.Y}
	g.ECS.Healths[id] = component.NewHealth(def.MaxHealth, types.TeamEnemy)
	g.ECS.Shooters[id] = &component.Shooter{
		Team:         types.TeamEnemy,
		ProjectileID: def.ProjectileID,
		MuzzleOffset: geom.Vec2{X: 0, Y: 0.6},
		Radius:       0.5,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.EnemyColor,
		Radius:    float32(0.5 * config.PixelsPerUnit),
		HasStroke: true,
	}
	enemyAI := &component.EnemyAI{
		DefID:        def.ID,
		TargetID:     g.PlayerID,
		ForcePhysics: def.ForcePhysics,
	}
	enemyAI.ApplySettings(def.Easy.Lerp(def.Hard, spawn.Difficulty))
	g.ECS.EnemyAIs[id] = enemyAI
	return id, nil
}

// StartGame запускает партию (идемпотентно, см. TurnSystem).
func (g *Game) StartGame() {
	g.TurnSystem.StartGame()
}

// Restart перезагружает текущий уровень и начинает новую партию.
func (g *Game) Restart() error {
	if err := g.LoadStage(g.stage.ID); err != nil {
		return err
	}
	g.StartGame()
	return nil
}

func (g *Game) IsEnded() bool    { return g.ECS.GameState.Ended }
func (g *Game) IsPaused() bool   { return g.isPaused }
func (g *Game) SetPaused(p bool) { g.isPaused = p }

// SessionID возвращает идентификатор партии, которым помечены журнал
// выстрелов и записи лога.
func (g *Game) SessionID() string { return g.sessionID }

// ShotLog возвращает журнал выстрелов текущей партии.
func (g *Game) ShotLog() []ShotRecord { return g.shotLog }

// OnEvent реализует event.Listener: журнал выстрелов и итог партии.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		payload, ok := e.Data.(event.ProjectileFiredPayload)
		if !ok {
			return
		}
		record := ShotRecord{
			Seq:      len(g.shotLog) + 1,
			Session:  g.sessionID,
			Team:     payload.Team,
			Origin:   payload.Origin,
			Velocity: payload.Velocity,
			Time:     g.gameTime,
		}
		g.shotLog = append(g.shotLog, record)
		g.Logger.Debug("shot recorded",
			"seq", record.Seq, "team", record.Team.String(),
			"vx", record.Velocity.X, "vy", record.Velocity.Y)
	case event.GameEnded:
		g.Logger.Info("session finished", "shots", len(g.shotLog))
	}
}

// Update продвигает симуляцию на deltaTime и обрабатывает ввод игрока.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.handleAiming()

	g.Scheduler.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.FloatingTextSystem.Update(deltaTime)
	g.updateCameraFocus()
	g.CameraSystem.Update(deltaTime)
}

func (g *Game) updateCameraFocus() {
	switch g.ECS.GameState.Phase {
	case component.EnemyTurn:
		if id := g.TurnSystem.ActiveEnemy(); id != types.NoEntity {
			g.CameraSystem.SetFocus(id)
		}
	default:
		g.CameraSystem.SetFocus(g.PlayerID)
	}
}

// handleAiming ведёт ручное прицеливание: пока левая кнопка зажата,
// показывается предпросмотр траектории, на отпускании происходит выстрел.
func (g *Game) handleAiming() {
	if !g.CanAim() {
		g.aiming = false
		g.RenderSystem.SetAimPreview(nil)
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.aiming = true
	}
	if !g.aiming {
		return
	}

	mx, my := ebiten.CursorPosition()
	target := g.CameraSystem.ScreenToWorld(float64(mx), float64(my))
	velocity, ok := g.PredictShot(target)
	if !ok {
		g.RenderSystem.SetAimPreview(nil)
		return
	}
	muzzle := g.MuzzlePosition()
	g.RenderSystem.SetAimPreview(ballistics.PreviewTrajectory(
		muzzle, velocity, config.Gravity, config.AimPreviewSteps, config.AimPreviewDt))

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.aiming = false
		g.RenderSystem.SetAimPreview(nil)
		g.FireManualShot(target)
	}
}

// CanAim сообщает, доступно ли игроку прицеливание прямо сейчас.
func (g *Game) CanAim() bool { return g.TurnSystem.CanPlayerFire() }

// MuzzlePosition возвращает точку вылета снарядов игрока.
func (g *Game) MuzzlePosition() geom.Vec2 {
	pos := g.ECS.Positions[g.PlayerID]
	shooter := g.ECS.Shooters[g.PlayerID]
	if pos == nil || shooter == nil {
		return geom.Vec2{}
	}
	return pos.Vec().Add(shooter.MuzzleOffset)
}

// PredictShot считает стартовую скорость ручного выстрела в точку target:
// направление — на точку, модуль — по длине натяжения.
func (g *Game) PredictShot(target geom.Vec2) (geom.Vec2, bool) {
	muzzle := g.MuzzlePosition()
	dir := target.Sub(muzzle)
	if dir.LenSq() < 1e-12 {
		return geom.Vec2{}, false
	}
	velocity := ballistics.ComputeInitialVelocity(dir, dir.Len(),
		config.PlayerMinShotSpeed, config.PlayerMaxShotSpeed, config.PlayerMaxChargeLength)
	return velocity, true
}

// FireManualShot выполняет ручной выстрел игрока в точку target.
// Вне хода игрока или до завершения подъёма запрос игнорируется.
func (g *Game) FireManualShot(target geom.Vec2) types.EntityID {
	if !g.CanAim() {
		return types.NoEntity
	}
	velocity, ok := g.PredictShot(target)
	if !ok {
		return types.NoEntity
	}
	shooter := g.ECS.Shooters[g.PlayerID]
	id := g.ProjectileSystem.SpawnBallistic(shooter.ProjectileID, shooter.Team, g.MuzzlePosition(), velocity)
	if id == types.NoEntity {
		return types.NoEntity
	}
	g.TurnSystem.TrackProjectile(id)
	return id
}

// Draw отрисовывает мир (интерфейс поверх рисует HUD).
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.RenderSystem.Draw(screen, g.gameTime)
}
