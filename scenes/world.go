package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/systems"
	"github.com/automoto/runngun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSimulation builds a world for level with the gameplay systems in tick
// order and no renderers. Every ecs.Update is one tick.
func NewSimulation(level *leveldata.Level, input systems.InputSource, seed uint64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	AddGameplaySystems(e, input)
	factory.BuildLevel(e, level, seed)
	return e
}

// AddGameplaySystems registers the per-tick systems. The order is part of
// the game rules: input, self-updates, platform collision, bridges,
// shooting, bullets, contacts, deaths, then the camera.
func AddGameplaySystems(e *ecs.ECS, input systems.InputSource) {
	// Systems that always run
	e.AddSystem(systems.NewInputSystem(input))
	e.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and game over checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTick))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHero))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRunners))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTourelles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatformCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBridges))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateShooting))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBullets))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateContacts))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateVisualStates))
}

// PlatformerScene runs a level in the ebiten window.
type PlatformerScene struct {
	ecs   *ecs.ECS
	level *leveldata.Level
	input systems.InputSource
	seed  uint64
	once  sync.Once

	restartPending bool
}

func NewPlatformerScene(level *leveldata.Level, seed uint64) *PlatformerScene {
	return &PlatformerScene{
		level: level,
		input: &systems.KeyboardSource{},
		seed:  seed,
	}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.restartPending {
		ps.restartPending = false
		ps.configure()
	}
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = NewSimulation(ps.level, ps.input, ps.seed)
	ps.ecs.AddSystem(systems.NewUpdateGameOver(ps.restart))

	ps.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
}

// restart rebuilds the level from scratch on the next update.
func (ps *PlatformerScene) restart() {
	ps.restartPending = true
}
