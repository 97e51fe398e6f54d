package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/runngun/archetypes"
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity holding the layout, the platform
// registry and the seeded random source.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, seed uint64) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Rand:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	components.PlatformRegistry.SetValue(entry, components.PlatformRegistryData{})
	return entry
}

// BuildLevel populates an empty world from level. Platforms are created in
// file order with bridges last, so collision sees them in the same order.
func BuildLevel(ecs *ecs.ECS, level *leveldata.Level, seed uint64) *donburi.Entry {
	if err := level.Validate(); err != nil {
		panic(fmt.Sprintf("factory: level %q: %v", level.Name, err))
	}

	cell := cfg.C.BlockSize
	if cell <= 0 {
		cell = 128
	}
	CreateSpace(ecs, int(level.Width), int(level.Height), cell, cell)
	levelEntry := CreateLevel(ecs, level, seed)
	CreateInput(ecs)

	hero := CreateHero(ecs, HeroConfig{X: level.Hero.X, Y: level.Hero.Y})

	var bridges []leveldata.PlatformSpec
	for _, p := range level.Platforms {
		if p.Kind == leveldata.PlatformBridge {
			bridges = append(bridges, p)
			continue
		}
		CreatePlatform(ecs, PlatformConfig{Surface: p.Kind, X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	for _, p := range bridges {
		CreateBridge(ecs, BridgeConfig{X: p.X, Y: p.Y, W: p.W, H: p.H, Target: hero})
	}

	for _, en := range level.Enemies {
		switch en.Kind {
		case leveldata.EnemyRunner:
			CreateRunner(ecs, RunnerConfig{X: en.X, Y: en.Y, JumpBehaviorKoef: en.JumpBehaviorKoef})
		case leveldata.EnemyTourelle:
			CreateTourelle(ecs, TourelleConfig{X: en.X, Y: en.Y})
		case leveldata.EnemyBoss:
			CreateTourelle(ecs, TourelleConfig{X: en.X, Y: en.Y, Boss: true})
		}
	}

	for _, p := range level.Powerups {
		CreatePowerup(ecs, PowerupConfig{X: p.X, Y: p.Y, Kind: p.Kind})
	}

	cam := CreateCamera(ecs, level)
	heroObj := components.Object.Get(hero)
	components.Camera.Get(cam).SnapTo(gamemath.Point{X: heroObj.X, Y: heroObj.Y})

	log.Debug("level built",
		"level", level.Name,
		"platforms", len(level.Platforms),
		"bridges", len(bridges),
		"enemies", len(level.Enemies),
		"powerups", len(level.Powerups),
		"seed", seed,
	)
	return levelEntry
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(entry, components.InputData{})
	return entry
}
