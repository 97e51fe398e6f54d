package factory

import (
	"github.com/automoto/runngun/archetypes"
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type RunnerConfig struct {
	X, Y float64
	// JumpBehaviorKoef of zero falls back to the configured default.
	JumpBehaviorKoef float64
}

type TourelleConfig struct {
	X, Y float64
	Boss bool
}

// CreateRunner spawns a runner. Runners stay inactive until the camera
// reaches them.
func CreateRunner(ecs *ecs.ECS, c RunnerConfig) *donburi.Entry {
	runner := archetypes.Runner.Spawn(ecs)

	w, h := cfg.Runner.CollisionWidth, cfg.Runner.CollisionHeight
	newEnemyObject(ecs, runner, c.X, c.Y, w, h)

	koef := c.JumpBehaviorKoef
	if koef == 0 {
		koef = cfg.Runner.JumpBehaviorKoef
	}
	components.Enemy.SetValue(runner, components.EnemyData{
		Kind:    leveldata.EnemyRunner,
		FacingX: cfg.DirectionLeft,
	})
	components.Runner.SetValue(runner, components.RunnerData{
		Speed:            cfg.Runner.Speed,
		JumpForce:        cfg.Runner.JumpForce,
		JumpBehaviorKoef: koef,
	})
	components.Entity.SetValue(runner, components.EntityData{Gravitable: true})
	components.Physics.SetValue(runner, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		Motion:       components.MotionFlyDown,
		Prev:         gamemath.Point{X: c.X, Y: c.Y},
	})
	components.Health.SetValue(runner, components.HealthData{
		Current: cfg.Runner.Health,
		Max:     cfg.Runner.Health,
	})

	return runner
}

// CreateTourelle spawns a fixed turret, or the level boss when c.Boss is set.
func CreateTourelle(ecs *ecs.ECS, c TourelleConfig) *donburi.Entry {
	tourelle := archetypes.Tourelle.Spawn(ecs)

	size, health, cooldown := cfg.Tourelle.Size, cfg.Tourelle.Health, cfg.Tourelle.FireCooldown
	kind := leveldata.EnemyTourelle
	if c.Boss {
		size, health, cooldown = cfg.Tourelle.BossSize, cfg.Tourelle.BossHealth, cfg.Tourelle.BossCooldown
		kind = leveldata.EnemyBoss
	}
	newEnemyObject(ecs, tourelle, c.X, c.Y, size, size)

	components.Enemy.SetValue(tourelle, components.EnemyData{
		Kind:    kind,
		FacingX: cfg.DirectionLeft,
	})
	components.Tourelle.SetValue(tourelle, components.TourelleData{
		Cooldown: cooldown,
		Aim:      180,
	})
	components.Entity.SetValue(tourelle, components.EntityData{})
	components.Health.SetValue(tourelle, components.HealthData{
		Current: health,
		Max:     health,
	})

	return tourelle
}

func newEnemyObject(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64) {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.View.SetValue(e, components.NewView())
	addToSpace(ecs, obj)
}
