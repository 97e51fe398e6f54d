package factory

import (
	"github.com/automoto/runngun/archetypes"
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type HeroConfig struct {
	X, Y float64
}

func CreateHero(ecs *ecs.ECS, c HeroConfig) *donburi.Entry {
	hero := archetypes.Hero.Spawn(ecs)

	w, h := cfg.Hero.CollisionWidth, cfg.Hero.CollisionHeight
	obj := resolv.NewObject(c.X, c.Y, w, h, tags.ResolvHero)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hero
	components.Object.SetValue(hero, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Hero.SetValue(hero, components.HeroData{
		FacingX:  cfg.DirectionRight,
		Lives:    cfg.Hero.StartingLives,
		MaxLives: cfg.Hero.StartingLives,
	})
	components.Entity.SetValue(hero, components.EntityData{
		Active:     true,
		Gravitable: true,
	})
	// Spawned in the air; the first landing settles the motion state.
	components.Physics.SetValue(hero, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		Motion:       components.MotionFlyDown,
		Prev:         gamemath.Point{X: c.X, Y: c.Y},
	})
	components.View.SetValue(hero, components.NewView())

	return hero
}
