package archetypes

import (
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Entity,
		components.Object,
		components.Physics,
		components.View,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Entity,
		components.Object,
		components.View,
	)
	Bridge = newArchetype(
		tags.Platform,
		tags.Bridge,
		components.Platform,
		components.Entity,
		components.Object,
		components.View,
	)
	Runner = newArchetype(
		tags.Enemy,
		tags.Runner,
		components.Enemy,
		components.Runner,
		components.Entity,
		components.Object,
		components.Physics,
		components.Health,
		components.View,
	)
	Tourelle = newArchetype(
		tags.Enemy,
		tags.Tourelle,
		components.Enemy,
		components.Tourelle,
		components.Entity,
		components.Object,
		components.Health,
		components.View,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Entity,
		components.Object,
		components.View,
	)
	Powerup = newArchetype(
		tags.Powerup,
		components.Powerup,
		components.Entity,
		components.Object,
		components.View,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.PlatformRegistry,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
