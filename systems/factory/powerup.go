package factory

import (
	"github.com/automoto/runngun/archetypes"
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PowerupConfig places a floating pickup with its top-left corner at X, Y.
type PowerupConfig struct {
	X, Y float64
	Kind leveldata.PowerupKind
}

// CreatePowerup spawns a capsule sized by cfg.Powerup.Size.
func CreatePowerup(ecs *ecs.ECS, c PowerupConfig) *donburi.Entry {
	powerup := archetypes.Powerup.Spawn(ecs)

	size := cfg.Powerup.Size
	obj := resolv.NewObject(c.X, c.Y, size, size, tags.ResolvPowerup)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = powerup
	components.Object.SetValue(powerup, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Powerup.SetValue(powerup, components.PowerupData{Kind: c.Kind})
	components.Entity.SetValue(powerup, components.EntityData{Active: true})
	components.View.SetValue(powerup, components.NewView())

	return powerup
}
