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

// BulletConfig describes a shot. X and Y are the muzzle point; the bullet
// is centered on it. Angle is in degrees, 0 pointing right and 90 down.
type BulletConfig struct {
	X, Y    float64
	Angle   float64
	Faction components.Faction
}

// CreateBullet spawns a projectile flying at Angle with its faction's speed.
func CreateBullet(ecs *ecs.ECS, c BulletConfig) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	w, h := cfg.Bullet.Width, cfg.Bullet.Height
	obj := resolv.NewObject(c.X-w/2, c.Y-h/2, w, h, tags.ResolvBullet)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	speed := cfg.Bullet.HeroSpeed
	if c.Faction == components.FactionEnemy {
		speed = cfg.Bullet.EnemySpeed
	}
	vx, vy := gamemath.Velocity(speed, c.Angle)
	components.Bullet.SetValue(b, components.BulletData{
		Faction: c.Faction,
		Angle:   c.Angle,
		SpeedX:  vx,
		SpeedY:  vy,
	})
	components.Entity.SetValue(b, components.EntityData{Active: true})
	components.View.SetValue(b, components.NewView())

	return b
}
