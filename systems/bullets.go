package systems

import (
	"github.com/automoto/runngun/components"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves every bullet, then removes the ones that left the
// camera view or hit something. Removals are applied after the pass, so
// the rest of the collection is still visited this tick.
func UpdateBullets(ecs *ecs.ECS) {
	camera := getCamera(ecs)

	var spent, hit []*donburi.Entry
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		obj := components.Object.Get(e)

		obj.X += bullet.SpeedX
		obj.Y += bullet.SpeedY
		obj.Update()

		if camera != nil && camera.Outside(obj.Position()) {
			spent = append(spent, e)
			return
		}
		if target := bulletTarget(obj, bullet.Faction); target != nil {
			spent = append(spent, e)
			hit = append(hit, target)
		}
	})

	for _, target := range hit {
		damage(target)
	}
	for _, e := range spent {
		removeEntity(ecs, e)
	}
}

// bulletTarget returns the first live entity of the opposing faction whose
// hit box overlaps the bullet.
func bulletTarget(obj *components.ObjectData, faction components.Faction) *donburi.Entry {
	tag := tags.ResolvEnemy
	if faction == components.FactionEnemy {
		tag = tags.ResolvHero
	}

	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	box := obj.CollisionBox()
	for _, o := range check.ObjectsByTags(tag) {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() || !components.Entity.Get(target).Alive() {
			continue
		}
		if gamemath.Overlaps(box, components.HitBox(target)) {
			return target
		}
	}
	return nil
}

func damage(target *donburi.Entry) {
	if target.HasComponent(tags.Hero) {
		hitHero(target)
		return
	}
	health := components.Health.Get(target)
	health.Current--
	if health.Current <= 0 {
		Kill(target)
	}
}
