package systems

import (
	"github.com/automoto/runngun/components"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts hands touched powerups to the hero, then kills the hero
// when it touches a live runner or falls out of the world.
func UpdateContacts(ecs *ecs.ECS) {
	heroEntry, ok := tags.Hero.First(ecs.World)
	if !ok || !components.Entity.Get(heroEntry).Alive() {
		return
	}
	obj := components.Object.Get(heroEntry)

	collectPowerups(heroEntry)

	if level := getLevel(ecs); level != nil && obj.Y > level.CurrentLevel.Height {
		killHero(heroEntry)
		return
	}

	box := components.HitBox(heroEntry)
	for _, enemy := range touching(obj, tags.ResolvEnemy) {
		if !enemy.HasComponent(tags.Runner) || !components.Entity.Get(enemy).Alive() {
			continue
		}
		if gamemath.Overlaps(box, components.HitBox(enemy)) {
			hitHero(heroEntry)
			return
		}
	}
}

// collectPowerups arms the hero with every live powerup its hit box overlaps.
// A collected powerup fades out like a dead entity.
func collectPowerups(heroEntry *donburi.Entry) {
	hero := components.Hero.Get(heroEntry)
	box := components.HitBox(heroEntry)
	for _, p := range touching(components.Object.Get(heroEntry), tags.ResolvPowerup) {
		if !p.HasComponent(components.Powerup) || !components.Entity.Get(p).Alive() {
			continue
		}
		if !gamemath.Overlaps(box, components.HitBox(p)) {
			continue
		}
		hero.Weapon = components.Powerup.Get(p).Kind
		Kill(p)
		log.Debug("powerup collected", "kind", hero.Weapon)
	}
}

// touching returns the entries of objects with tag that share a space cell
// with obj.
func touching(obj *components.ObjectData, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var entries []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() {
			entries = append(entries, e)
		}
	}
	return entries
}
