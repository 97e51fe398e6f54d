package systems

import (
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/tags"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Kill starts e's death sequence: the hit box collapses and the view fades
// out. Killing an entity that is already dead does nothing.
func Kill(e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if entity.Dead {
		return
	}
	entity.Kill()

	fade := gween.New(1, 0, cfg.Death.FadeSeconds, ease.Linear)
	if e.HasComponent(components.Death) {
		components.Death.Get(e).Fade = fade
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{Fade: fade})
}

// UpdateDeaths advances death fades. Finished entities are removed, except
// the hero, who respawns while lives remain.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TickRate)

	var finished []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		alpha, done := death.Fade.Update(dt)
		if e.HasComponent(components.View) {
			components.View.Get(e).Alpha = alpha
		}
		if done {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		if e.HasComponent(tags.Hero) {
			finishHeroDeath(ecs, e)
			continue
		}
		removeEntity(ecs, e)
	}
}

func finishHeroDeath(ecs *ecs.ECS, e *donburi.Entry) {
	hero := components.Hero.Get(e)
	level := getLevel(ecs)

	if hero.Lives <= 0 {
		components.View.Get(e).Detach()
		if level != nil {
			level.GameOver = true
		}
		log.Info("game over")
		return
	}

	donburi.Remove[components.DeathData](e, components.Death)
	respawnHero(ecs, e)
}

// respawnHero drops the hero in from the top of the current view.
func respawnHero(ecs *ecs.ECS, e *donburi.Entry) {
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	hero := components.Hero.Get(e)

	x := obj.X
	y := 0.0
	if camera := getCamera(ecs); camera != nil {
		view := camera.View()
		x = view.X + view.Width/4
		y = view.Y
	}
	obj.X, obj.Y = x, y
	obj.Update()

	*physics = components.PhysicsData{
		Gravity:      physics.Gravity,
		MaxFallSpeed: physics.MaxFallSpeed,
		Motion:       components.MotionFlyDown,
		Prev:         gamemath.Point{X: x, Y: y},
	}
	hero.InvulnFrames = cfg.Hero.RespawnInvulnFrames
	hero.FacingX = cfg.DirectionRight
	hero.Weapon = ""

	components.Entity.Get(e).Revive()
	view := components.View.Get(e)
	view.Alpha = 1
	view.Visible = true

	log.Debug("hero respawned", "lives", hero.Lives, "x", x)
}

// hitHero kills the hero unless it is still invulnerable.
func hitHero(e *donburi.Entry) {
	if components.Hero.Get(e).InvulnFrames > 0 {
		return
	}
	killHero(e)
}

// killHero takes a life and starts the hero's death sequence. A hero that
// is already dying is left alone.
func killHero(e *donburi.Entry) {
	if !components.Entity.Get(e).Alive() {
		return
	}
	hero := components.Hero.Get(e)
	hero.Lives--
	Kill(e)
	log.Debug("hero killed", "lives", hero.Lives)
}

// removeEntity detaches e's view and drops it from the world, the collision
// space and the platform registry.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.View) {
		components.View.Get(e).Detach()
	}
	if e.HasComponent(components.Platform) {
		if registry := getRegistry(ecs); registry != nil {
			registry.Remove(e)
		}
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}
	ecs.World.Remove(e.Entity())
}
