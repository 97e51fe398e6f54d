package systems

import (
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/systems/factory"
	"github.com/automoto/runngun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRunners walks active runners toward the hero's side of the level.
// A runner that loses its footing jumps with probability JumpBehaviorKoef,
// otherwise it falls. Runners that leave the world are removed.
func UpdateRunners(ecs *ecs.ECS) {
	level := getLevel(ecs)
	camera := getCamera(ecs)
	if level == nil || camera == nil {
		return
	}

	var gone []*donburi.Entry
	tags.Runner.Each(ecs.World, func(e *donburi.Entry) {
		entity := components.Entity.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.Prev = obj.Position()
		if !activate(entity, camera, obj) || entity.Dead {
			physics.SpeedX = 0
			return
		}

		runner := components.Runner.Get(e)
		enemy := components.Enemy.Get(e)

		physics.SpeedX = enemy.FacingX * runner.Speed
		obj.X += physics.SpeedX

		if physics.SpeedY > 0 && physics.Motion == components.MotionStay &&
			level.Rand.Float64() < runner.JumpBehaviorKoef {
			jump(physics, runner.JumpForce)
		}
		fall(physics, obj)

		if obj.X+obj.W < 0 || obj.Y > level.CurrentLevel.Height {
			gone = append(gone, e)
		}
	})

	for _, e := range gone {
		removeEntity(ecs, e)
	}
}

// UpdateTourelles turns turrets toward the hero and fires on cooldown.
// Turrets only shoot while they are on screen.
func UpdateTourelles(ecs *ecs.ECS) {
	camera := getCamera(ecs)
	heroEntry, ok := tags.Hero.First(ecs.World)
	if camera == nil || !ok {
		return
	}
	heroAlive := components.Entity.Get(heroEntry).Alive()
	target := components.Object.Get(heroEntry).Center()

	var shots []factory.BulletConfig
	tags.Tourelle.Each(ecs.World, func(e *donburi.Entry) {
		entity := components.Entity.Get(e)
		obj := components.Object.Get(e)
		if !activate(entity, camera, obj) || entity.Dead || !heroAlive {
			return
		}

		tourelle := components.Tourelle.Get(e)
		center := obj.Center()
		tourelle.Aim = gamemath.AngleTo(center, target)

		tourelle.Timer++
		if tourelle.Timer < tourelle.Cooldown {
			return
		}
		tourelle.Timer = 0
		if camera.Outside(center) {
			return
		}
		shots = append(shots, factory.BulletConfig{
			X:       center.X,
			Y:       center.Y,
			Angle:   tourelle.Aim,
			Faction: components.FactionEnemy,
		})
	})

	for _, shot := range shots {
		factory.CreateBullet(ecs, shot)
	}
}

// activate wakes an enemy once the camera comes within ActivationPad of it.
// It returns whether the enemy is active.
func activate(entity *components.EntityData, camera *components.CameraData, obj *components.ObjectData) bool {
	if entity.Active {
		return true
	}
	view := camera.View()
	pad := cfg.Camera.ActivationPad
	if obj.X <= view.Right()+pad && obj.X+obj.W >= view.X-pad {
		entity.Active = true
	}
	return entity.Active
}
