package systems

import (
	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/systems/factory"
	"github.com/automoto/runngun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHero applies input to the hero and integrates its own motion.
// Collisions are resolved later by UpdatePlatformCollisions.
func UpdateHero(ecs *ecs.ECS) {
	heroEntry, ok := tags.Hero.First(ecs.World)
	if !ok {
		return
	}
	hero := components.Hero.Get(heroEntry)
	entity := components.Entity.Get(heroEntry)
	physics := components.Physics.Get(heroEntry)
	obj := components.Object.Get(heroEntry)

	physics.Prev = obj.Position()
	if hero.InvulnFrames > 0 {
		hero.InvulnFrames--
	}
	if !entity.Alive() {
		physics.SpeedX = 0
		return
	}

	input := getOrCreateInput(ecs)
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed
	hero.AimUp = GetAction(input, cfg.ActionMoveUp).Pressed
	hero.AimDown = GetAction(input, cfg.ActionMoveDown).Pressed

	move := 0.0
	if left {
		move -= 1
	}
	if right {
		move += 1
	}
	hero.Moving = move != 0
	if hero.Moving {
		hero.FacingX = move
	}

	if GetAction(input, cfg.ActionJump).JustPressed {
		if hero.AimDown && !left && !right {
			throwDown(physics)
		} else {
			jump(physics, cfg.Hero.JumpForce)
		}
	}

	physics.SpeedX = move * cfg.Hero.Speed
	obj.X += physics.SpeedX
	keepInView(ecs, obj)

	fall(physics, obj)

	hero.Aim = gamemath.CalculateAimAngle(hero.FacingX, hero.AimUp, hero.AimDown, hero.Moving,
		physics.Motion != components.MotionStay)
}

// keepInView stops the hero at the left edge of the screen and the right
// edge of the world.
func keepInView(ecs *ecs.ECS, obj *components.ObjectData) {
	if camera := getCamera(ecs); camera != nil {
		if view := camera.View(); obj.X < view.X {
			obj.X = view.X
		}
	}
	if level := getLevel(ecs); level != nil && level.CurrentLevel != nil {
		if maxX := level.CurrentLevel.Width - obj.W; obj.X > maxX {
			obj.X = maxX
		}
	}
}

// UpdateShooting fires a hero bullet on a fresh press of shoot.
func UpdateShooting(ecs *ecs.ECS) {
	heroEntry, ok := tags.Hero.First(ecs.World)
	if !ok {
		return
	}
	if !components.Entity.Get(heroEntry).Alive() {
		return
	}
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionShoot).JustPressed {
		return
	}

	hero := components.Hero.Get(heroEntry)
	muzzle := heroMuzzle(components.Object.Get(heroEntry), hero)
	for _, angle := range shotAngles(hero) {
		factory.CreateBullet(ecs, factory.BulletConfig{
			X:       muzzle.X,
			Y:       muzzle.Y,
			Angle:   angle,
			Faction: components.FactionHero,
		})
	}
}

// shotAngles returns the direction of every bullet in one trigger pull.
func shotAngles(hero *components.HeroData) []float64 {
	if hero.Weapon == leveldata.PowerupSpread {
		spread := cfg.Powerup.SpreadAngle
		return []float64{hero.Aim - spread, hero.Aim, hero.Aim + spread}
	}
	return []float64{hero.Aim}
}

// heroMuzzle returns where hero bullets appear, mirrored with facing.
func heroMuzzle(obj *components.ObjectData, hero *components.HeroData) gamemath.Point {
	x := obj.X + cfg.Hero.MuzzleX
	if hero.FacingX < 0 {
		x = obj.X + obj.W - cfg.Hero.MuzzleX
	}
	return gamemath.Point{X: x, Y: obj.Y + cfg.Hero.MuzzleY}
}
