package systems

import (
	"image/color"

	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// invulnBlinkFrames is the blink period of an invulnerable hero.
const invulnBlinkFrames = 8

// DrawWorld renders every shown view as a flat rectangle in camera space,
// skipping anything outside the screen.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	camera := getCamera(ecs)
	if camera == nil {
		return // No camera yet
	}
	view := camera.View()

	draw := func(e *donburi.Entry, clr color.RGBA) {
		v := components.View.Get(e)
		if !v.Shown() {
			return
		}
		o := components.Object.Get(e)

		// Viewport Culling
		if o.X+o.W < view.X || o.X > view.Right() || o.Y+o.H < view.Y || o.Y > view.Bottom() {
			return
		}

		vector.DrawFilledRect(screen,
			float32(o.X+camera.OffsetX), float32(o.Y+camera.OffsetY),
			float32(o.W), float32(o.H),
			fade(clr, v.Alpha), false)
	}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		surface := components.Platform.Get(e).Surface
		draw(e, cfg.UI.SurfaceColors[string(surface)])
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		draw(e, cfg.UI.EnemyColor)
	})
	tags.Powerup.Each(ecs.World, func(e *donburi.Entry) {
		draw(e, cfg.UI.PowerupColor)
	})
	if heroEntry, ok := tags.Hero.First(ecs.World); ok {
		hero := components.Hero.Get(heroEntry)
		if hero.InvulnFrames == 0 || (hero.InvulnFrames/invulnBlinkFrames)%2 == 0 {
			draw(heroEntry, cfg.UI.HeroColor)
		}
	}
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		draw(e, cfg.UI.BulletColor)
	})
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
