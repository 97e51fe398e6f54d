package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/fonts"
	"github.com/automoto/runngun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints the
// hero's motion state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	camera := getCamera(ecs)
	if camera == nil {
		return // No camera yet
	}
	view := camera.View()

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < view.X || obj.X > view.Right() || obj.Y+obj.H < view.Y || obj.Y > view.Bottom() {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvHero) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvBullet) {
				c = color.RGBA{255, 255, 0, 255} // Yellow
			} else if obj.HasTags(tags.ResolvPowerup) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			}

			vector.StrokeRect(screen,
				float32(obj.X+camera.OffsetX), float32(obj.Y+camera.OffsetY),
				float32(obj.W), float32(obj.H),
				1, c, false)
		}
	}

	heroEntry, ok := tags.Hero.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.HUD) {
		return
	}
	physics := components.Physics.Get(heroEntry)
	obj := components.Object.Get(heroEntry)
	level := getLevel(ecs)
	tick := 0
	if level != nil {
		tick = level.Tick
	}
	line := fmt.Sprintf("tick %d  x %.1f y %.1f  vy %.2f  motion %d  view %s",
		tick, obj.X, obj.Y, physics.SpeedY, physics.Motion, components.View.Get(heroEntry).State)
	text.Draw(screen, line, fonts.HUD.Get(), hudMargin, 60, cfg.UI.HUDTextColor)
}
