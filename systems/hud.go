package systems

import (
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

const (
	hudMargin     = 10
	livesIconSize = 12
	livesSpacing  = 6
)

// DrawHUD renders the lives counter and the pause and game over overlays.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(ecs)
	if heroEntry, ok := tags.Hero.First(ecs.World); ok {
		hero := components.Hero.Get(heroEntry)
		drawLives(hero.Lives, hero.MaxLives, screen)
	}
	if level == nil || !fonts.Loaded(fonts.HUD) {
		return
	}

	hudFont := fonts.HUD.Get()
	text.Draw(screen, level.CurrentLevel.Name, hudFont, hudMargin, screen.Bounds().Dy()-hudMargin, cfg.UI.HUDTextColor)

	switch {
	case level.GameOver:
		drawBanner(screen, "GAME OVER", "Press Enter to restart")
	case level.Paused:
		drawBanner(screen, "PAUSED", "Press Esc to resume")
	}
}

// drawLives shows remaining lives as filled icons and lost ones as outlines.
func drawLives(lives, maxLives int, screen *ebiten.Image) {
	for i := 0; i < max(lives, maxLives); i++ {
		x := float32(hudMargin + i*(livesIconSize+livesSpacing))
		if i < lives {
			vector.DrawFilledRect(screen, x, hudMargin, livesIconSize, livesIconSize*2, cfg.UI.HeroColor, false)
			continue
		}
		vector.StrokeRect(screen, x, hudMargin, livesIconSize, livesIconSize*2, 1, cfg.UI.HeroColor, false)
	}
}

func drawBanner(screen *ebiten.Image, title, hint string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 160}, false)

	titleFont := fonts.Title.Get()
	titleWidth := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont, (w-titleWidth)/2, h/2, cfg.UI.HUDTextColor)

	hintFont := fonts.HUD.Get()
	hintWidth := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, (w-hintWidth)/2, h/2+40, cfg.UI.HUDTextColor)
}
