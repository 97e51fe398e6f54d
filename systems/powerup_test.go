package systems

import (
	"testing"

	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestHeroCollectsPowerupOnTouch(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 100, Y: 310})
	powerup := factory.CreatePowerup(e, factory.PowerupConfig{X: 105, Y: 320, Kind: leveldata.PowerupSpread})

	UpdateContacts(e)

	assert.Equal(t, leveldata.PowerupSpread, components.Hero.Get(hero).Weapon)
	require.True(t, components.Entity.Get(powerup).Dead, "collected powerup should fade out")
	assert.False(t, components.Entity.Get(hero).Dead, "a powerup is not an enemy")

	for i := 0; i < fadeTicks; i++ {
		UpdateDeaths(e)
	}
	assert.False(t, powerup.Valid(), "powerup should be removed after fading")
}

func TestPowerupOutOfReachStays(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 100, Y: 310})
	// Touches the hero's top edge only.
	powerup := factory.CreatePowerup(e, factory.PowerupConfig{X: 100, Y: 310 - cfg.Powerup.Size, Kind: leveldata.PowerupSpread})

	UpdateContacts(e)

	assert.Empty(t, components.Hero.Get(hero).Weapon)
	assert.False(t, components.Entity.Get(powerup).Dead)
}

func TestDeadHeroCannotCollect(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 100, Y: 310})
	powerup := factory.CreatePowerup(e, factory.PowerupConfig{X: 105, Y: 320, Kind: leveldata.PowerupSpread})
	killHero(hero)

	UpdateContacts(e)

	assert.Empty(t, components.Hero.Get(hero).Weapon)
	assert.False(t, components.Entity.Get(powerup).Dead)
}

func TestSpreadWeaponFiresFan(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 100, Y: 310})
	components.Hero.Get(hero).Weapon = leveldata.PowerupSpread

	runTicks(e, 1, holdAlways(cfg.ActionShoot), UpdateHero, UpdateShooting)

	var angles []float64
	components.Bullet.Each(e.World, func(b *donburi.Entry) {
		angles = append(angles, components.Bullet.Get(b).Angle)
	})
	spread := cfg.Powerup.SpreadAngle
	assert.ElementsMatch(t, []float64{-spread, 0, spread}, angles)
}

func TestRespawnDropsPowerup(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 300, Y: 310})
	components.Hero.Get(hero).Weapon = leveldata.PowerupSpread

	killHero(hero)
	for i := 0; i < fadeTicks; i++ {
		UpdateDeaths(e)
	}

	require.False(t, components.Entity.Get(hero).Dead)
	assert.Empty(t, components.Hero.Get(hero).Weapon)
}
