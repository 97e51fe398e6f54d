package systems

import (
	"testing"

	"github.com/automoto/runngun/components"
	cfg "github.com/automoto/runngun/config"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/automoto/runngun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

const fadeTicks = 40 // a little over the default half second fade

func TestHeroRespawnsAfterDeath(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 300, Y: 310})

	killHero(hero)

	data := components.Hero.Get(hero)
	require.Equal(t, cfg.Hero.StartingLives-1, data.Lives)
	require.True(t, components.Entity.Get(hero).Dead)

	for i := 0; i < fadeTicks; i++ {
		UpdateDeaths(e)
	}

	assert.False(t, components.Entity.Get(hero).Dead, "hero should be alive again")
	assert.False(t, hero.HasComponent(components.Death), "death sequence should be cleared")
	assert.Equal(t, cfg.Hero.RespawnInvulnFrames, data.InvulnFrames)
	view := components.View.Get(hero)
	assert.Equal(t, float32(1), view.Alpha)
	assert.True(t, view.Shown())
	assert.Zero(t, components.Object.Get(hero).Y, "respawn at the top of the view")
}

func TestDeathFadesView(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	runner := activeRunner(e, 300, 300)

	Kill(runner)
	for i := 0; i < 10; i++ {
		UpdateDeaths(e)
	}

	alpha := components.View.Get(runner).Alpha
	assert.Greater(t, alpha, float32(0))
	assert.Less(t, alpha, float32(1))
}

func TestKillTwiceIsNoop(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	runner := activeRunner(e, 300, 300)

	Kill(runner)
	for i := 0; i < 10; i++ {
		UpdateDeaths(e)
	}
	before := components.View.Get(runner).Alpha
	Kill(runner)
	UpdateDeaths(e)

	assert.LessOrEqual(t, components.View.Get(runner).Alpha, before, "second kill restarted the fade")
}

func TestLastLifeEndsGame(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 300, Y: 310})
	components.Hero.Get(hero).Lives = 1

	killHero(hero)
	for i := 0; i < fadeTicks; i++ {
		UpdateDeaths(e)
	}

	require.True(t, getLevel(e).GameOver)
	assert.False(t, components.View.Get(hero).Attached, "hero view should be detached")

	ran := false
	WithGameplayChecks(func(*ecs.ECS) { ran = true })(e)
	assert.False(t, ran, "gameplay systems should stop after game over")
}

func TestInvulnerableHeroSurvivesHits(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 100, Y: 310})
	components.Hero.Get(hero).InvulnFrames = 10
	activeRunner(e, 105, 310)

	UpdateContacts(e)

	assert.False(t, components.Entity.Get(hero).Dead)
}

func TestRunnerContactKillsHero(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 100, Y: 310})
	activeRunner(e, 105, 310)

	UpdateContacts(e)

	assert.True(t, components.Entity.Get(hero).Dead)
}

func TestTourelleContactIsHarmless(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 100, Y: 310})
	tourelle := factory.CreateTourelle(e, factory.TourelleConfig{X: 90, Y: 320})
	components.Entity.Get(tourelle).Active = true

	UpdateContacts(e)

	assert.False(t, components.Entity.Get(hero).Dead)
}

func TestFallingOutOfWorldKillsHero(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 100, Y: 310})
	components.Hero.Get(hero).InvulnFrames = 10
	components.Object.Get(hero).Y = 801

	UpdateContacts(e)

	assert.True(t, components.Entity.Get(hero).Dead, "falling out kills even while invulnerable")
}

func TestBridgeCollapsesWhenTargetApproaches(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 0, Y: 310})
	bridge := factory.CreateBridge(e, factory.BridgeConfig{X: 500, Y: 384, W: 128, H: 24, Target: hero})
	registry := getRegistry(e)

	UpdateBridges(e)
	require.False(t, components.Entity.Get(bridge).Dead, "collapsed with the target far away")

	// Right edge plus activation distance passes the bridge's left edge.
	components.Object.Get(hero).X = 500 - cfg.Hero.CollisionWidth - cfg.Bridge.ActivationDistance + 1
	UpdateBridges(e)

	require.True(t, components.Entity.Get(bridge).Dead)
	assert.NotContains(t, registry.Entries, bridge, "collapsed bridge still registered")

	for i := 0; i < fadeTicks; i++ {
		UpdateDeaths(e)
	}
	assert.False(t, bridge.Valid(), "bridge should be removed after fading")
}

func TestCollapsedBridgeDropsHero(t *testing.T) {
	e := newTestWorld(t, 2000, 800)
	hero := factory.CreateHero(e, factory.HeroConfig{X: 510, Y: 294})
	factory.CreateBridge(e, factory.BridgeConfig{X: 500, Y: 384, W: 128, H: 24, Target: hero})
	floor := platform(e, leveldata.PlatformWater, 0, 700, 2000, 100)

	runTicks(e, 120, &fakeInput{}, append(physicsSystems, UpdateBridges)...)

	physics := components.Physics.Get(hero)
	assert.Same(t, floor, physics.Ground, "hero should fall through to the water")
	assert.True(t, InWater(physics))
}
