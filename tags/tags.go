package tags

import "github.com/yohamta/donburi"

var (
	Hero     = donburi.NewTag().SetName("Hero")
	Platform = donburi.NewTag().SetName("Platform")
	Bridge   = donburi.NewTag().SetName("Bridge")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Runner   = donburi.NewTag().SetName("Runner")
	Tourelle = donburi.NewTag().SetName("Tourelle")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Powerup  = donburi.NewTag().SetName("Powerup")
)

// Resolv tags for broad-phase queries
const (
	ResolvHero     = "Hero"
	ResolvEnemy    = "Enemy"
	ResolvPlatform = "platform"
	ResolvSolid    = "solid"
	ResolvBullet   = "Bullet"
	ResolvPowerup  = "Powerup"
)
