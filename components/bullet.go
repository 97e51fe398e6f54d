package components

import "github.com/yohamta/donburi"

// Faction decides who a bullet can hit.
type Faction int

const (
	FactionHero Faction = iota
	FactionEnemy
)

type BulletData struct {
	Faction Faction
	Angle   float64 // degrees
	SpeedX  float64
	SpeedY  float64
}

var Bullet = donburi.NewComponentType[BulletData]()
