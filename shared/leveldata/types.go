// Package leveldata describes level layouts and loads them from YAML block
// maps or Tiled TMX files. It has no dependencies on ebitengine, donburi, or
// resolv, pure data only.
package leveldata

import "errors"

var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrUnknownKind     = errors.New("unknown kind")
	ErrNoLevels        = errors.New("no levels found")
)

// PlatformKind is the level-file name of a surface type.
type PlatformKind string

const (
	PlatformPlain    PlatformKind = "platform"
	PlatformBox      PlatformKind = "box"
	PlatformStep     PlatformKind = "stepBox"
	PlatformBridge   PlatformKind = "bridge"
	PlatformWater    PlatformKind = "water"
	PlatformBossWall PlatformKind = "bossWall"
)

// EnemyKind is the level-file name of an enemy type.
type EnemyKind string

const (
	EnemyRunner   EnemyKind = "runner"
	EnemyTourelle EnemyKind = "tourelle"
	EnemyBoss     EnemyKind = "boss"
)

// PowerupKind is the level-file name of a pickup.
type PowerupKind string

const (
	// PowerupSpread turns every hero shot into a three-way fan.
	PowerupSpread PowerupKind = "spread"
)

// Level is a fully expanded layout in world coordinates.
type Level struct {
	Name          string
	Width, Height float64
	Hero          Spawn

	// Platforms are kept in creation order; collision runs in this order.
	Platforms []PlatformSpec
	Enemies   []EnemySpec
	Powerups  []PowerupSpec
}

type Spawn struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformSpec struct {
	Kind       PlatformKind
	X, Y, W, H float64
}

type PowerupSpec struct {
	Kind PowerupKind
	X, Y float64
}

type EnemySpec struct {
	Kind             EnemyKind
	X, Y             float64
	JumpBehaviorKoef float64
}
