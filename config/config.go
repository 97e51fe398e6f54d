package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the game.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TickRate  int `yaml:"tickRate"`
	BlockSize int `yaml:"blockSize"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

// HeroConfig contains all hero-related configuration values
type HeroConfig struct {
	Speed     float64 `yaml:"speed"`
	JumpForce float64 `yaml:"jumpForce"`

	// Lives
	StartingLives       int `yaml:"startingLives"`
	RespawnInvulnFrames int `yaml:"respawnInvulnFrames"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`

	// Muzzle offset from the top-left of the collision box, facing right
	MuzzleX float64 `yaml:"muzzleX"`
	MuzzleY float64 `yaml:"muzzleY"`
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	HeroSpeed  float64 `yaml:"heroSpeed"`
	EnemySpeed float64 `yaml:"enemySpeed"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	BackScrollX bool `yaml:"backScrollX"`
	ScrollY     bool `yaml:"scrollY"`

	// Screen position the hero is kept at; unset means screen center
	AnchorX *float64 `yaml:"anchorX"`
	AnchorY *float64 `yaml:"anchorY"`

	// Enemies wake up once they are this close to the view
	ActivationPad float64 `yaml:"activationPad"`
}

// RunnerConfig contains runner enemy configuration
type RunnerConfig struct {
	Speed            float64 `yaml:"speed"`
	JumpForce        float64 `yaml:"jumpForce"`
	JumpBehaviorKoef float64 `yaml:"jumpBehaviorKoef"` // used when the level leaves it unset
	CollisionWidth   float64 `yaml:"collisionWidth"`
	CollisionHeight  float64 `yaml:"collisionHeight"`
	Health           int     `yaml:"health"`
}

// TourelleConfig contains turret and boss configuration
type TourelleConfig struct {
	Size         float64 `yaml:"size"`
	Health       int     `yaml:"health"`
	FireCooldown int     `yaml:"fireCooldown"` // frames
	BossSize     float64 `yaml:"bossSize"`
	BossHealth   int     `yaml:"bossHealth"`
	BossCooldown int     `yaml:"bossCooldown"`
}

// BridgeConfig contains collapsing bridge configuration
type BridgeConfig struct {
	// Horizontal distance from the target's right edge that triggers a collapse
	ActivationDistance float64 `yaml:"activationDistance"`
}

// PowerupConfig contains pickup configuration
type PowerupConfig struct {
	Size float64 `yaml:"size"`

	// Angle in degrees between the shots of a spread fan
	SpreadAngle float64 `yaml:"spreadAngle"`
}

// DeathConfig contains death sequence configuration
type DeathConfig struct {
	FadeSeconds float32 `yaml:"fadeSeconds"`
}

// UIConfig contains HUD and debug drawing configuration
type UIConfig struct {
	HUDFontSize float64 `yaml:"hudFontSize"`

	BackgroundColor color.RGBA            `yaml:"-"`
	HUDTextColor    color.RGBA            `yaml:"-"`
	SurfaceColors   map[string]color.RGBA `yaml:"-"`
	HeroColor       color.RGBA            `yaml:"-"`
	EnemyColor      color.RGBA            `yaml:"-"`
	BulletColor     color.RGBA            `yaml:"-"`
	PowerupColor    color.RGBA            `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitboxes bool   `yaml:"drawHitboxes"`
	Seed         uint64 `yaml:"seed"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Hero HeroConfig
var Bullet BulletConfig
var Camera CameraConfig
var Runner RunnerConfig
var Tourelle TourelleConfig
var Bridge BridgeConfig
var Powerup PowerupConfig
var Death DeathConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Brown     = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	DarkGreen = color.RGBA{R: 30, G: 90, B: 40, A: 255}
	Gray      = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every global to its default. Tests call it to undo
// overrides.
func Reset() {
	C = &Config{
		Width:     1024,
		Height:    768,
		TickRate:  60,
		BlockSize: 128,
	}

	Physics = PhysicsConfig{
		Gravity:      0.2,
		MaxFallSpeed: 12.0,
	}

	Hero = HeroConfig{
		Speed:     3.0,
		JumpForce: 9.0,

		StartingLives:       3,
		RespawnInvulnFrames: 120,

		CollisionWidth:  20,
		CollisionHeight: 90,

		MuzzleX: 20,
		MuzzleY: 30,
	}

	Bullet = BulletConfig{
		HeroSpeed:  10.0,
		EnemySpeed: 7.0,
		Width:      5,
		Height:     5,
	}

	Camera = CameraConfig{
		BackScrollX:   false,
		ScrollY:       false,
		ActivationPad: 64,
	}

	Runner = RunnerConfig{
		Speed:            3.0,
		JumpForce:        6.0,
		JumpBehaviorKoef: 0.4,
		CollisionWidth:   20,
		CollisionHeight:  90,
		Health:           1,
	}

	Tourelle = TourelleConfig{
		Size:         64,
		Health:       5,
		FireCooldown: 120, // 2 seconds at 60fps
		BossSize:     128,
		BossHealth:   50,
		BossCooldown: 45,
	}

	Bridge = BridgeConfig{
		ActivationDistance: 20,
	}

	Powerup = PowerupConfig{
		Size:        40,
		SpreadAngle: 15,
	}

	Death = DeathConfig{
		FadeSeconds: 0.5,
	}

	UI = UIConfig{
		HUDFontSize:     18,
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		HUDTextColor:    White,
		SurfaceColors: map[string]color.RGBA{
			"platform": DarkGreen,
			"box":      Brown,
			"stepBox":  Brown,
			"bridge":   Orange,
			"water":    LightBlue,
			"bossWall": Gray,
		},
		HeroColor:    Blue,
		EnemyColor:   LightRed,
		BulletColor:  Yellow,
		PowerupColor: Red,
	}

	Debug = DebugConfig{
		DrawHitboxes: false,
	}
}
