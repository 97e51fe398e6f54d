package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the tunable globals. Sections missing from the file keep
// their current values because they are decoded into copies of the globals.
type overrides struct {
	Screen   *Config         `yaml:"screen"`
	Physics  *PhysicsConfig  `yaml:"physics"`
	Hero     *HeroConfig     `yaml:"hero"`
	Bullet   *BulletConfig   `yaml:"bullet"`
	Camera   *CameraConfig   `yaml:"camera"`
	Runner   *RunnerConfig   `yaml:"runner"`
	Tourelle *TourelleConfig `yaml:"tourelle"`
	Bridge   *BridgeConfig   `yaml:"bridge"`
	Powerup  *PowerupConfig  `yaml:"powerup"`
	Death    *DeathConfig    `yaml:"death"`
	UI       *UIConfig       `yaml:"ui"`
	Debug    *DebugConfig    `yaml:"debug"`
}

// LoadOverrides applies a YAML file on top of the defaults. An empty path is
// a no-op.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes YAML onto the globals.
func ApplyOverrides(data []byte) error {
	screen := *C
	o := overrides{
		Screen:   &screen,
		Physics:  &Physics,
		Hero:     &Hero,
		Bullet:   &Bullet,
		Camera:   &Camera,
		Runner:   &Runner,
		Tourelle: &Tourelle,
		Bridge:   &Bridge,
		Powerup:  &Powerup,
		Death:    &Death,
		UI:       &UI,
		Debug:    &Debug,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return err
	}
	C = &screen
	return nil
}
