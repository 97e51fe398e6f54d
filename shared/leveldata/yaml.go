package leveldata

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// DefaultSurfaceHeight is used when a block group does not set a height.
const DefaultSurfaceHeight = 24.0

// blockFile is the on-disk YAML layout. Positions are given as block columns
// on a fixed grid, the way levels are sketched on paper.
type blockFile struct {
	Name      string          `yaml:"name"`
	BlockSize float64         `yaml:"blockSize"`
	Columns   int             `yaml:"columns"`
	Height    float64         `yaml:"height"`
	Hero      Spawn           `yaml:"hero"`
	Platforms []platformGroup `yaml:"platforms"`
	Enemies   []enemyGroup    `yaml:"enemies"`
	Powerups  []powerupGroup  `yaml:"powerups"`
}

type platformGroup struct {
	Kind    PlatformKind `yaml:"kind"`
	Y       float64      `yaml:"y"`
	Height  float64      `yaml:"height"`
	Columns []int        `yaml:"columns"`
}

type enemyGroup struct {
	Kind             EnemyKind `yaml:"kind"`
	Y                float64   `yaml:"y"`
	OffsetX          float64   `yaml:"offsetX"`
	Columns          []int     `yaml:"columns"`
	JumpBehaviorKoef float64   `yaml:"jumpBehaviorKoef"`
}

type powerupGroup struct {
	Kind    PowerupKind `yaml:"kind"`
	Y       float64     `yaml:"y"`
	OffsetX float64     `yaml:"offsetX"`
	Columns []int       `yaml:"columns"`
}

// ParseYAML expands a block-map level.
func ParseYAML(data []byte) (*Level, error) {
	var f blockFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if f.BlockSize <= 0 || f.Columns <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: level %q needs positive blockSize, columns and height", ErrInvalidGeometry, f.Name)
	}

	level := &Level{
		Name:   f.Name,
		Width:  f.BlockSize * float64(f.Columns),
		Height: f.Height,
		Hero:   f.Hero,
	}

	for _, g := range f.Platforms {
		for _, col := range g.Columns {
			h := g.Height
			if h == 0 {
				h = defaultHeight(g.Kind, g.Y, f.Height)
			}
			level.Platforms = append(level.Platforms, PlatformSpec{
				Kind: g.Kind,
				X:    f.BlockSize * float64(col),
				Y:    g.Y,
				W:    f.BlockSize,
				H:    h,
			})
		}
	}

	for _, g := range f.Enemies {
		for _, col := range g.Columns {
			level.Enemies = append(level.Enemies, EnemySpec{
				Kind:             g.Kind,
				X:                f.BlockSize*float64(col) + g.OffsetX,
				Y:                g.Y,
				JumpBehaviorKoef: g.JumpBehaviorKoef,
			})
		}
	}

	for _, g := range f.Powerups {
		for _, col := range g.Columns {
			level.Powerups = append(level.Powerups, PowerupSpec{
				Kind: g.Kind,
				X:    f.BlockSize*float64(col) + g.OffsetX,
				Y:    g.Y,
			})
		}
	}

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// LoadYAML reads and expands a block-map level from fsys.
func LoadYAML(fsys fs.FS, path string) (*Level, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return level, nil
}

// Solid surfaces reach down to the bottom of the world so they block from the
// side; thin ones are one surface tall.
func defaultHeight(kind PlatformKind, y, worldHeight float64) float64 {
	switch kind {
	case PlatformBox, PlatformStep, PlatformBossWall:
		if worldHeight-y > DefaultSurfaceHeight {
			return worldHeight - y
		}
	}
	return DefaultSurfaceHeight
}
