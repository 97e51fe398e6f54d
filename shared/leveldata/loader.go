package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from Tiled maps.
const (
	groupPlatforms = "Platforms"
	groupEnemies   = "Enemies"
	groupHeroSpawn = "HeroSpawn"
	groupPowerups  = "Powerups"
)

// LoadTMX parses a Tiled map. Platforms, enemies and powerups are objects
// with a "kind" property; the first HeroSpawn object places the hero. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, PlatformSpec{
					Kind: PlatformKind(o.Properties.GetString("kind")),
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
				})
			}
		case groupEnemies:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpec{
					Kind:             EnemyKind(o.Properties.GetString("kind")),
					X:                o.X,
					Y:                o.Y,
					JumpBehaviorKoef: o.Properties.GetFloat("jumpBehaviorKoef"),
				})
			}
		case groupPowerups:
			for _, o := range og.Objects {
				level.Powerups = append(level.Powerups, PowerupSpec{
					Kind: PowerupKind(o.Properties.GetString("kind")),
					X:    o.X,
					Y:    o.Y,
				})
			}
		case groupHeroSpawn:
			if len(og.Objects) > 0 {
				level.Hero = Spawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		}
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return level, nil
}

// Load picks the decoder by file extension.
func Load(fsys fs.FS, p string) (*Level, error) {
	switch path.Ext(p) {
	case ".tmx":
		return LoadTMX(fsys, p)
	case ".yaml", ".yml":
		return LoadYAML(fsys, p)
	}
	return nil, fmt.Errorf("load level %s: unsupported format", p)
}

// LoadAllLevels discovers .yaml and .tmx files in levelsDir within fsys and
// returns them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	var matches []string
	for _, ext := range []string{"*.yaml", "*.yml", "*.tmx"} {
		pattern := levelsDir + "/" + ext
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoLevels, levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if level.Name == "" {
			level.Name = stem
		}
		levels[stem] = level
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
