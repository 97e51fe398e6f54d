package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/runngun/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the level started when none is named.
const DefaultLevel = "jungle"

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels loads every embedded level, sorted by name.
func (l *LevelLoader) MustLoadLevels() ([]*leveldata.Level, []string) {
	byName, names, err := leveldata.LoadAllLevels(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to load embedded levels: %v", err))
	}
	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels, names
}

// LoadLevel returns an embedded level by name.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.Level, error) {
	for _, ext := range []string{".yaml", ".tmx"} {
		p := "levels/" + name + ext
		if _, err := fs.Stat(assetFS, p); err == nil {
			return leveldata.Load(assetFS, p)
		}
	}
	return nil, fmt.Errorf("level %q: %w", name, leveldata.ErrNoLevels)
}

// LoadLevelFile reads a level from disk, resolving relative paths against
// the working directory.
func (l *LevelLoader) LoadLevelFile(path string) (*leveldata.Level, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return leveldata.Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

// Resolve loads nameOrPath as a file when it carries an extension, and as an
// embedded level name otherwise. An empty name selects DefaultLevel.
func (l *LevelLoader) Resolve(nameOrPath string) (*leveldata.Level, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultLevel
	}
	if filepath.Ext(nameOrPath) != "" {
		return l.LoadLevelFile(nameOrPath)
	}
	return l.LoadLevel(nameOrPath)
}
