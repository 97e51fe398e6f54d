package assets

import (
	"errors"
	"testing"

	"github.com/automoto/runngun/shared/leveldata"
)

func TestDefaultLevelLoads(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(DefaultLevel)
	if err != nil {
		t.Fatalf("LoadLevel(%q): %v", DefaultLevel, err)
	}
	if level.Width != 53*128 {
		t.Fatalf("width = %v, want %v", level.Width, 53*128)
	}

	counts := map[leveldata.PlatformKind]int{}
	for _, p := range level.Platforms {
		counts[p.Kind]++
	}
	want := map[leveldata.PlatformKind]int{
		leveldata.PlatformPlain:    56,
		leveldata.PlatformStep:     8,
		leveldata.PlatformBox:      15,
		leveldata.PlatformWater:    27,
		leveldata.PlatformBossWall: 1,
		leveldata.PlatformBridge:   4,
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Fatalf("%s count = %d, want %d", kind, counts[kind], n)
		}
	}

	// Bridges are created last so they collide after the ground they span.
	if last := level.Platforms[len(level.Platforms)-1]; last.Kind != leveldata.PlatformBridge {
		t.Fatalf("last platform kind = %s", last.Kind)
	}
	if len(level.Enemies) != 20 {
		t.Fatalf("enemy count = %d, want 20", len(level.Enemies))
	}
	if len(level.Powerups) != 3 || level.Powerups[1].X != 15*128 || level.Powerups[1].Y != 150 {
		t.Fatalf("powerups = %+v", level.Powerups)
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	_, err := NewLevelLoader().LoadLevel("missing")
	if !errors.Is(err, leveldata.ErrNoLevels) {
		t.Fatalf("error = %v, want ErrNoLevels", err)
	}
}

func TestMustLoadLevels(t *testing.T) {
	levels, names := NewLevelLoader().MustLoadLevels()
	if len(levels) == 0 || len(levels) != len(names) {
		t.Fatalf("levels=%d names=%v", len(levels), names)
	}
}

func TestResolve(t *testing.T) {
	loader := NewLevelLoader()

	level, err := loader.Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\"): %v", err)
	}
	if level.Name != DefaultLevel {
		t.Fatalf("name = %q, want %q", level.Name, DefaultLevel)
	}

	if _, err := loader.Resolve("levels/jungle.yaml"); err != nil {
		t.Fatalf("Resolve(file): %v", err)
	}
	if _, err := loader.Resolve("no-such-dir/nothing.yaml"); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
