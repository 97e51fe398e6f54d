package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testYAML = `
name: test
blockSize: 100
columns: 10
height: 800
hero: {x: 50, y: 100}
platforms:
  - kind: platform
    y: 400
    columns: [1, 2]
  - kind: box
    y: 700
    columns: [3]
  - kind: stepBox
    y: 790
    columns: [4]
  - kind: bridge
    y: 400
    height: 30
    columns: [5]
enemies:
  - kind: runner
    y: 290
    offsetX: 50
    columns: [6]
    jumpBehaviorKoef: 1
  - kind: tourelle
    y: 500
    columns: [7]
powerups:
  - kind: spread
    y: 150
    columns: [2, 8]
`

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="8" height="6" tilewidth="128" tileheight="128" infinite="0" nextlayerid="5" nextobjectid="6">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="128" y="384" width="128" height="24">
   <properties>
    <property name="kind" value="platform"/>
   </properties>
  </object>
  <object id="2" x="256" y="600" width="128" height="168">
   <properties>
    <property name="kind" value="box"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Enemies">
  <object id="3" x="640" y="290" width="20" height="90">
   <properties>
    <property name="kind" value="runner"/>
    <property name="jumpBehaviorKoef" type="float" value="0.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="HeroSpawn">
  <object id="4" x="64" y="100"/>
 </objectgroup>
 <objectgroup id="4" name="Powerups">
  <object id="5" x="512" y="150">
   <properties>
    <property name="kind" value="spread"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestParseYAML(t *testing.T) {
	level, err := ParseYAML([]byte(testYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	if level.Width != 1000 || level.Height != 800 {
		t.Fatalf("world is %vx%v, want 1000x800", level.Width, level.Height)
	}
	if level.Hero != (Spawn{X: 50, Y: 100}) {
		t.Fatalf("hero spawn %+v", level.Hero)
	}

	want := []PlatformSpec{
		{Kind: PlatformPlain, X: 100, Y: 400, W: 100, H: DefaultSurfaceHeight},
		{Kind: PlatformPlain, X: 200, Y: 400, W: 100, H: DefaultSurfaceHeight},
		{Kind: PlatformBox, X: 300, Y: 700, W: 100, H: 100},
		{Kind: PlatformStep, X: 400, Y: 790, W: 100, H: DefaultSurfaceHeight},
		{Kind: PlatformBridge, X: 500, Y: 400, W: 100, H: 30},
	}
	if len(level.Platforms) != len(want) {
		t.Fatalf("got %d platforms, want %d", len(level.Platforms), len(want))
	}
	for i, p := range want {
		if level.Platforms[i] != p {
			t.Fatalf("platform %d = %+v, want %+v", i, level.Platforms[i], p)
		}
	}

	if len(level.Enemies) != 2 {
		t.Fatalf("got %d enemies, want 2", len(level.Enemies))
	}
	runner := level.Enemies[0]
	if runner.Kind != EnemyRunner || runner.X != 650 || runner.JumpBehaviorKoef != 1 {
		t.Fatalf("runner = %+v", runner)
	}

	wantPowerups := []PowerupSpec{
		{Kind: PowerupSpread, X: 200, Y: 150},
		{Kind: PowerupSpread, X: 800, Y: 150},
	}
	if len(level.Powerups) != len(wantPowerups) {
		t.Fatalf("got %d powerups, want %d", len(level.Powerups), len(wantPowerups))
	}
	for i, p := range wantPowerups {
		if level.Powerups[i] != p {
			t.Fatalf("powerup %d = %+v, want %+v", i, level.Powerups[i], p)
		}
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no block size", "name: x\ncolumns: 2\nheight: 10\n", ErrInvalidGeometry},
		{"negative height", "blockSize: 10\ncolumns: 2\nheight: 100\nplatforms:\n  - {kind: box, y: 0, height: -5, columns: [0]}\n", ErrInvalidGeometry},
		{"unknown platform", "blockSize: 10\ncolumns: 2\nheight: 100\nplatforms:\n  - {kind: lava, y: 0, columns: [0]}\n", ErrUnknownKind},
		{"unknown enemy", "blockSize: 10\ncolumns: 2\nheight: 100\nenemies:\n  - {kind: dragon, y: 0, columns: [0]}\n", ErrUnknownKind},
		{"unknown powerup", "blockSize: 10\ncolumns: 2\nheight: 100\npowerups:\n  - {kind: laser, y: 0, columns: [0]}\n", ErrUnknownKind},
		{"jump chance out of range", "blockSize: 10\ncolumns: 2\nheight: 100\nenemies:\n  - {kind: runner, y: 0, columns: [0], jumpBehaviorKoef: 2}\n", ErrInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseYAML error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	level, err := LoadTMX(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if level.Name != "test" {
		t.Fatalf("name = %q", level.Name)
	}
	if level.Width != 1024 || level.Height != 768 {
		t.Fatalf("world is %vx%v, want 1024x768", level.Width, level.Height)
	}
	if level.Hero != (Spawn{X: 64, Y: 100}) {
		t.Fatalf("hero spawn %+v", level.Hero)
	}
	if len(level.Platforms) != 2 || level.Platforms[1].Kind != PlatformBox || level.Platforms[1].H != 168 {
		t.Fatalf("platforms = %+v", level.Platforms)
	}
	if len(level.Enemies) != 1 || level.Enemies[0].JumpBehaviorKoef != 0.5 {
		t.Fatalf("enemies = %+v", level.Enemies)
	}
	if len(level.Powerups) != 1 || level.Powerups[0] != (PowerupSpec{Kind: PowerupSpread, X: 512, Y: 150}) {
		t.Fatalf("powerups = %+v", level.Powerups)
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.yaml":   {Data: []byte(testYAML)},
		"levels/a.tmx":    {Data: []byte(testTMX)},
		"levels/notes.md": {Data: []byte("ignored")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v", names)
	}
	if levels["b"].Name != "test" {
		t.Fatalf("yaml level name = %q", levels["b"].Name)
	}
}

func TestLoadAllLevelsEmpty(t *testing.T) {
	_, _, err := LoadAllLevels(fstest.MapFS{"levels/readme.txt": {}}, "levels")
	if !errors.Is(err, ErrNoLevels) {
		t.Fatalf("error = %v, want ErrNoLevels", err)
	}
}
