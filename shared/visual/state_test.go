package visual

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		current State
		in      Input
		want    State
	}{
		{"idle", Stay, Input{}, Stay},
		{"run", Stay, Input{Moving: true}, Run},
		{"run aiming up", Run, Input{Moving: true, Up: true}, RunUp},
		{"run aiming down", Run, Input{Moving: true, Down: true}, RunDown},
		{"look up", Stay, Input{Up: true}, StayUp},
		{"lay", Stay, Input{Down: true}, Lay},
		{"jump beats movement", Run, Input{Moving: true, Jumping: true}, Jump},
		{"fall", Jump, Input{Falling: true}, Fall},
		{"swim", Fall, Input{InWater: true}, Swim},
		{"swimming ignores aim", Swim, Input{InWater: true, Up: true}, Swim},
		{"death", Run, Input{Moving: true, Dead: true}, Dead},
		{"respawn restarts", Dead, Input{Moving: true}, Stay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.current, tt.in); got != tt.want {
				t.Fatalf("Next(%v, %+v) = %v, want %v", tt.current, tt.in, got, tt.want)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if Lay.String() != "lay" {
		t.Fatalf("Lay.String() = %q", Lay.String())
	}
	if State(99).String() != "unknown" {
		t.Fatalf("out of range state has name %q", State(99).String())
	}
}
