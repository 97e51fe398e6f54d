package leveldata

import "fmt"

// Validate checks sizes and kinds. A negative size or a kind the factories do
// not know is an error.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: level %q is %vx%v", ErrInvalidGeometry, l.Name, l.Width, l.Height)
	}
	for i, p := range l.Platforms {
		if p.W < 0 || p.H < 0 {
			return fmt.Errorf("%w: platform %d is %vx%v", ErrInvalidGeometry, i, p.W, p.H)
		}
		switch p.Kind {
		case PlatformPlain, PlatformBox, PlatformStep, PlatformBridge, PlatformWater, PlatformBossWall:
		default:
			return fmt.Errorf("%w: platform %d has kind %q", ErrUnknownKind, i, p.Kind)
		}
	}
	for i, e := range l.Enemies {
		switch e.Kind {
		case EnemyRunner, EnemyTourelle, EnemyBoss:
		default:
			return fmt.Errorf("%w: enemy %d has kind %q", ErrUnknownKind, i, e.Kind)
		}
		if e.JumpBehaviorKoef < 0 || e.JumpBehaviorKoef > 1 {
			return fmt.Errorf("%w: enemy %d jump chance %v outside [0, 1]", ErrInvalidGeometry, i, e.JumpBehaviorKoef)
		}
	}
	for i, p := range l.Powerups {
		if p.Kind != PowerupSpread {
			return fmt.Errorf("%w: powerup %d has kind %q", ErrUnknownKind, i, p.Kind)
		}
	}
	return nil
}
