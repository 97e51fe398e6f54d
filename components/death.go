package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks an entity that has started its death sequence. Fade drives
// the view alpha; when it finishes the entity is removed or respawned.
type DeathData struct {
	Fade *gween.Tween
}

var Death = donburi.NewComponentType[DeathData]()
