package components

import (
	"github.com/automoto/runngun/shared/collision"
	"github.com/automoto/runngun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Kind    collision.Kind
	IsStep  bool
	Surface leveldata.PlatformKind

	// Target is watched by bridges; when it comes close the bridge collapses.
	Target *donburi.Entry
}

var Platform = donburi.NewComponentType[PlatformData]()

func (p *PlatformData) SetTarget(target *donburi.Entry) { p.Target = target }

// PlatformRegistryData keeps platforms in creation order. Collision walks it
// in this order every tick.
type PlatformRegistryData struct {
	Entries []*donburi.Entry
}

var PlatformRegistry = donburi.NewComponentType[PlatformRegistryData]()

func (r *PlatformRegistryData) Add(e *donburi.Entry) {
	r.Entries = append(r.Entries, e)
}

// Remove drops e while keeping the order of the rest.
func (r *PlatformRegistryData) Remove(e *donburi.Entry) {
	n := 0
	for _, entry := range r.Entries {
		if entry != e {
			r.Entries[n] = entry
			n++
		}
	}
	for i := n; i < len(r.Entries); i++ {
		r.Entries[i] = nil
	}
	r.Entries = r.Entries[:n]
}
