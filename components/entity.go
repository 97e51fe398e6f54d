package components

import "github.com/yohamta/donburi"

// EntityData holds the lifecycle flags every simulated entity carries.
type EntityData struct {
	// Active entities take part in the simulation.
	Active bool
	// Dead entities are waiting for their death sequence to finish.
	Dead bool
	// Gravitable entities fall and collide with platforms.
	Gravitable bool
}

var Entity = donburi.NewComponentType[EntityData]()

func (e *EntityData) Kill()   { e.Dead = true }
func (e *EntityData) Revive() { e.Dead = false }

// Alive reports whether the entity is active and not dead.
func (e *EntityData) Alive() bool { return e.Active && !e.Dead }
