package sim

import "math"

// EntityState is the serializable position and velocity of one entity.
type EntityState struct {
	X  float64 `yaml:"x" msgpack:"x"`
	Y  float64 `yaml:"y" msgpack:"y"`
	VX float64 `yaml:"vx" msgpack:"vx"`
	VY float64 `yaml:"vy" msgpack:"vy"`
}

// Snapshot contains the dynamic state of a match for headless output and
// determinism checks. Missing entities are nil.
type Snapshot struct {
	Tick     uint64       `yaml:"tick" msgpack:"tick"`
	Player   *EntityState `yaml:"player,omitempty" msgpack:"player,omitempty"`
	Opponent *EntityState `yaml:"opponent,omitempty" msgpack:"opponent,omitempty"`
	Ball     *EntityState `yaml:"ball,omitempty" msgpack:"ball,omitempty"`
}

// Snapshot returns the current match state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{Tick: s.tick}
	if p := s.World.Player; p != nil {
		snap.Player = &EntityState{X: p.Pos.X, Y: p.Pos.Y, VX: p.Vel.X, VY: p.Vel.Y}
	}
	if p := s.World.Opponent; p != nil {
		snap.Opponent = &EntityState{X: p.Pos.X, Y: p.Pos.Y, VX: p.Vel.X, VY: p.Vel.Y}
	}
	if b := s.World.Ball; b != nil {
		snap.Ball = &EntityState{X: b.Pos.X, Y: b.Pos.Y, VX: b.Vel.X, VY: b.Vel.Y}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, e := range []*EntityState{snap.Player, snap.Opponent, snap.Ball} {
		if e == nil {
			h = h*31 + 1
			continue
		}
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.VX)
		h = h*31 + math.Float64bits(e.VY)
	}
	return h
}
