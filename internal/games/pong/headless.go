package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/sim"
)

// Script produces pseudo-random held input for headless runs. A choice
// is kept for a fixed number of ticks, the way a player holds a key.
type Script struct {
	rng  *rand.Rand
	hold int
	left int
	cur  sim.Held
}

// NewScript creates a script seeded for reproducible runs.
func NewScript(seed int64, hold int) *Script {
	return &Script{
		rng:  rand.New(rand.NewSource(seed)),
		hold: max(1, hold),
	}
}

// Next returns the input for the coming tick.
func (s *Script) Next() sim.Held {
	if s.left == 0 {
		switch s.rng.Intn(4) {
		case 0:
			s.cur = sim.Held{}
		case 1:
			s.cur = sim.Held{Up: true}
		case 2:
			s.cur = sim.Held{Down: true}
		default:
			s.cur = sim.Held{Up: true, Down: true}
		}
		s.left = s.hold
	}
	s.left--
	return s.cur
}

// Report summarizes a headless run.
type Report struct {
	Seed         int64          `yaml:"seed" msgpack:"seed"`
	Opponent     string         `yaml:"opponent" msgpack:"opponent"`
	Ticks        uint64         `yaml:"ticks" msgpack:"ticks"`
	PlayerHits   int            `yaml:"player_hits" msgpack:"player_hits"`
	OpponentHits int            `yaml:"opponent_hits" msgpack:"opponent_hits"`
	WallBounces  int            `yaml:"wall_bounces" msgpack:"wall_bounces"`
	Rounds       int            `yaml:"rounds" msgpack:"rounds"`
	Exits        map[string]int `yaml:"exits,omitempty" msgpack:"exits,omitempty"`
	Hash         uint64         `yaml:"hash" msgpack:"hash"`
	Frames       []sim.Snapshot `yaml:"frames,omitempty" msgpack:"frames,omitempty"`
	Final        sim.Snapshot   `yaml:"final" msgpack:"final"`
}

// RunHeadless advances the match by ticks steps using scripted input.
// When every is positive a snapshot is recorded each every ticks.
func (g *Game) RunHeadless(ticks, every int, seed int64, script *Script) Report {
	rep := Report{Seed: seed}
	if g.sim.Opponent != nil {
		rep.Opponent = g.sim.Opponent.ID()
	}

	for range ticks {
		res := g.advance(script.Next())

		if res.Events.Has(sim.EventPlayerHit) {
			rep.PlayerHits++
		}
		if res.Events.Has(sim.EventOpponentHit) {
			rep.OpponentHits++
		}
		if res.Events.Has(sim.EventWallBounce) {
			rep.WallBounces++
		}
		if res.Events.Has(sim.EventRoundReset) {
			if rep.Exits == nil {
				rep.Exits = make(map[string]int)
			}
			rep.Exits[res.Exit.String()]++
		}

		if every > 0 && g.sim.Tick()%uint64(every) == 0 {
			rep.Frames = append(rep.Frames, g.sim.Snapshot())
		}
	}

	rep.Ticks = g.sim.Tick()
	rep.Rounds = g.rounds
	rep.Final = g.sim.Snapshot()
	rep.Hash = rep.Final.Hash()
	g.logger.Debug("headless run finished", "ticks", rep.Ticks, "rounds", rep.Rounds, "hash", rep.Hash)
	return rep
}
