package nyan

import (
	"math/rand"
	"time"
)

// State is the lifecycle state of a Simulation.
type State int

const (
	Running State = iota
	Ended
)

// String returns the state name.
func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// EndReason records why a simulation ended.
type EndReason int

const (
	EndNone      EndReason = iota // still running
	EndCollision                  // the head touched a wall
	EndQuit                       // the player asked to stop
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndCollision:
		return "collision"
	case EndQuit:
		return "quit"
	default:
		return "none"
	}
}

// Options configures a Simulation.
type Options struct {
	Width  int // playfield columns
	Height int // playfield rows

	// Rand places barrier doors. Nil means a time-seeded source.
	Rand Rand

	// IndexedCollision switches collision detection from the pairwise scan
	// to a hashed cell index. Both give the same answers.
	IndexedCollision bool
}

// Simulation runs one game: a character, the current barrier and the score.
// It is not safe for concurrent use; the driver serializes commands and ticks.
type Simulation struct {
	width, height int
	rng           Rand
	indexed       bool

	character *Character
	barrier   *Barrier

	score                  int
	ticksSinceBarrierSpawn int
	ticks                  int

	state  State
	reason EndReason
}

// NewSimulation creates a running simulation with the character centered
// and a first barrier at the right edge.
func NewSimulation(opts Options) *Simulation {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Simulation{
		width:     opts.Width,
		height:    opts.Height,
		rng:       rng,
		indexed:   opts.IndexedCollision,
		character: NewCharacter(opts.Width/2, opts.Height/2, opts.Height),
		barrier:   NewBarrier(opts.Width, opts.Height, rng),
		// the spawn tick itself counts, so every barrier lives Width+1 ticks
		ticksSinceBarrierSpawn: 1,
		state:                  Running,
	}
}

// Tick advances the simulation by one step and returns the resulting state.
// Ticking an ended simulation does nothing.
func (s *Simulation) Tick() State {
	if s.state == Ended {
		return s.state
	}
	s.ticks++

	s.character.Update()
	s.barrier.Update()

	if s.ticksSinceBarrierSpawn > s.width {
		s.ticksSinceBarrierSpawn = 0
		s.score++
		s.barrier = NewBarrier(s.width, s.height, s.rng)
	}

	if s.collided() {
		s.end(EndCollision)
	}

	s.ticksSinceBarrierSpawn++
	return s.state
}

func (s *Simulation) collided() bool {
	head := s.character.head.grid.glyphs
	walls := s.barrier.Glyphs()
	if s.indexed {
		return NewCellIndex(walls).Hits(head)
	}
	return Collides(head, walls)
}

func (s *Simulation) end(reason EndReason) {
	s.state = Ended
	s.reason = reason
}

// MoveUp moves the character up one row. No-op once ended.
func (s *Simulation) MoveUp() {
	if s.state == Running {
		s.character.MoveUp()
	}
}

// MoveDown moves the character down one row. No-op once ended.
func (s *Simulation) MoveDown() {
	if s.state == Running {
		s.character.MoveDown()
	}
}

// RequestQuit ends the simulation, keeping the current score.
func (s *Simulation) RequestQuit() {
	if s.state == Running {
		s.end(EndQuit)
	}
}

// Glyphs returns everything to draw: character glyphs then barrier glyphs.
// It stays valid after the simulation has ended.
func (s *Simulation) Glyphs() []Glyph {
	return append(s.character.Glyphs(), s.barrier.Glyphs()...)
}

// HeadGlyphs returns the glyphs that take part in collision detection.
func (s *Simulation) HeadGlyphs() []Glyph {
	return s.character.head.Glyphs()
}

// State returns the lifecycle state.
func (s *Simulation) State() State { return s.state }

// Reason returns why the simulation ended, or EndNone while running.
func (s *Simulation) Reason() EndReason { return s.reason }

// Score returns the number of barriers survived.
func (s *Simulation) Score() int { return s.score }

// Ticks returns the number of ticks processed.
func (s *Simulation) Ticks() int { return s.ticks }

func (s *Simulation) Width() int { return s.width }
func (s *Simulation) Height() int { return s.height }

// Barrier returns the current barrier.
func (s *Simulation) Barrier() *Barrier { return s.barrier }

// Character returns the player character.
func (s *Simulation) Character() *Character { return s.character }

// Report returns the end-of-run summary. While running, Reason is EndNone.
func (s *Simulation) Report() Report {
	return Report{Score: s.score, Reason: s.reason, Ticks: s.ticks}
}
