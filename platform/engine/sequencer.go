package engine

import (
	"context"
	"sync"
	"time"
)

// TurnState is one phase of the turn loop.
type TurnState int

const (
	SelectingActor TurnState = iota
	AwaitingStepCount
	Moving
	ResolvingTile
	AdvancingTurn
)

type inputKind int

const (
	inputRoll inputKind = iota
	inputEndTurn
	inputKick
)

type input struct {
	kind   inputKind
	player int
}

// awaitResult is what a blocking wait for player input ended with.
type awaitResult int

const (
	awaitOK awaitResult = iota
	awaitKicked
	awaitStopped
)

// Sequencer drives the turn loop for one game: select the actor, obtain a
// step count, move, resolve the landing tile, advance the turn. It runs as
// a single goroutine, so all rule mutation stays inside one cooperative
// task. Human rolls and end-turn signals arrive through Roll and EndTurn;
// computer turns are fully internal.
type Sequencer struct {
	game  *Game
	delay time.Duration

	mu      sync.Mutex
	state   TurnState
	current int

	inputs chan input
}

// NewSequencer wires a sequencer to a game. delay is the pacing pause
// between two turns; it is a presentation concern and may be zero.
func NewSequencer(g *Game, delay time.Duration) *Sequencer {
	return &Sequencer{
		game:   g,
		delay:  delay,
		inputs: make(chan input, 4),
	}
}

// State reports the current phase and acting player.
func (s *Sequencer) State() (TurnState, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.current
}

func (s *Sequencer) setState(st TurnState, current int) {
	s.mu.Lock()
	s.state = st
	s.current = current
	s.mu.Unlock()
}

// Roll submits a human roll request. The dice values themselves are drawn
// from the game's seeded randomness source inside the turn loop.
func (s *Sequencer) Roll(playerID int) error {
	st, cur := s.State()
	if cur != playerID {
		return ErrNotYourTurn
	}
	if st != AwaitingStepCount {
		return ErrWrongPhase
	}
	s.inputs <- input{kind: inputRoll, player: playerID}
	return nil
}

// EndTurn closes a human player's decision window after resolution.
func (s *Sequencer) EndTurn(playerID int) error {
	st, cur := s.State()
	if cur != playerID {
		return ErrNotYourTurn
	}
	if st != AdvancingTurn {
		return ErrWrongPhase
	}
	s.inputs <- input{kind: inputEndTurn, player: playerID}
	return nil
}

// Kick abandons whatever input the loop is awaiting from the seat, so a
// player who left mid-game never blocks the match. The caller bankrupts
// the seat first; the kicked turn completes as a pass. Non-blocking, safe
// to call whether or not the seat holds the turn.
func (s *Sequencer) Kick(playerID int) {
	select {
	case s.inputs <- input{kind: inputKick, player: playerID}:
	default:
	}
}

// Run loops forever until the context is cancelled. There is no terminal
// game state; bankrupt players keep their seat and their turns pass.
func (s *Sequencer) Run(ctx context.Context) {
	g := s.game
	for {
		if ctx.Err() != nil {
			return
		}

		// SelectingActor
		cur := g.ActiveIndex()
		s.setState(SelectingActor, cur)
		p, err := g.Player(cur)
		if err != nil {
			return
		}
		g.emit(Event{Kind: EvTurnChanged, Player: cur})

		if g.IsBankrupt(cur) {
			s.finishTurn(ctx, p, true)
			continue
		}

		// AwaitingStepCount
		s.setState(AwaitingStepCount, cur)
		var steps int
		if p.Controller == Computer {
			steps = g.rng.Between(2, 12)
		} else {
			switch s.await(ctx, inputRoll, cur) {
			case awaitStopped:
				return
			case awaitKicked:
				s.finishTurn(ctx, p, true)
				continue
			}
			d1, d2 := g.rng.RollPair()
			steps = d1 + d2
			g.emit(Event{Kind: EvDiceRolled, Player: cur, Amount: steps})
		}

		// Moving. Animation pacing is the presentation layer's business;
		// the core's movement completes when Advance returns.
		s.setState(Moving, cur)
		if _, err := g.Advance(cur, steps); err != nil {
			return
		}

		// ResolvingTile: exactly once per arrival, nested effects included.
		s.setState(ResolvingTile, cur)
		if _, err := g.ResolveLanding(cur, steps); err != nil {
			return
		}

		s.finishTurn(ctx, p, false)
	}
}

// finishTurn performs the AdvancingTurn phase: humans get a decision window
// closed by EndTurn, everyone else waits out the pacing delay.
func (s *Sequencer) finishTurn(ctx context.Context, p *Player, skipped bool) {
	s.setState(AdvancingTurn, p.ID)
	if p.Controller == Human && !skipped && !s.game.IsBankrupt(p.ID) {
		if s.await(ctx, inputEndTurn, p.ID) == awaitStopped {
			return
		}
	} else if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return
		}
	}
	s.game.mu.Lock()
	s.game.advanceTurn()
	s.game.mu.Unlock()
}

// await blocks until the wanted input, or a kick, arrives from the acting
// player. Stale or out-of-turn inputs are dropped.
func (s *Sequencer) await(ctx context.Context, want inputKind, player int) awaitResult {
	for {
		select {
		case in := <-s.inputs:
			if in.player != player {
				continue
			}
			if in.kind == inputKick {
				return awaitKicked
			}
			if in.kind == want {
				return awaitOK
			}
		case <-ctx.Done():
			return awaitStopped
		}
	}
}
