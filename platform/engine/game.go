// Package engine implements the Monopoly rules engine and turn sequencer.
//
// The package is a pure in-memory core: it knows nothing about sockets,
// storage or rendering. A Game owns its board, players, bank, decks and
// randomness source; the surrounding service feeds it inputs and listens
// for events.
package engine

import (
	"fmt"
	"sync"
)

// PlayerSetup describes one participant at game start.
type PlayerSetup struct {
	Name       string
	Controller Controller
	Money      int
}

// Config collects everything a game is constructed with. Board and decks
// come from the configuration loader and are treated as immutable input.
type Config struct {
	Board     *Board
	Chance    []Card
	Community []Card
	Players   []PlayerSetup
	Seed      int64
	Notifier  Notifier
}

var playerColors = []string{"red", "blue", "green", "yellow"}

// ColorFor returns the token color assigned to a seat.
func ColorFor(seat int) string {
	if seat < 0 {
		return ""
	}
	return playerColors[seat%len(playerColors)]
}

// Game is one running match. All mutation happens under mu; the sequencer
// and the service-facing operations share it, so a turn step and a human
// decision never interleave mid-operation.
type Game struct {
	mu sync.Mutex

	board     *Board
	players   []*Player
	bank      *Bank
	chance    *Deck
	community *Deck
	rng       *RNG
	notifier  Notifier

	turnIndex int
}

// New validates the configuration and builds a game. Boards, players and
// decks are constructed exactly once; nothing is recreated mid-game.
func New(cfg Config) (*Game, error) {
	if cfg.Board == nil || cfg.Board.Len() < 1 {
		return nil, ErrMissingCollaborator
	}
	if len(cfg.Players) < 1 {
		return nil, ErrMissingCollaborator
	}
	for _, c := range append(append([]Card(nil), cfg.Chance...), cfg.Community...) {
		if !KnownAction(c.Effect) {
			return nil, fmt.Errorf("card %q: no handler for action %s", c.Title, c.Effect)
		}
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	rng := NewRNG(cfg.Seed)
	g := &Game{
		board:     cfg.Board,
		bank:      NewBank(cfg.Board, notifier),
		chance:    NewDeck(cfg.Chance, rng),
		community: NewDeck(cfg.Community, rng),
		rng:       rng,
		notifier:  notifier,
	}
	for i, ps := range cfg.Players {
		g.players = append(g.players, &Player{
			ID:         i,
			Name:       ps.Name,
			Controller: ps.Controller,
			Money:      ps.Money,
			owned:      make(map[int]struct{}),
		})
	}
	return g, nil
}

func (g *Game) emit(ev Event) {
	g.notifier.Notify(ev)
}

// Player returns the participant with the given id.
func (g *Game) Player(id int) (*Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.player(id)
}

func (g *Game) player(id int) (*Player, error) {
	if id < 0 || id >= len(g.players) {
		return nil, ErrInvalidIndex
	}
	return g.players[id], nil
}

// IsBankrupt reports whether a seat has been liquidated. The flag is
// written under the game mutex, so concurrent readers go through here.
func (g *Game) IsBankrupt(id int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return false
	}
	return p.Bankrupt
}

// PlayerCount returns the number of seats in the turn order, bankrupt or not.
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// Board exposes the track for read-only inspection.
func (g *Game) Board() *Board {
	return g.board
}

// ActiveIndex returns the index of the player whose turn it is.
func (g *Game) ActiveIndex() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turnIndex
}

// OwnedTiles returns the tile indices owned by a player.
func (g *Game) OwnedTiles(id int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return nil
	}
	return p.Owned()
}

// StationCount counts Station tiles owned by a player.
func (g *Game) StationCount(id int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.countKind(id, Station)
}

// UtilityCount counts Utility tiles owned by a player.
func (g *Game) UtilityCount(id int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.countKind(id, Utility)
}

func (g *Game) countKind(id int, kind TileKind) int {
	n := 0
	for _, t := range g.board.Tiles {
		if t.OwnerIndex == id && t.Kind == kind {
			n++
		}
	}
	return n
}

func (g *Game) advanceTurn() {
	g.turnIndex = (g.turnIndex + 1) % len(g.players)
}
