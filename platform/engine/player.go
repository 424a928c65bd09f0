package engine

import "sort"

// Controller distinguishes who supplies decisions for a player. Movement is
// one shared capability; only decision sourcing differs by controller.
type Controller int

const (
	Human Controller = iota
	Computer
)

func (c Controller) String() string {
	if c == Computer {
		return "computer"
	}
	return "human"
}

// Player is one participant. ID doubles as the player's index in the turn
// order and as the ownership mark on tiles.
type Player struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Controller    Controller `json:"controller"`
	Position      int        `json:"position"`
	Money         int        `json:"money"`
	Bankrupt      bool       `json:"bankrupt"`
	JailFreeCards int        `json:"jail_free_cards"`

	owned map[int]struct{}
}

// Owned returns the indices of the tiles this player owns, sorted.
func (p *Player) Owned() []int {
	out := make([]int, 0, len(p.owned))
	for i := range p.owned {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (p *Player) owns(tileIndex int) bool {
	_, ok := p.owned[tileIndex]
	return ok
}

func (p *Player) addOwned(tileIndex int) {
	p.owned[tileIndex] = struct{}{}
}

func (p *Player) removeOwned(tileIndex int) {
	delete(p.owned, tileIndex)
}

func (p *Player) clearOwned() {
	p.owned = make(map[int]struct{})
}
