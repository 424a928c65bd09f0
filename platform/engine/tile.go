package engine

import "fmt"

// TileKind identifies how landing on a tile is handled.
type TileKind int

const (
	Normal TileKind = iota
	Commercial
	EventTile
	Start
	Jail
	Chance
	Community
	Tax
	Station
	Utility
	Hospital
)

var tileKindNames = map[TileKind]string{
	Normal:     "normal",
	Commercial: "commercial",
	EventTile:  "event",
	Start:      "start",
	Jail:       "jail",
	Chance:     "chance",
	Community:  "community",
	Tax:        "tax",
	Station:    "station",
	Utility:    "utility",
	Hospital:   "hospital",
}

func (k TileKind) String() string {
	if s, ok := tileKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("tilekind(%d)", int(k))
}

// ParseTileKind maps a configuration string to a TileKind.
func ParseTileKind(s string) (TileKind, error) {
	for k, name := range tileKindNames {
		if name == s {
			return k, nil
		}
	}
	return Normal, fmt.Errorf("unknown tile kind %q", s)
}

// MaxLevel is the hotel tier.
const MaxLevel = 5

// Tile is one position on the track. Static fields come from configuration
// and are not touched after load; OwnerIndex, OwnerColor, Level and
// Mortgaged are the mutable ownership state.
type Tile struct {
	Kind        TileKind `json:"kind"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Purchasable bool     `json:"purchasable"`
	Price       int      `json:"price"`
	BaseToll    int      `json:"base_toll"`
	RentByLevel [6]int   `json:"rent_by_level"` // [0] mirrors BaseToll
	TaxAmount   int      `json:"tax_amount"`
	UpgradeCost int      `json:"upgrade_cost"`

	OwnerIndex int    `json:"owner_index"`
	OwnerColor string `json:"owner_color"`
	Level      int    `json:"level"`
	Mortgaged  bool   `json:"mortgaged"`
}

// Rent returns the toll for a given upgrade level; level 0 is the base toll.
func (t *Tile) Rent(level int) int {
	if level < 0 || level > MaxLevel {
		return t.BaseToll
	}
	return t.RentByLevel[level]
}

// UpgradeCostFor derives the per-house cost from the tile's color group.
func UpgradeCostFor(group string) int {
	switch group {
	case "brown", "blue":
		return 50
	case "purple", "orange":
		return 100
	case "red", "yellow":
		return 150
	case "green", "deep blue":
		return 200
	}
	return 100
}

// release returns the tile to the unowned state.
func (t *Tile) release() {
	t.OwnerIndex = -1
	t.OwnerColor = ""
	t.Level = 0
	t.Mortgaged = false
}

// Board is the cyclic track. Tiles are constructed once from configuration
// and mutated in place for the rest of the game.
type Board struct {
	Tiles      []*Tile
	JailIndex  int
	StartBonus int
}

func (b *Board) Len() int {
	return len(b.Tiles)
}

// Tile returns the tile at index i, or ErrInvalidIndex if out of range.
func (b *Board) Tile(i int) (*Tile, error) {
	if i < 0 || i >= len(b.Tiles) {
		return nil, ErrInvalidIndex
	}
	return b.Tiles[i], nil
}

// Wrap normalizes any integer onto the cyclic track.
func (b *Board) Wrap(i int) int {
	l := len(b.Tiles)
	return ((i % l) + l) % l
}
