package engine

import "fmt"

// CardType distinguishes the two decks.
type CardType int

const (
	ChanceCard CardType = iota
	CommunityCard
)

func (t CardType) String() string {
	if t == CommunityCard {
		return "community"
	}
	return "chance"
}

// ActionKind is a card's effect selector. Every declared kind has an
// executable handler; configuration naming an unknown kind is rejected at
// load time.
type ActionKind int

const (
	CollectMoney ActionKind = iota
	PayMoney
	MoveToLocation
	MoveToPrison
	GetOutOfPrison
	MoveBack
	PayPerHouse
	Birthday
	Repair
	MoveForward
)

var actionKindNames = map[ActionKind]string{
	CollectMoney:   "collect-money",
	PayMoney:       "pay-money",
	MoveToLocation: "move-to-location",
	MoveToPrison:   "move-to-prison",
	GetOutOfPrison: "get-out-of-prison",
	MoveBack:       "move-back",
	PayPerHouse:    "pay-per-house",
	Birthday:       "birthday",
	Repair:         "repair",
	MoveForward:    "move-forward",
}

func (k ActionKind) String() string {
	if s, ok := actionKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("actionkind(%d)", int(k))
}

// ParseActionKind maps a configuration string to an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	for k, name := range actionKindNames {
		if name == s {
			return k, nil
		}
	}
	return CollectMoney, fmt.Errorf("unknown card action %q", s)
}

// Card is one chance or community card.
type Card struct {
	Type        CardType   `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Effect      ActionKind `json:"effect"`
	Value       int        `json:"value"`
}

// Deck is an ordered, non-depleting pile. Draw recycles the top card to the
// bottom, so the deck size is constant for the whole game.
type Deck struct {
	cards []Card
}

// NewDeck copies the cards and shuffles them once.
func NewDeck(cards []Card, rng *RNG) *Deck {
	d := &Deck{cards: append([]Card(nil), cards...)}
	d.Shuffle(rng)
	return d
}

// Shuffle applies a uniform random permutation.
func (d *Deck) Shuffle(rng *RNG) {
	if rng == nil {
		return
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes the top card and appends it to the bottom.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	copy(d.cards, d.cards[1:])
	d.cards[len(d.cards)-1] = c
	return c, true
}

func (d *Deck) Size() int {
	return len(d.cards)
}
