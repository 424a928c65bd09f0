package engine

// Shared fixtures for the engine tests.

type recorder struct {
	events []Event
}

func (r *recorder) Notify(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) last(kind EventKind) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func propertyTile(name, group string, price, toll int) *Tile {
	t := &Tile{
		Kind:        Normal,
		Name:        name,
		Group:       group,
		Purchasable: true,
		Price:       price,
		BaseToll:    toll,
		UpgradeCost: UpgradeCostFor(group),
		OwnerIndex:  -1,
	}
	t.RentByLevel = [6]int{toll, toll * 5, toll * 15, toll * 45, toll * 80, toll * 125}
	return t
}

func plainTile(kind TileKind, name string) *Tile {
	return &Tile{Kind: kind, Name: name, OwnerIndex: -1}
}

func stationTile(name string) *Tile {
	return &Tile{
		Kind:        Station,
		Name:        name,
		Group:       "station",
		Purchasable: true,
		Price:       200,
		BaseToll:    25,
		RentByLevel: [6]int{25, 25, 25, 25, 25, 25},
		OwnerIndex:  -1,
	}
}

func utilityTile(name string) *Tile {
	return &Tile{
		Kind:        Utility,
		Name:        name,
		Group:       "utility",
		Purchasable: true,
		Price:       150,
		BaseToll:    10,
		RentByLevel: [6]int{10, 10, 10, 10, 10, 10},
		OwnerIndex:  -1,
	}
}

// eightTileBoard is the track used across most tests:
//
//	0 start, 1-3 normal streets, 4 station, 5 utility, 6 jail, 7 tax.
func eightTileBoard() *Board {
	return &Board{
		JailIndex:  6,
		StartBonus: 200,
		Tiles: []*Tile{
			plainTile(Start, "Start"),
			propertyTile("First Street", "brown", 100, 10),
			propertyTile("Second Street", "brown", 120, 12),
			propertyTile("Third Street", "blue", 150, 50),
			stationTile("North Station"),
			utilityTile("Power Plant"),
			plainTile(Jail, "Jail"),
			&Tile{Kind: Tax, Name: "Income Tax", TaxAmount: 100, OwnerIndex: -1},
		},
	}
}

func newTestGame(board *Board, setups []PlayerSetup, seed int64) (*Game, *recorder) {
	rec := &recorder{}
	g, err := New(Config{
		Board:    board,
		Players:  setups,
		Seed:     seed,
		Notifier: rec,
	})
	if err != nil {
		panic(err)
	}
	return g, rec
}

func twoHumans(money int) []PlayerSetup {
	return []PlayerSetup{
		{Name: "A", Controller: Human, Money: money},
		{Name: "B", Controller: Human, Money: money},
	}
}
