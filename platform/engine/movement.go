package engine

// Movement records one completed advance. Path holds every intermediate
// arrival from the old position up to and including the target, in order;
// the presentation layer paces animation with it. The core itself fires
// resolution once, for the target only.
type Movement struct {
	From        int   `json:"from"`
	To          int   `json:"to"`
	Path        []int `json:"path"`
	PassedStart bool  `json:"passed_start"`
}

// Advance moves a player steps tiles forward around the track and updates
// their position. Intermediate tiles never resolve; the caller resolves the
// target exactly once after the movement returns. Passing the Start tile
// pays the wrap bonus; landing on it leaves the bonus to tile resolution.
func (g *Game) Advance(id, steps int) (Movement, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return Movement{}, err
	}
	return g.advance(p, steps), nil
}

func (g *Game) advance(p *Player, steps int) Movement {
	l := g.board.Len()
	mv := Movement{From: p.Position}
	for i := 1; i <= steps; i++ {
		mv.Path = append(mv.Path, (p.Position+i)%l)
	}
	mv.To = (p.Position + steps) % l
	mv.PassedStart = steps > 0 && p.Position+steps >= l && mv.To != 0
	p.Position = mv.To
	g.emit(Event{Kind: EvMoved, Player: p.ID, Tile: mv.To, Path: mv.Path})
	if mv.PassedStart && g.board.StartBonus > 0 {
		g.bank.Payout(p, g.board.StartBonus)
		g.emit(Event{Kind: EvStartBonus, Player: p.ID, Amount: g.board.StartBonus})
	}
	return mv
}

// Teleport sets a player's position directly. No path is traversed and no
// land resolution fires; "go to jail" style effects depend on that.
func (g *Game) Teleport(id, tileIndex int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return err
	}
	if _, err := g.board.Tile(tileIndex); err != nil {
		return err
	}
	g.teleport(p, tileIndex)
	return nil
}

func (g *Game) teleport(p *Player, tileIndex int) {
	p.Position = tileIndex
	g.emit(Event{Kind: EvTeleported, Player: p.ID, Tile: tileIndex})
}

// moveBack walks a player backwards without wrap bonus or intermediates.
func (g *Game) moveBack(p *Player, steps int) {
	p.Position = g.board.Wrap(p.Position - steps)
	g.emit(Event{Kind: EvMoved, Player: p.ID, Tile: p.Position})
}
