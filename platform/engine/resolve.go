package engine

// Outcome classifies what resolving a landing did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePurchasePrompt
	OutcomeAutoPurchased
	OutcomeUpgradePrompt
	OutcomeTollPaid
	OutcomeBankrupted
	OutcomeTaxPaid
	OutcomeStartBonus
	OutcomeCardExecuted
	OutcomeEventApplied
)

// Effect is the plain-data result of resolving one arrival.
type Effect struct {
	Outcome Outcome
	Tile    int
	Amount  int
	Card    *Card
}

// ResolveLanding resolves the tile the player currently stands on. It runs
// synchronously to completion, including any nested bank and card effects,
// and is invoked exactly once per arrival. diceValue feeds the utility toll
// formula; pass 0 when no roll produced the arrival.
func (g *Game) ResolveLanding(id, diceValue int) (Effect, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return Effect{}, err
	}
	return g.resolveLanding(p, diceValue), nil
}

func (g *Game) resolveLanding(p *Player, diceValue int) Effect {
	idx := p.Position
	t := g.board.Tiles[idx]

	switch t.Kind {
	case Normal, Commercial, Station, Utility:
		return g.resolveProperty(p, t, idx, diceValue)
	case EventTile:
		amount := g.rng.Between(-100, 200)
		if amount >= 0 {
			g.bank.Payout(p, amount)
		} else {
			g.bank.Collect(p, -amount)
		}
		g.emit(Event{Kind: EvMessage, Player: p.ID, Tile: idx, Amount: amount, Message: "random event"})
		return Effect{Outcome: OutcomeEventApplied, Tile: idx, Amount: amount}
	case Start:
		if g.board.StartBonus > 0 {
			g.bank.Payout(p, g.board.StartBonus)
			g.emit(Event{Kind: EvStartBonus, Player: p.ID, Amount: g.board.StartBonus})
		}
		return Effect{Outcome: OutcomeStartBonus, Tile: idx, Amount: g.board.StartBonus}
	case Tax:
		g.bank.Collect(p, t.TaxAmount)
		g.emit(Event{Kind: EvTaxPaid, Player: p.ID, Tile: idx, Amount: t.TaxAmount})
		return Effect{Outcome: OutcomeTaxPaid, Tile: idx, Amount: t.TaxAmount}
	case Chance:
		return g.resolveCard(p, g.chance, idx)
	case Community:
		return g.resolveCard(p, g.community, idx)
	}
	// Jail and Hospital are pass-through on a normal arrival.
	return Effect{Outcome: OutcomeNone, Tile: idx}
}

func (g *Game) resolveCard(p *Player, deck *Deck, idx int) Effect {
	card, ok := deck.Draw()
	if !ok {
		return Effect{Outcome: OutcomeNone, Tile: idx}
	}
	g.emit(Event{Kind: EvCardShown, Player: p.ID, Tile: idx, Card: &card})
	g.executeCard(p, card)
	return Effect{Outcome: OutcomeCardExecuted, Tile: idx, Card: &card}
}

func (g *Game) resolveProperty(p *Player, t *Tile, idx, diceValue int) Effect {
	switch {
	case t.OwnerIndex == -1 && t.Purchasable:
		if p.Controller == Computer {
			if g.rng.Chance() > 0.5 && p.Money >= t.Price {
				g.buy(p, t, idx)
				return Effect{Outcome: OutcomeAutoPurchased, Tile: idx, Amount: t.Price}
			}
			return Effect{Outcome: OutcomeNone, Tile: idx}
		}
		g.emit(Event{Kind: EvPurchasePrompt, Player: p.ID, Tile: idx, Amount: t.Price})
		return Effect{Outcome: OutcomePurchasePrompt, Tile: idx, Amount: t.Price}

	case t.OwnerIndex == -1:
		g.emit(Event{Kind: EvMessage, Player: p.ID, Tile: idx, Message: t.Name + " is not for sale"})
		return Effect{Outcome: OutcomeNone, Tile: idx}

	case t.OwnerIndex != p.ID:
		if t.Mortgaged {
			// No rent while the tile is mortgaged.
			g.emit(Event{Kind: EvMessage, Player: p.ID, Tile: idx, Message: t.Name + " is mortgaged"})
			return Effect{Outcome: OutcomeNone, Tile: idx}
		}
		toll := g.toll(t, diceValue)
		owner := g.players[t.OwnerIndex]
		if p.Money < toll {
			g.bank.Bankrupt(p)
			return Effect{Outcome: OutcomeBankrupted, Tile: idx, Amount: toll}
		}
		g.bank.Transfer(p, owner, toll)
		g.emit(Event{Kind: EvTollPaid, Player: p.ID, Other: owner.ID, Tile: idx, Amount: toll})
		return Effect{Outcome: OutcomeTollPaid, Tile: idx, Amount: toll}

	case t.Level < MaxLevel && p.Controller == Human:
		// Computer players never request upgrades.
		g.emit(Event{Kind: EvUpgradePrompt, Player: p.ID, Tile: idx, Amount: t.UpgradeCost})
		return Effect{Outcome: OutcomeUpgradePrompt, Tile: idx, Amount: t.UpgradeCost}
	}
	return Effect{Outcome: OutcomeNone, Tile: idx}
}

// toll computes what a visitor owes on an owned, unmortgaged tile.
func (g *Game) toll(t *Tile, diceValue int) int {
	switch t.Kind {
	case Station:
		switch g.countKind(t.OwnerIndex, Station) {
		case 1:
			return 25
		case 2:
			return 50
		case 3:
			return 100
		case 4:
			return 200
		}
		return t.BaseToll
	case Utility:
		if diceValue <= 0 {
			return t.BaseToll
		}
		switch n := g.countKind(t.OwnerIndex, Utility); {
		case n == 1:
			return diceValue * 4
		case n >= 2:
			return diceValue * 10
		}
		return t.BaseToll
	}
	return t.Rent(t.Level)
}
