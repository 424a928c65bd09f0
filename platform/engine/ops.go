package engine

// Buy purchases the tile for the player. Requires an unowned purchasable
// tile and sufficient funds; fails without mutation otherwise.
func (g *Game) Buy(id, tileIndex int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return false
	}
	t, err := g.board.Tile(tileIndex)
	if err != nil {
		return false
	}
	if t.OwnerIndex != -1 || !t.Purchasable || p.Money < t.Price {
		return false
	}
	g.buy(p, t, tileIndex)
	return true
}

func (g *Game) buy(p *Player, t *Tile, tileIndex int) {
	p.Money -= t.Price
	t.OwnerIndex = p.ID
	t.OwnerColor = ColorFor(p.ID)
	p.addOwned(tileIndex)
	g.emit(Event{Kind: EvMoneyChanged, Player: p.ID, Amount: p.Money})
	g.emit(Event{Kind: EvTilePurchased, Player: p.ID, Tile: tileIndex, Amount: t.Price})
}

// Upgrade raises the tile's level by exactly one. Requires ownership, a
// level below the hotel tier and funds for the group's upgrade cost.
func (g *Game) Upgrade(id, tileIndex int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return false
	}
	t, err := g.board.Tile(tileIndex)
	if err != nil {
		return false
	}
	if t.OwnerIndex != p.ID || t.Level >= MaxLevel || p.Money < t.UpgradeCost {
		return false
	}
	p.Money -= t.UpgradeCost
	t.Level++
	g.emit(Event{Kind: EvMoneyChanged, Player: p.ID, Amount: p.Money})
	g.emit(Event{Kind: EvTileUpgraded, Player: p.ID, Tile: tileIndex, Amount: t.Level})
	return true
}

// Resign forfeits the game: the player is liquidated like a bankruptcy and
// their seat turns into a pass for the rest of the match.
func (g *Game) Resign(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return err
	}
	g.bank.Bankrupt(p)
	return nil
}

// Mortgage converts an owned tile into cash at half its purchase price.
func (g *Game) Mortgage(id, tileIndex int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return false
	}
	return g.bank.Mortgage(p, tileIndex)
}

// Unmortgage reverses a mortgage at a 10% premium over the mortgage value.
func (g *Game) Unmortgage(id, tileIndex int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return false
	}
	return g.bank.Unmortgage(p, tileIndex)
}
