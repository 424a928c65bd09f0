package engine

// Bank is the monetary authority. It has no balance of its own; it only
// validates and moves money, and performs payouts and forced collections.
// It is injected into the game, never a global.
type Bank struct {
	board    *Board
	notifier Notifier
}

func NewBank(board *Board, notifier Notifier) *Bank {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Bank{board: board, notifier: notifier}
}

// Transfer moves amount from payer to receiver. It either fully completes
// or has no effect: balances are checked before any mutation.
func (b *Bank) Transfer(payer, receiver *Player, amount int) bool {
	if amount <= 0 || payer == nil || receiver == nil {
		return false
	}
	if payer.Money < amount {
		return false
	}
	payer.Money -= amount
	receiver.Money += amount
	b.notifier.Notify(Event{Kind: EvMoneyChanged, Player: payer.ID, Amount: payer.Money})
	b.notifier.Notify(Event{Kind: EvMoneyChanged, Player: receiver.ID, Amount: receiver.Money})
	return true
}

// Collect takes amount from the payer with the bank as sink. A payer who
// cannot cover the amount goes bankrupt instead of simply failing.
func (b *Bank) Collect(payer *Player, amount int) bool {
	if amount <= 0 || payer == nil {
		return false
	}
	if payer.Money < amount {
		b.Bankrupt(payer)
		return false
	}
	payer.Money -= amount
	b.notifier.Notify(Event{Kind: EvMoneyChanged, Player: payer.ID, Amount: payer.Money})
	return true
}

// Payout credits the receiver unconditionally; the bank's funds are unlimited.
func (b *Bank) Payout(receiver *Player, amount int) {
	if amount <= 0 || receiver == nil {
		return
	}
	receiver.Money += amount
	b.notifier.Notify(Event{Kind: EvMoneyChanged, Player: receiver.ID, Amount: receiver.Money})
}

// Bankrupt releases every tile the player owns back to the unowned state,
// zeroes their money and marks them bankrupt. The player keeps their seat
// in the turn order.
func (b *Bank) Bankrupt(p *Player) {
	if p == nil || p.Bankrupt {
		return
	}
	for i, t := range b.board.Tiles {
		if t.OwnerIndex == p.ID {
			t.release()
			b.notifier.Notify(Event{Kind: EvTileReleased, Player: p.ID, Tile: i})
		}
	}
	p.clearOwned()
	p.Money = 0
	p.Bankrupt = true
	b.notifier.Notify(Event{Kind: EvMoneyChanged, Player: p.ID, Amount: 0})
	b.notifier.Notify(Event{Kind: EvBankruptcy, Player: p.ID})
}

// Mortgage credits half the purchase price to the owner and marks the tile.
func (b *Bank) Mortgage(p *Player, tileIndex int) bool {
	t, err := b.board.Tile(tileIndex)
	if err != nil || p == nil {
		return false
	}
	if t.OwnerIndex != p.ID || t.Mortgaged {
		return false
	}
	t.Mortgaged = true
	b.Payout(p, t.Price/2)
	b.notifier.Notify(Event{Kind: EvTileMortgaged, Player: p.ID, Tile: tileIndex, Amount: t.Price / 2})
	return true
}

// Unmortgage clears the flag for the mortgage value plus a 10% premium.
func (b *Bank) Unmortgage(p *Player, tileIndex int) bool {
	t, err := b.board.Tile(tileIndex)
	if err != nil || p == nil {
		return false
	}
	if t.OwnerIndex != p.ID || !t.Mortgaged {
		return false
	}
	cost := t.Price / 2 * 11 / 10
	if p.Money < cost {
		return false
	}
	p.Money -= cost
	t.Mortgaged = false
	b.notifier.Notify(Event{Kind: EvMoneyChanged, Player: p.ID, Amount: p.Money})
	b.notifier.Notify(Event{Kind: EvTileUnmortgaged, Player: p.ID, Tile: tileIndex, Amount: cost})
	return true
}
