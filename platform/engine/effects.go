package engine

// effectFunc executes one card against the drawing player. Handlers run
// inside the active resolution, so nested movement and bank calls complete
// before the turn advances.
type effectFunc func(g *Game, p *Player, c Card)

// effectTable maps every declared action kind to its handler. The table is
// total; configuration referencing a kind outside it is rejected at load.
// Assigned in init because the movement handlers re-enter resolution, which
// reads the table back.
var effectTable map[ActionKind]effectFunc

func init() {
	effectTable = map[ActionKind]effectFunc{
		CollectMoney: func(g *Game, p *Player, c Card) {
			g.bank.Payout(p, c.Value)
		},
		PayMoney: func(g *Game, p *Player, c Card) {
			g.bank.Collect(p, c.Value)
		},
		MoveToPrison: func(g *Game, p *Player, c Card) {
			// Straight to jail, no resolution on arrival.
			g.teleport(p, g.board.JailIndex)
		},
		Birthday: func(g *Game, p *Player, c Card) {
			for _, other := range g.players {
				if other.ID == p.ID || other.Bankrupt {
					continue
				}
				g.bank.Transfer(other, p, c.Value)
			}
		},
		MoveToLocation: func(g *Game, p *Player, c Card) {
			if _, err := g.board.Tile(c.Value); err != nil {
				return
			}
			g.teleport(p, c.Value)
			g.resolveLanding(p, 0)
		},
		MoveForward: func(g *Game, p *Player, c Card) {
			if c.Value <= 0 {
				return
			}
			g.advance(p, c.Value)
			g.resolveLanding(p, 0)
		},
		MoveBack: func(g *Game, p *Player, c Card) {
			if c.Value <= 0 {
				return
			}
			g.moveBack(p, c.Value)
			g.resolveLanding(p, 0)
		},
		GetOutOfPrison: func(g *Game, p *Player, c Card) {
			p.JailFreeCards++
			g.emit(Event{Kind: EvMessage, Player: p.ID, Message: "kept a get out of jail free card"})
		},
		PayPerHouse: func(g *Game, p *Player, c Card) {
			payPerLevel(g, p, c.Value)
		},
		Repair: func(g *Game, p *Player, c Card) {
			payPerLevel(g, p, c.Value)
		},
	}
}

// payPerLevel charges the player per building level across their tiles.
func payPerLevel(g *Game, p *Player, perLevel int) {
	total := 0
	for _, t := range g.board.Tiles {
		if t.OwnerIndex == p.ID {
			total += t.Level
		}
	}
	if total > 0 && perLevel > 0 {
		g.bank.Collect(p, total*perLevel)
	}
}

// KnownAction reports whether an action kind has an executable handler.
func KnownAction(k ActionKind) bool {
	_, ok := effectTable[k]
	return ok
}

// ExecuteCard runs a card's effect against a player.
func (g *Game) ExecuteCard(id int, c Card) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.player(id)
	if err != nil {
		return err
	}
	return g.executeCardErr(p, c)
}

func (g *Game) executeCard(p *Player, c Card) {
	// Decks are validated at load, so a miss here cannot happen in play.
	if fn, ok := effectTable[c.Effect]; ok {
		fn(g, p, c)
	}
}

func (g *Game) executeCardErr(p *Player, c Card) error {
	fn, ok := effectTable[c.Effect]
	if !ok {
		return ErrMissingCollaborator
	}
	fn(g, p, c)
	return nil
}
