package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanLandingEmitsPurchasePrompt(t *testing.T) {
	g, rec := newTestGame(eightTileBoard(), twoHumans(500), 1)
	p, _ := g.Player(0)
	p.Position = 3

	eff, err := g.ResolveLanding(0, 3)
	require.NoError(t, err)
	assert.Equal(t, OutcomePurchasePrompt, eff.Outcome)
	assert.Equal(t, 3, eff.Tile)
	assert.Equal(t, 150, eff.Amount)
	assert.Equal(t, 1, rec.count(EvPurchasePrompt))
	assert.Equal(t, -1, g.board.Tiles[3].OwnerIndex, "a prompt alone buys nothing")
}

func TestBuyDebitsAndAssignsOwnership(t *testing.T) {
	g, rec := newTestGame(eightTileBoard(), twoHumans(500), 1)

	require.True(t, g.Buy(0, 3))

	p, _ := g.Player(0)
	tile := g.board.Tiles[3]
	assert.Equal(t, 350, p.Money)
	assert.Equal(t, 0, tile.OwnerIndex)
	assert.Equal(t, "red", tile.OwnerColor)
	assert.Equal(t, []int{3}, g.OwnedTiles(0))
	assert.Equal(t, 1, rec.count(EvTilePurchased))
}

func TestBuyingOwnedTileFailsIdempotently(t *testing.T) {
	g, _ := newTestGame(eightTileBoard(), twoHumans(500), 1)
	require.True(t, g.Buy(0, 3))

	before := g.board.Tiles[3].OwnerIndex
	assert.False(t, g.Buy(1, 3))
	assert.False(t, g.Buy(0, 3))
	assert.Equal(t, before, g.board.Tiles[3].OwnerIndex)

	b, _ := g.Player(1)
	assert.Equal(t, 500, b.Money)
}

func TestBuyChecksFundsAndPurchasability(t *testing.T) {
	g, _ := newTestGame(eightTileBoard(), []PlayerSetup{{Name: "A", Controller: Human, Money: 100}}, 1)
	assert.False(t, g.Buy(0, 3), "cannot afford a 150 tile with 100")
	assert.False(t, g.Buy(0, 6), "jail is not purchasable")
	assert.False(t, g.Buy(0, 99))
	assert.False(t, g.Buy(9, 3))
}

func TestUpgradeStepsOneLevelAtATime(t *testing.T) {
	g, _ := newTestGame(eightTileBoard(), twoHumans(5000), 1)
	require.True(t, g.Buy(0, 3))
	tile := g.board.Tiles[3]

	for want := 1; want <= MaxLevel; want++ {
		require.True(t, g.Upgrade(0, 3))
		assert.Equal(t, want, tile.Level)
	}
	assert.False(t, g.Upgrade(0, 3), "no upgrades past the hotel tier")
	assert.Equal(t, MaxLevel, tile.Level)

	p, _ := g.Player(0)
	assert.Equal(t, 5000-150-5*tile.UpgradeCost, p.Money)
}

func TestUpgradeRequiresOwnership(t *testing.T) {
	g, _ := newTestGame(eightTileBoard(), twoHumans(500), 1)
	require.True(t, g.Buy(0, 3))
	assert.False(t, g.Upgrade(1, 3))
	assert.Equal(t, 0, g.board.Tiles[3].Level)
}

func TestOwnerLandingOnOwnTilePromptsUpgrade(t *testing.T) {
	g, rec := newTestGame(eightTileBoard(), twoHumans(500), 1)
	require.True(t, g.Buy(0, 3))
	p, _ := g.Player(0)
	p.Position = 3

	eff, err := g.ResolveLanding(0, 3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpgradePrompt, eff.Outcome)
	assert.Equal(t, 1, rec.count(EvUpgradePrompt))
}

func TestComputerNeverPromptsUpgrade(t *testing.T) {
	setups := []PlayerSetup{
		{Name: "CPU", Controller: Computer, Money: 5000},
		{Name: "B", Controller: Human, Money: 500},
	}
	for seed := int64(0); seed < 20; seed++ {
		g, rec := newTestGame(eightTileBoard(), setups, seed)
		require.True(t, g.Buy(0, 3))
		p, _ := g.Player(0)
		p.Position = 3

		eff, err := g.ResolveLanding(0, 3)
		require.NoError(t, err)
		assert.Equal(t, OutcomeNone, eff.Outcome)
		assert.Equal(t, 0, rec.count(EvUpgradePrompt))
	}
}

func TestComputerNeverBuysBeyondItsMeans(t *testing.T) {
	setups := []PlayerSetup{
		{Name: "CPU", Controller: Computer, Money: 50},
		{Name: "B", Controller: Human, Money: 500},
	}
	for seed := int64(0); seed < 40; seed++ {
		g, _ := newTestGame(eightTileBoard(), setups, seed)
		p, _ := g.Player(0)
		p.Position = 3
		_, err := g.ResolveLanding(0, 3)
		require.NoError(t, err)
		assert.Equal(t, -1, g.board.Tiles[3].OwnerIndex)
		assert.Equal(t, 50, p.Money)
	}
}

func TestComputerAutoBuysWhenInclined(t *testing.T) {
	setups := []PlayerSetup{
		{Name: "CPU", Controller: Computer, Money: 5000},
		{Name: "B", Controller: Human, Money: 500},
	}
	bought := 0
	for seed := int64(0); seed < 60; seed++ {
		g, _ := newTestGame(eightTileBoard(), setups, seed)
		p, _ := g.Player(0)
		p.Position = 3
		eff, err := g.ResolveLanding(0, 3)
		require.NoError(t, err)
		if eff.Outcome == OutcomeAutoPurchased {
			bought++
			assert.Equal(t, 0, g.board.Tiles[3].OwnerIndex)
			assert.Equal(t, 4850, p.Money)
		}
	}
	assert.Greater(t, bought, 0, "an affordable tile is bought for some seeds")
	assert.Less(t, bought, 60, "and declined for others")
}

func TestUnpurchasableUnownedTileIsInformational(t *testing.T) {
	b := eightTileBoard()
	b.Tiles[3].Purchasable = false
	g, rec := newTestGame(b, twoHumans(500), 1)
	p, _ := g.Player(0)
	p.Position = 3

	eff, err := g.ResolveLanding(0, 3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, eff.Outcome)
	assert.Equal(t, 1, rec.count(EvMessage))
}

func TestMortgagedTileCollectsNoToll(t *testing.T) {
	g, _ := newTestGame(eightTileBoard(), twoHumans(500), 1)
	require.True(t, g.Buy(1, 3))
	require.True(t, g.Mortgage(1, 3))

	p, _ := g.Player(0)
	p.Position = 3
	before := p.Money

	eff, err := g.ResolveLanding(0, 3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, eff.Outcome)
	assert.Equal(t, before, p.Money)
}

func TestTollShortfallBankruptsVisitor(t *testing.T) {
	g, _ := newTestGame(eightTileBoard(), twoHumans(500), 1)
	require.True(t, g.Buy(1, 3))
	owner, _ := g.Player(1)
	ownerBefore := owner.Money

	p, _ := g.Player(0)
	p.Money = 40
	p.Position = 3

	eff, err := g.ResolveLanding(0, 3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBankrupted, eff.Outcome)
	assert.True(t, p.Bankrupt)
	assert.Equal(t, 0, p.Money)
	assert.Equal(t, ownerBefore, owner.Money, "the failed transfer pays nothing")
}

func TestTaxTileCollects(t *testing.T) {
	g, rec := newTestGame(eightTileBoard(), twoHumans(500), 1)
	p, _ := g.Player(0)
	p.Position = 7

	eff, err := g.ResolveLanding(0, 2)
	require.NoError(t, err)
	assert.Equal(t, OutcomeTaxPaid, eff.Outcome)
	assert.Equal(t, 100, eff.Amount)
	assert.Equal(t, 400, p.Money)
	assert.Equal(t, 1, rec.count(EvTaxPaid))
}

func TestJailArrivalIsPassThrough(t *testing.T) {
	g, _ := newTestGame(eightTileBoard(), twoHumans(500), 1)
	p, _ := g.Player(0)
	p.Position = 6

	eff, err := g.ResolveLanding(0, 4)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, eff.Outcome)
	assert.Equal(t, 500, p.Money)
}

func TestChanceTileDrawsAndExecutes(t *testing.T) {
	b := eightTileBoard()
	b.Tiles[2] = plainTile(Chance, "Chance")
	rec := &recorder{}
	g, err := New(Config{
		Board:    b,
		Players:  twoHumans(500),
		Chance:   []Card{{Type: ChanceCard, Title: "Windfall", Effect: CollectMoney, Value: 75}},
		Notifier: rec,
	})
	require.NoError(t, err)

	p, _ := g.Player(0)
	p.Position = 2

	eff, err := g.ResolveLanding(0, 2)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCardExecuted, eff.Outcome)
	require.NotNil(t, eff.Card)
	assert.Equal(t, "Windfall", eff.Card.Title)
	assert.Equal(t, 575, p.Money)
	assert.Equal(t, 1, rec.count(EvCardShown))
}

func TestEventTileAppliesBoundedAmount(t *testing.T) {
	b := eightTileBoard()
	b.Tiles[2] = plainTile(EventTile, "Carnival")
	for seed := int64(0); seed < 30; seed++ {
		g, _ := newTestGame(b, twoHumans(500), seed)
		p, _ := g.Player(0)
		p.Position = 2

		eff, err := g.ResolveLanding(0, 2)
		require.NoError(t, err)
		assert.Equal(t, OutcomeEventApplied, eff.Outcome)
		assert.GreaterOrEqual(t, eff.Amount, -100)
		assert.LessOrEqual(t, eff.Amount, 200)
		assert.Equal(t, 500+eff.Amount, p.Money)
	}
}
