package engine

// EventKind names one notification the engine emits. The values double as
// socket event names on the wire.
type EventKind string

const (
	EvTurnChanged     EventKind = "turn-changed"
	EvDiceRolled      EventKind = "dice-rolled"
	EvMoved           EventKind = "player-moved"
	EvTeleported      EventKind = "player-teleported"
	EvMoneyChanged    EventKind = "money-changed"
	EvPurchasePrompt  EventKind = "purchase-prompt"
	EvUpgradePrompt   EventKind = "upgrade-prompt"
	EvTilePurchased   EventKind = "tile-purchased"
	EvTileUpgraded    EventKind = "tile-upgraded"
	EvTileMortgaged   EventKind = "tile-mortgaged"
	EvTileReleased    EventKind = "tile-released"
	EvTileUnmortgaged EventKind = "tile-unmortgaged"
	EvTollPaid        EventKind = "toll-paid"
	EvTaxPaid         EventKind = "tax-paid"
	EvStartBonus      EventKind = "start-bonus"
	EvCardShown       EventKind = "card-shown"
	EvBankruptcy      EventKind = "bankruptcy"
	EvMessage         EventKind = "event-message"
)

// Event is plain data; the engine never renders or formats for a UI. The
// presentation layer decides what to do with each notification.
type Event struct {
	Kind    EventKind `json:"kind"`
	Player  int       `json:"player"`
	Other   int       `json:"other,omitempty"`
	Tile    int       `json:"tile,omitempty"`
	Amount  int       `json:"amount,omitempty"`
	Path    []int     `json:"path,omitempty"`
	Card    *Card     `json:"card,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Notifier receives engine events. Implementations must not call back into
// the game; they run inside the active turn.
type Notifier interface {
	Notify(Event)
}

// NopNotifier discards all events. Used when no presentation layer is wired.
type NopNotifier struct{}

func (NopNotifier) Notify(Event) {}
