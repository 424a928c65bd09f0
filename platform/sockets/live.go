package socket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Behram484/Monopoly/platform/engine"
	"github.com/Behram484/Monopoly/platform/queries"
	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
	"github.com/sirupsen/logrus"
)

// liveGame binds one running engine instance to its socket room. users maps
// seat index to user id; computer seats use a "cpu:<n>" placeholder.
type liveGame struct {
	id     string
	game   *engine.Game
	seq    *engine.Sequencer
	cancel context.CancelFunc
	users  []string
}

func (lg *liveGame) seatOf(user_id string) int {
	for seat, id := range lg.users {
		if id == user_id {
			return seat
		}
	}
	return -1
}

// humansLeft counts human seats still in play.
func (lg *liveGame) humansLeft() int {
	n := 0
	for seat := range lg.users {
		p, err := lg.game.Player(seat)
		if err != nil || p.Controller != engine.Human {
			continue
		}
		if lg.game.IsBankrupt(seat) {
			continue
		}
		n++
	}
	return n
}

type registry struct {
	mu    sync.Mutex
	games map[string]*liveGame
}

func newRegistry() *registry {
	return &registry{games: make(map[string]*liveGame)}
}

func (r *registry) get(game_id string) *liveGame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.games[game_id]
}

func (r *registry) put(lg *liveGame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[lg.id] = lg
}

func (r *registry) remove(game_id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lg, ok := r.games[game_id]; ok {
		lg.cancel()
		delete(r.games, game_id)
	}
}

// roomNotifier forwards engine events to the socket room and mirrors money,
// position and turn into redis. It never calls back into the engine.
type roomNotifier struct {
	server  *socketio.Server
	pool    *redis.Pool
	game_id string
	users   []string
}

func (n *roomNotifier) Notify(ev engine.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		logrus.WithError(err).Error("failed marshaling event")
		return
	}
	n.server.BroadcastToRoom("/", n.game_id, string(ev.Kind), string(payload))

	if ev.Player < 0 || ev.Player >= len(n.users) {
		return
	}
	user := n.users[ev.Player]

	conn := n.pool.Get()
	defer conn.Close()
	switch ev.Kind {
	case engine.EvTurnChanged:
		queries.SetTurn(n.game_id, user, &conn)
		// Legacy event kept for clients built against the old protocol.
		n.server.BroadcastToRoom("/", n.game_id, "change-turn", user)
	case engine.EvMoneyChanged:
		queries.MirrorBalance(n.game_id, user, ev.Amount, &conn)
	case engine.EvMoved, engine.EvTeleported:
		queries.MirrorPosition(n.game_id, user, ev.Tile, &conn)
	}
}
