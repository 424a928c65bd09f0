package socket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Behram484/Monopoly/app/models"
	"github.com/Behram484/Monopoly/platform/board"
	"github.com/Behram484/Monopoly/platform/engine"
	"github.com/Behram484/Monopoly/platform/queries"
	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
)

// turnDelay paces computer turns so clients can animate between them.
const turnDelay = time.Second

// launchGame assembles board, decks and players for one lobby and starts
// its turn loop goroutine.
func launchGame(game_id string, bots int, db *pg.DB, server *socketio.Server, pool *redis.Pool) (*liveGame, []models.PlayerDto, error) {
	players, err := queries.PlayersInGame(game_id, db)
	if err != nil {
		return nil, nil, err
	}
	if len(players)+bots < 2 {
		return nil, nil, errors.New("need at least two participants")
	}

	b, err := board.LoadBoard(envOr("BOARD_FILE", "platform/board/board.json"))
	if err != nil {
		return nil, nil, err
	}
	chance, community, err := board.LoadDecks(envOr("CARDS_FILE", "platform/board/cards.json"))
	if err != nil {
		return nil, nil, err
	}

	money := startMoney()
	var setups []engine.PlayerSetup
	var users []string
	for _, p := range players {
		setups = append(setups, engine.PlayerSetup{Name: p.Username, Controller: engine.Human, Money: money})
		users = append(users, p.User_id)
	}
	for i := 0; i < bots; i++ {
		setups = append(setups, engine.PlayerSetup{Name: fmt.Sprintf("CPU %d", i+1), Controller: engine.Computer, Money: money})
		users = append(users, fmt.Sprintf("cpu:%d", i+1))
	}

	notifier := &roomNotifier{server: server, pool: pool, game_id: game_id, users: users}
	g, err := engine.New(engine.Config{
		Board:     b,
		Chance:    chance,
		Community: community,
		Players:   setups,
		Seed:      time.Now().UnixNano(),
		Notifier:  notifier,
	})
	if err != nil {
		return nil, nil, err
	}

	conn := pool.Get()
	defer conn.Close()
	if err := queries.SeatPlayers(game_id, users, &conn); err != nil {
		return nil, nil, err
	}
	for _, user := range users {
		queries.MirrorBalance(game_id, user, money, &conn)
		queries.MirrorPosition(game_id, user, 0, &conn)
	}
	if err := queries.MarkInProgress(game_id, db); err != nil {
		return nil, nil, err
	}

	seq := engine.NewSequencer(g, turnDelay)
	ctx, cancel := context.WithCancel(context.Background())
	lg := &liveGame{id: game_id, game: g, seq: seq, cancel: cancel, users: users}

	// Snapshot the roster before the turn loop starts mutating state.
	seats := roster(g, users)
	go seq.Run(ctx)

	return lg, seats, nil
}

// roster builds the seat list broadcast on game start.
func roster(g *engine.Game, users []string) []models.PlayerDto {
	var out []models.PlayerDto
	for seat, user := range users {
		p, err := g.Player(seat)
		if err != nil {
			continue
		}
		out = append(out, models.PlayerDto{
			Seat:     seat,
			User_id:  user,
			Username: p.Name,
			Computer: p.Controller == engine.Computer,
			Balance:  p.Money,
			Pos:      p.Position,
			Color:    engine.ColorFor(seat),
		})
	}
	return out
}

// liveSeat resolves the live game and the sender's seat from a payload
// carrying game_id and user_id. Emits an error to the sender on failure.
func liveSeat(games *registry, jsonStr string, s socketio.Conn) (*liveGame, int) {
	var result map[string]string
	json.Unmarshal([]byte(jsonStr), &result)

	lg := games.get(result["game_id"])
	if lg == nil {
		s.Emit("error-message", "Game is not running")
		return nil, -1
	}
	seat := lg.seatOf(result["user_id"])
	if seat == -1 {
		s.Emit("error-message", "You are not in this game")
		return nil, -1
	}
	return lg, seat
}

// isActive reports whether the seat currently holds the turn.
func isActive(lg *liveGame, seat int) bool {
	return lg.game.ActiveIndex() == seat
}

func tilePos(jsonStr string) (int, error) {
	var result map[string]string
	json.Unmarshal([]byte(jsonStr), &result)
	return strconv.Atoi(result["card_pos"])
}
