package socket

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/Behram484/Monopoly/app/models"
	"github.com/Behram484/Monopoly/platform/cache"
	"github.com/Behram484/Monopoly/platform/database"
	"github.com/Behram484/Monopoly/platform/engine"
	"github.com/Behram484/Monopoly/platform/queries"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startMoney() int {
	if n, err := strconv.Atoi(os.Getenv("START_MONEY")); err == nil && n > 0 {
		return n
	}
	return 1500
}

// CreateSocketIOServer runs the realtime game server. Each game is one
// socket room; client events feed the engine and engine events broadcast
// back to the room.
func CreateSocketIOServer() {

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	games := newRegistry()

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "see", func(s socketio.Conn) {
		logrus.Debug("pinged")
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {

		var result map[string]string

		json.Unmarshal([]byte(jsonStr), &result)
		id, ok := result["game_id"]
		if !ok {
			logrus.Warn("game_id not passed")
			return
		}
		if !queries.VerifyGame(id, db) {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}
		user_id, ok := result["user_id"]
		if !ok {
			s.Emit("error-message", "User not authenticated")
			s.Emit("failed")
			return
		}

		user, err := queries.GetUserData(user_id, db)
		if err != nil {
			s.Emit("error-message", "User retrieval failed")
			s.Emit("failed")
			return
		}
		err = queries.CreatePlayer(models.Player{
			Game_id:  id,
			User_id:  user_id,
			Username: user.Email,
		}, db)

		if err != nil {
			logrus.WithError(err).Warn("failed creating player")
			s.Emit("error-message", "Failed creating player")
			s.Emit("failed")
			return
		}

		server.BroadcastToRoom("/", id, "player-join")
		s.Join(id)
		players := server.RoomLen("/", id)

		s.Emit("joined-game", strconv.Itoa(players))
		logrus.WithFields(logrus.Fields{"conn": s.ID(), "game": id}).Info("joined room")
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		game_id, user_id := result["game_id"], result["user_id"]

		s.Leave(game_id)
		queries.DeletePlayer(user_id, game_id, db)
		server.BroadcastToRoom("/", game_id, "player-left")

		lg := games.get(game_id)
		if lg == nil {
			conn := pool.Get()
			defer conn.Close()
			queries.RemoveSeat(game_id, user_id, &conn)
			return
		}
		// Mid-game leave: liquidate the seat and abandon any input the
		// turn loop is waiting on from this player.
		if seat := lg.seatOf(user_id); seat != -1 {
			lg.game.Resign(seat)
			lg.seq.Kick(seat)
		}
		if lg.humansLeft() == 0 {
			games.remove(game_id)
			queries.CleanUpGame(game_id, db)
			conn := pool.Get()
			defer conn.Close()
			queries.ClearGame(game_id, &conn)
		}
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		game_id, ok := result["game_id"]
		if !ok {
			game_id = jsonStr // old clients send the bare id
		}
		bots, _ := strconv.Atoi(result["bots"])

		if games.get(game_id) != nil {
			s.Emit("error-message", "Game already running")
			return
		}

		lg, roster, err := launchGame(game_id, bots, db, server, pool)
		if err != nil {
			logrus.WithError(err).WithField("game", game_id).Error("unable to start game")
			s.Emit("error-message", "Unable to start game")
			return
		}
		games.put(lg)

		rosterJson, err := json.Marshal(roster)
		if err != nil {
			panic(err)
		}
		server.BroadcastToRoom("/", game_id, "game-start", string(rosterJson))
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		lg, seat := liveSeat(games, jsonStr, s)
		if lg == nil {
			return
		}
		switch lg.seq.Roll(seat) {
		case engine.ErrNotYourTurn:
			s.Emit("error-message", "Not your turn")
		case engine.ErrWrongPhase:
			s.Emit("error-message", "You have already rolled the dice")
		}
	})

	server.OnEvent("/", "request-buy", func(s socketio.Conn, jsonStr string) {
		lg, seat := liveSeat(games, jsonStr, s)
		if lg == nil {
			return
		}
		if !isActive(lg, seat) {
			s.Emit("error-message", "Not your turn")
			return
		}
		p, err := lg.game.Player(seat)
		if err != nil {
			return
		}
		if !lg.game.Buy(seat, p.Position) {
			s.Emit("error-message", "Unable to buy this property")
		}
	})

	server.OnEvent("/", "buy-house", func(s socketio.Conn, jsonStr string) {
		lg, seat := liveSeat(games, jsonStr, s)
		if lg == nil {
			return
		}
		card_pos, err := tilePos(jsonStr)
		if err != nil {
			return
		}
		if !isActive(lg, seat) {
			s.Emit("error-message", "It must be your turn and your property to perform this action")
			return
		}
		if !lg.game.Upgrade(seat, card_pos) {
			s.Emit("error-message", "Unable to build a house here")
		}
	})

	server.OnEvent("/", "mortgage", func(s socketio.Conn, jsonStr string) {
		lg, seat := liveSeat(games, jsonStr, s)
		if lg == nil {
			return
		}
		card_pos, err := tilePos(jsonStr)
		if err != nil {
			return
		}
		if !lg.game.Mortgage(seat, card_pos) {
			s.Emit("error-message", "Unable to mortgage this property")
		}
	})

	server.OnEvent("/", "unmortgage", func(s socketio.Conn, jsonStr string) {
		lg, seat := liveSeat(games, jsonStr, s)
		if lg == nil {
			return
		}
		card_pos, err := tilePos(jsonStr)
		if err != nil {
			return
		}
		if !lg.game.Unmortgage(seat, card_pos) {
			s.Emit("error-message", "Unable to lift the mortgage")
		}
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		lg, seat := liveSeat(games, jsonStr, s)
		if lg == nil {
			return
		}
		switch lg.seq.EndTurn(seat) {
		case engine.ErrNotYourTurn:
			s.Emit("error-message", "Not your turn")
		case engine.ErrWrongPhase:
			s.Emit("error-message", "You must roll the die first!")
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		rooms := s.Rooms()
		for _, room := range rooms {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{envOr("CORS_ORIGIN", "http://localhost:3000")},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(envOr("SOCKET_ADDR", ":8000"), c.Handler(mux))
}
