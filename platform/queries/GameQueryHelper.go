package queries

import (
	"fmt"
	"strconv"

	"github.com/Behram484/Monopoly/platform/cache"
	"github.com/gomodule/redigo/redis"
)

// The redis keys mirror live engine state so rejoining clients can re-sync
// without replaying events: `<game>` holds the active user id,
// `<game>.order` the seating list, `<game>.<user>` a hash of bal and pos.

func IsUserTurn(game_id string, user_id string, conn *redis.Conn) bool {
	val, err := cache.Get(game_id, conn)
	if err != nil {
		return false
	}
	return val == user_id
}

func SetTurn(game_id string, user_id string, conn *redis.Conn) {
	cache.Set(game_id, user_id, conn)
}

func SeatPlayers(game_id string, user_ids []string, conn *redis.Conn) error {
	values := make([]interface{}, 0, len(user_ids))
	for _, id := range user_ids {
		values = append(values, id)
	}
	return cache.RPUSH(fmt.Sprintf("%s.order", game_id), values, conn)
}

func MirrorBalance(game_id string, user_id string, bal int, conn *redis.Conn) {
	cache.HSET(fmt.Sprintf("%s.%s", game_id, user_id), "bal", strconv.Itoa(bal), conn)
}

func MirrorPosition(game_id string, user_id string, pos int, conn *redis.Conn) {
	cache.HSET(fmt.Sprintf("%s.%s", game_id, user_id), "pos", strconv.Itoa(pos), conn)
}

func RemoveSeat(game_id string, user_id string, conn *redis.Conn) {
	cache.Del(fmt.Sprintf("%s.%s", game_id, user_id), conn)
	cache.LREM(fmt.Sprintf("%s.order", game_id), user_id, conn)
}

// ClearGame drops every redis key the game wrote.
func ClearGame(game_id string, conn *redis.Conn) {
	res, _ := cache.LGET(fmt.Sprintf("%s.order", game_id), conn)
	for _, id := range res {
		cache.Del(fmt.Sprintf("%s.%s", game_id, string(id.([]byte))), conn)
	}
	cache.Del(game_id, conn)
	cache.Del(fmt.Sprintf("%s.order", game_id), conn)
}
