package models

type Player struct {
	User_id  string
	Game_id  string
	Username string
	Active   string
}

// PlayerDto is the roster entry broadcast to clients when a game starts and
// mirrored into redis for cheap re-sync.
type PlayerDto struct {
	Seat     int    `json:"seat"`
	User_id  string `json:"user_id"`
	Username string `json:"username"`
	Computer bool   `json:"computer"`
	Balance  int    `json:"balance"`
	Pos      int    `json:"pos"`
	Color    string `json:"color"`
}
