package queries

import (
	"github.com/Behram484/Monopoly/app/models"
	"github.com/go-pg/pg/v10"
	"github.com/sirupsen/logrus"
)

func VerifyGame(id string, db *pg.DB) bool {
	game := &models.Game{Id: id}
	err := db.Model(game).WherePK().Select()
	return err == nil
}

func GetUserData(user_id string, db *pg.DB) (models.User, error) {
	user := models.User{Id: user_id}
	err := db.Model(&user).WherePK().Select()
	return user, err
}

func CreatePlayer(player models.Player, db *pg.DB) error {
	_, err := db.Model(&player).Insert()
	return err
}

func PlayersInGame(game_id string, db *pg.DB) ([]models.Player, error) {
	var players []models.Player
	err := db.Model(&players).Where("game_id = ?", game_id).Select()
	return players, err
}

func MarkInProgress(game_id string, db *pg.DB) error {
	game := &models.Game{Id: game_id}
	_, err := db.Model(game).WherePK().Set("status = ?", models.GameInProgress).Update()
	return err
}

func DeletePlayer(user_id string, game_id string, db *pg.DB) error {
	player := new(models.Player)
	_, err := db.Model(player).Where("user_id = ? and game_id = ?", user_id, game_id).Delete()
	if err != nil {
		logrus.WithError(err).Warn("failed deleting player row")
	}
	CheckDB(game_id, db)
	return err
}

// CheckDB drops the game row once no players reference it.
func CheckDB(game_id string, db *pg.DB) {
	var players []models.Player
	err := db.Model(&players).Where("game_id = ?", game_id).Select()
	if err != nil || len(players) == 0 {
		game := new(models.Game)
		db.Model(game).Where("id = ?", game_id).Delete()
	}
}

// CleanUpGame removes every trace of a finished or abandoned game.
func CleanUpGame(game_id string, db *pg.DB) {
	player := new(models.Player)
	game := new(models.Game)
	db.Model(player).Where("game_id = ?", game_id).Delete()
	db.Model(game).Where("id = ?", game_id).Delete()
}
