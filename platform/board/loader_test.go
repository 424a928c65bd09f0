package board

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Behram484/Monopoly/platform/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "boardcfg")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadShippedBoard(t *testing.T) {
	b, err := LoadBoard("board.json")
	require.NoError(t, err)

	assert.Equal(t, 24, b.Len())
	assert.Equal(t, 6, b.JailIndex)
	assert.Equal(t, 200, b.StartBonus)
	assert.Equal(t, engine.Jail, b.Tiles[b.JailIndex].Kind)
	assert.Equal(t, engine.Start, b.Tiles[0].Kind)

	mayfair := b.Tiles[23]
	assert.Equal(t, "Mayfair", mayfair.Name)
	assert.Equal(t, 400, mayfair.Price)
	assert.Equal(t, 200, mayfair.UpgradeCost)
	assert.Equal(t, -1, mayfair.OwnerIndex)
	assert.Equal(t, mayfair.BaseToll, mayfair.RentByLevel[0])
	assert.Equal(t, 2000, mayfair.RentByLevel[5])

	for i, tile := range b.Tiles {
		assert.Equal(t, -1, tile.OwnerIndex, "tile %d starts unowned", i)
		assert.Equal(t, tile.BaseToll, tile.RentByLevel[0], "tile %d level 0 rent is its toll", i)
	}
}

func TestLoadShippedDecks(t *testing.T) {
	chance, community, err := LoadDecks("cards.json")
	require.NoError(t, err)

	assert.NotEmpty(t, chance)
	assert.NotEmpty(t, community)
	for _, c := range chance {
		assert.Equal(t, engine.ChanceCard, c.Type)
		assert.True(t, engine.KnownAction(c.Effect), "card %q", c.Title)
	}
	for _, c := range community {
		assert.Equal(t, engine.CommunityCard, c.Type)
		assert.True(t, engine.KnownAction(c.Effect), "card %q", c.Title)
	}
}

func TestShippedConfigStartsAGame(t *testing.T) {
	b, err := LoadBoard("board.json")
	require.NoError(t, err)
	chance, community, err := LoadDecks("cards.json")
	require.NoError(t, err)

	_, err = engine.New(engine.Config{
		Board:     b,
		Chance:    chance,
		Community: community,
		Players: []engine.PlayerSetup{
			{Name: "A", Controller: engine.Human, Money: 1500},
			{Name: "B", Controller: engine.Computer, Money: 1500},
		},
	})
	require.NoError(t, err)
}

func TestLoadBoardRejectsEmptyTrack(t *testing.T) {
	path := writeConfig(t, `{"jail": 0, "tiles": []}`)
	_, err := LoadBoard(path)
	assert.Error(t, err)
}

func TestLoadBoardRejectsJailOutOfRange(t *testing.T) {
	path := writeConfig(t, `{"jail": 5, "tiles": [{"name": "Start", "kind": "start"}]}`)
	_, err := LoadBoard(path)
	assert.Error(t, err)
}

func TestLoadBoardRejectsUnknownKind(t *testing.T) {
	path := writeConfig(t, `{"jail": 0, "tiles": [{"name": "Mystery", "kind": "volcano"}]}`)
	_, err := LoadBoard(path)
	assert.Error(t, err)
}

func TestLoadBoardRejectsTooManyRentLevels(t *testing.T) {
	path := writeConfig(t, `{"jail": 0, "tiles": [
		{"name": "Start", "kind": "start"},
		{"name": "Long Street", "kind": "normal", "rents": [1, 2, 3, 4, 5, 6]}
	]}`)
	_, err := LoadBoard(path)
	assert.Error(t, err)
}

func TestLoadBoardRejectsMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"jail": 0,`)
	_, err := LoadBoard(path)
	assert.Error(t, err)
}

func TestLoadDecksRejectsUnknownAction(t *testing.T) {
	path := writeConfig(t, `{"chance": [{"title": "Oops", "action": "summon-dragon"}]}`)
	_, _, err := LoadDecks(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadBoard("no-such-file.json")
	assert.Error(t, err)
	_, _, err = LoadDecks("no-such-file.json")
	assert.Error(t, err)
}
