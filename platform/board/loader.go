// Package board loads the static board layout and card decks from JSON
// configuration. Everything it returns is immutable input for the engine;
// validation failures are load errors, never silent no-ops in play.
package board

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/Behram484/Monopoly/platform/engine"
)

type tileConfig struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Group       string `json:"group"`
	Purchasable bool   `json:"purchasable"`
	Price       int    `json:"price"`
	Toll        int    `json:"toll"`
	Rents       []int  `json:"rents"` // levels 1..5
	Tax         int    `json:"tax"`
}

type boardConfig struct {
	JailIndex  int          `json:"jail"`
	StartBonus int          `json:"start_bonus"`
	Tiles      []tileConfig `json:"tiles"`
}

type cardConfig struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Value       int    `json:"value"`
}

type deckConfig struct {
	Chance    []cardConfig `json:"chance"`
	Community []cardConfig `json:"community"`
}

// LoadBoard reads and validates a board layout file.
func LoadBoard(path string) (*engine.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	var cfg boardConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("board config %s: %w", path, err)
	}
	return buildBoard(cfg)
}

func buildBoard(cfg boardConfig) (*engine.Board, error) {
	if len(cfg.Tiles) < 1 {
		return nil, fmt.Errorf("board config: no tiles")
	}
	if cfg.JailIndex < 0 || cfg.JailIndex >= len(cfg.Tiles) {
		return nil, fmt.Errorf("board config: jail index %d out of range", cfg.JailIndex)
	}
	b := &engine.Board{JailIndex: cfg.JailIndex, StartBonus: cfg.StartBonus}
	for i, tc := range cfg.Tiles {
		kind, err := engine.ParseTileKind(tc.Kind)
		if err != nil {
			return nil, fmt.Errorf("tile %d (%s): %w", i, tc.Name, err)
		}
		if len(tc.Rents) > engine.MaxLevel {
			return nil, fmt.Errorf("tile %d (%s): %d rent levels, max %d", i, tc.Name, len(tc.Rents), engine.MaxLevel)
		}
		t := &engine.Tile{
			Kind:        kind,
			Name:        tc.Name,
			Group:       tc.Group,
			Purchasable: tc.Purchasable,
			Price:       tc.Price,
			BaseToll:    tc.Toll,
			TaxAmount:   tc.Tax,
			UpgradeCost: engine.UpgradeCostFor(tc.Group),
			OwnerIndex:  -1,
		}
		t.RentByLevel[0] = tc.Toll
		for lvl, rent := range tc.Rents {
			t.RentByLevel[lvl+1] = rent
		}
		b.Tiles = append(b.Tiles, t)
	}
	return b, nil
}

// LoadDecks reads the chance and community decks from one file. Every card
// must name an action the engine can execute.
func LoadDecks(path string) (chance, community []engine.Card, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	raw, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	var cfg deckConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, nil, fmt.Errorf("deck config %s: %w", path, err)
	}
	chance, err = buildDeck(cfg.Chance, engine.ChanceCard)
	if err != nil {
		return nil, nil, err
	}
	community, err = buildDeck(cfg.Community, engine.CommunityCard)
	if err != nil {
		return nil, nil, err
	}
	return chance, community, nil
}

func buildDeck(cards []cardConfig, kind engine.CardType) ([]engine.Card, error) {
	var out []engine.Card
	for i, cc := range cards {
		action, err := engine.ParseActionKind(cc.Action)
		if err != nil {
			return nil, fmt.Errorf("%s card %d (%s): %w", kind, i, cc.Title, err)
		}
		if !engine.KnownAction(action) {
			return nil, fmt.Errorf("%s card %d (%s): action %s has no handler", kind, i, cc.Title, action)
		}
		out = append(out, engine.Card{
			Type:        kind,
			Title:       cc.Title,
			Description: cc.Description,
			Effect:      action,
			Value:       cc.Value,
		})
	}
	return out, nil
}
