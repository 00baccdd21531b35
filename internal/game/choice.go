package game

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// DrawChoice carries the player's decisions for a suspended draw phase.
// Cards are referenced by ID, players by name.
type DrawChoice struct {
	Target         string   `json:"target"`         // Jesse Jones: player to draw from
	Discard        int      `json:"discard"`        // Kit Carlson: index of the card put back
	FromDiscard    bool     `json:"fromDiscard"`    // Pedro Ramirez
	BlueCard       string   `json:"blueCard"`       // José Delgado
	EquipmentOwner string   `json:"equipmentOwner"` // Pat Brennan
	EquipmentCard  string   `json:"equipmentCard"`  // Pat Brennan
	Heal           bool     `json:"heal"`           // Hard Liquor
	Guesses        []string `json:"guesses"`        // Peyote: "red" or "black"
	RanchDiscards  []int    `json:"ranchDiscards"`  // Ranch: hand indices
	Suit           string   `json:"suit"`           // Handcuffs
	GiveLife       string   `json:"giveLife"`       // Blood Brothers
	NewIdentity    bool     `json:"newIdentity"`    // New Identity
}

// DecodeDrawChoice builds a DrawChoice from loosely typed client arguments.
func DecodeDrawChoice(raw map[string]interface{}) (DrawChoice, error) {
	var choice DrawChoice
	if len(raw) == 0 {
		return choice, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToIntHookFunc(),
			stringToBoolHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result:  &choice,
		TagName: "json",
	})
	if err != nil {
		return choice, fmt.Errorf("draw choice decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return choice, fmt.Errorf("decode draw choice: %w", err)
	}
	return choice, nil
}

func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Int {
			return strconv.Atoi(data.(string))
		}
		return data, nil
	}
}

func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Bool {
			return strconv.ParseBool(data.(string))
		}
		return data, nil
	}
}
