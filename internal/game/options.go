// internal/game/options.go
package game

import (
	"fmt"
	"time"

	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// Options configures a single game. The zero value plays the base game with
// a random seed.
type Options struct {
	Seed         int64    `json:"seed"`         // 0 picks a random seed
	Expansions   []string `json:"expansions"`   // dodge_city, high_noon, fistful_of_cards, wild_west_show
	EventCadence int      `json:"eventCadence"` // Sheriff turns between event draws; default 1

	Logger *logrus.Logger `json:"-"`
}

var knownExpansions = map[string]bool{
	models.ExpansionDodgeCity:    true,
	models.ExpansionHighNoon:     true,
	models.ExpansionFistful:      true,
	models.ExpansionWildWestShow: true,
}

func (o Options) withDefaults() Options {
	if o.Seed == 0 {
		seed, err := NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		o.Seed = seed
	}
	if o.EventCadence < 1 {
		o.EventCadence = 1
	}
	return o
}

// Has reports whether the named expansion is enabled.
func (o Options) Has(expansion string) bool {
	for _, e := range o.Expansions {
		if e == expansion {
			return true
		}
	}
	return false
}

// Update applies loosely typed settings, as they arrive in a create-game
// JSON body. Keys that are absent keep their current value.
func (o *Options) Update(newOpts map[string]interface{}) error {
	assignInt := func(field *int, key string, minVal int) error {
		val, exists := newOpts[key]
		if !exists || val == nil {
			return nil
		}
		switch v := val.(type) {
		case float64:
			*field = int(v)
		case int:
			*field = v
		case int64:
			*field = int(v)
		default:
			return fmt.Errorf("invalid type for %s", key)
		}
		if *field < minVal {
			return fmt.Errorf("%s must be at least %d", key, minVal)
		}
		return nil
	}

	if val, exists := newOpts["seed"]; exists && val != nil {
		switch v := val.(type) {
		case float64:
			o.Seed = int64(v)
		case int:
			o.Seed = int64(v)
		case int64:
			o.Seed = v
		default:
			return fmt.Errorf("invalid type for seed")
		}
	}

	if err := assignInt(&o.EventCadence, "eventCadence", 1); err != nil {
		return err
	}

	if val, exists := newOpts["expansions"]; exists && val != nil {
		var list []string
		switch v := val.(type) {
		case []string:
			list = v
		case []interface{}:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("invalid type for expansions")
				}
				list = append(list, s)
			}
		default:
			return fmt.Errorf("invalid type for expansions")
		}
		for _, e := range list {
			if !knownExpansions[e] {
				return fmt.Errorf("unknown expansion %q", e)
			}
		}
		o.Expansions = list
	}
	return nil
}

// ParseOptions applies opts on top of current and returns the result.
func ParseOptions(opts map[string]interface{}, current Options) (Options, error) {
	out := current
	err := out.Update(opts)
	return out, err
}
