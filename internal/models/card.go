// internal/models/card.go
package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownCard is returned when a card name has no catalogue entry.
var ErrUnknownCard = errors.New("unknown card")

// Suit of a playing card. The zero value means the card carries no suit.
type Suit int

const (
	SuitNone Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

var suitNames = map[Suit]string{
	SuitNone: "",
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
}

func (s Suit) String() string {
	return suitNames[s]
}

// IsRed reports whether the suit is Hearts or Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// MarshalText encodes the suit by name so snapshots stay readable.
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSuit maps a suit name ("hearts", "H", ...) back to a Suit.
func ParseSuit(name string) (Suit, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hearts", "heart", "h":
		return Hearts, true
	case "diamonds", "diamond", "d":
		return Diamonds, true
	case "clubs", "club", "c":
		return Clubs, true
	case "spades", "spade", "s":
		return Spades, true
	}
	return SuitNone, false
}

// Kind is the border colour / category of a card.
type Kind string

const (
	KindBrown     Kind = "brown"
	KindBlue      Kind = "blue"
	KindGreen     Kind = "green"
	KindEvent     Kind = "event"
	KindRole      Kind = "role"
	KindCharacter Kind = "character"
)

// SlotGun is the equipment slot shared by every weapon.
const SlotGun = "gun"

// CardName identifies a card type in the catalogue.
type CardName string

// Base game.
const (
	Bang         CardName = "Bang!"
	Missed       CardName = "Missed!"
	Beer         CardName = "Beer"
	Saloon       CardName = "Saloon"
	Stagecoach   CardName = "Stagecoach"
	WellsFargo   CardName = "Wells Fargo"
	Panic        CardName = "Panic!"
	CatBalou     CardName = "Cat Balou"
	Gatling      CardName = "Gatling"
	Indians      CardName = "Indians!"
	Duel         CardName = "Duel"
	GeneralStore CardName = "General Store"
	Barrel       CardName = "Barrel"
	Scope        CardName = "Scope"
	Mustang      CardName = "Mustang"
	Jail         CardName = "Jail"
	Dynamite     CardName = "Dynamite"
	Volcanic     CardName = "Volcanic"
	Schofield    CardName = "Schofield"
	Remington    CardName = "Remington"
	RevCarabine  CardName = "Rev. Carabine"
	Winchester   CardName = "Winchester"
)

// Dodge City.
const (
	Punch        CardName = "Punch"
	Dodge        CardName = "Dodge"
	Springfield  CardName = "Springfield"
	Whisky       CardName = "Whisky"
	Tequila      CardName = "Tequila"
	RagTime      CardName = "Rag Time"
	Brawl        CardName = "Brawl"
	Binocular    CardName = "Binocular"
	Hideout      CardName = "Hideout"
	Bible        CardName = "Bible"
	IronPlate    CardName = "Iron Plate"
	Sombrero     CardName = "Sombrero"
	TenGallonHat CardName = "Ten Gallon Hat"
	Canteen      CardName = "Canteen"
	CanCan       CardName = "Can Can"
	Conestoga    CardName = "Conestoga"
	Derringer    CardName = "Derringer"
	Knife        CardName = "Knife"
	Pepperbox    CardName = "Pepperbox"
	BuffaloRifle CardName = "Buffalo Rifle"
	Howitzer     CardName = "Howitzer"
	PonyExpress  CardName = "Pony Express"
)

// Card is a single physical card. Everything except Active is fixed once the
// card has been built from the catalogue.
type Card struct {
	ID   uuid.UUID `json:"id"`
	Name CardName  `json:"name"`
	Kind Kind      `json:"kind"`
	Suit Suit      `json:"suit,omitempty"`
	Rank int       `json:"rank,omitempty"`

	Slot             string `json:"slot,omitempty"`
	Range            int    `json:"range,omitempty"`
	RangeModifier    int    `json:"rangeModifier,omitempty"`
	DistanceModifier int    `json:"distanceModifier,omitempty"`
	GreenBorder      bool   `json:"greenBorder,omitempty"`
	UnlimitedBang    bool   `json:"-"`

	// Active is false for a green-bordered card until its owner's turn ends.
	Active bool `json:"active,omitempty"`

	// Bonus marks cards created mid-game (Doc Holyday's Bang!). Only the
	// creator's turn grant lets it skip the Bang! limit.
	Bonus bool `json:"bonus,omitempty"`
}

// NewCard builds a card from the catalogue entry for name.
func NewCard(name CardName, suit Suit, rank int) (*Card, error) {
	def, ok := Catalog[name]
	if !ok {
		return nil, fmt.Errorf("new card %q: %w", name, ErrUnknownCard)
	}
	if rank < 0 || rank > 13 {
		return nil, fmt.Errorf("new card %q: rank %d out of range", name, rank)
	}
	return &Card{
		ID:               uuid.New(),
		Name:             name,
		Kind:             def.Kind,
		Suit:             suit,
		Rank:             rank,
		Slot:             def.Slot,
		Range:            def.Range,
		RangeModifier:    def.RangeModifier,
		DistanceModifier: def.DistanceModifier,
		GreenBorder:      def.Kind == KindGreen,
		UnlimitedBang:    def.UnlimitedBang,
		Active:           def.Kind != KindGreen,
	}, nil
}

// MustCard is NewCard for catalogue names known at compile time.
func MustCard(name CardName, suit Suit, rank int) *Card {
	c, err := NewCard(name, suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// IsEquipment reports whether the card stays in play in front of a player.
func (c *Card) IsEquipment() bool {
	return c.Kind == KindBlue || c.Kind == KindGreen
}

// IsWeapon reports whether the card occupies the gun slot.
func (c *Card) IsWeapon() bool {
	return c.Slot == SlotGun
}

func (c *Card) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.Suit == SuitNone {
		return string(c.Name)
	}
	return fmt.Sprintf("%s (%d of %s)", c.Name, c.Rank, c.Suit)
}
