package models

import "sort"

// Metadata is the fixed set of per-turn and per-game flags carried by a
// player. The zero value is the default for every field.
type Metadata struct {
	// Derived from the player's abilities; rebuilt by the engine whenever the
	// ability set or the no_abilities event flag changes.
	UnlimitedBang         bool
	BangAsMissed          bool
	MissedAsBang          bool
	AnyAsMissed           bool
	DoubleMiss            bool
	HandLimit             int // 0 means "current health"
	NoHandLimit           bool
	DrawWhenEmpty         bool
	IgnoreOthersEquipment bool
	BuiltinBarrel         bool
	LuckyDraw             bool
	RangeBonus            int
	DistanceBonus         int
	DrawCount             int // 0 means the default of 2
	BeerHeal              int // 0 means 1

	// Reset at the start of the owner's turn.
	BangsPlayed   int
	DocFreeBang   int
	DocUsed       bool
	UncleWillUsed bool
	VeraCopy      CharacterID
	Dodged        bool
	AwaitingDraw  bool
	DrawnThisTurn bool
	MustPlay      *Card
	TurnRepeated  bool

	// Persist across turns.
	SkipTurn       bool
	IdentityOffer  CharacterID
	NoAutoResponse bool
	Ghost          bool
}

// ResetDerived clears every ability-derived field.
func (m *Metadata) ResetDerived() {
	m.UnlimitedBang = false
	m.BangAsMissed = false
	m.MissedAsBang = false
	m.AnyAsMissed = false
	m.DoubleMiss = false
	m.HandLimit = 0
	m.NoHandLimit = false
	m.DrawWhenEmpty = false
	m.IgnoreOthersEquipment = false
	m.BuiltinBarrel = false
	m.LuckyDraw = false
	m.RangeBonus = 0
	m.DistanceBonus = 0
	m.DrawCount = 0
	m.BeerHeal = 0
}

// ResetTurn clears the per-turn fields at the start of the owner's turn.
func (m *Metadata) ResetTurn() {
	m.BangsPlayed = 0
	m.DocFreeBang = 0
	m.DocUsed = false
	m.UncleWillUsed = false
	m.VeraCopy = CharacterNone
	m.Dodged = false
	m.AwaitingDraw = false
	m.DrawnThisTurn = false
	m.MustPlay = nil
	m.TurnRepeated = false
}

// Equipment is the ordered list of cards a player has in play. At most one
// card per name and at most one weapon.
type Equipment []*Card

// Get returns the equipped card with the given name.
func (e Equipment) Get(name CardName) *Card {
	for _, c := range e {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (e Equipment) Has(name CardName) bool {
	return e.Get(name) != nil
}

// Gun returns the equipped weapon, or nil.
func (e Equipment) Gun() *Card {
	for _, c := range e {
		if c.IsWeapon() {
			return c
		}
	}
	return nil
}

// Add puts c in play. A weapon replaces any weapon already equipped; the
// replaced card is returned so the caller can discard it. Adding a second
// card with a name already in play fails.
func (e *Equipment) Add(c *Card) (replaced *Card, ok bool) {
	if e.Has(c.Name) {
		return nil, false
	}
	if c.IsWeapon() {
		if old := e.Gun(); old != nil {
			e.Remove(old)
			replaced = old
		}
	}
	*e = append(*e, c)
	return replaced, true
}

// Remove takes c out of play and reports whether it was there.
func (e *Equipment) Remove(c *Card) bool {
	for i, x := range *e {
		if x == c {
			*e = append((*e)[:i], (*e)[i+1:]...)
			return true
		}
	}
	return false
}

// AbilitySet is the effective set of character abilities a player holds.
type AbilitySet []CharacterID

func (s AbilitySet) Has(id CharacterID) bool {
	for _, a := range s {
		if a == id {
			return true
		}
	}
	return false
}

// Add inserts id, keeping the set sorted.
func (s *AbilitySet) Add(id CharacterID) {
	if id == CharacterNone || s.Has(id) {
		return
	}
	*s = append(*s, id)
	sort.Slice(*s, func(i, j int) bool { return (*s)[i] < (*s)[j] })
}

func (s *AbilitySet) Remove(id CharacterID) {
	for i, a := range *s {
		if a == id {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

// Player is a seat at the table.
type Player struct {
	Name      string      `json:"name"`
	Role      Role        `json:"role"`
	Character CharacterID `json:"character"`
	MaxHealth int         `json:"maxHealth"`
	Health    int         `json:"health"`
	Hand      []*Card     `json:"hand"`
	Equipment Equipment   `json:"equipment"`
	Dead      bool        `json:"dead"`

	Abilities AbilitySet `json:"-"`
	Meta      Metadata   `json:"-"`
}

// NewPlayer returns a player with the given name and no role or character.
// Either can be preset before the game starts to skip dealing it.
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// Alive reports whether the player takes turns. Ghosts revived by Ghost Town
// are alive at zero health.
func (p *Player) Alive() bool {
	return !p.Dead || p.Meta.Ghost
}

// HasAbility reports whether id is in the player's effective ability set.
func (p *Player) HasAbility(id CharacterID) bool {
	return p.Abilities.Has(id)
}

// HandIndex returns the position of c in the hand, or -1.
func (p *Player) HandIndex(c *Card) int {
	for i, h := range p.Hand {
		if h == c {
			return i
		}
	}
	return -1
}

func (p *Player) InHand(c *Card) bool {
	return p.HandIndex(c) >= 0
}

// RemoveFromHand removes c from the hand and reports whether it was there.
func (p *Player) RemoveFromHand(c *Card) bool {
	i := p.HandIndex(c)
	if i < 0 {
		return false
	}
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return true
}

// FindInHand returns the first hand card with the given name.
func (p *Player) FindInHand(name CardName) *Card {
	for _, c := range p.Hand {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Heal raises health by n without exceeding MaxHealth and returns the amount
// actually healed.
func (p *Player) Heal(n int) int {
	if n <= 0 || p.Health >= p.MaxHealth {
		return 0
	}
	before := p.Health
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	return p.Health - before
}
