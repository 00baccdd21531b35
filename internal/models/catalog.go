package models

// Expansion names used by the catalogue and game options.
const (
	ExpansionBase         = "base"
	ExpansionDodgeCity    = "dodge_city"
	ExpansionHighNoon     = "high_noon"
	ExpansionFistful      = "fistful_of_cards"
	ExpansionWildWestShow = "wild_west_show"
)

// CardSpec holds the static attributes shared by every copy of a card type.
type CardSpec struct {
	Kind             Kind
	Slot             string
	Range            int
	RangeModifier    int
	DistanceModifier int
	UnlimitedBang    bool
	Expansion        string
}

// Catalog is the static card table the engine reads.
var Catalog = map[CardName]CardSpec{
	Bang:         {Kind: KindBrown, Expansion: ExpansionBase},
	Missed:       {Kind: KindBrown, Expansion: ExpansionBase},
	Beer:         {Kind: KindBrown, Expansion: ExpansionBase},
	Saloon:       {Kind: KindBrown, Expansion: ExpansionBase},
	Stagecoach:   {Kind: KindBrown, Expansion: ExpansionBase},
	WellsFargo:   {Kind: KindBrown, Expansion: ExpansionBase},
	Panic:        {Kind: KindBrown, Expansion: ExpansionBase},
	CatBalou:     {Kind: KindBrown, Expansion: ExpansionBase},
	Gatling:      {Kind: KindBrown, Expansion: ExpansionBase},
	Indians:      {Kind: KindBrown, Expansion: ExpansionBase},
	Duel:         {Kind: KindBrown, Expansion: ExpansionBase},
	GeneralStore: {Kind: KindBrown, Expansion: ExpansionBase},
	Barrel:       {Kind: KindBlue, Expansion: ExpansionBase},
	Scope:        {Kind: KindBlue, RangeModifier: 1, Expansion: ExpansionBase},
	Mustang:      {Kind: KindBlue, DistanceModifier: 1, Expansion: ExpansionBase},
	Jail:         {Kind: KindBlue, Expansion: ExpansionBase},
	Dynamite:     {Kind: KindBlue, Expansion: ExpansionBase},
	Volcanic:     {Kind: KindBlue, Slot: SlotGun, Range: 1, UnlimitedBang: true, Expansion: ExpansionBase},
	Schofield:    {Kind: KindBlue, Slot: SlotGun, Range: 2, Expansion: ExpansionBase},
	Remington:    {Kind: KindBlue, Slot: SlotGun, Range: 3, Expansion: ExpansionBase},
	RevCarabine:  {Kind: KindBlue, Slot: SlotGun, Range: 4, Expansion: ExpansionBase},
	Winchester:   {Kind: KindBlue, Slot: SlotGun, Range: 5, Expansion: ExpansionBase},

	Punch:        {Kind: KindBrown, Expansion: ExpansionDodgeCity},
	Dodge:        {Kind: KindBrown, Expansion: ExpansionDodgeCity},
	Springfield:  {Kind: KindBrown, Expansion: ExpansionDodgeCity},
	Whisky:       {Kind: KindBrown, Expansion: ExpansionDodgeCity},
	Tequila:      {Kind: KindBrown, Expansion: ExpansionDodgeCity},
	RagTime:      {Kind: KindBrown, Expansion: ExpansionDodgeCity},
	Brawl:        {Kind: KindBrown, Expansion: ExpansionDodgeCity},
	Binocular:    {Kind: KindBlue, RangeModifier: 1, Expansion: ExpansionDodgeCity},
	Hideout:      {Kind: KindBlue, DistanceModifier: 1, Expansion: ExpansionDodgeCity},
	Bible:        {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	IronPlate:    {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	Sombrero:     {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	TenGallonHat: {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	Canteen:      {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	CanCan:       {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	Conestoga:    {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	Derringer:    {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	Knife:        {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	Pepperbox:    {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	BuffaloRifle: {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	Howitzer:     {Kind: KindGreen, Expansion: ExpansionDodgeCity},
	PonyExpress:  {Kind: KindGreen, Expansion: ExpansionDodgeCity},
}

// DeckEntry is one physical card of a deck composition.
type DeckEntry struct {
	Name CardName
	Suit Suit
	Rank int
}

func run(name CardName, suit Suit, from, to int) []DeckEntry {
	out := make([]DeckEntry, 0, to-from+1)
	for r := from; r <= to; r++ {
		out = append(out, DeckEntry{Name: name, Suit: suit, Rank: r})
	}
	return out
}

func entries(name CardName, pairs ...interface{}) []DeckEntry {
	out := make([]DeckEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, DeckEntry{Name: name, Rank: pairs[i].(int), Suit: pairs[i+1].(Suit)})
	}
	return out
}

// BaseDeck is the 80-card composition of the base game.
func BaseDeck() []DeckEntry {
	var d []DeckEntry
	d = append(d, entries(Bang, 1, Spades)...)
	d = append(d, run(Bang, Diamonds, 1, 13)...)
	d = append(d, run(Bang, Clubs, 2, 9)...)
	d = append(d, run(Bang, Hearts, 11, 13)...)
	d = append(d, run(Missed, Clubs, 9, 13)...)
	d = append(d, run(Missed, Spades, 2, 8)...)
	d = append(d, run(Beer, Hearts, 6, 11)...)
	d = append(d, entries(Panic, 11, Hearts, 12, Hearts, 1, Hearts, 8, Diamonds)...)
	d = append(d, entries(CatBalou, 13, Hearts, 9, Diamonds, 10, Diamonds, 11, Diamonds)...)
	d = append(d, entries(Stagecoach, 9, Spades, 9, Spades)...)
	d = append(d, entries(WellsFargo, 3, Hearts)...)
	d = append(d, entries(Gatling, 10, Hearts)...)
	d = append(d, entries(Indians, 13, Diamonds, 1, Diamonds)...)
	d = append(d, entries(Duel, 12, Diamonds, 11, Spades, 8, Clubs)...)
	d = append(d, entries(GeneralStore, 9, Clubs, 12, Spades)...)
	d = append(d, entries(Saloon, 5, Hearts)...)
	d = append(d, entries(Barrel, 12, Spades, 13, Spades)...)
	d = append(d, entries(Scope, 1, Spades)...)
	d = append(d, entries(Mustang, 8, Hearts, 9, Hearts)...)
	d = append(d, entries(Jail, 11, Spades, 10, Spades, 4, Hearts)...)
	d = append(d, entries(Dynamite, 2, Hearts)...)
	d = append(d, entries(Volcanic, 10, Spades, 10, Clubs)...)
	d = append(d, entries(Schofield, 11, Clubs, 12, Clubs, 13, Spades)...)
	d = append(d, entries(Remington, 13, Clubs)...)
	d = append(d, entries(RevCarabine, 1, Clubs)...)
	d = append(d, entries(Winchester, 8, Spades)...)
	return d
}

// DodgeCityDeck is the 40-card Dodge City addition.
func DodgeCityDeck() []DeckEntry {
	var d []DeckEntry
	d = append(d, entries(Bang, 8, Spades, 5, Clubs, 6, Clubs, 13, Clubs)...)
	d = append(d, entries(Missed, 8, Diamonds)...)
	d = append(d, entries(Beer, 6, Spades)...)
	d = append(d, entries(CatBalou, 8, Clubs)...)
	d = append(d, entries(Duel, 7, Spades)...)
	d = append(d, entries(GeneralStore, 1, Spades)...)
	d = append(d, entries(Indians, 5, Diamonds)...)
	d = append(d, entries(Panic, 11, Hearts)...)
	d = append(d, entries(Mustang, 5, Hearts)...)
	d = append(d, entries(Dynamite, 10, Clubs)...)
	d = append(d, entries(Barrel, 1, Clubs)...)
	d = append(d, entries(Remington, 6, Diamonds)...)
	d = append(d, entries(RevCarabine, 5, Spades)...)
	d = append(d, entries(Punch, 10, Spades)...)
	d = append(d, entries(Dodge, 7, Diamonds, 13, Hearts)...)
	d = append(d, entries(Springfield, 13, Spades)...)
	d = append(d, entries(Whisky, 12, Hearts)...)
	d = append(d, entries(Tequila, 9, Clubs)...)
	d = append(d, entries(RagTime, 9, Hearts)...)
	d = append(d, entries(Brawl, 11, Spades)...)
	d = append(d, entries(Binocular, 10, Diamonds)...)
	d = append(d, entries(Hideout, 13, Diamonds)...)
	d = append(d, entries(Bible, 10, Hearts)...)
	d = append(d, entries(Canteen, 7, Hearts)...)
	d = append(d, entries(CanCan, 11, Clubs)...)
	d = append(d, entries(Conestoga, 9, Diamonds)...)
	d = append(d, entries(Derringer, 7, Spades)...)
	d = append(d, entries(Howitzer, 9, Spades)...)
	d = append(d, entries(IronPlate, 1, Diamonds, 12, Spades)...)
	d = append(d, entries(Knife, 8, Hearts)...)
	d = append(d, entries(Pepperbox, 1, Hearts)...)
	d = append(d, entries(BuffaloRifle, 12, Clubs)...)
	d = append(d, entries(PonyExpress, 12, Diamonds)...)
	d = append(d, entries(Sombrero, 7, Clubs)...)
	d = append(d, entries(TenGallonHat, 11, Diamonds)...)
	return d
}

// BuildDeck instantiates fresh cards for the base game plus the enabled
// card expansions. Event-only expansions add no playing cards.
func BuildDeck(expansions []string) []*Card {
	comp := BaseDeck()
	for _, e := range expansions {
		if e == ExpansionDodgeCity {
			comp = append(comp, DodgeCityDeck()...)
		}
	}
	cards := make([]*Card, 0, len(comp))
	for _, e := range comp {
		cards = append(cards, MustCard(e.Name, e.Suit, e.Rank))
	}
	return cards
}
