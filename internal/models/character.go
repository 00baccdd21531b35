package models

// CharacterID is the closed set of playable characters.
type CharacterID int

const (
	CharacterNone CharacterID = iota

	BartCassidy
	BlackJack
	CalamityJanet
	ElGringo
	JesseJones
	Jourdonnais
	KitCarlson
	LuckyDuke
	PaulRegret
	PedroRamirez
	RoseDoolan
	SidKetchum
	SlabTheKiller
	SuzyLafayette
	VultureSam
	WillyTheKid

	ApacheKid
	BelleStar
	BillNoface
	ChuckWengam
	DocHolyday
	ElenaFuente
	GregDigger
	HerbHunter
	JoseDelgado
	MollyStark
	PatBrennan
	PixiePete
	SeanMallory
	TequilaJoe
	VeraCuster

	UncleWill
	JohnnyKisch
)

// CharacterSpec holds the static data printed on a character card.
type CharacterSpec struct {
	Name      string
	MaxHealth int
	Expansion string
}

// Characters is the character table, keyed by ID.
var Characters = map[CharacterID]CharacterSpec{
	BartCassidy:   {"Bart Cassidy", 4, ExpansionBase},
	BlackJack:     {"Black Jack", 4, ExpansionBase},
	CalamityJanet: {"Calamity Janet", 4, ExpansionBase},
	ElGringo:      {"El Gringo", 3, ExpansionBase},
	JesseJones:    {"Jesse Jones", 4, ExpansionBase},
	Jourdonnais:   {"Jourdonnais", 4, ExpansionBase},
	KitCarlson:    {"Kit Carlson", 4, ExpansionBase},
	LuckyDuke:     {"Lucky Duke", 4, ExpansionBase},
	PaulRegret:    {"Paul Regret", 3, ExpansionBase},
	PedroRamirez:  {"Pedro Ramirez", 4, ExpansionBase},
	RoseDoolan:    {"Rose Doolan", 4, ExpansionBase},
	SidKetchum:    {"Sid Ketchum", 4, ExpansionBase},
	SlabTheKiller: {"Slab the Killer", 4, ExpansionBase},
	SuzyLafayette: {"Suzy Lafayette", 4, ExpansionBase},
	VultureSam:    {"Vulture Sam", 4, ExpansionBase},
	WillyTheKid:   {"Willy the Kid", 4, ExpansionBase},

	ApacheKid:   {"Apache Kid", 3, ExpansionDodgeCity},
	BelleStar:   {"Belle Star", 4, ExpansionDodgeCity},
	BillNoface:  {"Bill Noface", 4, ExpansionDodgeCity},
	ChuckWengam: {"Chuck Wengam", 4, ExpansionDodgeCity},
	DocHolyday:  {"Doc Holyday", 4, ExpansionDodgeCity},
	ElenaFuente: {"Elena Fuente", 3, ExpansionDodgeCity},
	GregDigger:  {"Greg Digger", 4, ExpansionDodgeCity},
	HerbHunter:  {"Herb Hunter", 4, ExpansionDodgeCity},
	JoseDelgado: {"José Delgado", 4, ExpansionDodgeCity},
	MollyStark:  {"Molly Stark", 4, ExpansionDodgeCity},
	PatBrennan:  {"Pat Brennan", 4, ExpansionDodgeCity},
	PixiePete:   {"Pixie Pete", 3, ExpansionDodgeCity},
	SeanMallory: {"Sean Mallory", 3, ExpansionDodgeCity},
	TequilaJoe:  {"Tequila Joe", 4, ExpansionDodgeCity},
	VeraCuster:  {"Vera Custer", 3, ExpansionDodgeCity},

	UncleWill:   {"Uncle Will", 4, ExpansionWildWestShow},
	JohnnyKisch: {"Johnny Kisch", 4, ExpansionWildWestShow},
}

func (c CharacterID) String() string {
	if def, ok := Characters[c]; ok {
		return def.Name
	}
	return ""
}

func (c CharacterID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CharacterPool lists, in ID order, the characters available with the given
// expansions enabled. The base set is always included.
func CharacterPool(expansions []string) []CharacterID {
	enabled := map[string]bool{ExpansionBase: true}
	for _, e := range expansions {
		enabled[e] = true
	}
	var pool []CharacterID
	for id := BartCassidy; id <= JohnnyKisch; id++ {
		if enabled[Characters[id].Expansion] {
			pool = append(pool, id)
		}
	}
	return pool
}
