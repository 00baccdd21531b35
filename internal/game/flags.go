package game

import "sort"

// Event flag names. Events write them; every rule check reads them.
const (
	FlagNoBang        = "no_bang"
	FlagBangLimit     = "bang_limit"
	FlagRiver         = "river"
	FlagSuitOverride  = "suit_override"
	FlagReverseTurn   = "reverse_turn"
	FlagNoMissed      = "no_missed"
	FlagNoJail        = "no_jail"
	FlagNoDraw        = "no_draw"
	FlagDrawCount     = "draw_count"
	FlagHardLiquor    = "hard_liquor"
	FlagPeyote        = "peyote"
	FlagLawOfTheWest  = "law_of_the_west"
	FlagRanch         = "ranch"
	FlagHandcuffs     = "handcuffs"
	FlagTurnSuit      = "turn_suit"
	FlagJudge         = "judge"
	FlagNoBeer        = "no_beer"
	FlagHandLimit     = "hand_limit"
	FlagNoAbilities   = "no_abilities"
	FlagAmbush        = "ambush"
	FlagLasso         = "lasso"
	FlagSniper        = "sniper"
	FlagRicochet      = "ricochet"
	FlagVendetta      = "vendetta"
	FlagAbandonedMine = "abandoned_mine"
	FlagBloodBrothers = "blood_brothers"
	FlagDeadMan       = "dead_man"
	FlagGhostTown     = "ghost_town"
	FlagNewIdentity   = "new_identity"
	FlagStartDamage   = "start_damage"
	FlagHandDamage    = "hand_damage"
)

// FlagValue is the small value stored under an event flag.
type FlagValue struct {
	Bool bool   `json:"bool,omitempty"`
	Int  int    `json:"int,omitempty"`
	Str  string `json:"str,omitempty"`
}

// EventFlags is the table of active rule overrides. Every flag is cleared
// when a new event card is drawn; turn_suit is also removed at end of turn.
type EventFlags map[string]FlagValue

func (f EventFlags) Set(name string, v FlagValue) { f[name] = v }

func (f EventFlags) SetBool(name string) { f[name] = FlagValue{Bool: true} }

func (f EventFlags) SetInt(name string, v int) { f[name] = FlagValue{Bool: true, Int: v} }

func (f EventFlags) SetStr(name, v string) { f[name] = FlagValue{Bool: true, Str: v} }

func (f EventFlags) Has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f EventFlags) Bool(name string) bool { return f[name].Bool }

// Int returns the flag's integer, or def when the flag is not set.
func (f EventFlags) Int(name string, def int) int {
	v, ok := f[name]
	if !ok {
		return def
	}
	return v.Int
}

func (f EventFlags) Str(name string) string { return f[name].Str }

func (f EventFlags) Delete(name string) { delete(f, name) }

func (f EventFlags) Clear() {
	for k := range f {
		delete(f, k)
	}
}

// Names lists the set flags in sorted order.
func (f EventFlags) Names() []string {
	out := make([]string, 0, len(f))
	for k := range f {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
