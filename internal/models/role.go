package models

// Role is the hidden allegiance dealt to each player.
type Role int

const (
	RoleNone Role = iota
	Sheriff
	Deputy
	Outlaw
	Renegade
)

var roleNames = map[Role]string{
	RoleNone: "",
	Sheriff:  "Sheriff",
	Deputy:   "Deputy",
	Outlaw:   "Outlaw",
	Renegade: "Renegade",
}

func (r Role) String() string {
	return roleNames[r]
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RolesFor returns the role distribution for a table of n players, Sheriff
// first. It returns nil for unsupported table sizes.
func RolesFor(n int) []Role {
	switch n {
	case 2:
		return []Role{Sheriff, Outlaw}
	case 3:
		return []Role{Sheriff, Outlaw, Renegade}
	case 4:
		return []Role{Sheriff, Renegade, Outlaw, Outlaw}
	case 5:
		return []Role{Sheriff, Renegade, Outlaw, Outlaw, Deputy}
	case 6:
		return []Role{Sheriff, Renegade, Outlaw, Outlaw, Outlaw, Deputy}
	case 7:
		return []Role{Sheriff, Renegade, Outlaw, Outlaw, Outlaw, Deputy, Deputy}
	case 8:
		return []Role{Sheriff, Renegade, Renegade, Outlaw, Outlaw, Outlaw, Deputy, Deputy}
	}
	return nil
}
