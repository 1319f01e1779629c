package game

// DefensePower is how well a player is protected. Higher blocks more.
type DefensePower int

const (
	DefenseNone DefensePower = iota
	DefenseArmor
	DefenseProtection
	DefenseInvincible
)

// AttackPower is the strength of a kill attempt, on the same scale as DefensePower
type AttackPower int

const (
	AttackBasic AttackPower = iota + 1
	AttackArmorPiercing
	AttackProtectionPiercing
)

var defenseToName = map[DefensePower]string{
	DefenseNone:       "none",
	DefenseArmor:      "armor",
	DefenseProtection: "protection",
	DefenseInvincible: "invincible",
}

var attackToName = map[AttackPower]string{
	AttackBasic:              "basic",
	AttackArmorPiercing:      "armor_piercing",
	AttackProtectionPiercing: "protection_piercing",
}

func (d DefensePower) String() string {
	return defenseToName[d]
}

func (a AttackPower) String() string {
	return attackToName[a]
}

// CanBlock reports whether defense d stops attack a
func (d DefensePower) CanBlock(a AttackPower) bool {
	return int(d) >= int(a)
}

// Max returns the stronger of two defenses
func (d DefensePower) Max(other DefensePower) DefensePower {
	if other > d {
		return other
	}
	return d
}
