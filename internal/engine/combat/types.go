package combat

// Rates are the artifact fractions in effect for a battle
type Rates struct {
	Spear         float64 `json:"spear"`
	ShieldReduce  float64 `json:"shieldReduce"`
	MirrorReduce  float64 `json:"mirrorReduce"`
	MirrorReflect float64 `json:"mirrorReflect"`
	AmuletRevive  float64 `json:"amuletRevive"`
	VoodooCurse   float64 `json:"voodooCurse"`
}

// Used tracks the single-use effects already spent in a battle
type Used struct {
	Amulet bool `json:"amulet"`
	Voodoo bool `json:"voodoo"`
}

// Runtime is the per-battle artifact state. It lives for one battle and is never
// persisted. A nil Runtime behaves like a disabled one.
type Runtime struct {
	Enabled bool  `json:"enabled"`
	Rates   Rates `json:"rates"`
	Used    Used  `json:"used"`
}

// OutgoingDamage is a hit after the spear bonus
type OutgoingDamage struct {
	Dealt      int `json:"dealt"`
	SpearBonus int `json:"spearBonus"`
}

// IncomingDamage is a hit after mitigation
type IncomingDamage struct {
	Taken     int `json:"taken"`
	Reduced   int `json:"reduced"`
	Reflected int `json:"reflected"`
}

// Revive is the outcome of a revive attempt
type Revive struct {
	Revived bool `json:"revived"`
	HP      int  `json:"hp"`
}

// Voodoo is the outcome of a curse attempt
type Voodoo struct {
	Triggered bool `json:"triggered"`
	KillerHP  int  `json:"killerHp"`
	Reduced   int  `json:"reduced"`
}
