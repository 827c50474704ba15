package game

// EffectProtectionCreature makes its bearer undetectable by creatures whose
// identity stat (param2 picks which) equals param1.
const EffectProtectionCreature = "Protection:Creature"

// Effect is an active effect on an actor.
type Effect struct {
	Ref    string `json:"ref"`
	Param1 int    `json:"param1"`
	Param2 int    `json:"param2"`
}

// EffectQueue is the list of effects currently applied to an actor.
type EffectQueue []Effect

// HasEffect reports whether any effect with the given ref is active.
func (q EffectQueue) HasEffect(ref string) bool {
	for _, fx := range q {
		if fx.Ref == ref {
			return true
		}
	}
	return false
}

// HasEffectWithParamPair reports whether an effect with the given ref and
// exact parameters is active.
func (q EffectQueue) HasEffectWithParamPair(ref string, param1, param2 int) bool {
	for _, fx := range q {
		if fx.Ref == ref && fx.Param1 == param1 && fx.Param2 == param2 {
			return true
		}
	}
	return false
}
