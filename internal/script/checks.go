package script

import (
	"github.com/pixil98/go-gamescript/internal/game"
)

// protectionStats are the observer stats a Protection:Creature effect can
// key on. The effect's param2 is the stat's index here plus two.
var protectionStats = [...]game.Stat{
	game.StatEA,
	game.StatGeneral,
	game.StatRace,
	game.StatClass,
	game.StatSpecific,
	game.StatSex,
	game.StatAlignment,
}

// CanDetect reports whether observer can perceive candidate, and the squared
// distance between them. The distance is computed even when detection fails.
// Observers that are not actors always detect.
func (r *Resolver) CanDetect(area *game.Area, observer game.Scriptable, candidate *game.Actor, ignoreInvisible bool, obj *Object) (bool, int) {
	dist := game.SquaredDistance(observer.Position(), candidate.Position())

	source, ok := game.AsActor(observer)
	if !ok {
		return true, dist
	}

	if !ignoreInvisible && candidate.IsInvisibleTo(source) {
		return false, dist
	}

	if r.hasAdditionalRect() && obj != nil && obj.Rect.Valid() {
		if !game.IsInObjectRect(candidate.Position(), obj.Rect) {
			return false, dist
		}
	} else if !game.WithinRange(source, candidate.Position(), source.GetVisualRange()) {
		return false, dist
	}

	if area == nil || !area.IsVisibleLOS(source.Position(), candidate.Position()) {
		return false, dist
	}

	if candidate.Effects.HasEffect(game.EffectProtectionCreature) {
		for i, stat := range protectionStats {
			value := source.GetStat(stat)
			if stat == game.StatClass {
				value = source.GetActiveClass()
			}
			if candidate.Effects.HasEffectWithParamPair(game.EffectProtectionCreature, value, i+2) {
				return false, dist
			}
		}
	}

	return true, dist
}

func (r *Resolver) hasAdditionalRect() bool {
	return r.game.HasFeature(game.FeatureAdditionalRect)
}
