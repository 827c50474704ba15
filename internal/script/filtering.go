package script

import (
	"log/slog"

	"github.com/pixil98/go-gamescript/internal/game"
)

// ApplyFilters runs the filter chain of obj over tgts. Dead actors are
// dropped first unless obj is named. Once any filter leaves the set empty
// the result is nil; with no filters tgts passes through.
func (r *Resolver) ApplyFilters(sender game.Scriptable, tgts *Targets, obj *Object, flags game.GAFlags) *Targets {
	// Hidden actors are only excluded again by the enemy scans.
	if r.game.HasFeature(game.FeatureRules3ED) {
		flags &^= game.GANoHidden
	}

	c, tt := tgts.GetFirstTarget(game.TypeActor)
	for tt != nil {
		a, _ := game.AsActor(tt.Scriptable)
		if obj.Name != "" || a.ValidTarget(game.GANoDead, nil) {
			tt = tgts.GetNextTarget(c)
		} else {
			tt = tgts.RemoveTargetAt(c)
		}
	}

	for _, id := range obj.Filters {
		if id == 0 {
			break
		}
		if id < 0 {
			continue
		}

		fn, ok := r.reg.filter(id)
		if !ok {
			slog.Warn("unknown object filter", "id", int(id), "name", id.String())
			continue
		}

		tgts = fn(r, sender, tgts, flags)
		if tgts == nil || tgts.Count() == 0 {
			return nil
		}
	}
	return tgts
}
