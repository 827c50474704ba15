package script

import (
	"github.com/pixil98/go-gamescript/internal/game"
)

// Resolver turns object expressions into target sets against a live game.
// It is not safe for concurrent use; callers serialise through game.Game.Do.
type Resolver struct {
	game *game.Game
	reg  *Registry
}

// NewResolver creates a resolver. A nil registry gets the default one.
func NewResolver(g *game.Game, reg *Registry) *Resolver {
	if reg == nil {
		reg = NewDefaultRegistry()
	}
	return &Resolver{game: g, reg: reg}
}

func (r *Resolver) Game() *game.Game {
	return r.game
}

func singleTarget(s game.Scriptable) *Targets {
	if isNil(s) {
		return nil
	}
	tgts := NewTargets()
	tgts.AddTarget(s, 0, 0)
	return tgts
}

// GetActorObject finds a non-actor scriptable by name. Doors win over
// containers, which win over info points.
func GetActorObject(tm *game.TileMap, name string) game.Scriptable {
	if d := tm.GetDoor(name); d != nil {
		return d
	}
	if c := tm.GetContainer(name); c != nil {
		return c
	}
	if ip := tm.GetInfoPoint(name); ip != nil {
		return ip
	}
	return nil
}

// EvaluateObject resolves the name, global id or IDS part of obj in area.
// Named expressions never reach the IDS scan. An IDS scan over an expression
// that checks nothing yields nil.
func (r *Resolver) EvaluateObject(area *game.Area, sender game.Scriptable, obj *Object, flags game.GAFlags) *Targets {
	if area == nil {
		return nil
	}

	if obj.Name != "" {
		if s := GetActorObject(area.TileMap(), obj.Name); s != nil {
			return singleTarget(s)
		}
		return singleTarget(area.GetActorByName(obj.Name, flags))
	}

	if id, ok := obj.GlobalID(); ok {
		if a := area.GetActorByGlobalID(id); a != nil {
			if !a.ValidTarget(flags, nil) {
				return nil
			}
			return singleTarget(a)
		}
		return singleTarget(area.GetScriptableByGlobalID(id))
	}

	var tgts *Targets
	keepSender := r.game.HasFeature(game.FeatureAreaOverride)
	for i := area.GetActorCount(true) - 1; i >= 0; i-- {
		ac := area.GetActor(i, true)
		if ac == nil {
			continue
		}
		if !keepSender && sender == game.Scriptable(ac) {
			continue
		}

		passed, checked := MatchesIDS(r.reg, ac, obj)
		if !passed {
			continue
		}
		if !checked {
			return nil
		}

		if ok, dist := r.CanDetect(area, sender, ac, flags&game.GADetect != 0, obj); ok {
			if tgts == nil {
				tgts = NewTargets()
			}
			tgts.AddTarget(ac, dist, flags)
		}
	}
	return tgts
}

// GetAllObjects resolves obj for sender. A nil obj without anyone returns
// every actor in the sender's area; anyone does the same minus the sender.
func (r *Resolver) GetAllObjects(area *game.Area, sender game.Scriptable, obj *Object, flags game.GAFlags, anyone bool) *Targets {
	if anyone {
		tgts := r.GetAllActors(sender, flags)
		if tgts != nil && tgts.GetTarget(0, game.TypeAny) == sender {
			tgts.Pop()
		}
		return tgts
	}
	if obj == nil {
		return r.GetAllActors(sender, flags)
	}

	tgts := r.EvaluateObject(area, sender, obj, flags)
	if tgts == nil && obj.Name != "" {
		return nil
	}
	if tgts == nil {
		tgts = NewTargets()
	}

	tgts = r.ApplyFilters(sender, tgts, obj, flags)
	if tgts != nil && r.hasAdditionalRect() {
		tgts.FilterObjectRect(obj)
	}
	return tgts
}

// Resolve is GetAllObjects in the sender's current area.
func (r *Resolver) Resolve(sender game.Scriptable, obj *Object, flags game.GAFlags, anyone bool) *Targets {
	return r.GetAllObjects(sender.CurrentArea(), sender, obj, flags, anyone)
}

// GetAllActors returns every actor in the sender's area, sender first.
func (r *Resolver) GetAllActors(sender game.Scriptable, flags game.GAFlags) *Targets {
	area := sender.CurrentArea()
	if area == nil {
		return nil
	}

	tgts := NewTargets()
	tgts.AddTarget(sender, 0, flags)
	for i := area.GetActorCount(true) - 1; i >= 0; i-- {
		ac := area.GetActor(i, true)
		if ac == nil || sender == game.Scriptable(ac) {
			continue
		}
		tgts.AddTarget(ac, game.Distance(sender.Position(), ac.Position()), flags)
	}
	return tgts
}

// GetStoredActorFromObject returns the target a blocking action works on.
// A stored target is revalidated against flags; when that fails the stored id
// is dropped and nil returned. A fresh actor result is stored only when obj
// uses object filters.
func (r *Resolver) GetStoredActorFromObject(sender game.Scriptable, obj *Object, flags game.GAFlags, anyone bool) game.Scriptable {
	if id := sender.StoredTarget(); id != 0 {
		if a := r.game.GetActorByGlobalID(id); a != nil && a.ValidTarget(flags, sender) {
			return a
		}
		sender.SetStoredTarget(0)
		return nil
	}

	s := r.GetScriptableFromObject(sender, obj, flags, anyone)
	if a, ok := game.AsActor(s); ok && obj != nil && obj.HasFilters() {
		sender.SetStoredTarget(a.ID)
	}
	return s
}

// GetScriptableFromObject resolves obj to a single scriptable. Global actors
// outside any loaded area are found by global id or by script name.
func (r *Resolver) GetScriptableFromObject(sender game.Scriptable, obj *Object, flags game.GAFlags, anyone bool) game.Scriptable {
	tgts := r.GetAllObjects(sender.CurrentArea(), sender, obj, flags, anyone)
	if tgts != nil {
		s := tgts.GetTarget(0, game.TypeAny)
		if s != nil || obj == nil {
			return s
		}
		id, ok := obj.GlobalID()
		if !ok {
			return nil
		}
		if a := r.game.GetGlobalActorByGlobalID(id); a != nil {
			return a
		}
		return nil
	}

	if obj == nil || obj.Name == "" {
		return nil
	}
	if area := sender.CurrentArea(); area != nil {
		if s := GetActorObject(area.TileMap(), obj.Name); s != nil {
			return s
		}
	}
	if pc := r.game.FindPC(obj.Name); pc != nil {
		return pc
	}
	if npc := r.game.FindNPC(obj.Name); npc != nil {
		return npc
	}
	return nil
}

// MatchActor reports whether the actor with actorID in the sender's area is
// matched by obj. A nil obj matches any actor.
func (r *Resolver) MatchActor(sender game.Scriptable, actorID game.GlobalID, obj *Object) bool {
	if isNil(sender) {
		return false
	}
	area := sender.CurrentArea()
	if area == nil {
		return false
	}
	ac := area.GetActorByGlobalID(actorID)
	if ac == nil {
		return false
	}
	if obj == nil {
		return true
	}

	if r.hasAdditionalRect() && !game.IsInObjectRect(ac.Position(), obj.Rect) {
		return false
	}

	filtered := false
	if obj.Name != "" {
		if !ac.MatchName(obj.Name) {
			return false
		}
		filtered = true
	}
	if !filtered {
		passed, checked := MatchesIDS(r.reg, ac, obj)
		if !passed {
			return false
		}
		filtered = checked
	}

	if !obj.HasFilters() {
		return true
	}

	tgts := NewTargets()
	if filtered {
		tgts.AddTarget(ac, 0, 0)
	}
	tgts = r.ApplyFilters(sender, tgts, obj, 0)
	if tgts == nil {
		return false
	}
	return tgts.Contains(ac.ID)
}

// GetObjectCount counts the scriptables obj resolves to.
func (r *Resolver) GetObjectCount(sender game.Scriptable, obj *Object, anyone bool) int {
	if obj == nil && !anyone {
		return 0
	}
	tgts := r.GetAllObjects(sender.CurrentArea(), sender, obj, 0, anyone)
	if tgts == nil {
		return 0
	}
	return tgts.Count()
}

// GetObjectLevelCount sums the experience levels of the actors obj resolves to.
func (r *Resolver) GetObjectLevelCount(sender game.Scriptable, obj *Object, anyone bool) int {
	if obj == nil && !anyone {
		return 0
	}
	tgts := r.GetAllObjects(sender.CurrentArea(), sender, obj, 0, anyone)
	if tgts == nil {
		return 0
	}

	count := 0
	c, tt := tgts.GetFirstTarget(game.TypeActor)
	for tt != nil {
		if a, ok := game.AsActor(tt.Scriptable); ok {
			count += a.GetXPLevel()
		}
		tt = tgts.GetNextTarget(c)
	}
	return count
}
