package script

import (
	"github.com/pixil98/go-gamescript/internal/game"
)

func defaultFilters() map[FilterID]ObjectFilter {
	filters := map[FilterID]ObjectFilter{
		FilterMyself:         myself,
		FilterNothing:        nothing,
		FilterProtagonist:    partyMember(1),
		FilterLastAttackerOf: lastRelation(func(a *game.Actor) game.GlobalID { return a.LastAttacker }),
		FilterLastTargetedBy: func(_ *Resolver, sender game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			actor, _ := game.AsActor(params.GetTarget(0, game.TypeActor))
			return GetMyTarget(sender, actor, params, flags)
		},
		FilterMyTarget: func(_ *Resolver, sender game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			return GetMyTarget(sender, nil, params, flags)
		},
		FilterLastSeenBy:     lastRelation(func(a *game.Actor) game.GlobalID { return a.LastSeen }),
		FilterLastHeardBy:    lastRelation(func(a *game.Actor) game.GlobalID { return a.LastHeard }),
		FilterLastTalkedToBy: lastRelation(func(a *game.Actor) game.GlobalID { return a.LastTalkedTo }),
		FilterLastSummonerOf: lastRelation(func(a *game.Actor) game.GlobalID { return a.LastSummoner }),
		FilterFarthest: func(_ *Resolver, _ game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			return XthNearestOf(params, -1, flags)
		},
		FilterFarthestEnemyOf: func(r *Resolver, _ game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			return r.XthNearestEnemyOf(params, 0, flags, true)
		},
		FilterClosestEnemySummoned: func(r *Resolver, sender game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			return r.ClosestEnemySummoned(sender, params, flags)
		},
		FilterStrongestOf: bestPartyMember(func(a *game.Actor) int { return a.GetXPLevel() }),
		FilterWeakestOf:   bestPartyMember(func(a *game.Actor) int { return -a.GetXPLevel() }),
		FilterMostDamagedOf: bestPartyMember(func(a *game.Actor) int {
			return a.MaxHP - a.CurrentHP
		}),
		FilterLeastDamagedOf: bestPartyMember(func(a *game.Actor) int {
			return a.CurrentHP - a.MaxHP
		}),
	}

	for i := 1; i <= game.PartySize; i++ {
		filters[FilterPlayer1+FilterID(i-1)] = partyMember(i)
	}

	for rank := 0; rank < RankCount; rank++ {
		filters[FilterNearest+FilterID(rank)] = func(_ *Resolver, _ game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			return XthNearestOf(params, rank, flags)
		}
		filters[FilterNearestEnemyOf+FilterID(rank)] = func(r *Resolver, _ game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			return r.XthNearestEnemyOf(params, rank, flags, false)
		}
		filters[FilterNearestEnemyOfType+FilterID(rank)] = func(r *Resolver, sender game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			return r.XthNearestEnemyOfType(sender, params, rank, flags)
		}
		filters[FilterNearestMyGroupOfType+FilterID(rank)] = func(_ *Resolver, sender game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
			return XthNearestMyGroupOfType(sender, params, rank, flags)
		}
		filters[FilterNearestDoor+FilterID(rank)] = func(_ *Resolver, _ game.Scriptable, params *Targets, _ game.GAFlags) *Targets {
			return XthNearestDoor(params, rank)
		}
	}
	return filters
}

func myself(_ *Resolver, sender game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
	params.Clear()
	params.AddTarget(sender, 0, flags)
	return params
}

func nothing(_ *Resolver, _ game.Scriptable, params *Targets, _ game.GAFlags) *Targets {
	params.Clear()
	return params
}

func partyMember(slot int) ObjectFilter {
	return func(r *Resolver, _ game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
		params.Clear()
		params.AddTarget(r.game.GetPC(slot), 0, flags)
		return params
	}
}

// lastRelation follows a remembered relationship of the first actor in the
// set, or of the sender when the set has none.
func lastRelation(get func(*game.Actor) game.GlobalID) ObjectFilter {
	return func(_ *Resolver, sender game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
		actor, ok := game.AsActor(params.GetTarget(0, game.TypeActor))
		if !ok {
			actor, ok = game.AsActor(sender)
		}
		params.Clear()
		if ok && actor.CurrentArea() != nil {
			params.AddTarget(actor.CurrentArea().GetActorByGlobalID(get(actor)), 0, flags)
		}
		return params
	}
}

// bestPartyMember keeps the party member with the highest score; ties go to
// the lower party slot.
func bestPartyMember(score func(*game.Actor) int) ObjectFilter {
	return func(r *Resolver, _ game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
		var best *game.Actor
		bestScore := 0
		for _, pc := range r.game.Party() {
			if s := score(pc); best == nil || s > bestScore {
				best, bestScore = pc, s
			}
		}
		params.Clear()
		if best != nil {
			params.AddTarget(best, 0, flags)
		}
		return params
	}
}

// GetMyTarget replaces params with the last target of actor, or of the
// sender when actor is nil.
func GetMyTarget(sender game.Scriptable, actor *game.Actor, params *Targets, flags game.GAFlags) *Targets {
	if actor == nil {
		actor, _ = game.AsActor(sender)
	}
	params.Clear()
	if actor != nil && actor.CurrentArea() != nil {
		params.AddTarget(actor.CurrentArea().GetActorByGlobalID(actor.LastTarget), 0, flags)
	}
	return params
}

// XthNearestOf keeps only the count-th actor of params (zero based). A
// negative count keeps the last actor. Ordering comes from insertion.
func XthNearestOf(params *Targets, count int, flags game.GAFlags) *Targets {
	var origin game.Scriptable
	if count < 0 {
		t := params.GetLastTarget(game.TypeActor)
		if t == nil {
			params.Clear()
			return params
		}
		origin = t.Scriptable
	} else {
		origin = params.GetTarget(count, game.TypeActor)
	}

	params.Clear()
	if origin == nil {
		return params
	}
	params.AddTarget(origin, 0, flags)
	return params
}

// XthNearestDoor replaces params with the count-th nearest door to the first
// scriptable in params.
func XthNearestDoor(params *Targets, count int) *Targets {
	origin := params.GetTarget(0, game.TypeAny)
	params.Clear()
	if origin == nil || origin.CurrentArea() == nil {
		return params
	}

	tm := origin.CurrentArea().TileMap()
	if count > tm.GetDoorCount() {
		return params
	}
	for _, d := range tm.Doors() {
		params.AddTarget(d, game.Distance(origin.Position(), d.Position()), 0)
	}

	door := params.GetTarget(count, game.TypeDoor)
	params.Clear()
	if door == nil {
		return params
	}
	params.AddTarget(door, 0, 0)
	return params
}

// XthNearestMyGroupOfType drops every entry whose specific stat differs from
// origin's, then keeps the count-th nearest.
func XthNearestMyGroupOfType(origin game.Scriptable, params *Targets, count int, flags game.GAFlags) *Targets {
	me, ok := game.AsActor(origin)
	if !ok {
		params.Clear()
		return params
	}

	c, t := params.GetFirstTarget(game.TypeActor)
	if t == nil {
		return params
	}
	group := me.GetStat(game.StatSpecific)
	for t != nil {
		a, ok := game.AsActor(t.Scriptable)
		if !ok || a.GetStat(game.StatSpecific) != group {
			t = params.RemoveTargetAt(c)
			continue
		}
		t = params.GetNextTarget(c)
	}
	return XthNearestOf(params, count, flags)
}

// ClosestEnemySummoned keeps one scheduled summoned enemy of origin. The last
// qualifying entry in set order wins, not the closest one.
func (r *Resolver) ClosestEnemySummoned(origin game.Scriptable, params *Targets, flags game.GAFlags) *Targets {
	me, ok := game.AsActor(origin)
	if !ok {
		params.Clear()
		return params
	}

	c, t := params.GetFirstTarget(game.TypeActor)
	if t == nil {
		return params
	}
	group := me.Group()
	if group == game.GroupNeutral {
		params.Clear()
		return params
	}

	var found *game.Actor
	gameTime := r.game.GameTime()
	for ; t != nil; t = params.GetNextTarget(c) {
		a, ok := game.AsActor(t.Scriptable)
		if !ok || a.GetStat(game.StatSex) != game.SexSummon {
			continue
		}
		if !a.IsScheduled(gameTime, true) {
			continue
		}
		ea := a.GetStat(game.StatEA)
		if group == game.GroupPC && ea <= game.EAGoodCutoff {
			continue
		}
		if group == game.GroupEnemy && ea >= game.EAEvilCutoff {
			continue
		}
		found = a
	}

	params.Clear()
	if found != nil {
		params.AddTarget(found, 0, flags)
	}
	return params
}

// XthNearestEnemyOfType narrows params to scheduled enemies of origin and
// keeps the count-th nearest. The cutoffs differ from XthNearestEnemyOf.
func (r *Resolver) XthNearestEnemyOfType(origin game.Scriptable, params *Targets, count int, flags game.GAFlags) *Targets {
	me, ok := game.AsActor(origin)
	if !ok {
		params.Clear()
		return params
	}

	c, t := params.GetFirstTarget(game.TypeActor)
	if t == nil {
		return params
	}
	group := me.Group()
	if group == game.GroupNeutral {
		params.Clear()
		return params
	}

	gameTime := r.game.GameTime()
	for t != nil {
		a, ok := game.AsActor(t.Scriptable)
		if !ok || !a.IsScheduled(gameTime, true) {
			t = params.RemoveTargetAt(c)
			continue
		}
		ea := a.GetStat(game.StatEA)
		if group == game.GroupPC && ea <= game.EAEvilCutoff {
			t = params.RemoveTargetAt(c)
			continue
		}
		if group == game.GroupEnemy && ea >= game.EAGoodCutoff {
			t = params.RemoveTargetAt(c)
			continue
		}
		t = params.GetNextTarget(c)
	}
	return XthNearestOf(params, count, flags)
}

// XthNearestEnemyOf scans the whole area of the first actor in params for
// detectable enemies and keeps the count-th nearest, or the count-th
// farthest when farthest is set.
func (r *Resolver) XthNearestEnemyOf(params *Targets, count int, flags game.GAFlags, farthest bool) *Targets {
	origin, ok := game.AsActor(params.GetTarget(0, game.TypeActor))
	params.Clear()
	if !ok {
		return params
	}
	group := origin.Group()
	if group == game.GroupNeutral {
		return params
	}

	if r.game.HasFeature(game.FeatureRules3ED) {
		if origin.HasMCFlag(game.MCSeenParty) && origin.GetStat(game.StatEA) > game.EANotEvil {
			origin.SetMCFlag(game.MCSeenParty, false)
		}
		flags |= game.GANoHidden
	}

	area := origin.CurrentArea()
	if area == nil {
		return params
	}
	flags |= game.GANoUnscheduled | game.GANoDead
	for i := area.GetActorCount(true) - 1; i >= 0; i-- {
		ac := area.GetActor(i, true)
		if ac == nil || ac == origin {
			continue
		}
		ok, distance := r.CanDetect(area, origin, ac, false, nil)
		if !ok {
			continue
		}
		if farthest {
			distance = -distance
		}

		ea := ac.GetStat(game.StatEA)
		if group == game.GroupPC && ea >= game.EAEvilCutoff {
			params.AddTarget(ac, distance, flags)
		} else if group == game.GroupEnemy && ea <= game.EAGoodCutoff {
			params.AddTarget(ac, distance, flags)
		}
	}
	return XthNearestOf(params, count, flags)
}
