package script

import (
	"testing"

	"github.com/pixil98/go-gamescript/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestResolver_NearestEnemyScenario(t *testing.T) {
	tests := map[string]struct {
		obj     *Object
		expName string
	}{
		"nearest enemy": {
			obj:     NewFilterObject(FilterMyself, FilterNearestEnemyOf),
			expName: "C",
		},
		"second nearest enemy": {
			obj:     NewFilterObject(FilterMyself, FilterNearestEnemyOf+1),
			expName: "B",
		},
		"farthest enemy": {
			obj:     NewFilterObject(FilterMyself, FilterFarthestEnemyOf),
			expName: "B",
		},
		"third nearest enemy": {
			obj:     NewFilterObject(FilterMyself, FilterNearestEnemyOf+2),
			expName: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t)
			a := w.addActor(t, "A", game.EAPC, 100, 100)
			w.addActor(t, "B", game.EAEnemy, 110, 100)
			w.addActor(t, "C", game.EAEnemy, 105, 100)

			got := w.res.GetScriptableFromObject(a, tt.obj, 0, false)
			gotName := ""
			if got != nil {
				gotName = got.ScriptName()
			}
			testutil.AssertEqual(t, "target", gotName, tt.expName)
		})
	}
}

func TestResolver_XthNearestEnemyOf(t *testing.T) {
	tests := map[string]struct {
		originEA int
		setup    func(w *testWorld)
		farthest bool
		count    int
		expNames string
	}{
		"neutral origin finds nothing": {
			originEA: game.EANeutral,
			expNames: "",
		},
		"pc origin picks evil": {
			originEA: game.EAPC,
			expNames: "orc",
		},
		"enemy origin picks good": {
			originEA: game.EAEnemy,
			expNames: "paladin",
		},
		"enemy origin farthest": {
			originEA: game.EAEnemy,
			farthest: true,
			expNames: "ranger",
		},
		"dead enemies skipped": {
			originEA: game.EAPC,
			setup: func(w *testWorld) {
				w.area.GetActorByName("orc", 0).SetStat(game.StatStateFlags, game.StateDead)
			},
			expNames: "ogre",
		},
		"unscheduled enemies skipped": {
			originEA: game.EAPC,
			setup: func(w *testWorld) {
				w.area.GetActorByName("orc", 0).Active = false
			},
			expNames: "ogre",
		},
		"undetectable enemies skipped": {
			originEA: game.EAPC,
			setup: func(w *testWorld) {
				w.area.GetActorByName("orc", 0).SetStat(game.StatStateFlags, game.StateInvisible)
			},
			expNames: "ogre",
		},
		"count past the end": {
			originEA: game.EAPC,
			count:    5,
			expNames: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t)
			origin := w.addActor(t, "origin", tt.originEA, 0, 0)
			w.addActor(t, "orc", game.EAEnemy, 20, 0)
			w.addActor(t, "ogre", game.EAEvilCutoff, 40, 0)
			w.addActor(t, "peasant", game.EANeutral, 10, 0)
			w.addActor(t, "paladin", game.EAPC, 30, 0)
			w.addActor(t, "ranger", game.EAGoodCutoff, 50, 0)
			if tt.setup != nil {
				tt.setup(w)
			}

			params := NewTargets()
			params.AddTarget(origin, 0, 0)
			got := w.res.XthNearestEnemyOf(params, tt.count, 0, tt.farthest)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}
}

func TestResolver_XthNearestEnemyOfRules3ED(t *testing.T) {
	tests := map[string]struct {
		originEA     int
		expSeenParty bool
	}{
		"enemy origin loses seen party": {
			originEA:     game.EAEnemy,
			expSeenParty: false,
		},
		"pc origin keeps seen party": {
			originEA:     game.EAPC,
			expSeenParty: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t, game.WithFeatures(game.FeatureRules3ED))
			origin := w.addActor(t, "origin", tt.originEA, 0, 0)
			origin.SetMCFlag(game.MCSeenParty, true)

			params := NewTargets()
			params.AddTarget(origin, 0, 0)
			w.res.XthNearestEnemyOf(params, 0, 0, false)
			testutil.AssertEqual(t, "seen party", origin.HasMCFlag(game.MCSeenParty), tt.expSeenParty)
		})
	}

	t.Run("flag untouched without the ruleset", func(t *testing.T) {
		w := newTestWorld(t)
		origin := w.addActor(t, "origin", game.EAEnemy, 0, 0)
		origin.SetMCFlag(game.MCSeenParty, true)

		params := NewTargets()
		params.AddTarget(origin, 0, 0)
		w.res.XthNearestEnemyOf(params, 0, 0, false)
		testutil.AssertEqual(t, "seen party", origin.HasMCFlag(game.MCSeenParty), true)
	})
}

func TestResolver_XthNearestEnemyOfRules3EDHidden(t *testing.T) {
	tests := map[string]struct {
		opts     []game.GameOpt
		expNames string
	}{
		"invisible enemy kept without the ruleset": {
			expNames: "orc",
		},
		"3ed excludes invisible enemies": {
			opts:     []game.GameOpt{game.WithFeatures(game.FeatureRules3ED)},
			expNames: "ogre",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t, tt.opts...)
			origin := w.addActor(t, "origin", game.EAPC, 0, 0)
			origin.SetStat(game.StatSeeInvisible, 1)
			orc := w.addActor(t, "orc", game.EAEnemy, 10, 0)
			orc.SetStat(game.StatStateFlags, game.StateInvisible)
			w.addActor(t, "ogre", game.EAEnemy, 30, 0)

			params := NewTargets()
			params.AddTarget(origin, 0, 0)
			got := w.res.XthNearestEnemyOf(params, 0, 0, false)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}
}

func TestResolver_FarthestEnemyOfOnOrigin(t *testing.T) {
	w := newTestWorld(t)
	origin := w.addActor(t, "origin", game.EAPC, 0, 0)
	w.addActor(t, "underfoot", game.EAEnemy, 0, 0)
	w.addActor(t, "far", game.EAEnemy, 50, 0)

	params := NewTargets()
	params.AddTarget(origin, 0, 0)
	got := w.res.XthNearestEnemyOf(params, 0, 0, true)
	testutil.AssertEqual(t, "names", names(got), "far")
}

func TestResolver_ClosestEnemySummoned(t *testing.T) {
	tests := map[string]struct {
		originEA int
		setup    func(w *testWorld)
		expNames string
	}{
		"last qualifying summon wins": {
			originEA: game.EAPC,
			expNames: "summon3",
		},
		"neutral origin clears": {
			originEA: game.EANeutral,
			expNames: "",
		},
		"unscheduled summon skipped": {
			originEA: game.EAPC,
			setup: func(w *testWorld) {
				w.area.GetActorByName("summon3", 0).Schedule = 0
			},
			expNames: "summon2",
		},
		"hidden summon skipped": {
			originEA: game.EAPC,
			setup: func(w *testWorld) {
				w.area.GetActorByName("summon3", 0).Visible = false
			},
			expNames: "summon2",
		},
		"friendly summons ignored by pc": {
			originEA: game.EAPC,
			setup: func(w *testWorld) {
				w.area.GetActorByName("summon2", 0).SetStat(game.StatEA, game.EAGoodCutoff)
				w.area.GetActorByName("summon3", 0).SetStat(game.StatEA, game.EAAlly)
			},
			expNames: "summon1",
		},
		"enemy origin wants good summons": {
			originEA: game.EAEnemy,
			setup: func(w *testWorld) {
				w.area.GetActorByName("summon1", 0).SetStat(game.StatEA, game.EAAlly)
			},
			expNames: "summon1",
		},
		"no summons": {
			originEA: game.EAPC,
			setup: func(w *testWorld) {
				for _, n := range []string{"summon1", "summon2", "summon3"} {
					w.area.GetActorByName(n, 0).SetStat(game.StatSex, 1)
				}
			},
			expNames: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t)
			origin := w.addActor(t, "origin", tt.originEA, 0, 0)
			for i, n := range []string{"summon1", "summon2", "summon3"} {
				s := w.addActor(t, n, game.EAEnemy, 10*(i+1), 0)
				s.SetStat(game.StatSex, game.SexSummon)
			}
			if tt.setup != nil {
				tt.setup(w)
			}

			params := NewTargets()
			for _, ac := range w.area.Actors() {
				if ac != origin {
					params.AddTarget(ac, game.Distance(origin.Pos, ac.Pos), 0)
				}
			}
			got := w.res.ClosestEnemySummoned(origin, params, 0)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}
}

func TestResolver_XthNearestEnemyOfType(t *testing.T) {
	tests := map[string]struct {
		originEA int
		count    int
		expNames string
	}{
		"pc origin excludes evil cutoff": {
			originEA: game.EAPC,
			expNames: "demon",
		},
		"enemy origin excludes good cutoff": {
			originEA: game.EAEnemy,
			expNames: "hero",
		},
		"neutral origin clears": {
			originEA: game.EANeutral,
			expNames: "",
		},
		"second match": {
			originEA: game.EAPC,
			count:    1,
			expNames: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t)
			origin := w.addActor(t, "origin", tt.originEA, 0, 0)

			params := NewTargets()
			for i, m := range []struct {
				name string
				ea   int
			}{
				{"border", game.EAEvilCutoff},
				{"demon", game.EAEnemy},
				{"cutoff", game.EAGoodCutoff},
				{"hero", game.EAPC},
				{"sleeper", game.EAEnemy},
			} {
				ac := w.addActor(t, m.name, m.ea, 10*(i+1), 0)
				if m.name == "sleeper" {
					ac.Schedule = 0
				}
				params.AddTarget(ac, 10*(i+1), 0)
			}
			params.AddTarget(game.NewDoor("door", game.Point{}, game.Rect{}, false), 1, 0)

			got := w.res.XthNearestEnemyOfType(origin, params, tt.count, 0)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}
}

func TestXthNearestMyGroupOfType(t *testing.T) {
	tests := map[string]struct {
		origin   func(w *testWorld) game.Scriptable
		count    int
		expNames string
	}{
		"nearest of my group": {
			origin:   func(w *testWorld) game.Scriptable { return w.area.GetActorByName("me", 0) },
			expNames: "kin1",
		},
		"second of my group": {
			origin:   func(w *testWorld) game.Scriptable { return w.area.GetActorByName("me", 0) },
			count:    1,
			expNames: "kin2",
		},
		"last of my group": {
			origin:   func(w *testWorld) game.Scriptable { return w.area.GetActorByName("me", 0) },
			count:    -1,
			expNames: "kin2",
		},
		"non actor origin clears": {
			origin: func(w *testWorld) game.Scriptable {
				d := game.NewDoor("door", game.Point{}, game.Rect{}, false)
				w.area.AddDoor(d)
				return d
			},
			expNames: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t)
			me := w.addActor(t, "me", game.EAEnemy, 0, 0)
			me.SetStat(game.StatSpecific, 7)

			params := NewTargets()
			for i, m := range []struct {
				name     string
				specific int
			}{
				{"stranger", 3},
				{"kin1", 7},
				{"other", 4},
				{"kin2", 7},
			} {
				ac := w.addActor(t, m.name, game.EAEnemy, 10*(i+1), 0)
				ac.SetStat(game.StatSpecific, m.specific)
				params.AddTarget(ac, 10*(i+1), 0)
			}

			got := XthNearestMyGroupOfType(tt.origin(w), params, tt.count, 0)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}
}

func TestXthNearestDoor(t *testing.T) {
	tests := map[string]struct {
		count    int
		expNames string
	}{
		"nearest":        {count: 0, expNames: "near"},
		"second":         {count: 1, expNames: "mid"},
		"third":          {count: 2, expNames: "far"},
		"past the doors": {count: 3, expNames: ""},
		"far past":       {count: 9, expNames: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t)
			origin := w.addActor(t, "origin", game.EAPC, 0, 0)
			w.area.AddDoor(game.NewDoor("mid", game.Point{X: 100}, game.Rect{}, false))
			w.area.AddDoor(game.NewDoor("near", game.Point{X: 50}, game.Rect{}, false))
			w.area.AddDoor(game.NewDoor("far", game.Point{X: 200}, game.Rect{}, false))

			params := NewTargets()
			params.AddTarget(origin, 0, 0)
			got := XthNearestDoor(params, tt.count)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}
}

func TestXthNearestOf(t *testing.T) {
	tests := map[string]struct {
		count    int
		expNames string
	}{
		"first":  {count: 0, expNames: "a"},
		"second": {count: 1, expNames: "b"},
		"last":   {count: -1, expNames: "c"},
		"beyond": {count: 3, expNames: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			params := NewTargets()
			params.AddTarget(game.NewActor("a", game.Point{}), 1, 0)
			params.AddTarget(game.NewDoor("door", game.Point{}, game.Rect{}, false), 2, 0)
			params.AddTarget(game.NewActor("b", game.Point{}), 3, 0)
			params.AddTarget(game.NewActor("c", game.Point{}), 4, 0)

			got := XthNearestOf(params, tt.count, 0)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}

	t.Run("last of no actors", func(t *testing.T) {
		params := NewTargets()
		params.AddTarget(game.NewDoor("door", game.Point{}, game.Rect{}, false), 0, 0)
		testutil.AssertEqual(t, "names", names(XthNearestOf(params, -1, 0)), "")
	})
}

func TestResolver_RelationFilters(t *testing.T) {
	tests := map[string]struct {
		obj      *Object
		seed     string
		expNames string
	}{
		"last attacker of sender": {
			obj:      NewFilterObject(FilterLastAttackerOf),
			expNames: "attacker",
		},
		"last attacker of seeded actor": {
			obj:      NewFilterObject(FilterLastAttackerOf),
			seed:     "victim",
			expNames: "sender",
		},
		"my target": {
			obj:      NewFilterObject(FilterMyTarget),
			seed:     "victim",
			expNames: "victim",
		},
		"last targeted by seeded actor": {
			obj:      NewFilterObject(FilterLastTargetedBy),
			seed:     "attacker",
			expNames: "sender",
		},
		"last seen by": {
			obj:      NewFilterObject(FilterLastSeenBy),
			expNames: "victim",
		},
		"last heard by": {
			obj:      NewFilterObject(FilterLastHeardBy),
			expNames: "attacker",
		},
		"last talked to by": {
			obj:      NewFilterObject(FilterLastTalkedToBy),
			expNames: "victim",
		},
		"last summoner of": {
			obj:      NewFilterObject(FilterLastSummonerOf),
			seed:     "victim",
			expNames: "attacker",
		},
		"relation not set": {
			obj:      NewFilterObject(FilterLastSummonerOf),
			expNames: "<nil>",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t)
			sender := w.addActor(t, "sender", game.EAPC, 0, 0)
			attacker := w.addActor(t, "attacker", game.EAEnemy, 10, 0)
			victim := w.addActor(t, "victim", game.EAEnemy, 20, 0)
			sender.LastAttacker = attacker.ID
			sender.LastTarget = victim.ID
			sender.LastSeen = victim.ID
			sender.LastHeard = attacker.ID
			sender.LastTalkedTo = victim.ID
			victim.LastAttacker = sender.ID
			victim.LastSummoner = attacker.ID
			attacker.LastTarget = sender.ID

			tgts := NewTargets()
			if tt.seed != "" {
				tgts.AddTarget(w.area.GetActorByName(tt.seed, 0), 0, 0)
			}
			got := w.res.ApplyFilters(sender, tgts, tt.obj, 0)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}
}

func TestResolver_PartyFilters(t *testing.T) {
	tests := map[string]struct {
		obj      *Object
		expNames string
	}{
		"protagonist":   {obj: NewFilterObject(FilterProtagonist), expNames: "charname"},
		"player2":       {obj: NewFilterObject(FilterPlayer2), expNames: "imoen"},
		"player3":       {obj: NewFilterObject(FilterPlayer3), expNames: "jaheira"},
		"empty slot":    {obj: NewFilterObject(FilterPlayer6), expNames: "<nil>"},
		"strongest":     {obj: NewFilterObject(FilterStrongestOf), expNames: "jaheira"},
		"weakest":       {obj: NewFilterObject(FilterWeakestOf), expNames: "imoen"},
		"most damaged":  {obj: NewFilterObject(FilterMostDamagedOf), expNames: "charname"},
		"least damaged": {obj: NewFilterObject(FilterLeastDamagedOf), expNames: "imoen"},
		"myself":        {obj: NewFilterObject(FilterMyself), expNames: "sender"},
		"nothing":       {obj: NewFilterObject(FilterNothing), expNames: "<nil>"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t)
			sender := w.addActor(t, "sender", game.EANeutral, 0, 0)
			for i, m := range []struct {
				name  string
				level int
				hp    int
			}{
				{"charname", 5, 2},
				{"imoen", 3, 10},
				{"jaheira", 6, 8},
			} {
				pc := w.addActor(t, m.name, game.EAPC, 10*(i+1), 0)
				pc.SetStat(game.StatLevel, m.level)
				pc.MaxHP = 10
				pc.CurrentHP = m.hp
				if err := w.game.JoinParty(pc, i+1); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			got := w.res.ApplyFilters(sender, NewTargets(), tt.obj, 0)
			testutil.AssertEqual(t, "names", names(got), tt.expNames)
		})
	}
}
