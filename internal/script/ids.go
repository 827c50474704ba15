package script

import (
	"log/slog"
	"slices"

	"github.com/pixil98/go-gamescript/internal/game"
)

// MatchesIDS checks every non-zero IDS field of obj against a. checked
// reports whether any registered check ran; a field without a registered
// check is skipped.
func MatchesIDS(reg *Registry, a *game.Actor, obj *Object) (passed bool, checked bool) {
	for i, v := range obj.Fields {
		if v == 0 {
			continue
		}
		field := IDSField(i)
		fn, ok := reg.idsFunc(field)
		if !ok {
			slog.Warn("unimplemented ids targeting field", "field", field, "value", v)
			continue
		}
		checked = true
		if !fn(a, v) {
			return false, true
		}
	}
	return true, checked
}

func defaultIDSFuncs() map[IDSField]IDSFunc {
	return map[IDSField]IDSFunc{
		FieldEA:        matchEA,
		FieldGeneral:   statEquals(game.StatGeneral),
		FieldRace:      statEquals(game.StatRace),
		FieldClass:     matchClass,
		FieldSpecific:  statEquals(game.StatSpecific),
		FieldGender:    statEquals(game.StatSex),
		FieldAlignment: matchAlignment,
	}
}

func statEquals(stat game.Stat) IDSFunc {
	return func(a *game.Actor, value int) bool {
		return a.GetStat(stat) == value
	}
}

func matchEA(a *game.Actor, value int) bool {
	ea := a.GetStat(game.StatEA)
	switch value {
	case game.EAAnyone, game.EAAnything:
		return true
	case game.EAGoodCutoff:
		return ea <= game.EAGoodCutoff
	case game.EANotGood:
		return ea >= game.EANotGood
	case game.EANotNeutral:
		return ea >= game.EAEvilCutoff || ea <= game.EAGoodCutoff
	case game.EANotEvil:
		return ea <= game.EANotEvil
	case game.EAEvilCutoff:
		return ea >= game.EAEvilCutoff
	}
	return ea == value
}

var classGroups = map[int][]int{
	game.ClassMageAll: {
		game.ClassMage, game.ClassFighterMage, game.ClassFighterMageThief, game.ClassMageThief,
		game.ClassClericMage, game.ClassFighterMageCleric, game.ClassSorcerer,
	},
	game.ClassFighterAll: {
		game.ClassFighter, game.ClassFighterMage, game.ClassFighterCleric, game.ClassFighterThief,
		game.ClassFighterMageThief, game.ClassFighterDruid, game.ClassFighterMageCleric,
	},
	game.ClassClericAll: {
		game.ClassCleric, game.ClassFighterCleric, game.ClassClericMage, game.ClassClericThief,
		game.ClassFighterMageCleric, game.ClassClericRanger,
	},
	game.ClassThiefAll: {
		game.ClassThief, game.ClassFighterThief, game.ClassFighterMageThief, game.ClassMageThief,
		game.ClassClericThief,
	},
	game.ClassBardAll:    {game.ClassBard},
	game.ClassPaladinAll: {game.ClassPaladin},
	game.ClassDruidAll:   {game.ClassDruid, game.ClassFighterDruid},
	game.ClassRangerAll:  {game.ClassRanger, game.ClassClericRanger},
}

func matchClass(a *game.Actor, value int) bool {
	class := a.GetActiveClass()
	if members, ok := classGroups[value]; ok {
		return slices.Contains(members, class)
	}
	return class == value
}

// Alignment values pack the law axis in the high nibble and the moral axis
// in the low nibble; a zero nibble in the check matches any value.
func matchAlignment(a *game.Actor, value int) bool {
	align := a.GetStat(game.StatAlignment)
	if hi := value & 0xF0; hi != 0 && align&0xF0 != hi {
		return false
	}
	if lo := value & 0x0F; lo != 0 && align&0x0F != lo {
		return false
	}
	return true
}
