package script

import (
	"testing"

	"github.com/pixil98/go-gamescript/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestMatchEA(t *testing.T) {
	tests := map[string]struct {
		ea    int
		value int
		exp   bool
	}{
		"anything matches enemy":       {ea: game.EAEnemy, value: game.EAAnything, exp: true},
		"exact pc":                     {ea: game.EAPC, value: game.EAPC, exp: true},
		"exact mismatch":               {ea: game.EAAlly, value: game.EAPC, exp: false},
		"good cutoff includes 30":      {ea: 30, value: game.EAGoodCutoff, exp: true},
		"good cutoff excludes 31":      {ea: 31, value: game.EAGoodCutoff, exp: false},
		"not good includes 31":         {ea: 31, value: game.EANotGood, exp: true},
		"not good excludes pc":         {ea: game.EAPC, value: game.EANotGood, exp: false},
		"not neutral includes enemy":   {ea: game.EAEnemy, value: game.EANotNeutral, exp: true},
		"not neutral includes pc":      {ea: game.EAPC, value: game.EANotNeutral, exp: true},
		"not neutral excludes 199":     {ea: 199, value: game.EANotNeutral, exp: false},
		"not evil includes 199":        {ea: 199, value: game.EANotEvil, exp: true},
		"not evil excludes 200":        {ea: 200, value: game.EANotEvil, exp: false},
		"evil cutoff includes 200":     {ea: 200, value: game.EAEvilCutoff, exp: true},
		"evil cutoff excludes neutral": {ea: game.EANeutral, value: game.EAEvilCutoff, exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := game.NewActor("a", game.Point{})
			a.SetStat(game.StatEA, tt.ea)
			testutil.AssertEqual(t, "match", matchEA(a, tt.value), tt.exp)
		})
	}
}

func TestMatchClass(t *testing.T) {
	tests := map[string]struct {
		class       int
		activeClass int
		value       int
		exp         bool
	}{
		"exact class":                   {class: game.ClassThief, value: game.ClassThief, exp: true},
		"exact mismatch":                {class: game.ClassThief, value: game.ClassMage, exp: false},
		"mage all has fighter mage":     {class: game.ClassFighterMage, value: game.ClassMageAll, exp: true},
		"mage all has sorcerer":         {class: game.ClassSorcerer, value: game.ClassMageAll, exp: true},
		"mage all lacks thief":          {class: game.ClassThief, value: game.ClassMageAll, exp: false},
		"fighter all has fighter druid": {class: game.ClassFighterDruid, value: game.ClassFighterAll, exp: true},
		"cleric all has cleric ranger":  {class: game.ClassClericRanger, value: game.ClassClericAll, exp: true},
		"thief all has cleric thief":    {class: game.ClassClericThief, value: game.ClassThiefAll, exp: true},
		"bard all only bard":            {class: game.ClassFighterThief, value: game.ClassBardAll, exp: false},
		"druid all has fighter druid":   {class: game.ClassFighterDruid, value: game.ClassDruidAll, exp: true},
		"ranger all has ranger":         {class: game.ClassRanger, value: game.ClassRangerAll, exp: true},
		"paladin all":                   {class: game.ClassPaladin, value: game.ClassPaladinAll, exp: true},
		"active class wins":             {class: game.ClassFighterMage, activeClass: game.ClassMage, value: game.ClassFighterMage, exp: false},
		"active class in group":         {class: game.ClassFighter, activeClass: game.ClassMage, value: game.ClassMageAll, exp: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := game.NewActor("a", game.Point{})
			a.SetStat(game.StatClass, tt.class)
			a.ActiveClass = tt.activeClass
			testutil.AssertEqual(t, "match", matchClass(a, tt.value), tt.exp)
		})
	}
}

func TestMatchAlignment(t *testing.T) {
	tests := map[string]struct {
		align int
		value int
		exp   bool
	}{
		"exact":              {align: 0x11, value: 0x11, exp: true},
		"exact mismatch":     {align: 0x11, value: 0x13, exp: false},
		"any lawful":         {align: 0x12, value: 0x10, exp: true},
		"any lawful rejects": {align: 0x22, value: 0x10, exp: false},
		"any good":           {align: 0x31, value: 0x01, exp: true},
		"any evil rejects":   {align: 0x31, value: 0x03, exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := game.NewActor("a", game.Point{})
			a.SetStat(game.StatAlignment, tt.align)
			testutil.AssertEqual(t, "match", matchAlignment(a, tt.value), tt.exp)
		})
	}
}

func TestMatchesIDS(t *testing.T) {
	eaOnly := NewRegistry()
	if err := eaOnly.RegisterIDS(FieldEA, matchEA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		reg        *Registry
		fields     [ObjectIDSCount]int
		expPassed  bool
		expChecked bool
	}{
		"no fields": {
			reg:        NewDefaultRegistry(),
			expPassed:  true,
			expChecked: false,
		},
		"all fields pass": {
			reg:        NewDefaultRegistry(),
			fields:     [ObjectIDSCount]int{game.EAEnemy, 2, 3, game.ClassMage, 5, 1, 0x11},
			expPassed:  true,
			expChecked: true,
		},
		"one field fails": {
			reg:        NewDefaultRegistry(),
			fields:     [ObjectIDSCount]int{game.EAEnemy, 2, 4},
			expPassed:  false,
			expChecked: true,
		},
		"unregistered field is not checked": {
			reg:        eaOnly,
			fields:     [ObjectIDSCount]int{0, 0, 3},
			expPassed:  true,
			expChecked: false,
		},
		"unregistered field does not fail": {
			reg:        eaOnly,
			fields:     [ObjectIDSCount]int{game.EAEnemy, 0, 99},
			expPassed:  true,
			expChecked: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := game.NewActor("a", game.Point{})
			a.SetStat(game.StatEA, game.EAEnemy)
			a.SetStat(game.StatGeneral, 2)
			a.SetStat(game.StatRace, 3)
			a.SetStat(game.StatClass, game.ClassMage)
			a.SetStat(game.StatSpecific, 5)
			a.SetStat(game.StatSex, 1)
			a.SetStat(game.StatAlignment, 0x11)

			passed, checked := MatchesIDS(tt.reg, a, &Object{Fields: tt.fields})
			testutil.AssertEqual(t, "passed", passed, tt.expPassed)
			testutil.AssertEqual(t, "checked", checked, tt.expChecked)
		})
	}
}
