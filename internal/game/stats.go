package game

// Stat indexes an actor's stat table.
type Stat int

const (
	StatEA Stat = iota
	StatGeneral
	StatRace
	StatClass
	StatSpecific
	StatSex
	StatAlignment
	StatLevel
	StatVisualRange
	StatSeeInvisible
	StatStateFlags
	StatMCFlags

	StatCount
)

// Allegiance (EA.IDS) values and cutoffs.
const (
	EAAnyone       = 0
	EAInanimate    = 1
	EAPC           = 2
	EAFamiliar     = 3
	EAAlly         = 4
	EAControlled   = 5
	EACharmed      = 6
	EAGoodButRed   = 28
	EAGoodButBlue  = 29
	EAGoodCutoff   = 30
	EANotGood      = 31
	EAAnything     = 126
	EANeutral      = 128
	EANotNeutral   = 198
	EANotEvil      = 199
	EAEvilCutoff   = 200
	EAEvilButGreen = 201
	EAEvilButBlue  = 202
	EAEnemy        = 255
)

// Class (CLASS.IDS) values used by the class group checks.
const (
	ClassMage              = 1
	ClassFighter           = 2
	ClassCleric            = 3
	ClassThief             = 4
	ClassBard              = 5
	ClassPaladin           = 6
	ClassFighterMage       = 7
	ClassFighterCleric     = 8
	ClassFighterThief      = 9
	ClassFighterMageThief  = 10
	ClassDruid             = 11
	ClassRanger            = 12
	ClassMageThief         = 13
	ClassClericMage        = 14
	ClassClericThief       = 15
	ClassFighterDruid      = 16
	ClassFighterMageCleric = 17
	ClassClericRanger      = 18
	ClassSorcerer          = 19
	ClassMonk              = 20

	ClassMageAll    = 202
	ClassFighterAll = 203
	ClassClericAll  = 204
	ClassThiefAll   = 205
	ClassBardAll    = 206
	ClassPaladinAll = 207
	ClassDruidAll   = 208
	ClassRangerAll  = 209
)

// SexSummon marks summoned creatures in the sex stat.
const SexSummon = 6

// State flag bits (StatStateFlags).
const (
	StateDead      = 0x800
	StateInvisible = 0x10
)

// MCSeenParty is the StatMCFlags bit that lets an actor see through
// invisibility under the 3rd edition ruleset.
const MCSeenParty = 0x800

// DefaultVisualRange is the visual range stat a creature gets when its
// definition does not set one. VisualRangeScale converts it to pixels.
const (
	DefaultVisualRange = 30
	VisualRangeScale   = 16
)

// Group is the three-way allegiance classification.
type Group int

const (
	GroupNeutral Group = iota
	GroupPC
	GroupEnemy
)

func (g Group) String() string {
	switch g {
	case GroupPC:
		return "pc"
	case GroupEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

// GroupOf classifies an allegiance value.
func GroupOf(ea int) Group {
	if ea <= EAGoodCutoff {
		return GroupPC
	}
	if ea >= EAEvilCutoff {
		return GroupEnemy
	}
	return GroupNeutral
}
