package game

import (
	"github.com/google/uuid"
)

// TicksPerHour is the number of game time ticks in one in-game hour.
const TicksPerHour = 4500

// ScheduleAlways is an hour mask with every hour of the day set.
const ScheduleAlways uint32 = 0xFFFFFF

// Actor is a creature in an area: party members, NPCs and monsters.
type Actor struct {
	ScriptableBase

	// InstanceId distinguishes spawned copies of the same creature definition.
	InstanceId string

	Stats   [StatCount]int
	Effects EffectQueue

	// Schedule is a 24 bit mask of the hours the actor is present.
	Schedule uint32
	// Visible is cleared for actors hidden by script (not by invisibility).
	Visible bool
	// Active is recomputed from the schedule every tick.
	Active bool
	// Unselectable actors can't be picked by GASelect lookups.
	Unselectable bool

	// ActiveClass overrides the class stat for dual-classed actors.
	ActiveClass int

	CurrentHP int
	MaxHP     int

	// PartySlot is 1-6 for party members, 0 otherwise.
	PartySlot int

	LastAttacker GlobalID
	LastTarget   GlobalID
	LastSeen     GlobalID
	LastHeard    GlobalID
	LastTalkedTo GlobalID
	LastSummoner GlobalID
}

// NewActor creates an active, always scheduled actor with default stats.
func NewActor(name string, pos Point) *Actor {
	a := &Actor{
		ScriptableBase: newScriptableBase(name, pos),
		InstanceId:     uuid.New().String(),
		Schedule:       ScheduleAlways,
		Visible:        true,
		Active:         true,
	}
	a.Stats[StatVisualRange] = DefaultVisualRange
	return a
}

func (a *Actor) Type() ScriptableType { return TypeActor }

// GetStat returns the modified value of a stat; out of range stats read as 0.
func (a *Actor) GetStat(s Stat) int {
	if s < 0 || s >= StatCount {
		return 0
	}
	return a.Stats[s]
}

// SetStat sets the modified value of a stat.
func (a *Actor) SetStat(s Stat, v int) {
	if s < 0 || s >= StatCount {
		return
	}
	a.Stats[s] = v
}

// GetActiveClass returns the class the actor currently acts as.
func (a *Actor) GetActiveClass() int {
	if a.ActiveClass != 0 {
		return a.ActiveClass
	}
	return a.Stats[StatClass]
}

// GetVisualRange returns the sight radius in pixels.
func (a *Actor) GetVisualRange() int {
	return a.Stats[StatVisualRange] * VisualRangeScale
}

// GetXPLevel returns the actor's experience level.
func (a *Actor) GetXPLevel() int {
	return a.Stats[StatLevel]
}

// IsDead reports whether the dead state bit is set.
func (a *Actor) IsDead() bool {
	return a.Stats[StatStateFlags]&StateDead != 0
}

// Group classifies the actor's allegiance.
func (a *Actor) Group() Group {
	return GroupOf(a.Stats[StatEA])
}

// HasMCFlag reports whether a StatMCFlags bit is set.
func (a *Actor) HasMCFlag(flag int) bool {
	return a.Stats[StatMCFlags]&flag != 0
}

// SetMCFlag sets or clears a StatMCFlags bit.
func (a *Actor) SetMCFlag(flag int, on bool) {
	if on {
		a.Stats[StatMCFlags] |= flag
	} else {
		a.Stats[StatMCFlags] &^= flag
	}
}

// IsInvisibleTo reports whether checker fails to see the actor because of
// invisibility. A nil or non-actor checker has no way to see through it.
func (a *Actor) IsInvisibleTo(checker Scriptable) bool {
	if a.Stats[StatStateFlags]&StateInvisible == 0 {
		return false
	}
	if c, ok := AsActor(checker); ok {
		if c == a {
			return false
		}
		if c.Stats[StatSeeInvisible] > 0 || c.HasMCFlag(MCSeenParty) {
			return false
		}
	}
	return true
}

// IsScheduled reports whether the actor is present at gameTime. With
// checkHide, script-hidden actors count as absent.
func (a *Actor) IsScheduled(gameTime uint32, checkHide bool) bool {
	if checkHide && !a.Visible {
		return false
	}
	hour := (gameTime / TicksPerHour) % 24
	return a.Schedule&(1<<hour) != 0
}

// ValidTarget reports whether the actor survives the restrictions in flags.
// checker is the scriptable doing the lookup and may be nil.
func (a *Actor) ValidTarget(flags GAFlags, checker Scriptable) bool {
	if flags&GASelect != 0 && a.Unselectable {
		return false
	}
	if flags&GANoDead != 0 && a.IsDead() {
		return false
	}
	if flags&GANoUnscheduled != 0 && !a.Active {
		return false
	}
	if flags&GANoHidden != 0 && a.IsInvisibleTo(checker) {
		return false
	}
	if flags&GANoSelf != 0 && checker != nil && checker.GlobalID() == a.ID {
		return false
	}

	switch a.Group() {
	case GroupPC:
		if flags&GANoAlly != 0 {
			return false
		}
	case GroupEnemy:
		if flags&GANoEnemy != 0 {
			return false
		}
	default:
		if flags&GANoNeutral != 0 {
			return false
		}
	}
	return true
}
