package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gamescript/internal/storage"
)

var statNames = map[string]Stat{
	"ea":            StatEA,
	"general":       StatGeneral,
	"race":          StatRace,
	"class":         StatClass,
	"specific":      StatSpecific,
	"sex":           StatSex,
	"alignment":     StatAlignment,
	"level":         StatLevel,
	"visual_range":  StatVisualRange,
	"see_invisible": StatSeeInvisible,
	"state_flags":   StatStateFlags,
	"mc_flags":      StatMCFlags,
}

// ParseStat maps a stat name such as "ea" to its Stat.
func ParseStat(name string) (Stat, bool) {
	s, ok := statNames[name]
	return s, ok
}

// CreatureDef is the definition a spawned actor is built from.
type CreatureDef struct {
	ScriptName string         `json:"script_name"`
	Stats      map[string]int `json:"stats"`
	MaxHP      int            `json:"max_hp"`
	// Hours lists the hours (0-23) the creature is present; empty means always.
	Hours   []int    `json:"hours"`
	Effects []Effect `json:"effects"`
}

func (c *CreatureDef) Validate() error {
	el := errors.NewErrorList()

	if c.ScriptName == "" {
		el.Add(fmt.Errorf("script_name is required"))
	}
	if c.MaxHP < 0 {
		el.Add(fmt.Errorf("max_hp must not be negative"))
	}
	for name := range c.Stats {
		if _, ok := statNames[name]; !ok {
			el.Add(fmt.Errorf("unknown stat %q", name))
		}
	}
	for _, h := range c.Hours {
		if h < 0 || h > 23 {
			el.Add(fmt.Errorf("hour %d out of range", h))
		}
	}
	for i, fx := range c.Effects {
		if fx.Ref == "" {
			el.Add(fmt.Errorf("effect %d: ref is required", i))
		}
	}

	return el.Err()
}

// Spawn builds a new actor from the definition.
func (c *CreatureDef) Spawn(pos Point) *Actor {
	a := NewActor(c.ScriptName, pos)
	for name, v := range c.Stats {
		a.SetStat(statNames[name], v)
	}
	a.MaxHP = c.MaxHP
	a.CurrentHP = c.MaxHP
	if len(c.Hours) > 0 {
		a.Schedule = 0
		for _, h := range c.Hours {
			a.Schedule |= 1 << h
		}
	}
	a.Effects = append(EffectQueue(nil), c.Effects...)
	return a
}

// SpawnDef places a creature in an area.
type SpawnDef struct {
	Creature storage.Ref[*CreatureDef] `json:"creature"`
	Position Point                     `json:"position"`
	// PartySlot puts the spawned actor in the party (1-6).
	PartySlot int `json:"party_slot"`
	// Global registers the actor as a global NPC.
	Global bool `json:"global"`
}

type DoorDef struct {
	ScriptName string `json:"script_name"`
	Position   Point  `json:"position"`
	Bounds     Rect   `json:"bounds"`
	Closed     bool   `json:"closed"`
}

type ContainerDef struct {
	ScriptName string `json:"script_name"`
	Position   Point  `json:"position"`
}

type InfoPointDef struct {
	ScriptName string `json:"script_name"`
	Position   Point  `json:"position"`
	Bounds     Rect   `json:"bounds"`
}

// AreaDef is an area definition: geometry, static scriptables and spawns.
type AreaDef struct {
	Name       string         `json:"name"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Walls      []Rect         `json:"walls"`
	Doors      []DoorDef      `json:"doors"`
	Containers []ContainerDef `json:"containers"`
	InfoPoints []InfoPointDef `json:"info_points"`
	Spawns     []SpawnDef     `json:"spawns"`
}

func (a *AreaDef) Validate() error {
	el := errors.NewErrorList()

	if a.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if a.Width < 0 || a.Height < 0 {
		el.Add(fmt.Errorf("width and height must not be negative"))
	}
	for i, w := range a.Walls {
		if !w.Valid() {
			el.Add(fmt.Errorf("wall %d: rect must have a positive size", i))
		}
	}
	for i, d := range a.Doors {
		if d.ScriptName == "" {
			el.Add(fmt.Errorf("door %d: script_name is required", i))
		}
	}
	for i, c := range a.Containers {
		if c.ScriptName == "" {
			el.Add(fmt.Errorf("container %d: script_name is required", i))
		}
	}
	for i, ip := range a.InfoPoints {
		if ip.ScriptName == "" {
			el.Add(fmt.Errorf("info point %d: script_name is required", i))
		}
	}
	for i, s := range a.Spawns {
		if err := s.Creature.Validate(); err != nil {
			el.Add(fmt.Errorf("spawn %d: %w", i, err))
		}
		if s.PartySlot < 0 || s.PartySlot > PartySize {
			el.Add(fmt.Errorf("spawn %d: %w", i, ErrInvalidSlot))
		}
	}

	return el.Err()
}

// BuildGame instantiates every area definition, resolving and spawning its
// creatures. Areas are built in identifier order.
func BuildGame(areas storage.Storer[*AreaDef], creatures storage.Storer[*CreatureDef], opts ...GameOpt) (*Game, error) {
	g := NewGame(opts...)
	el := errors.NewErrorList()

	for _, id := range areas.Keys() {
		def := areas.Get(string(id))
		if err := g.buildArea(def, creatures); err != nil {
			el.Add(fmt.Errorf("area %s: %w", id, err))
		}
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	g.updateSchedules()
	return g, nil
}

func (g *Game) buildArea(def *AreaDef, creatures storage.Storer[*CreatureDef]) error {
	area := NewArea(def.Name, def.Width, def.Height, def.Walls)
	if err := g.AddArea(area); err != nil {
		return err
	}

	for _, d := range def.Doors {
		area.AddDoor(NewDoor(d.ScriptName, d.Position, d.Bounds, d.Closed))
	}
	for _, c := range def.Containers {
		area.AddContainer(NewContainer(c.ScriptName, c.Position))
	}
	for _, ip := range def.InfoPoints {
		area.AddInfoPoint(NewInfoPoint(ip.ScriptName, ip.Position, ip.Bounds))
	}

	el := errors.NewErrorList()
	for i, s := range def.Spawns {
		if err := s.Creature.Resolve(creatures); err != nil {
			el.Add(fmt.Errorf("spawn %d: %w", i, err))
			continue
		}
		ac := s.Creature.Get().Spawn(s.Position)
		if err := area.AddActor(ac); err != nil {
			el.Add(fmt.Errorf("spawn %d: %w", i, err))
			continue
		}
		switch {
		case s.PartySlot != 0:
			if err := g.JoinParty(ac, s.PartySlot); err != nil {
				el.Add(fmt.Errorf("spawn %d: %w", i, err))
			}
		case s.Global:
			g.AddNPC(ac)
		}
	}
	return el.Err()
}
