package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
)

// PartySize is the number of party slots.
const PartySize = 6

// DefaultTimeStep is how many game time ticks pass per driver tick.
const DefaultTimeStep = 15

// Game owns every area, the party and the global NPC list.
// Nothing in Game locks on its own; callers that run concurrently with the
// tick loop must go through Do.
type Game struct {
	mu sync.Mutex

	areas    map[string]*Area
	party    [PartySize]*Actor
	npcs     []*Actor
	gameTime uint32
	timeStep uint32
	features Feature
}

type GameOpt func(*Game)

// WithFeatures enables ruleset features.
func WithFeatures(f Feature) GameOpt {
	return func(g *Game) {
		g.features |= f
	}
}

// WithTimeStep sets how far game time advances per Tick.
func WithTimeStep(step uint32) GameOpt {
	return func(g *Game) {
		g.timeStep = step
	}
}

// WithGameTime sets the starting game time.
func WithGameTime(t uint32) GameOpt {
	return func(g *Game) {
		g.gameTime = t
	}
}

func NewGame(opts ...GameOpt) *Game {
	g := &Game{
		areas:    make(map[string]*Area),
		timeStep: DefaultTimeStep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Do runs fn while holding the game lock.
func (g *Game) Do(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}

// HasFeature reports whether the ruleset feature is enabled.
func (g *Game) HasFeature(f Feature) bool {
	return g.features&f != 0
}

// GameTime returns the current game time in ticks.
func (g *Game) GameTime() uint32 {
	return g.gameTime
}

// SetGameTime moves the clock and refreshes actor schedules.
func (g *Game) SetGameTime(t uint32) {
	g.gameTime = t
	g.updateSchedules()
}

// AddArea registers an area under its name.
func (g *Game) AddArea(a *Area) error {
	key := areaKey(a.Name)
	if _, ok := g.areas[key]; ok {
		return fmt.Errorf("area %q: %w", a.Name, ErrAreaExists)
	}
	a.game = g
	g.areas[key] = a
	return nil
}

// GetArea returns the loaded area with the given name.
func (g *Game) GetArea(name string) (*Area, error) {
	a, ok := g.areas[areaKey(name)]
	if !ok {
		return nil, fmt.Errorf("area %q: %w", name, ErrAreaNotFound)
	}
	return a, nil
}

// Areas returns the loaded areas ordered by name.
func (g *Game) Areas() []*Area {
	areas := make([]*Area, 0, len(g.areas))
	for _, a := range g.areas {
		areas = append(areas, a)
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].Name < areas[j].Name })
	return areas
}

// GetActorByGlobalID searches the actors of every loaded area.
func (g *Game) GetActorByGlobalID(id GlobalID) *Actor {
	if id == 0 {
		return nil
	}
	for _, a := range g.areas {
		if ac := a.GetActorByGlobalID(id); ac != nil {
			return ac
		}
	}
	return nil
}

// GetGlobalActorByGlobalID searches the party and the global NPC list. Unlike
// GetActorByGlobalID it finds actors that are not in any loaded area.
func (g *Game) GetGlobalActorByGlobalID(id GlobalID) *Actor {
	if id == 0 {
		return nil
	}
	for _, pc := range g.party {
		if pc != nil && pc.ID == id {
			return pc
		}
	}
	for _, npc := range g.npcs {
		if npc.ID == id {
			return npc
		}
	}
	return nil
}

// FindPC returns the party member with the script name.
func (g *Game) FindPC(name string) *Actor {
	for _, pc := range g.party {
		if pc != nil && pc.MatchName(name) {
			return pc
		}
	}
	return nil
}

// FindNPC returns the global NPC with the script name.
func (g *Game) FindNPC(name string) *Actor {
	for _, npc := range g.npcs {
		if npc.MatchName(name) {
			return npc
		}
	}
	return nil
}

// GetPC returns the party member in slot (1-6), or nil.
func (g *Game) GetPC(slot int) *Actor {
	if slot < 1 || slot > PartySize {
		return nil
	}
	return g.party[slot-1]
}

// Party returns the party members in slot order, skipping empty slots.
func (g *Game) Party() []*Actor {
	var pcs []*Actor
	for _, pc := range g.party {
		if pc != nil {
			pcs = append(pcs, pc)
		}
	}
	return pcs
}

// JoinParty puts ac into a party slot (1-6).
func (g *Game) JoinParty(ac *Actor, slot int) error {
	if slot < 1 || slot > PartySize {
		return ErrInvalidSlot
	}
	if cur := g.party[slot-1]; cur != nil && cur != ac {
		return fmt.Errorf("slot %d: %w", slot, ErrPartySlotTaken)
	}
	if ac.PartySlot != 0 && ac.PartySlot != slot {
		g.party[ac.PartySlot-1] = nil
	}
	g.party[slot-1] = ac
	ac.PartySlot = slot
	if i := slices.Index(g.npcs, ac); i >= 0 {
		g.npcs = slices.Delete(g.npcs, i, i+1)
	}
	return nil
}

// LeaveParty moves a party member back to the global NPC list.
func (g *Game) LeaveParty(ac *Actor) {
	if ac.PartySlot == 0 {
		return
	}
	g.party[ac.PartySlot-1] = nil
	ac.PartySlot = 0
	g.AddNPC(ac)
}

// AddNPC tracks ac as a global NPC.
func (g *Game) AddNPC(ac *Actor) {
	if slices.Contains(g.npcs, ac) {
		return
	}
	g.npcs = append(g.npcs, ac)
}

// Tick advances game time and refreshes actor schedules.
func (g *Game) Tick(ctx context.Context) error {
	g.Do(func() {
		g.gameTime += g.timeStep
		g.updateSchedules()
	})
	return nil
}

func (g *Game) updateSchedules() {
	for _, a := range g.areas {
		for _, ac := range a.actors {
			active := ac.IsScheduled(g.gameTime, false)
			if active != ac.Active {
				slog.Debug("actor schedule changed", "actor", ac.Name, "area", a.Name, "active", active)
				ac.Active = active
			}
		}
	}
}

func areaKey(name string) string {
	return strings.ToLower(name)
}
