package game

import (
	"strings"
	"sync/atomic"
)

// GlobalID identifies a scriptable for the lifetime of the process. It is the
// only safe way to refer to an entity across ticks.
type GlobalID uint32

var lastGlobalID atomic.Uint32

// NextGlobalID hands out a fresh, never reused GlobalID.
func NextGlobalID() GlobalID {
	return GlobalID(lastGlobalID.Add(1))
}

// ScriptableType tags the concrete variant behind a Scriptable.
type ScriptableType int

const (
	TypeAny ScriptableType = iota - 1
	TypeActor
	TypeDoor
	TypeContainer
	TypeInfoPoint
)

// Matches reports whether a scriptable of type other passes a filter of type t.
func (t ScriptableType) Matches(other ScriptableType) bool {
	return t == TypeAny || t == other
}

func (t ScriptableType) String() string {
	switch t {
	case TypeAny:
		return "any"
	case TypeActor:
		return "actor"
	case TypeDoor:
		return "door"
	case TypeContainer:
		return "container"
	case TypeInfoPoint:
		return "infopoint"
	default:
		return "unknown"
	}
}

// Scriptable represents anything a script object expression can resolve to.
type Scriptable interface {
	Type() ScriptableType
	GlobalID() GlobalID
	ScriptName() string
	Position() Point
	CurrentArea() *Area

	// StoredTarget is the global id remembered by a blocking action between
	// ticks; zero when unset.
	StoredTarget() GlobalID
	SetStoredTarget(GlobalID)
}

// ScriptableBase holds the state shared by every scriptable variant.
type ScriptableBase struct {
	ID   GlobalID
	Name string
	Pos  Point

	area         *Area
	actionTarget GlobalID
}

func newScriptableBase(name string, pos Point) ScriptableBase {
	return ScriptableBase{
		ID:   NextGlobalID(),
		Name: name,
		Pos:  pos,
	}
}

func (s *ScriptableBase) GlobalID() GlobalID              { return s.ID }
func (s *ScriptableBase) ScriptName() string              { return s.Name }
func (s *ScriptableBase) Position() Point                 { return s.Pos }
func (s *ScriptableBase) CurrentArea() *Area              { return s.area }
func (s *ScriptableBase) StoredTarget() GlobalID          { return s.actionTarget }
func (s *ScriptableBase) SetStoredTarget(target GlobalID) { s.actionTarget = target }

// MatchName compares script names the way the engine does: case-insensitively.
func (s *ScriptableBase) MatchName(name string) bool {
	return name != "" && strings.EqualFold(s.Name, name)
}

// AsActor returns s as an *Actor when it is one.
func AsActor(s Scriptable) (*Actor, bool) {
	a, ok := s.(*Actor)
	return a, ok && a != nil
}

// AsDoor returns s as a *Door when it is one.
func AsDoor(s Scriptable) (*Door, bool) {
	d, ok := s.(*Door)
	return d, ok && d != nil
}

// AsContainer returns s as a *Container when it is one.
func AsContainer(s Scriptable) (*Container, bool) {
	c, ok := s.(*Container)
	return c, ok && c != nil
}

// AsInfoPoint returns s as an *InfoPoint when it is one.
func AsInfoPoint(s Scriptable) (*InfoPoint, bool) {
	ip, ok := s.(*InfoPoint)
	return ip, ok && ip != nil
}
