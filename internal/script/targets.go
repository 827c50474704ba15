package script

import (
	"slices"

	"github.com/pixil98/go-gamescript/internal/game"
)

// Target is one entry of a target set.
type Target struct {
	Scriptable game.Scriptable
	// Distance ranks the entry. Farthest lookups store negated distances.
	Distance int
	Flags    game.GAFlags
}

// Targets is an ordered set of scriptables, unique by identity. Entries are
// inserted in distance order; filters decide the final order.
type Targets struct {
	list []Target
}

func NewTargets() *Targets {
	return &Targets{}
}

// Cursor walks a Targets, visiting only entries of one scriptable type.
type Cursor struct {
	idx int
	typ game.ScriptableType
}

// AddTarget inserts s before the first entry with a greater distance.
// Adding a scriptable that is already present is a no-op, and with non-zero
// flags actors failing ValidTarget are not added.
func (t *Targets) AddTarget(s game.Scriptable, distance int, flags game.GAFlags) {
	if isNil(s) || t.contains(s) {
		return
	}
	if flags != 0 {
		if a, ok := game.AsActor(s); ok && !a.ValidTarget(flags, nil) {
			return
		}
	}

	tgt := Target{Scriptable: s, Distance: distance, Flags: flags}
	for i, e := range t.list {
		if e.Distance > distance {
			t.list = slices.Insert(t.list, i, tgt)
			return
		}
	}
	t.list = append(t.list, tgt)
}

// GetFirstTarget starts a traversal over entries of type typ.
func (t *Targets) GetFirstTarget(typ game.ScriptableType) (*Cursor, *Target) {
	c := &Cursor{idx: -1, typ: typ}
	return c, t.seek(c, 0)
}

// GetNextTarget advances c to the next entry of its type.
func (t *Targets) GetNextTarget(c *Cursor) *Target {
	return t.seek(c, c.idx+1)
}

// RemoveTargetAt removes the entry under c and returns the next entry of the
// cursor's type, leaving c on it.
func (t *Targets) RemoveTargetAt(c *Cursor) *Target {
	if c.idx < 0 || c.idx >= len(t.list) {
		return nil
	}
	t.list = slices.Delete(t.list, c.idx, c.idx+1)
	return t.seek(c, c.idx)
}

func (t *Targets) seek(c *Cursor, from int) *Target {
	for i := from; i < len(t.list); i++ {
		if c.typ.Matches(t.list[i].Scriptable.Type()) {
			c.idx = i
			return &t.list[i]
		}
	}
	c.idx = len(t.list)
	return nil
}

// GetLastTarget returns the last entry of type typ.
func (t *Targets) GetLastTarget(typ game.ScriptableType) *Target {
	for i := len(t.list) - 1; i >= 0; i-- {
		if typ.Matches(t.list[i].Scriptable.Type()) {
			return &t.list[i]
		}
	}
	return nil
}

// GetTarget returns the index-th scriptable among entries of type typ.
func (t *Targets) GetTarget(index int, typ game.ScriptableType) game.Scriptable {
	if index < 0 {
		return nil
	}
	for _, e := range t.list {
		if !typ.Matches(e.Scriptable.Type()) {
			continue
		}
		if index == 0 {
			return e.Scriptable
		}
		index--
	}
	return nil
}

// Pop drops the first entry.
func (t *Targets) Pop() {
	if len(t.list) > 0 {
		t.list = slices.Delete(t.list, 0, 1)
	}
}

func (t *Targets) Clear() {
	t.list = t.list[:0]
}

func (t *Targets) Count() int {
	return len(t.list)
}

// All returns a copy of the entries in order.
func (t *Targets) All() []Target {
	return slices.Clone(t.list)
}

// Contains reports whether the scriptable with id is in the set.
func (t *Targets) Contains(id game.GlobalID) bool {
	return slices.ContainsFunc(t.list, func(e Target) bool {
		return e.Scriptable.GlobalID() == id
	})
}

// FilterObjectRect drops entries outside the expression's rectangle. An
// expression without a valid rectangle keeps everything.
func (t *Targets) FilterObjectRect(obj *Object) {
	if obj == nil || !obj.Rect.Valid() {
		return
	}
	t.list = slices.DeleteFunc(t.list, func(e Target) bool {
		return !game.IsInObjectRect(e.Scriptable.Position(), obj.Rect)
	})
}

func (t *Targets) contains(s game.Scriptable) bool {
	return slices.ContainsFunc(t.list, func(e Target) bool {
		return e.Scriptable == s
	})
}

// isNil catches typed nil pointers stored in a Scriptable.
func isNil(s game.Scriptable) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *game.Actor:
		return v == nil
	case *game.Door:
		return v == nil
	case *game.Container:
		return v == nil
	case *game.InfoPoint:
		return v == nil
	}
	return false
}
