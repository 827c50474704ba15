package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestArea_GetActor(t *testing.T) {
	area := NewArea("ar0100", 0, 0, nil)
	a := NewActor("a", Point{})
	b := NewActor("b", Point{})
	c := NewActor("c", Point{})
	b.Active = false
	for _, ac := range []*Actor{a, b, c} {
		if err := area.AddActor(ac); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	tests := map[string]struct {
		index   int
		any     bool
		expName string
	}{
		"first any":           {index: 0, any: true, expName: "a"},
		"inactive with any":   {index: 1, any: true, expName: "b"},
		"skips inactive":      {index: 1, any: false, expName: "c"},
		"out of range":        {index: 3, any: true, expName: ""},
		"out of range active": {index: 2, any: false, expName: ""},
		"negative":            {index: -1, any: true, expName: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := area.GetActor(tt.index, tt.any)
			name := ""
			if got != nil {
				name = got.Name
			}
			testutil.AssertEqual(t, "actor", name, tt.expName)
		})
	}

	testutil.AssertEqual(t, "count any", area.GetActorCount(true), 3)
	testutil.AssertEqual(t, "count active", area.GetActorCount(false), 2)
}

func TestArea_AddActor(t *testing.T) {
	first := NewArea("ar0100", 0, 0, nil)
	second := NewArea("ar0200", 0, 0, nil)
	ac := NewActor("mover", Point{})

	if err := first.AddActor(ac); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := first.AddActor(ac)
	if !errors.Is(err, ErrActorExists) {
		t.Errorf("expected ErrActorExists, got %v", err)
	}

	if err := second.AddActor(ac); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "first count", first.GetActorCount(true), 0)
	testutil.AssertEqual(t, "second count", second.GetActorCount(true), 1)
	testutil.AssertEqual(t, "current area", ac.CurrentArea() == second, true)

	testutil.AssertEqual(t, "removed", second.RemoveActor(ac), true)
	testutil.AssertEqual(t, "removed twice", second.RemoveActor(ac), false)
	testutil.AssertEqual(t, "detached", ac.CurrentArea() == nil, true)
}

func TestArea_Lookups(t *testing.T) {
	area := NewArea("ar0100", 0, 0, nil)
	dead := NewActor("Guard", Point{})
	dead.SetStat(StatStateFlags, StateDead)
	alive := NewActor("guard", Point{})
	door := NewDoor("DOOR01", Point{}, Rect{}, false)
	chest := NewContainer("Chest", Point{})
	trap := NewInfoPoint("Trap1", Point{}, Rect{})
	_ = area.AddActor(dead)
	_ = area.AddActor(alive)
	area.AddDoor(door)
	area.AddContainer(chest)
	area.AddInfoPoint(trap)

	testutil.AssertEqual(t, "by name", area.GetActorByName("GUARD", 0) == dead, true)
	testutil.AssertEqual(t, "by name no dead", area.GetActorByName("guard", GANoDead) == alive, true)
	testutil.AssertEqual(t, "by name missing", area.GetActorByName("nobody", 0) == nil, true)

	testutil.AssertEqual(t, "actor by id", area.GetActorByGlobalID(alive.ID) == alive, true)
	testutil.AssertEqual(t, "zero id", area.GetActorByGlobalID(0) == nil, true)
	testutil.AssertEqual(t, "scriptable door", area.GetScriptableByGlobalID(door.ID) == Scriptable(door), true)
	testutil.AssertEqual(t, "scriptable chest", area.GetScriptableByGlobalID(chest.ID) == Scriptable(chest), true)
	testutil.AssertEqual(t, "scriptable trap", area.GetScriptableByGlobalID(trap.ID) == Scriptable(trap), true)
	testutil.AssertEqual(t, "scriptable unknown", area.GetScriptableByGlobalID(NextGlobalID()) == nil, true)

	testutil.AssertEqual(t, "door", area.TileMap().GetDoor("door01") == door, true)
	testutil.AssertEqual(t, "container", area.TileMap().GetContainer("chest") == chest, true)
	testutil.AssertEqual(t, "info point", area.TileMap().GetInfoPoint("TRAP1") == trap, true)
	testutil.AssertEqual(t, "door count", area.TileMap().GetDoorCount(), 1)
	testutil.AssertEqual(t, "door area", door.CurrentArea() == area, true)
}

func TestArea_IsVisibleLOS(t *testing.T) {
	tests := map[string]struct {
		width  int
		height int
		walls  []Rect
		doors  []*Door
		from   Point
		to     Point
		exp    bool
	}{
		"open ground": {
			from: Point{X: 8, Y: 6},
			to:   Point{X: 300, Y: 6},
			exp:  true,
		},
		"same cell": {
			walls: []Rect{{X: 0, Y: 0, W: 100, H: 100}},
			from:  Point{X: 1, Y: 1},
			to:    Point{X: 2, Y: 2},
			exp:   true,
		},
		"wall in between": {
			walls: []Rect{{X: 150, Y: 0, W: 20, H: 50}},
			from:  Point{X: 8, Y: 6},
			to:    Point{X: 300, Y: 6},
			exp:   false,
		},
		"wall off the line": {
			walls: []Rect{{X: 150, Y: 100, W: 20, H: 50}},
			from:  Point{X: 8, Y: 6},
			to:    Point{X: 300, Y: 6},
			exp:   true,
		},
		"wall at the endpoint": {
			walls: []Rect{{X: 288, Y: 0, W: 20, H: 20}},
			from:  Point{X: 8, Y: 6},
			to:    Point{X: 296, Y: 6},
			exp:   true,
		},
		"closed door blocks": {
			doors: []*Door{NewDoor("d", Point{}, Rect{X: 150, Y: 0, W: 20, H: 50}, true)},
			from:  Point{X: 8, Y: 6},
			to:    Point{X: 300, Y: 6},
			exp:   false,
		},
		"open door does not block": {
			doors: []*Door{NewDoor("d", Point{}, Rect{X: 150, Y: 0, W: 20, H: 50}, false)},
			from:  Point{X: 8, Y: 6},
			to:    Point{X: 300, Y: 6},
			exp:   true,
		},
		"diagonal through wall": {
			walls: []Rect{{X: 64, Y: 48, W: 32, H: 24}},
			from:  Point{X: 8, Y: 6},
			to:    Point{X: 168, Y: 126},
			exp:   false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			area := NewArea("ar0100", tt.width, tt.height, tt.walls)
			for _, d := range tt.doors {
				area.AddDoor(d)
			}
			testutil.AssertEqual(t, "visible", area.IsVisibleLOS(tt.from, tt.to), tt.exp)
			testutil.AssertEqual(t, "symmetric", area.IsVisibleLOS(tt.to, tt.from), tt.exp)
		})
	}
}
