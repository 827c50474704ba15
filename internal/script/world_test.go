package script

import (
	"testing"

	"github.com/pixil98/go-gamescript/internal/game"
)

type testWorld struct {
	game *game.Game
	area *game.Area
	res  *Resolver
}

func newTestWorld(t *testing.T, opts ...game.GameOpt) *testWorld {
	t.Helper()
	g := game.NewGame(opts...)
	area := game.NewArea("ar0100", 0, 0, nil)
	if err := g.AddArea(area); err != nil {
		t.Fatalf("adding area: %v", err)
	}
	return &testWorld{game: g, area: area, res: NewResolver(g, nil)}
}

func (w *testWorld) addActor(t *testing.T, name string, ea int, x, y int) *game.Actor {
	t.Helper()
	a := game.NewActor(name, game.Point{X: x, Y: y})
	a.SetStat(game.StatEA, ea)
	if err := w.area.AddActor(a); err != nil {
		t.Fatalf("adding actor %s: %v", name, err)
	}
	return a
}

func names(tgts *Targets) string {
	if tgts == nil {
		return "<nil>"
	}
	s := ""
	for i, e := range tgts.All() {
		if i > 0 {
			s += ","
		}
		s += e.Scriptable.ScriptName()
	}
	return s
}
