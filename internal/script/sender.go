package script

import (
	"fmt"

	"github.com/pixil98/go-gamescript/internal/game"
)

// FindSender locates the scriptable a request runs as. Area actors come
// first, then area objects, then party members and global NPCs.
func FindSender(g *game.Game, areaName, name string) (game.Scriptable, error) {
	if name == "" {
		return nil, fmt.Errorf("sender is required")
	}

	areas := g.Areas()
	if areaName != "" {
		a, err := g.GetArea(areaName)
		if err != nil {
			return nil, err
		}
		areas = []*game.Area{a}
	}

	for _, a := range areas {
		if ac := a.GetActorByName(name, 0); ac != nil {
			return ac, nil
		}
		if s := GetActorObject(a.TileMap(), name); s != nil {
			return s, nil
		}
	}
	if areaName == "" {
		if pc := g.FindPC(name); pc != nil {
			return pc, nil
		}
		if npc := g.FindNPC(name); npc != nil {
			return npc, nil
		}
	}
	return nil, fmt.Errorf("sender %q: %w", name, game.ErrActorNotFound)
}
