package game

import (
	"fmt"
	"slices"
)

// Area is a loaded map: its actors, static scriptables and wall geometry.
type Area struct {
	// Name is the area's script reference (e.g. "ar0602").
	Name   string
	Width  int
	Height int

	walls   []Rect
	actors  []*Actor
	tileMap *TileMap
	game    *Game
}

// NewArea creates an empty area. A zero width or height leaves the area
// unbounded for line of sight purposes.
func NewArea(name string, width, height int, walls []Rect) *Area {
	return &Area{
		Name:    name,
		Width:   width,
		Height:  height,
		walls:   walls,
		tileMap: &TileMap{},
	}
}

// TileMap returns the area's doors, containers and info points.
func (a *Area) TileMap() *TileMap {
	return a.tileMap
}

// Game returns the game the area belongs to, or nil when it is detached.
func (a *Area) Game() *Game {
	return a.game
}

// AddActor places ac in the area, taking it out of any area it was in.
func (a *Area) AddActor(ac *Actor) error {
	if ac.area == a {
		return fmt.Errorf("actor %q: %w", ac.Name, ErrActorExists)
	}
	if ac.area != nil {
		ac.area.RemoveActor(ac)
	}
	a.actors = append(a.actors, ac)
	ac.area = a
	return nil
}

// RemoveActor takes ac out of the area. It reports whether ac was present.
func (a *Area) RemoveActor(ac *Actor) bool {
	i := slices.Index(a.actors, ac)
	if i < 0 {
		return false
	}
	a.actors = slices.Delete(a.actors, i, i+1)
	ac.area = nil
	return true
}

func (a *Area) AddDoor(d *Door) {
	d.area = a
	a.tileMap.doors = append(a.tileMap.doors, d)
}

func (a *Area) AddContainer(c *Container) {
	c.area = a
	a.tileMap.containers = append(a.tileMap.containers, c)
}

func (a *Area) AddInfoPoint(ip *InfoPoint) {
	ip.area = a
	a.tileMap.infoPoints = append(a.tileMap.infoPoints, ip)
}

// Actors returns a copy of the area's actor list.
func (a *Area) Actors() []*Actor {
	return slices.Clone(a.actors)
}

// GetActorCount counts the area's actors. Unless any is set, only active
// actors are counted.
func (a *Area) GetActorCount(any bool) int {
	if any {
		return len(a.actors)
	}
	n := 0
	for _, ac := range a.actors {
		if ac.Active {
			n++
		}
	}
	return n
}

// GetActor returns the index-th actor, counting only active actors unless
// any is set. Out of range indexes return nil.
func (a *Area) GetActor(index int, any bool) *Actor {
	if index < 0 {
		return nil
	}
	if any {
		if index >= len(a.actors) {
			return nil
		}
		return a.actors[index]
	}
	for _, ac := range a.actors {
		if !ac.Active {
			continue
		}
		if index == 0 {
			return ac
		}
		index--
	}
	return nil
}

// GetActorByName returns the first actor with the script name that is also a
// valid target for flags. Several actors may share a script name.
func (a *Area) GetActorByName(name string, flags GAFlags) *Actor {
	for _, ac := range a.actors {
		if ac.MatchName(name) && ac.ValidTarget(flags, nil) {
			return ac
		}
	}
	return nil
}

func (a *Area) GetActorByGlobalID(id GlobalID) *Actor {
	if id == 0 {
		return nil
	}
	for _, ac := range a.actors {
		if ac.ID == id {
			return ac
		}
	}
	return nil
}

// GetScriptableByGlobalID looks up actors first, then the tile map.
func (a *Area) GetScriptableByGlobalID(id GlobalID) Scriptable {
	if id == 0 {
		return nil
	}
	if ac := a.GetActorByGlobalID(id); ac != nil {
		return ac
	}
	return a.tileMap.getByGlobalID(id)
}

// IsVisibleLOS walks the search map cells between from and to and reports
// whether none of the cells in between is blocked by a wall, a closed door or
// the area edge.
func (a *Area) IsVisibleLOS(from, to Point) bool {
	start := from.SearchMapPoint()
	end := to.SearchMapPoint()
	if start == end {
		return true
	}

	dx := abs(end.X - start.X)
	dy := -abs(end.Y - start.Y)
	sx, sy := 1, 1
	if start.X > end.X {
		sx = -1
	}
	if start.Y > end.Y {
		sy = -1
	}
	e := dx + dy

	cur := start
	for cur != end {
		if cur != start && a.blocksSight(cur) {
			return false
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cur.X += sx
		}
		if e2 <= dx {
			e += dx
			cur.Y += sy
		}
	}
	return true
}

func (a *Area) blocksSight(cell Point) bool {
	if a.Width > 0 && a.Height > 0 {
		if cell.X < 0 || cell.Y < 0 || cell.X*SearchMapCellWidth >= a.Width || cell.Y*SearchMapCellHeight >= a.Height {
			return true
		}
	}

	center := Point{
		X: cell.X*SearchMapCellWidth + SearchMapCellWidth/2,
		Y: cell.Y*SearchMapCellHeight + SearchMapCellHeight/2,
	}
	for _, w := range a.walls {
		if w.Contains(center) {
			return true
		}
	}
	for _, d := range a.tileMap.doors {
		if d.Closed && d.Bounds.Contains(center) {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
