package game

// Door is an openable door; closed doors block line of sight.
type Door struct {
	ScriptableBase

	Closed bool
	// Bounds is the area covered by the door leaf when closed.
	Bounds Rect
}

func NewDoor(name string, pos Point, bounds Rect, closed bool) *Door {
	return &Door{
		ScriptableBase: newScriptableBase(name, pos),
		Closed:         closed,
		Bounds:         bounds,
	}
}

func (d *Door) Type() ScriptableType { return TypeDoor }

// Container is a pile or chest that can be searched.
type Container struct {
	ScriptableBase
}

func NewContainer(name string, pos Point) *Container {
	return &Container{ScriptableBase: newScriptableBase(name, pos)}
}

func (c *Container) Type() ScriptableType { return TypeContainer }

// InfoPoint is a trigger region, travel region or info marker.
type InfoPoint struct {
	ScriptableBase

	Bounds Rect
}

func NewInfoPoint(name string, pos Point, bounds Rect) *InfoPoint {
	return &InfoPoint{
		ScriptableBase: newScriptableBase(name, pos),
		Bounds:         bounds,
	}
}

func (ip *InfoPoint) Type() ScriptableType { return TypeInfoPoint }

// TileMap holds the static scriptables of an area.
type TileMap struct {
	doors      []*Door
	containers []*Container
	infoPoints []*InfoPoint
}

// Doors returns the area's doors in definition order.
func (tm *TileMap) Doors() []*Door {
	return tm.doors
}

func (tm *TileMap) GetDoorCount() int {
	return len(tm.doors)
}

// GetDoor finds a door by script name.
func (tm *TileMap) GetDoor(name string) *Door {
	for _, d := range tm.doors {
		if d.MatchName(name) {
			return d
		}
	}
	return nil
}

// GetContainer finds a container by script name.
func (tm *TileMap) GetContainer(name string) *Container {
	for _, c := range tm.containers {
		if c.MatchName(name) {
			return c
		}
	}
	return nil
}

// GetInfoPoint finds an info point by script name.
func (tm *TileMap) GetInfoPoint(name string) *InfoPoint {
	for _, ip := range tm.infoPoints {
		if ip.MatchName(name) {
			return ip
		}
	}
	return nil
}

func (tm *TileMap) getByGlobalID(id GlobalID) Scriptable {
	for _, d := range tm.doors {
		if d.ID == id {
			return d
		}
	}
	for _, c := range tm.containers {
		if c.ID == id {
			return c
		}
	}
	for _, ip := range tm.infoPoints {
		if ip.ID == id {
			return ip
		}
	}
	return nil
}
