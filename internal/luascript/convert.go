package luascript

import (
	"fmt"

	"github.com/pixil98/go-gamescript/internal/game"
	"github.com/pixil98/go-gamescript/internal/script"
	lua "github.com/yuin/gopher-lua"
)

// idsKeys name the IDS fields of an object table, in field order.
var idsKeys = [script.ObjectIDSCount]string{"ea", "general", "race", "class", "specific", "gender", "alignment"}

// toObject converts a script argument into an object expression. nil stays
// nil, a string is a script name and a table spells out the fields:
//
//	{ name = "", ea = 255, class = 202, global_id = 7,
//	  rect = { x = 0, y = 0, w = 100, h = 100 },
//	  filters = { "Myself", "NearestEnemyOf" } }
//
// Filters are listed innermost first.
func toObject(v lua.LValue) (*script.Object, error) {
	switch val := v.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LString:
		return &script.Object{Name: string(val)}, nil
	case *lua.LTable:
		return tableToObject(val)
	default:
		return nil, fmt.Errorf("object must be a table, string or nil, got %s", v.Type())
	}
}

func tableToObject(tbl *lua.LTable) (*script.Object, error) {
	obj := &script.Object{}
	if name, ok := tbl.RawGetString("name").(lua.LString); ok {
		obj.Name = string(name)
	}
	for i, key := range idsKeys {
		if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
			obj.Fields[i] = int(n)
		}
	}
	if id, ok := tbl.RawGetString("global_id").(lua.LNumber); ok && id > 0 {
		obj.Fields[script.FieldEA] = script.GlobalIDSentinel
		obj.Fields[script.FieldGeneral] = int(id)
	}

	if rt, ok := tbl.RawGetString("rect").(*lua.LTable); ok {
		obj.Rect = game.Rect{
			X: int(lua.LVAsNumber(rt.RawGetString("x"))),
			Y: int(lua.LVAsNumber(rt.RawGetString("y"))),
			W: int(lua.LVAsNumber(rt.RawGetString("w"))),
			H: int(lua.LVAsNumber(rt.RawGetString("h"))),
		}
	}

	if ft, ok := tbl.RawGetString("filters").(*lua.LTable); ok {
		n := ft.Len()
		if n > script.MaxObjectNesting {
			return nil, fmt.Errorf("at most %d filters are allowed, got %d", script.MaxObjectNesting, n)
		}
		for i := 1; i <= n; i++ {
			name := lua.LVAsString(ft.RawGetInt(i))
			id, ok := script.ParseFilterID(name)
			if !ok {
				return nil, fmt.Errorf("unknown object filter %q", name)
			}
			obj.Filters[i-1] = id
		}
	}
	return obj, nil
}

// toFlags converts an optional list of flag names.
func toFlags(v lua.LValue) (game.GAFlags, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		if v == lua.LNil {
			return 0, nil
		}
		return 0, fmt.Errorf("flags must be a list of names, got %s", v.Type())
	}

	var names []string
	for i := 1; i <= tbl.Len(); i++ {
		names = append(names, lua.LVAsString(tbl.RawGetInt(i)))
	}
	flags, unknown := game.ParseGAFlags(names)
	if len(unknown) > 0 {
		return 0, fmt.Errorf("unknown flags: %v", unknown)
	}
	return flags, nil
}

// fromScriptable describes s as a table, or nil.
func fromScriptable(L *lua.LState, s game.Scriptable, distance int) lua.LValue {
	if s == nil {
		return lua.LNil
	}
	tbl := L.NewTable()
	tbl.RawSetString("name", lua.LString(s.ScriptName()))
	tbl.RawSetString("type", lua.LString(s.Type().String()))
	tbl.RawSetString("id", lua.LNumber(s.GlobalID()))
	tbl.RawSetString("x", lua.LNumber(s.Position().X))
	tbl.RawSetString("y", lua.LNumber(s.Position().Y))
	tbl.RawSetString("distance", lua.LNumber(distance))
	return tbl
}
