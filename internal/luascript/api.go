package luascript

import (
	"log/slog"

	"github.com/pixil98/go-gamescript/internal/game"
	"github.com/pixil98/go-gamescript/internal/script"
	lua "github.com/yuin/gopher-lua"
)

// registerAPI exposes the resolver to scripts. Every function expects the
// caller to hold the game lock.
//
//	Resolve(sender, object [, flags [, anyone]])      -> list of targets
//	Target(sender, object [, flags [, anyone]])       -> target or nil
//	StoredTarget(sender, object [, flags [, anyone]]) -> target or nil
//	GetObjectCount(sender, object [, anyone])         -> number
//	GetObjectLevelCount(sender, object [, anyone])    -> number
//	MatchActor(sender, actor, object)                 -> bool
//	GameTime()                                        -> number
//	Log(message, ...)
//
// A sender or actor is a script name or a global id.
func registerAPI(L *lua.LState, res *script.Resolver) {
	api := &api{res: res}

	L.SetGlobal("Resolve", L.NewFunction(api.resolve))
	L.SetGlobal("Target", L.NewFunction(api.target))
	L.SetGlobal("StoredTarget", L.NewFunction(api.storedTarget))
	L.SetGlobal("GetObjectCount", L.NewFunction(api.objectCount))
	L.SetGlobal("GetObjectLevelCount", L.NewFunction(api.objectLevelCount))
	L.SetGlobal("MatchActor", L.NewFunction(api.matchActor))
	L.SetGlobal("GameTime", L.NewFunction(api.gameTime))
	L.SetGlobal("Log", L.NewFunction(api.log))
}

type api struct {
	res *script.Resolver
}

func (a *api) resolve(L *lua.LState) int {
	sender, obj, flags := a.checkQuery(L)
	anyone := L.OptBool(4, false)

	list := L.NewTable()
	if tgts := a.res.Resolve(sender, obj, flags, anyone); tgts != nil {
		for _, t := range tgts.All() {
			list.Append(fromScriptable(L, t.Scriptable, t.Distance))
		}
	}
	L.Push(list)
	return 1
}

func (a *api) target(L *lua.LState) int {
	sender, obj, flags := a.checkQuery(L)
	s := a.res.GetScriptableFromObject(sender, obj, flags, L.OptBool(4, false))
	L.Push(fromScriptable(L, s, distance(sender, s)))
	return 1
}

func (a *api) storedTarget(L *lua.LState) int {
	sender, obj, flags := a.checkQuery(L)
	s := a.res.GetStoredActorFromObject(sender, obj, flags, L.OptBool(4, false))
	L.Push(fromScriptable(L, s, distance(sender, s)))
	return 1
}

func (a *api) objectCount(L *lua.LState) int {
	sender := a.checkScriptable(L, 1)
	obj := checkObject(L, 2)
	L.Push(lua.LNumber(a.res.GetObjectCount(sender, obj, L.OptBool(3, false))))
	return 1
}

func (a *api) objectLevelCount(L *lua.LState) int {
	sender := a.checkScriptable(L, 1)
	obj := checkObject(L, 2)
	L.Push(lua.LNumber(a.res.GetObjectLevelCount(sender, obj, L.OptBool(3, false))))
	return 1
}

func (a *api) matchActor(L *lua.LState) int {
	sender := a.checkScriptable(L, 1)
	actor := a.checkScriptable(L, 2)
	obj := checkObject(L, 3)
	L.Push(lua.LBool(a.res.MatchActor(sender, actor.GlobalID(), obj)))
	return 1
}

func (a *api) gameTime(L *lua.LState) int {
	L.Push(lua.LNumber(a.res.Game().GameTime()))
	return 1
}

func (a *api) log(L *lua.LState) int {
	msg := L.CheckString(1)
	var args []any
	for i := 2; i <= L.GetTop(); i++ {
		args = append(args, L.Get(i).String())
	}
	slog.Info(msg, "script_args", args)
	return 0
}

func (a *api) checkQuery(L *lua.LState) (game.Scriptable, *script.Object, game.GAFlags) {
	sender := a.checkScriptable(L, 1)
	obj := checkObject(L, 2)
	flags, err := toFlags(L.Get(3))
	if err != nil {
		L.ArgError(3, err.Error())
	}
	return sender, obj, flags
}

// checkScriptable resolves argument n, a script name or a global id.
func (a *api) checkScriptable(L *lua.LState, n int) game.Scriptable {
	g := a.res.Game()
	switch v := L.Get(n).(type) {
	case lua.LString:
		s, err := script.FindSender(g, "", string(v))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return s
	case lua.LNumber:
		id := game.GlobalID(v)
		if ac := g.GetActorByGlobalID(id); ac != nil {
			return ac
		}
		if ac := g.GetGlobalActorByGlobalID(id); ac != nil {
			return ac
		}
		L.ArgError(n, "no actor with that global id")
	default:
		L.ArgError(n, "expected a script name or global id")
	}
	return nil
}

func checkObject(L *lua.LState, n int) *script.Object {
	obj, err := toObject(L.Get(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return obj
}

func distance(sender, s game.Scriptable) int {
	if s == nil {
		return 0
	}
	return game.Distance(sender.Position(), s.Position())
}
