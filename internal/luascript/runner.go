package luascript

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pixil98/go-gamescript/internal/script"
	lua "github.com/yuin/gopher-lua"
)

// TickHook is the global a trigger script defines to run every driver tick.
// It receives the game time.
const TickHook = "OnTick"

// Runner hosts trigger scripts in one sandboxed Lua state. It is a driver
// manager; Tick and the Load methods must not be called concurrently.
type Runner struct {
	L   *lua.LState
	res *script.Resolver
}

func NewRunner(res *script.Resolver) *Runner {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	registerAPI(L, res)
	return &Runner{L: L, res: res}
}

// LoadDir runs every .lua file in dir in name order.
func (r *Runner) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading script directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, f := range files {
		var err error
		r.res.Game().Do(func() {
			err = r.L.DoFile(filepath.Join(dir, f))
		})
		if err != nil {
			return fmt.Errorf("executing %s: %w", f, err)
		}
		slog.Info("loaded trigger script", "file", f)
	}
	return nil
}

// LoadString runs src as a trigger script.
func (r *Runner) LoadString(src string) error {
	var err error
	r.res.Game().Do(func() {
		err = r.L.DoString(src)
	})
	if err != nil {
		return fmt.Errorf("executing script: %w", err)
	}
	return nil
}

// Tick calls the OnTick hook, if one is defined, under the game lock. Script
// errors are logged and do not stop the driver.
func (r *Runner) Tick(ctx context.Context) error {
	hook, ok := r.L.GetGlobal(TickHook).(*lua.LFunction)
	if !ok {
		return nil
	}

	g := r.res.Game()
	var err error
	g.Do(func() {
		err = r.L.CallByParam(lua.P{Fn: hook, NRet: 0, Protect: true}, lua.LNumber(g.GameTime()))
	})
	if err != nil {
		slog.WarnContext(ctx, "trigger script failed", "hook", TickHook, "error", err)
	}
	return nil
}

func (r *Runner) Close() {
	r.L.Close()
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the script.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}
}
