package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"zombie-dash/internal/sim"
)

// Engine wraps a gopher-lua VM holding the scoring rules. It implements
// sim.Scorer. Single-goroutine access only (game loop).
//
// A script defines
//
//	function points(event, default) ... end
//
// and returns the points for event. Without a script, or when the script
// fails or returns nil, the built-in table applies.
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	fallback sim.Scorer
}

// NewEngine creates a Lua engine and loads the scoring script at path. An
// empty path gives an engine that only uses the built-in table.
func NewEngine(path string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if path == "" {
		return e, nil
	}
	if err := e.vm.DoFile(path); err != nil {
		e.vm.Close()
		return nil, fmt.Errorf("load scoring script %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return e, nil
}

// NewEngineString is NewEngine for a script held in memory.
func NewEngineString(src string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.vm.DoString(src); err != nil {
		e.vm.Close()
		return nil, fmt.Errorf("load scoring script: %w", err)
	}
	return e, nil
}

func newEngine(log *zap.Logger) *Engine {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	defaults := vm.NewTable()
	for ev, pts := range sim.DefaultPoints {
		defaults.RawSetString(string(ev), lua.LNumber(pts))
	}
	vm.SetGlobal("DEFAULT_POINTS", defaults)

	return &Engine{vm: vm, log: log, fallback: sim.DefaultPoints}
}

// Points calls the Lua points function.
func (e *Engine) Points(ev sim.Event) int {
	def := e.fallback.Points(ev)
	fn := e.vm.GetGlobal("points")
	if fn == lua.LNil {
		return def
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(ev), lua.LNumber(def)); err != nil {
		e.log.Error("lua points error", zap.String("event", string(ev)), zap.Error(err))
		return def
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := result.(lua.LNumber)
	if !ok {
		if result != lua.LNil {
			e.log.Warn("lua points returned a non-number",
				zap.String("event", string(ev)),
				zap.String("type", result.Type().String()))
		}
		return def
	}
	return int(n)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
