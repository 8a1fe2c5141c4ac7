// Package scripting embeds a Lua VM so content, not code, decides how often
// each archetype updates. Single-goroutine access only (tick loop).
package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all .lua files from the given
// directory. A missing directory is not an error; callers fall back to
// built-in defaults.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// UpdateInterval calls Lua update_interval(kind, level), which returns the
// archetype's update interval in milliseconds. Falls back to one second when
// the function is missing, errors, or returns a non-positive value.
func (e *Engine) UpdateInterval(kind string, level int) time.Duration {
	const fallback = time.Second

	fn := e.vm.GetGlobal("update_interval")
	if fn == lua.LNil {
		return fallback
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(kind), lua.LNumber(level)); err != nil {
		e.log.Error("lua call error", zap.String("func", "update_interval"), zap.Error(err))
		return fallback
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)

	ms := int64(lua.LVAsNumber(result))
	if ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
