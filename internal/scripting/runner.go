package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Runner executes scenario scripts against a Workspace. Every run gets a fresh
// sandboxed VM; state carries over between runs only through the Workspace.
type Runner struct {
	ws        *Workspace
	instLimit int
	logger    *zap.Logger
}

// NewRunner creates a Runner.
//
// Precondition: ws must be non-nil; instLimit >= 0 (0 uses DefaultInstructionLimit).
// Postcondition: Returns a non-nil Runner.
func NewRunner(ws *Workspace, instLimit int, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{ws: ws, instLimit: instLimit, logger: logger}
}

// Workspace returns the workspace scripts operate on.
func (r *Runner) Workspace() *Workspace { return r.ws }

// RunString executes src as a scenario script.
//
// Postcondition: Returns a non-nil error on Lua compile or runtime errors, including
// lookup failures raised by the inv module and an exhausted opcode budget.
func (r *Runner) RunString(src string) error {
	return r.run("<string>", func(L *lua.LState) error { return L.DoString(src) })
}

// RunFile executes the Lua file at path as a scenario script.
func (r *Runner) RunFile(path string) error {
	return r.run(path, func(L *lua.LState) error { return L.DoFile(path) })
}

func (r *Runner) run(name string, exec func(L *lua.LState) error) error {
	L, cancel := NewSandboxedState(r.instLimit)
	defer L.Close()
	defer cancel()

	r.RegisterModule(L)
	if err := exec(L); err != nil {
		r.logger.Warn("scripting: script failed", zap.String("script", name), zap.Error(err))
		return fmt.Errorf("scripting: running %q: %w", name, err)
	}
	r.logger.Debug("scripting: script finished", zap.String("script", name))
	return nil
}
