package scenario

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
)

// ScriptTarget runs a tengo script once per tick. The script reads the
// globals t (seconds), tick and dt, and declares x, y and optionally z and
// present.
type ScriptTarget struct {
	name     string
	compiled *tengo.Compiled
}

// NewScriptTarget compiles the named script.
func NewScriptTarget(name string) (*ScriptTarget, error) {
	if name == "" {
		return nil, fmt.Errorf("scenario: %w", ErrNoScript)
	}
	src, err := ReadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scenario: load script %s: %w", name, err)
	}
	return CompileScriptTarget(name, src)
}

// CompileScriptTarget compiles src as a script target.
func CompileScriptTarget(name string, src []byte) (*ScriptTarget, error) {
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	_ = script.Add("tick", 0)
	_ = script.Add("dt", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scenario: compile script %s: %w", name, err)
	}
	return &ScriptTarget{name: name, compiled: compiled}, nil
}

func (s *ScriptTarget) Sample(t Tick) (mgl32.Vec3, bool, error) {
	if err := s.compiled.Set("t", float64(t.Time())); err != nil {
		return mgl32.Vec3{}, false, err
	}
	if err := s.compiled.Set("tick", t.Index); err != nil {
		return mgl32.Vec3{}, false, err
	}
	if err := s.compiled.Set("dt", float64(t.DT)); err != nil {
		return mgl32.Vec3{}, false, err
	}
	if err := s.compiled.Run(); err != nil {
		return mgl32.Vec3{}, false, fmt.Errorf("scenario: run script %s: %w", s.name, err)
	}

	if s.compiled.IsDefined("present") && !s.compiled.Get("present").Bool() {
		return mgl32.Vec3{}, false, nil
	}
	if !s.compiled.IsDefined("x") || !s.compiled.IsDefined("y") {
		return mgl32.Vec3{}, false, fmt.Errorf("scenario: script %s must declare x and y", s.name)
	}
	pos := mgl32.Vec3{
		float32(s.compiled.Get("x").Float()),
		float32(s.compiled.Get("y").Float()),
		0,
	}
	if s.compiled.IsDefined("z") {
		pos[2] = float32(s.compiled.Get("z").Float())
	}
	return pos, true, nil
}
