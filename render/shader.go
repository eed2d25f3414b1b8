// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/internal/gpu"
	"github.com/gogpu/wgpu/hal"
)

// GlobalsGroupName is the uniform group every program exposes for
// renderer-wide inputs such as the projection matrix.
const GlobalsGroupName = "globals"

// Program is a shader program handle with named uniform groups.
//
// A program's "globals" group is replaced with the renderer's shared
// global group when the program is bound, so every bound program observes
// the same projection matrix.
type Program struct {
	label  string
	groups map[string]*UniformGroup
	synced map[string]uint64
	module hal.ShaderModule
}

// NewProgram creates a program handle with an empty globals group.
func NewProgram(label string) *Program {
	p := &Program{
		label:  label,
		groups: make(map[string]*UniformGroup),
		synced: make(map[string]uint64),
	}
	p.groups[GlobalsGroupName] = NewUniformGroup(GlobalsGroupName)
	return p
}

// Label returns the program's debug label.
func (p *Program) Label() string {
	return p.label
}

// UniformGroup returns the named uniform group, creating it on demand.
func (p *Program) UniformGroup(name string) *UniformGroup {
	g, ok := p.groups[name]
	if !ok {
		g = NewUniformGroup(name)
		p.groups[name] = g
	}
	return g
}

// Globals returns the program's globals uniform group.
func (p *Program) Globals() *UniformGroup {
	return p.UniformGroup(GlobalsGroupName)
}

// SyncedVersion returns the version of the named group at its last sync,
// or zero if the group has never been synced.
func (p *Program) SyncedVersion(name string) uint64 {
	return p.synced[name]
}

// Module returns the compiled shader module, or nil for CPU-only programs.
func (p *Program) Module() hal.ShaderModule {
	return p.module
}

// ShaderSystem tracks the currently bound shader program.
//
// Shader is nil when no program is bound; the projection system skips the
// forced uniform sync in that case.
type ShaderSystem struct {
	renderer *Renderer

	// Shader is the currently bound program, or nil.
	Shader *Program
}

func newShaderSystem(r *Renderer) *ShaderSystem {
	return &ShaderSystem{renderer: r}
}

// Bind makes p the active program. The program's globals group is replaced
// with the renderer's shared global uniform group.
func (s *ShaderSystem) Bind(p *Program) {
	if p != nil {
		p.groups[GlobalsGroupName] = s.renderer.GlobalUniforms.Group()
	}
	s.Shader = p
}

// Unbind clears the active program.
func (s *ShaderSystem) Unbind() {
	s.Shader = nil
}

// SyncUniformGroup re-uploads the named group to the bound program so that
// in-flight draw calls observe updated values without waiting for the next
// natural sync point. A nil group or no bound program is a no-op.
func (s *ShaderSystem) SyncUniformGroup(g *UniformGroup) {
	if s.Shader == nil || g == nil {
		return
	}
	s.Shader.synced[g.Name()] = g.Version()
	viewport.Logger().Debug("uniform group synced",
		"program", s.Shader.label, "group", g.Name(), "version", g.Version())
}

// CompileProgram compiles the built-in globals vertex shader on the
// renderer's shared GPU device and returns a bindable program.
//
// Returns an error if the renderer has no device or the device does not
// expose the HAL provider convention.
func (s *ShaderSystem) CompileProgram(label string) (*Program, error) {
	if s.renderer.handle == nil {
		return nil, ErrNoDevice
	}
	mod, err := gpu.GlobalsShaderModule(s.renderer.handle, label)
	if err != nil {
		return nil, fmt.Errorf("compile program %q: %w", label, err)
	}
	p := NewProgram(label)
	p.module = mod
	return p, nil
}
