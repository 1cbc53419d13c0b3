// Package kernel holds the GPU form of the Mandelbrot evaluator: a WGSL
// vertex/fragment program with a fixed set of uniform slots, compiled to
// SPIR-V with naga.
package kernel

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/gogpu/mandelbrot"
)

//go:embed mandelbrot.wgsl
var programTemplate string

var programTmpl = template.Must(template.New("mandelbrot.wgsl").Parse(programTemplate))

// Entry point names.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// ErrUniformMismatch is returned when the compiled program does not expose
// the expected uniform slots.
var ErrUniformMismatch = errors.New("kernel: uniform mismatch")

// Program is a compiled kernel.
type Program struct {
	// Source is the WGSL text after template expansion.
	Source string

	// SPIRV is the compiled binary, little-endian.
	SPIRV []byte

	// Limit is the iteration limit baked into the program.
	Limit int

	module *ir.Module
}

// Render expands the program template for the given iteration limit.
func Render(limit int) (string, error) {
	if limit <= 0 {
		return "", fmt.Errorf("kernel: iteration limit must be positive, got %d", limit)
	}
	var b strings.Builder
	err := programTmpl.Execute(&b, struct {
		Limit       int
		PaletteSize int
	}{limit, mandelbrot.PaletteSize})
	if err != nil {
		return "", fmt.Errorf("kernel: expand template: %w", err)
	}
	return b.String(), nil
}

// Compile expands, parses, lowers, validates and compiles the program, and
// checks its uniform slots against Slots.
func Compile(limit int) (*Program, error) {
	src, err := Render(limit)
	if err != nil {
		return nil, err
	}

	ast, err := naga.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, fmt.Errorf("kernel: lower: %w", err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("kernel: validate: %w", err)
	}
	if len(verrs) > 0 {
		return nil, fmt.Errorf("kernel: validation failed: %w", &verrs[0])
	}
	if err := checkSlots(module); err != nil {
		return nil, err
	}

	code, err := naga.GenerateSPIRV(module, spirv.Options{Version: spirv.Version1_3})
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}

	mandelbrot.Logger().Info("kernel: compiled",
		"limit", limit,
		"spirv_bytes", len(code),
		"entry_points", len(module.EntryPoints))

	return &Program{Source: src, SPIRV: code, Limit: limit, module: module}, nil
}

// MustCompile is like Compile but panics on error. It is meant for the
// embedded program with a known-good limit.
func MustCompile(limit int) *Program {
	p, err := Compile(limit)
	if err != nil {
		panic(err)
	}
	return p
}

// Words returns the SPIR-V code as 32-bit words.
func (p *Program) Words() []uint32 {
	words := make([]uint32, len(p.SPIRV)/4)
	for i := range words {
		words[i] = uint32(p.SPIRV[i*4]) |
			uint32(p.SPIRV[i*4+1])<<8 |
			uint32(p.SPIRV[i*4+2])<<16 |
			uint32(p.SPIRV[i*4+3])<<24
	}
	return words
}

// EntryPoints returns the names of the program's entry points.
func (p *Program) EntryPoints() []string {
	names := make([]string, 0, len(p.module.EntryPoints))
	for _, ep := range p.module.EntryPoints {
		names = append(names, ep.Name)
	}
	return names
}

// Layout describes the bind group holding the uniform slots.
func (p *Program) Layout() gputypes.BindGroupLayoutDescriptor {
	entries := make([]gputypes.BindGroupLayoutEntry, 0, len(Slots))
	for _, s := range Slots {
		entries = append(entries, gputypes.BindGroupLayoutEntry{
			Binding:    s.Binding,
			Visibility: s.Visibility,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: s.Size(),
			},
		})
	}
	return gputypes.BindGroupLayoutDescriptor{
		Label:   "mandelbrot uniforms",
		Entries: entries,
	}
}
