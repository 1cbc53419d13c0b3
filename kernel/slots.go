package kernel

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/mandelbrot"
)

// Shape is the WGSL type of a uniform slot.
type Shape int

// Slot shapes.
const (
	ShapeMat4 Shape = iota
	ShapeVec4
	ShapeVec4Array
)

// String returns the WGSL spelling of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeMat4:
		return "mat4x4<f32>"
	case ShapeVec4:
		return "vec4<f32>"
	case ShapeVec4Array:
		return "array<vec4<f32>, N>"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Slot describes one uniform binding of the program.
type Slot struct {
	Name       string
	Binding    uint32
	Shape      Shape
	Len        int // array length for ShapeVec4Array
	Visibility gputypes.ShaderStages
}

// Size returns the slot size in bytes.
func (s Slot) Size() uint64 {
	switch s.Shape {
	case ShapeMat4:
		return 64
	case ShapeVec4:
		return 16
	case ShapeVec4Array:
		return 16 * uint64(s.Len)
	default:
		return 0
	}
}

// Uniform slot names.
const (
	SlotTransform = "transformMat"
	SlotZoom      = "zoomMat"
	SlotBaseColor = "baseColor"
	SlotColors    = "colors"
)

// Slots is the fixed interface between the program and its host. Names,
// bindings and shapes must match the WGSL exactly.
var Slots = []Slot{
	{Name: SlotTransform, Binding: 0, Shape: ShapeMat4, Visibility: gputypes.ShaderStageVertex},
	{Name: SlotZoom, Binding: 1, Shape: ShapeMat4, Visibility: gputypes.ShaderStageFragment},
	{Name: SlotBaseColor, Binding: 2, Shape: ShapeVec4, Visibility: gputypes.ShaderStageFragment},
	{Name: SlotColors, Binding: 3, Shape: ShapeVec4Array, Len: mandelbrot.PaletteSize, Visibility: gputypes.ShaderStageFragment},
}

// checkSlots verifies that every slot exists as a uniform global with the
// expected binding and type.
func checkSlots(m *ir.Module) error {
	globals := make(map[string]ir.GlobalVariable, len(m.GlobalVariables))
	for _, gv := range m.GlobalVariables {
		if gv.Space == ir.SpaceUniform {
			globals[gv.Name] = gv
		}
	}

	for _, s := range Slots {
		gv, ok := globals[s.Name]
		if !ok {
			return fmt.Errorf("%w: no uniform %q", ErrUniformMismatch, s.Name)
		}
		if gv.Binding == nil || gv.Binding.Group != 0 || gv.Binding.Binding != s.Binding {
			return fmt.Errorf("%w: %q must be @group(0) @binding(%d)", ErrUniformMismatch, s.Name, s.Binding)
		}
		if !shapeMatches(m, gv.Type, s) {
			return fmt.Errorf("%w: %q must be %s", ErrUniformMismatch, s.Name, s.Shape)
		}
	}
	return nil
}

func shapeMatches(m *ir.Module, h ir.TypeHandle, s Slot) bool {
	if int(h) >= len(m.Types) {
		return false
	}
	switch t := m.Types[h].Inner.(type) {
	case ir.MatrixType:
		return s.Shape == ShapeMat4 && t.Columns == ir.Vec4 && t.Rows == ir.Vec4 && isF32(t.Scalar)
	case ir.VectorType:
		return s.Shape == ShapeVec4 && t.Size == ir.Vec4 && isF32(t.Scalar)
	case ir.ArrayType:
		if s.Shape != ShapeVec4Array || t.Size.Constant == nil || int(*t.Size.Constant) != s.Len {
			return false
		}
		return shapeMatches(m, t.Base, Slot{Shape: ShapeVec4})
	default:
		return false
	}
}

func isF32(s ir.ScalarType) bool {
	return s.Kind == ir.ScalarFloat && s.Width == 4
}
