package style

import (
	"fmt"

	"github.com/tekugo/styleengine/value"
)

// Insets is the CSS box-model spacing tuple: clockwise from top
// (Top, Right, Bottom, Left). Adapted from the toolkit's layout-side
// Insets type into a value-extraction helper over a computed
// Declaration, since this engine's job ends at producing a Declaration
// and doesn't itself do layout.
type Insets struct {
	Top, Right, Bottom, Left int
}

// String renders the insets the same way the toolkit's Info() did:
// "(top right bottom left)", handy for log/print_all output.
func (i Insets) String() string {
	return fmt.Sprintf("(%d %d %d %d)", i.Top, i.Right, i.Bottom, i.Left)
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() int { return i.Top + i.Bottom }

// SetShorthand applies CSS shorthand value-count rules to i: a single
// value sets all four sides, two values set vertical/horizontal pairs,
// three set top/horizontal/bottom, four set each side individually
// clockwise from top. Mirrors the toolkit's own Set() shorthand
// convention.
func (i *Insets) SetShorthand(values ...int) {
	switch len(values) {
	case 0:
		*i = Insets{}
	case 1:
		i.Top, i.Right, i.Bottom, i.Left = values[0], values[0], values[0], values[0]
	case 2:
		i.Top, i.Right, i.Bottom, i.Left = values[0], values[1], values[0], values[1]
	case 3:
		i.Top, i.Right, i.Bottom, i.Left = values[0], values[1], values[2], values[1]
	default:
		i.Top, i.Right, i.Bottom, i.Left = values[0], values[1], values[2], values[3]
	}
}

// InsetsFromDeclaration reads a box-model spacing group (padding,
// margin, border-width, ...) out of decl using prefix-top/-right/
// -bottom/-left property names (e.g. "padding-top"), falling back to a
// single shorthand property named exactly prefix when one of the
// per-side slots is unset. Unset, unresolvable, or non-length values
// leave that side at 0.
func InsetsFromDeclaration(e *Engine, decl *Declaration, prefix string) Insets {
	shorthand := 0
	if def, ok := e.Properties.Lookup(prefix); ok {
		if v, ok := decl.Get(def.Key); ok {
			shorthand = insetComponent(v)
		}
	}
	side := func(suffix string) (int, bool) {
		def, ok := e.Properties.Lookup(prefix + suffix)
		if !ok {
			return shorthand, false
		}
		v, ok := decl.Get(def.Key)
		if !ok {
			return shorthand, false
		}
		return insetComponent(v), true
	}

	var out Insets
	top, topOK := side("-top")
	right, rightOK := side("-right")
	bottom, bottomOK := side("-bottom")
	left, leftOK := side("-left")

	if topOK || rightOK || bottomOK || leftOK {
		out = Insets{Top: top, Right: right, Bottom: bottom, Left: left}
		return out
	}

	if def, ok := e.Properties.Lookup(prefix); ok {
		if v, ok := decl.Get(def.Key); ok {
			n := insetComponent(v)
			out.SetShorthand(n)
		}
	}
	return out
}

func insetComponent(v value.Value) int {
	switch v.Kind {
	case value.Length, value.Numeric, value.Unit:
		return int(v.Numeric)
	case value.Integer:
		return int(v.Integer)
	default:
		return 0
	}
}
