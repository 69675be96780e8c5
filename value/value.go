// Package value implements the sum-typed representation of a parsed CSS
// property value and the small set of helpers needed to compare, copy and
// print it.
//
// The variant set is closed on purpose: callers are expected to switch on
// Kind and handle every case rather than relying on open polymorphism. This
// mirrors the way the style engine's property declarations are stored - a
// dense array of Value, one slot per registered property key.
package value

import "fmt"

// Kind identifies which variant of Value is populated. The zero Kind is
// None, which is also the sentinel used by a style declaration to mean
// "this property slot has not been set by any rule".
type Kind int

const (
	None Kind = iota
	Invalid
	Unparsed
	Array
	Numeric
	Integer
	String
	Keyword
	Color
	Image
	Unit
	Length
	Percentage
)

//go:generate stringer -type=Kind

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Invalid:
		return "invalid"
	case Unparsed:
		return "unparsed"
	case Array:
		return "array"
	case Numeric:
		return "numeric"
	case Integer:
		return "integer"
	case String:
		return "string"
	case Keyword:
		return "keyword"
	case Color:
		return "color"
	case Image:
		return "image"
	case Unit:
		return "unit"
	case Length:
		return "length"
	case Percentage:
		return "percentage"
	default:
		return "unknown"
	}
}

// RGBA is a 32-bit color value, alpha included. It is kept as a plain
// struct rather than a packed integer so zero-value comparisons stay
// obvious in tests.
type RGBA struct {
	R, G, B, A uint8
}

// Value is the closed sum type for a parsed CSS value. Exactly one group
// of fields is meaningful for any given Kind; see the accessor comments
// below for which.
type Value struct {
	Kind Kind

	// Numeric carries Numeric, Length and Percentage payloads.
	Numeric float64
	// Integer carries the Integer payload.
	Integer int32
	// Str carries String and Unparsed payloads, and the path for Image.
	Str string
	// KeywordID carries the Keyword payload (see a keyword registry for
	// the name this id maps to).
	KeywordID int
	// RGBA carries the Color payload.
	RGBA RGBA
	// Unit carries the short unit suffix ("px", "em", "%", ...) for Unit
	// and Length/Percentage values; Numeric holds the magnitude.
	Unit string
	// Elements carries the Array payload. Also used internally by the
	// value-definition parser to return multiple values matched by a
	// group (e.g. an && combinator that matched more than one child).
	Elements []Value
}

// NoneValue returns the "unset" sentinel value used by style declaration slots.
func NoneValue() Value { return Value{Kind: None} }

// InvalidValue returns the sentinel for "failed to parse".
func InvalidValue() Value { return Value{Kind: Invalid} }

// KeywordValue builds a Value with Kind == Keyword for the keyword registered
// under id.
func KeywordValue(id int) Value { return Value{Kind: Keyword, KeywordID: id} }

// NumericValue builds a plain number (no unit).
func NumericValue(v float64) Value { return Value{Kind: Numeric, Numeric: v} }

// IntegerValue builds a whole number value.
func IntegerValue(v int32) Value { return Value{Kind: Integer, Integer: v} }

// StringValue builds a quoted-string value.
func StringValue(v string) Value { return Value{Kind: String, Str: v} }

// UnparsedValue builds a value carrying the raw, un-interpreted source
// text - used when a property's syntax accepts arbitrary text or when a
// rule is intentionally kept opaque for a later pass.
func UnparsedValue(v string) Value { return Value{Kind: Unparsed, Str: v} }

// ColorValue builds an RGBA color value.
func ColorValue(r, g, b, a uint8) Value {
	return Value{Kind: Color, RGBA: RGBA{R: r, G: g, B: b, A: a}}
}

// ImageValue builds an image-url value.
func ImageValue(url string) Value { return Value{Kind: Image, Str: url} }

// UnitValue builds a generic number+unit pair that did not resolve to the
// better-known Length or Percentage kinds (e.g. "2fr", "10deg").
func UnitValue(v float64, unit string) Value { return Value{Kind: Unit, Numeric: v, Unit: unit} }

// LengthValue builds a length (px, em, rem, ...).
func LengthValue(v float64, unit string) Value { return Value{Kind: Length, Numeric: v, Unit: unit} }

// PercentageValue builds a percentage value; Numeric is the bare number,
// Unit is always "%".
func PercentageValue(v float64) Value { return Value{Kind: Percentage, Numeric: v, Unit: "%"} }

// ArrayValue builds a sequence value, used for grammar groups that match
// more than one component (e.g. "1px solid red").
func ArrayValue(elements ...Value) Value { return Value{Kind: Array, Elements: elements} }

// IsSet reports whether v represents a value that has actually been
// assigned (i.e. is neither None nor Invalid).
func (v Value) IsSet() bool {
	return v.Kind != None && v.Kind != Invalid
}

// Clone returns a value with no aliasing to v's backing storage. Scalar
// fields (including Str, which is an immutable Go string) copy by plain
// assignment; Array elements are cloned recursively so that mutating a
// cloned array never reaches back into the original.
func (v Value) Clone() Value {
	if v.Kind != Array || v.Elements == nil {
		return v
	}
	clone := v
	clone.Elements = make([]Value, len(v.Elements))
	for i, e := range v.Elements {
		clone.Elements[i] = e.Clone()
	}
	return clone
}

// Equal reports whether v and other carry the same Kind and payload. Used
// by Declaration.Diff to decide whether a property actually changed.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case None, Invalid:
		return true
	case Numeric, Length, Percentage, Unit:
		return v.Numeric == other.Numeric && v.Unit == other.Unit
	case Integer:
		return v.Integer == other.Integer
	case String, Unparsed, Image:
		return v.Str == other.Str
	case Keyword:
		return v.KeywordID == other.KeywordID
	case Color:
		return v.RGBA == other.RGBA
	case Array:
		if len(v.Elements) != len(other.Elements) {
			return false
		}
		for i := range v.Elements {
			if !v.Elements[i].Equal(other.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a debug-friendly representation of the value. It is not
// a serializer back to CSS syntax (bidirectional serialization is out of
// scope); it exists for logging and print_all/print_style_rules output.
func (v Value) String() string {
	switch v.Kind {
	case None:
		return "<none>"
	case Invalid:
		return "<invalid>"
	case Unparsed:
		return v.Str
	case Numeric:
		return fmt.Sprintf("%g", v.Numeric)
	case Integer:
		return fmt.Sprintf("%d", v.Integer)
	case String:
		return fmt.Sprintf("%q", v.Str)
	case Keyword:
		return fmt.Sprintf("keyword(%d)", v.KeywordID)
	case Color:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", v.RGBA.R, v.RGBA.G, v.RGBA.B, v.RGBA.A)
	case Image:
		return fmt.Sprintf("url(%s)", v.Str)
	case Unit, Length, Percentage:
		return fmt.Sprintf("%g%s", v.Numeric, v.Unit)
	case Array:
		s := "["
		for i, e := range v.Elements {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + "]"
	default:
		return "?"
	}
}
