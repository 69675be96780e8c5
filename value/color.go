package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v3"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// aliases maps a handful of CSS names that diverge from tcell's own
// naming (or that tcell simply doesn't know) onto names tcell does
// recognize, grounded on the teacher toolkit's terminal color parser
// (colors.go) which kept a similar alias table for "grey"/"gray" and the
// ANSI synonyms.
var aliases = map[string]string{
	"grey":    "gray",
	"cyan":    "aqua",
	"magenta": "fuchsia",
}

// RegisterNamedColor installs a name that ParseColorString should resolve
// directly to an RGBA value rather than deferring to tcell's own color
// name table. Hosts with brand-specific palette names use this to extend
// the parser without forking it.
func RegisterNamedColor(name string, c RGBA) {
	overrides[strings.ToLower(name)] = c
}

var overrides = map[string]RGBA{}

// ParseColorString parses a CSS-ish color token into an RGBA value.
// Supported forms, grounded on the toolkit's terminal color parser:
//
//   - named colors ("red", "steelblue", "transparent"), resolved through
//     tcell's own CSS color name table so the palette stays in sync with
//     whatever the host terminal renderer understands
//   - numeric 256-color indices ("0".."255")
//   - 3- or 6-digit hex ("#f00", "#ff0000")
//   - "rgb(r,g,b)" / "rgba(r,g,b,a)" functional notation
//
// "transparent" resolves to RGBA{0,0,0,0}.
func ParseColorString(str string) (RGBA, error) {
	str = strings.TrimSpace(str)

	if str == "transparent" {
		return RGBA{}, nil
	}
	if c, found := overrides[strings.ToLower(str)]; found {
		return c, nil
	}

	if strings.HasPrefix(str, "rgb(") || strings.HasPrefix(str, "rgba(") {
		return parseFunctionalColor(str)
	}

	if strings.HasPrefix(str, "#") {
		return parseHexColor(str[1:])
	}

	if n, err := strconv.Atoi(str); err == nil {
		if n < 0 || n > 255 {
			return RGBA{}, fmt.Errorf("color index out of range: %d", n)
		}
		return fromHex(tcell.PaletteColor(n).Hex()), nil
	}

	name := strings.ToLower(str)
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return RGBA{}, fmt.Errorf("color name not found: %s", str)
	}
	return fromHex(c.Hex()), nil
}

func fromHex(h int32) RGBA {
	return RGBA{R: uint8(h >> 16), G: uint8(h >> 8), B: uint8(h), A: 255}
}

func parseHexColor(str string) (RGBA, error) {
	if len(str) != 3 && len(str) != 6 {
		return RGBA{}, fmt.Errorf("invalid hex color string: #%s (must be 3 or 6 characters)", str)
	}

	part := len(str) / 3
	r, err := strconv.ParseInt(str[0:part], 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid red value: %s", str[0:part])
	}
	g, err := strconv.ParseInt(str[part:2*part], 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid green value: %s", str[part:2*part])
	}
	b, err := strconv.ParseInt(str[2*part:], 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid blue value: %s", str[2*part:])
	}

	if part == 1 {
		r, g, b = r*17, g*17, b*17
	}
	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

func parseFunctionalColor(str string) (RGBA, error) {
	open := strings.IndexByte(str, '(')
	if open < 0 || !strings.HasSuffix(str, ")") {
		return RGBA{}, fmt.Errorf("malformed color function: %s", str)
	}
	body := str[open+1 : len(str)-1]
	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("color function needs 3 or 4 components: %s", str)
	}

	vals := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid color component %q: %w", parts[i], err)
		}
		vals[i] = n
	}

	a := uint8(255)
	if len(parts) == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid alpha component %q: %w", parts[3], err)
		}
		a = uint8(f * 255)
	}

	return RGBA{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2]), A: a}, nil
}

// Mix blends two colors in proportion t (0 = a, 1 = b) using perceptual
// Lab interpolation via go-colorful, rather than a naive per-channel
// average, so mid-mixes of e.g. a saturated red and a saturated blue stay
// visually plausible. Used by RegisterCSSColorNames to collapse
// visually-duplicate named colors onto one shade.
func Mix(a, b RGBA, t float64) RGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	mixed := ca.BlendLab(cb, t)
	r, g, bl := mixed.RGB255()
	alpha := a.A
	if t > 0.5 {
		alpha = b.A
	}
	return RGBA{R: r, G: g, B: bl, A: alpha}
}

// Distance reports the perceptual distance between two colors in CIE76
// Lab space, used to detect near-duplicate named colors when seeding a
// default palette (both names are still registered, the later one with
// a shade mixed from the earlier one's).
func Distance(a, b RGBA) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceLab(cb)
}
