package value

import "sort"

// cssColorNames is a baseline set of CSS named colors, covering the
// common named-color tokens plus both spellings ("gray"/"grey" and
// friends) of the colors where British and American spelling diverge.
var cssColorNames = map[string]RGBA{
	"black": {0, 0, 0, 255}, "white": {255, 255, 255, 255}, "red": {255, 0, 0, 255},
	"green": {0, 128, 0, 255}, "blue": {0, 0, 255, 255},
	"gray": {128, 128, 128, 255}, "grey": {128, 128, 128, 255},
	"darkgray": {169, 169, 169, 255}, "darkgrey": {169, 169, 169, 255},
	"dimgray": {105, 105, 105, 255}, "dimgrey": {105, 105, 105, 255},
	"lightgray": {211, 211, 211, 255}, "lightgrey": {211, 211, 211, 255},
	"slategray": {112, 128, 144, 255}, "slategrey": {112, 128, 144, 255},
	"silver": {192, 192, 192, 255}, "orange": {255, 165, 0, 255}, "gold": {255, 215, 0, 255},
	"navy": {0, 0, 128, 255}, "teal": {0, 128, 128, 255}, "purple": {128, 0, 128, 255},
	"maroon": {128, 0, 0, 255}, "olive": {128, 128, 0, 255},
	"cyan": {0, 255, 255, 255}, "aqua": {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255}, "fuchsia": {255, 0, 255, 255},
	"crimson": {220, 20, 60, 255}, "tomato": {255, 99, 71, 255}, "coral": {255, 127, 80, 255},
	"salmon": {250, 128, 114, 255}, "khaki": {240, 230, 140, 255}, "orchid": {218, 112, 214, 255},
	"plum": {221, 160, 221, 255}, "indigo": {75, 0, 130, 255}, "turquoise": {64, 224, 208, 255},
	"chocolate": {210, 105, 30, 255}, "tan": {210, 180, 140, 255}, "beige": {245, 245, 220, 255},
	"ivory": {255, 255, 240, 255}, "lavender": {230, 230, 250, 255},
}

// dedupeDistance is the Lab-space distance below which two candidate
// named colors are treated as the same shade under different spellings.
// Distance uses go-colorful's Lab scale, where L runs from 0 to 1 and a
// distance of 1 already means the colors differ a lot.
const dedupeDistance = 0.01

// RegisterCSSColorNames registers cssColorNames as ParseColorString
// overrides. Names whose color is a near-duplicate of an already
// registered name (the "grey"/"gray" spelling pairs, mainly) are
// collapsed onto a shared canonical shade via Mix rather than each
// keeping its own slightly independent RGBA, so both spellings always
// resolve to the same value and compare equal afterward. Processing
// order is sorted by name first since Go map iteration order is
// randomized and this pass is order-sensitive - which name is treated
// as "already registered" when a later one is found close to it depends
// on the order names are seeded in.
func RegisterCSSColorNames() {
	names := make([]string, 0, len(cssColorNames))
	for name := range cssColorNames {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		canonical := cssColorNames[name]
		for _, seeded := range registeredOverrideNames() {
			existing := overrides[seeded]
			if Distance(existing, canonical) < dedupeDistance {
				canonical = Mix(existing, canonical, 0.5)
				break
			}
		}
		RegisterNamedColor(name, canonical)
	}
}

// registeredOverrideNames returns the names currently registered via
// RegisterNamedColor, sorted, so RegisterCSSColorNames's dedup scan is
// deterministic.
func registeredOverrideNames() []string {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
