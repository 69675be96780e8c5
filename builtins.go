package style

import (
	"strconv"
	"strings"

	"github.com/tekugo/styleengine/value"
)

// lengthUnits lists the recognized <length> unit suffixes, longest-first
// within any shared-suffix pair ("rem" before "em", since "10rem" also
// ends in "em") so the first matching suffix is always the most specific
// one rather than an accidental shorter match.
var lengthUnits = []string{"rem", "vh", "vw", "ch", "pt", "px", "em", "fr"}

func parseLengthToken(token string) (value.Value, bool) {
	for _, unit := range lengthUnits {
		if !strings.HasSuffix(token, unit) {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(token, unit), 64)
		if err != nil {
			continue
		}
		return value.LengthValue(n, unit), true
	}
	return value.Value{}, false
}

func parsePercentageToken(token string) (value.Value, bool) {
	if !strings.HasSuffix(token, "%") {
		return value.Value{}, false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(token, "%"), 64)
	if err != nil {
		return value.Value{}, false
	}
	return value.PercentageValue(n), true
}

func parseColorToken(token string) (value.Value, bool) {
	c, err := value.ParseColorString(token)
	if err != nil {
		return value.Value{}, false
	}
	return value.ColorValue(c.R, c.G, c.B, c.A), true
}

// InitValueDefinitions registers the engine's built-in value-definition
// data types - <length>, <percentage>, <color> - against e.Types, per
// §6's init_value_definitions(). A host that only needs its own custom
// types can skip this and call RegisterType directly instead.
func (e *Engine) InitValueDefinitions() {
	e.Types.RegisterType("length", parseLengthToken)
	e.Types.RegisterType("percentage", parsePercentageToken)
	e.Types.RegisterType("color", parseColorToken)
}

// DestroyValueDefinitions discards every registered data type and alias,
// per §6's destroy_value_definitions(). Property syntaxes already
// compiled against the old types keep working; only future compiles are
// affected.
func (e *Engine) DestroyValueDefinitions() {
	e.Types.Reset()
}
