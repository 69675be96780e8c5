package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCSSColorNamesResolvesThroughParseColorString(t *testing.T) {
	defer resetOverrides()
	RegisterCSSColorNames()

	c, err := ParseColorString("coral")
	require.NoError(t, err)
	assert.Equal(t, RGBA{255, 127, 80, 255}, c)
}

func TestRegisterCSSColorNamesCollapsesSpellingPairs(t *testing.T) {
	defer resetOverrides()
	RegisterCSSColorNames()

	gray, err := ParseColorString("gray")
	require.NoError(t, err)
	grey, err := ParseColorString("grey")
	require.NoError(t, err)
	assert.Equal(t, gray, grey)
}

func resetOverrides() {
	overrides = map[string]RGBA{}
}
