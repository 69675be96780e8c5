package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandNodeIncludesWildcard(t *testing.T) {
	sel, err := ParseSelector("button.primary")
	require.NoError(t, err)
	names := expandNode(sel.Target())
	assert.Contains(t, names, "*")
}

func TestExpandNodeIncludesExactName(t *testing.T) {
	sel, err := ParseSelector("button.primary")
	require.NoError(t, err)
	names := expandNode(sel.Target())
	assert.Contains(t, names, sel.Target().FullName())
}

func TestExpandNodeIncludesTypeOnly(t *testing.T) {
	sel, err := ParseSelector("button.primary.large")
	require.NoError(t, err)
	names := expandNode(sel.Target())
	assert.Contains(t, names, "button")
}

func TestExpandNodeIncludesClassWithWildcardType(t *testing.T) {
	sel, err := ParseSelector("button.primary")
	require.NoError(t, err)
	names := expandNode(sel.Target())
	assert.Contains(t, names, "*.primary")
}

func TestExpandNodeNoDuplicates(t *testing.T) {
	sel, err := ParseSelector("button")
	require.NoError(t, err)
	names := expandNode(sel.Target())
	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate name %q", n)
		seen[n] = true
	}
}

func TestExpandNodeDeterministicOrder(t *testing.T) {
	sel, err := ParseSelector("button.primary.large:hover")
	require.NoError(t, err)
	a := expandNode(sel.Target())
	b := expandNode(sel.Target())
	assert.Equal(t, a, b)
}
