package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectorSimpleType(t *testing.T) {
	sel, err := ParseSelector("button")
	require.NoError(t, err)
	require.Len(t, sel.Nodes, 1)
	assert.Equal(t, "button", sel.Target().FullName())
	assert.Equal(t, 1, sel.Rank)
}

func TestParseSelectorIDClassState(t *testing.T) {
	sel, err := ParseSelector("button#ok.primary.large:hover:focus")
	require.NoError(t, err)
	require.Len(t, sel.Nodes, 1)
	target := sel.Target()
	assert.Equal(t, "button", target.Type)
	assert.Equal(t, "ok", target.ID)
	assert.Equal(t, []string{"large", "primary"}, target.Classes)
	assert.Equal(t, []string{"focus", "hover"}, target.Status)
	// 1 (type) + 100 (id) + 10*2 (classes) + 10*2 (states)
	assert.Equal(t, 141, target.Rank())
}

func TestParseSelectorDescendantChain(t *testing.T) {
	sel, err := ParseSelector("dialog .form-group input:focus")
	require.NoError(t, err)
	require.Len(t, sel.Nodes, 3)
	assert.Equal(t, "input", sel.Target().Type)
	assert.Len(t, sel.Ancestors(), 2)
	assert.Equal(t, "dialog", sel.Ancestors()[0].Type)
}

func TestParseSelectorClassOrderIndependent(t *testing.T) {
	a, err := ParseSelector(".large.primary")
	require.NoError(t, err)
	b, err := ParseSelector(".primary.large")
	require.NoError(t, err)
	assert.Equal(t, a.Target().FullName(), b.Target().FullName())
	assert.Equal(t, a.Hash, b.Hash)
}

func TestParseSelectorRejectsBadCharacter(t *testing.T) {
	_, err := ParseSelector("button@oops")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseSelectorRejectsEmptyQualifier(t *testing.T) {
	_, err := ParseSelector("button.")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseSelectorExceedsNodeLimit(t *testing.T) {
	text := ""
	for i := 0; i <= MaxNodes; i++ {
		text += "x "
	}
	_, err := ParseSelector(text)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestParseSelectorBatchNumIncreases(t *testing.T) {
	a, err := ParseSelector("a")
	require.NoError(t, err)
	b, err := ParseSelector("b")
	require.NoError(t, err)
	assert.Greater(t, b.BatchNum, a.BatchNum)
}

func TestNodeHasState(t *testing.T) {
	sel, err := ParseSelector("button:hover")
	require.NoError(t, err)
	target := sel.Target()
	assert.True(t, target.HasState("hover"))
	assert.False(t, target.HasState("focus"))
}

func TestSelectorDuplicateIsIndependent(t *testing.T) {
	sel, err := ParseSelector("button.primary")
	require.NoError(t, err)
	dup := sel.Duplicate()
	dup.Target().AddClass("extra")
	assert.NotEqual(t, sel.Target().FullName(), dup.Target().FullName())
	assert.NotEqual(t, sel.BatchNum, dup.BatchNum)
}

func TestSelectorAppendGrowsChain(t *testing.T) {
	sel, err := ParseSelector("dialog")
	require.NoError(t, err)
	n := newNode()
	n.SetType("button")
	require.NoError(t, sel.Append(n))
	assert.Len(t, sel.Nodes, 2)
	assert.Equal(t, "button", sel.Target().Type)
}
