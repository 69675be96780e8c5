package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tekugo/styleengine/value"
)

func TestDeclarationSetGet(t *testing.T) {
	d := NewDeclaration(4)
	d.Set(1, value.IntegerValue(5))
	v, ok := d.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int32(5), v.Integer)

	_, ok = d.Get(2)
	assert.False(t, ok)
}

func TestDeclarationGrowsOnSet(t *testing.T) {
	d := NewDeclaration(1)
	d.Set(5, value.NumericValue(1))
	assert.Equal(t, 6, d.Len())
}

func TestDeclarationMergeOverlaysOnlySetSlots(t *testing.T) {
	base := NewDeclaration(3)
	base.Set(0, value.IntegerValue(1))
	base.Set(1, value.IntegerValue(2))

	patch := NewDeclaration(3)
	patch.Set(1, value.IntegerValue(99))

	base.Merge(patch)

	v0, _ := base.Get(0)
	v1, _ := base.Get(1)
	assert.Equal(t, int32(1), v0.Integer)
	assert.Equal(t, int32(99), v1.Integer)
}

func TestDeclarationReplaceClearsUnsetSlots(t *testing.T) {
	base := NewDeclaration(2)
	base.Set(0, value.IntegerValue(1))
	base.Set(1, value.IntegerValue(2))

	other := NewDeclaration(2)
	other.Set(0, value.IntegerValue(7))

	base.Replace(other)

	_, ok := base.Get(1)
	assert.False(t, ok)
	v0, _ := base.Get(0)
	assert.Equal(t, int32(7), v0.Integer)
}

func TestDeclarationCloneIsIndependent(t *testing.T) {
	base := NewDeclaration(1)
	base.Set(0, value.IntegerValue(1))
	clone := base.Clone()
	clone.Set(0, value.IntegerValue(2))

	v0, _ := base.Get(0)
	assert.Equal(t, int32(1), v0.Integer)
}

func TestDeclarationDiffReportsChangesAndUnsets(t *testing.T) {
	a := NewDeclaration(3)
	a.Set(0, value.IntegerValue(1))
	a.Set(1, value.IntegerValue(2))

	b := NewDeclaration(3)
	b.Set(0, value.IntegerValue(1))
	b.Set(2, value.IntegerValue(3))

	diffs := a.Diff(b)
	changed := map[int]bool{1: true, 2: true}
	for _, d := range diffs {
		assert.True(t, changed[d.Key])
	}
	assert.Len(t, diffs, 2)
}

func TestPropertiesListToDeclarationLastWins(t *testing.T) {
	list := &PropertiesList{}
	list.Add(0, value.IntegerValue(1))
	list.Add(0, value.IntegerValue(2))

	d := list.ToDeclaration(1)
	v, ok := d.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int32(2), v.Integer)
}
