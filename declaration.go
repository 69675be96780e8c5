package style

import "github.com/tekugo/styleengine/value"

// Declaration is the dense per-property value array described in §4.8:
// one slot per registered property key, each either holding a concrete
// Value or left unset. Dense storage makes "does this rule set
// property X" an O(1) array bounds check plus a validity flag instead of
// a map lookup, which matters on the cascade's hot path.
type Declaration struct {
	values []value.Value
	valid  []bool
}

// NewDeclaration creates an empty declaration sized to hold size
// property slots (typically registry.Count()).
func NewDeclaration(size int) *Declaration {
	return &Declaration{
		values: make([]value.Value, size),
		valid:  make([]bool, size),
	}
}

// Set stores v at the slot for property key, growing the backing arrays
// if key is beyond the current size (a registry that grows after a
// declaration was created is expected to happen only during setup, never
// in the cascade hot path).
func (d *Declaration) Set(key int, v value.Value) {
	d.grow(key + 1)
	d.values[key] = v
	d.valid[key] = true
}

// Get returns the value stored for key and whether the slot is set.
func (d *Declaration) Get(key int) (value.Value, bool) {
	if key < 0 || key >= len(d.values) || !d.valid[key] {
		return value.Value{}, false
	}
	return d.values[key], true
}

// Unset clears the slot for key, leaving it unset.
func (d *Declaration) Unset(key int) {
	if key >= 0 && key < len(d.values) {
		d.valid[key] = false
		d.values[key] = value.Value{}
	}
}

// Len returns the number of property slots the declaration is sized
// for.
func (d *Declaration) Len() int {
	return len(d.values)
}

func (d *Declaration) grow(size int) {
	if size <= len(d.values) {
		return
	}
	values := make([]value.Value, size)
	valid := make([]bool, size)
	copy(values, d.values)
	copy(valid, d.valid)
	d.values, d.valid = values, valid
}

// Merge overlays src onto d, in place: every slot src has set overwrites
// d's corresponding slot, per §4.8's "later/more specific declaration
// wins per property" cascade rule. Slots src leaves unset are untouched
// in d.
func (d *Declaration) Merge(src *Declaration) {
	d.grow(len(src.values))
	for key, ok := range src.valid {
		if ok {
			d.values[key] = src.values[key]
			d.valid[key] = true
		}
	}
}

// Replace overwrites d's entire content with src's, including clearing
// any slot src leaves unset that d previously had set, unlike Merge,
// which cascades onto d's existing content.
func (d *Declaration) Replace(src *Declaration) {
	d.values = append([]value.Value(nil), src.values...)
	d.valid = append([]bool(nil), src.valid...)
}

// Clone returns an independent deep copy of d.
func (d *Declaration) Clone() *Declaration {
	out := &Declaration{
		values: make([]value.Value, len(d.values)),
		valid:  append([]bool(nil), d.valid...),
	}
	for i, v := range d.values {
		out.values[i] = v.Clone()
	}
	return out
}

// PropertyDiff describes one property that differs between two
// declarations: Before/After hold the two values (IsSet()==false if the
// property was unset on that side).
type PropertyDiff struct {
	Key    int
	Before value.Value
	After  value.Value
}

// Diff compares d against other and returns every property key whose
// value or set/unset state differs, ordered by key. This is a
// SUPPLEMENTED FEATURE: the original grammar never needed to explain
// *why* a computed style changed between two cascades (e.g. after a
// state toggle invalidated the cache), but a host embedding this engine
// benefits from being able to ask.
func (d *Declaration) Diff(other *Declaration) []PropertyDiff {
	size := len(d.values)
	if len(other.values) > size {
		size = len(other.values)
	}
	var diffs []PropertyDiff
	for key := 0; key < size; key++ {
		var before, after value.Value
		var beforeOK, afterOK bool
		if key < len(d.values) && d.valid[key] {
			before, beforeOK = d.values[key], true
		}
		if key < len(other.values) && other.valid[key] {
			after, afterOK = other.values[key], true
		}
		if beforeOK != afterOK || (beforeOK && afterOK && !before.Equal(after)) {
			diffs = append(diffs, PropertyDiff{Key: key, Before: before, After: after})
		}
	}
	return diffs
}

// PropertiesList is the sparse, source-ordered form of a declaration
// described in §4.8: the (key, Value) pairs exactly as a rule's body
// declared them, in declaration order, before being folded into a dense
// Declaration. Hosts that need to print a rule back out in its original
// order (print_style_rules) keep this form around; the cascade itself
// only ever consumes the dense Declaration.
type PropertiesList struct {
	Keys   []int
	Values []value.Value
}

// Add appends a (key, value) pair to the list, in order, regardless of
// whether key already appears earlier (a later duplicate simply wins
// when the list is folded via ToDeclaration, matching plain CSS
// cascade-within-a-rule semantics).
func (p *PropertiesList) Add(key int, v value.Value) {
	p.Keys = append(p.Keys, key)
	p.Values = append(p.Values, v)
}

// ToDeclaration folds the list into a dense Declaration sized for size
// property slots, later entries overwriting earlier ones for the same
// key.
func (p *PropertiesList) ToDeclaration(size int) *Declaration {
	d := NewDeclaration(size)
	for i, key := range p.Keys {
		d.Set(key, p.Values[i])
	}
	return d
}
