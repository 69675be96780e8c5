package style

import (
	"fmt"

	"github.com/tekugo/styleengine/value"
	"github.com/tekugo/styleengine/valuedef"
)

// PropertyDef is a registered CSS property: a stable integer key used as
// a dense array index everywhere a declaration stores this property's
// value, the compiled grammar that validates values assigned to it, and
// the value produced by parsing the property's initial-value text
// against that grammar.
type PropertyDef struct {
	Key     int
	Name    string
	Syntax  *valuedef.Tree
	Initial value.Value
}

// PropertyRegistry maps property names to PropertyDef, per §4.2. Keys
// are dense, contiguous small integers starting at 0 (or wherever a
// caller explicitly seeded them via RegisterWithKey for built-in
// properties), used directly as Declaration slot indices.
type PropertyRegistry struct {
	compiler *valuedef.Compiler
	byName   map[string]int
	byKey    []*PropertyDef // dense, index == key; nil slot if unused (see RegisterWithKey)
}

// NewPropertyRegistry creates an empty registry that compiles syntaxes
// through compiler.
func NewPropertyRegistry(compiler *valuedef.Compiler) *PropertyRegistry {
	return &PropertyRegistry{
		compiler: compiler,
		byName:   make(map[string]int),
	}
}

// Register compiles syntaxText, parses initialText against the compiled
// grammar, and appends a new property at the next dense key. Compile
// failure is an error (ErrSyntax/ErrNotFound, via the wrapped
// valuedef.CompileError); failure to parse the initial value against a
// syntax that compiled fine is not an error - the property is registered
// with an Invalid initial value, per §4.2.
func (r *PropertyRegistry) Register(name, syntaxText, initialText string) (int, error) {
	if _, exists := r.byName[name]; exists {
		return 0, fmt.Errorf("property %q already registered: %w", name, ErrDuplicate)
	}

	tree, err := r.compiler.Compile(syntaxText)
	if err != nil {
		return 0, fmt.Errorf("compiling syntax for property %q: %w", name, err)
	}

	initial, ok := valuedef.ParseValue(tree, initialText)
	if !ok {
		initial = value.InvalidValue()
	}

	key := len(r.byKey)
	def := &PropertyDef{Key: key, Name: name, Syntax: tree, Initial: initial}
	r.byKey = append(r.byKey, def)
	r.byName[name] = key
	return key, nil
}

// RegisterWithKey is Register, but assigns a caller-chosen key instead of
// the next dense slot - used for built-in properties whose key must
// match a compile-time constant. The backing array grows as needed to
// make key valid; any gap slots stay nil (Lookup/LookupByKey treat a nil
// slot the same as "not found" for the keys that were skipped).
func (r *PropertyRegistry) RegisterWithKey(key int, name, syntaxText, initialText string) error {
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("property %q already registered: %w", name, ErrDuplicate)
	}
	if key < len(r.byKey) && r.byKey[key] != nil {
		return fmt.Errorf("property key %d already used by %q: %w", key, r.byKey[key].Name, ErrDuplicate)
	}

	tree, err := r.compiler.Compile(syntaxText)
	if err != nil {
		return fmt.Errorf("compiling syntax for property %q: %w", name, err)
	}
	initial, ok := valuedef.ParseValue(tree, initialText)
	if !ok {
		initial = value.InvalidValue()
	}

	for len(r.byKey) <= key {
		r.byKey = append(r.byKey, nil)
	}
	r.byKey[key] = &PropertyDef{Key: key, Name: name, Syntax: tree, Initial: initial}
	r.byName[name] = key
	return nil
}

// Lookup returns the definition registered under name.
func (r *PropertyRegistry) Lookup(name string) (*PropertyDef, bool) {
	key, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.LookupByKey(key)
}

// LookupByKey returns the definition registered under key.
func (r *PropertyRegistry) LookupByKey(key int) (*PropertyDef, bool) {
	if key < 0 || key >= len(r.byKey) || r.byKey[key] == nil {
		return nil, false
	}
	return r.byKey[key], true
}

// Count returns one past the highest key ever registered, i.e. the
// length a Declaration array needs to hold every registered property
// (including any unused gap slots from RegisterWithKey).
func (r *PropertyRegistry) Count() int {
	return len(r.byKey)
}
