// Package valuedef compiles the W3C value-definition mini-grammar
// (`<length> | <percentage> | auto`, juxtaposition, `&&`, `||`, `|`,
// bracket groups, repetition suffixes) into a tree, and walks that tree
// to parse and validate concrete property values against it.
package valuedef

import (
	"fmt"

	"github.com/tekugo/styleengine/value"
)

// TypeParser parses one value-text token against a named data type (e.g.
// <length>, <color>) and reports whether it matched.
type TypeParser func(token string) (value.Value, bool)

// TypeRecord is a registered `<name>` data-type reference usable inside a
// value-definition string.
type TypeRecord struct {
	Name   string
	Parser TypeParser
}

// KeywordResolver is the subset of the style package's keyword registry
// the compiler needs: a way to check whether a bare identifier names a
// known keyword. It is an interface (rather than a direct import of the
// style package) to avoid a dependency cycle between valuedef and style.
type KeywordResolver interface {
	KeyOf(name string) (int, bool)
}

// Registry holds the data types and type aliases a Compiler resolves
// `<ident>` references and bare-identifier aliases against. It is kept
// separate from Compiler so a host can share one registry across many
// independently-compiled syntaxes (e.g. one per CSS property) without
// re-registering the same data types for each.
type Registry struct {
	types   map[string]*TypeRecord
	aliases map[string]*Tree
}

// NewRegistry creates an empty type/alias registry.
func NewRegistry() *Registry {
	return &Registry{
		types:   make(map[string]*TypeRecord),
		aliases: make(map[string]*Tree),
	}
}

// RegisterType adds a `<name>` data type with the parser that validates
// and converts matching value text.
func (r *Registry) RegisterType(name string, parser TypeParser) {
	r.types[name] = &TypeRecord{Name: name, Parser: parser}
}

// RegisterAlias installs a bare-identifier alias that expands to tree
// when it appears in a value-definition string being compiled - e.g.
// registering "auto-or-length" to mean `auto | <length>` so later
// property syntaxes can just write "auto-or-length" instead of repeating
// the alternation. The alias's tree is cloned at each use site so two
// properties referencing the same alias never share mutable nodes.
func (r *Registry) RegisterAlias(name string, tree *Tree) {
	r.aliases[name] = tree
}

// Resolve looks up a data type by name (without the surrounding angle
// brackets).
func (r *Registry) Resolve(name string) (*TypeRecord, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Reset discards every registered data type and alias, returning the
// registry to the state NewRegistry produces. Used by a host that wants
// to tear down and re-seed its built-in value definitions, per §6's
// destroy_value_definitions().
func (r *Registry) Reset() {
	r.types = make(map[string]*TypeRecord)
	r.aliases = make(map[string]*Tree)
}

// resolveAlias looks up a type alias by bare identifier and, if found,
// returns a deep clone of its tree ready to be spliced into a new
// compile's output.
func (r *Registry) resolveAlias(name string) (*Tree, bool) {
	t, ok := r.aliases[name]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// CompileError reports a value-definition compile failure with the
// offending token, grounded on §4.3's "errors are reported with the
// offending token and a bounded-length message".
type CompileError struct {
	Token   string
	Message string
	Err     error // one of ErrSyntax, ErrNotFound
}

func (e *CompileError) Error() string {
	msg := e.Message
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return fmt.Sprintf("value-definition: %s (at %q)", msg, e.Token)
}

func (e *CompileError) Unwrap() error { return e.Err }
