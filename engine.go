package style

import (
	"fmt"
	"strings"

	"github.com/tekugo/styleengine/value"
	"github.com/tekugo/styleengine/valuedef"
)

// Engine is the public facade described in §6: one engine owns a
// keyword registry, a property registry, a value-definition compiler,
// a rule trie, a computed-style cache, and a warning log. A host
// embedding this package typically keeps exactly one Engine for its
// whole document.
type Engine struct {
	Keywords   *KeywordRegistry
	Properties *PropertyRegistry
	Types      *valuedef.Registry
	Compiler   *valuedef.Compiler
	Log        *Log

	trie      *Trie
	cache     map[uint64]*Declaration
	ruleCount int
	opts      Options
}

// New creates an Engine per opts (§6's init). If opts.SeedKeywords is
// set, the built-in keyword vocabulary is registered immediately.
func New(opts Options) (*Engine, error) {
	opts = opts.withDefaults()

	keywords := NewKeywordRegistry()
	types := valuedef.NewRegistry()
	compiler := valuedef.NewCompiler(types, keywords)

	e := &Engine{
		Keywords:   keywords,
		Properties: NewPropertyRegistry(compiler),
		Types:      types,
		Compiler:   compiler,
		Log:        NewLog(opts.LogSize),
		trie:       NewTrie(),
		cache:      make(map[uint64]*Declaration, opts.CacheSize),
		opts:       opts,
	}

	if opts.SeedKeywords {
		if err := SeedDefaultKeywords(keywords); err != nil {
			return nil, fmt.Errorf("seeding default keywords: %w", err)
		}
	}

	return e, nil
}

// Destroy releases the engine's rule index and cache (§6's destroy).
// The registries are left intact since value-definition compilation and
// keyword/property registration are normally done once at process
// startup, independent of any one engine instance's rule set.
func (e *Engine) Destroy() {
	e.trie = NewTrie()
	e.cache = make(map[uint64]*Declaration, e.opts.CacheSize)
	e.ruleCount = 0
}

// RegisterType installs a value-definition primitive type (§4.3's
// "type" terms, e.g. <length>, <percentage>, <color>) under name.
func (e *Engine) RegisterType(name string, parser valuedef.TypeParser) {
	e.Types.RegisterType(name, parser)
}

// RegisterProperty compiles syntaxText as the property's grammar and
// registers it under name with the given default value text (§4.2).
func (e *Engine) RegisterProperty(name, syntaxText, initialText string) (int, error) {
	return e.Properties.Register(name, syntaxText, initialText)
}

// CreateSelector parses text into a Selector (§6's selector create).
func (e *Engine) CreateSelector(text string) (*Selector, error) {
	return ParseSelector(text)
}

// AddRule parses each value text in props against the compiled syntax of
// the property it is keyed by and inserts the resulting rule into the
// trie under sel. Any property name in props not found in the property registry, or
// any value that fails to parse against its property's compiled syntax,
// is logged as a warning and that single property is skipped rather than
// failing the whole rule - matching §6's "errors are collected, not
// raised" loading behavior.
func (e *Engine) AddRule(sel *Selector, props map[string]string) *Rule {
	decl := NewDeclaration(e.Properties.Count())

	for name, text := range props {
		def, ok := e.Properties.Lookup(name)
		if !ok {
			e.Log.Warnf("style", "unknown property %q in rule %q", name, sel.Text)
			continue
		}
		v, ok := valuedef.ParseValue(def.Syntax, text)
		if !ok {
			e.Log.Warnf("style", "value %q does not match syntax for property %q in rule %q", text, name, sel.Text)
			continue
		}
		decl.Set(def.Key, v)
	}

	rule := &Rule{Selector: sel, Decl: decl}
	e.trie.Insert(rule)
	e.ruleCount++

	// A new rule can change the outcome of any previously cached query,
	// so the whole cache is flushed rather than attempting selective
	// invalidation, per §6.
	e.cache = make(map[uint64]*Declaration, e.opts.CacheSize)

	return rule
}

// AddStyleSheet parses a sequence of "selector { prop: value; ... }"
// blocks from text and adds each as a rule via AddRule, per §6's
// add_style_sheet. Malformed blocks are logged and skipped; parsing
// continues with the next block.
func (e *Engine) AddStyleSheet(text string) []*Rule {
	var rules []*Rule
	for _, block := range splitBlocks(text) {
		sel, err := ParseSelector(block.selector)
		if err != nil {
			e.Log.Warnf("style", "skipping rule with invalid selector %q: %v", block.selector, err)
			continue
		}
		props := make(map[string]string, len(block.props))
		for _, p := range block.props {
			props[p.name] = p.value
		}
		rules = append(rules, e.AddRule(sel, props))
	}
	return rules
}

type styleProp struct{ name, value string }

type styleBlock struct {
	selector string
	props    []styleProp
}

// splitBlocks does the minimal lexing add_style_sheet needs: split on
// '{'/'}'  pairs and ';'-separated "name: value" declarations within
// each. It is deliberately not a general CSS tokenizer - comments,
// nested braces and string-quoted semicolons are out of scope, per §1's
// non-goal of a complete CSS parser.
func splitBlocks(text string) []styleBlock {
	var blocks []styleBlock
	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			break
		}
		close := strings.IndexByte(text[open:], '}')
		if close < 0 {
			break
		}
		close += open

		selector := strings.TrimSpace(text[:open])
		body := text[open+1 : close]
		text = text[close+1:]

		if selector == "" {
			continue
		}

		var props []styleProp
		for _, decl := range strings.Split(body, ";") {
			decl = strings.TrimSpace(decl)
			if decl == "" {
				continue
			}
			colon := strings.IndexByte(decl, ':')
			if colon < 0 {
				continue
			}
			name := strings.TrimSpace(decl[:colon])
			val := strings.TrimSpace(decl[colon+1:])
			props = append(props, styleProp{name: name, value: val})
		}
		blocks = append(blocks, styleBlock{selector: selector, props: props})
	}
	return blocks
}

// QuerySelector returns every rule matching sel's target node and
// ancestor chain, in cascade order (§6's query_selector).
func (e *Engine) QuerySelector(sel *Selector) []*Rule {
	return e.trie.Query(sel.Target(), AncestorChain(sel.Ancestors()))
}

// GetComputedStyle returns the cascaded declaration for sel, computing
// and caching it on first query and serving subsequent identical queries
// (same selector Hash) straight from cache until the next AddRule flush,
// per §6's get_computed_style/computed_style and the cache invariant in
// §4.7.
func (e *Engine) GetComputedStyle(sel *Selector) *Declaration {
	if cached, ok := e.cache[sel.Hash]; ok {
		return cached
	}

	rules := e.QuerySelector(sel)

	computed := NewDeclaration(e.Properties.Count())
	// rules is ordered highest-priority first; apply lowest-priority
	// first so a later Merge from a higher-specificity/later rule wins,
	// matching standard cascade "last applicable wins" semantics.
	for i := len(rules) - 1; i >= 0; i-- {
		computed.Merge(rules[i].Decl)
	}

	e.cache[sel.Hash] = computed
	return computed
}

// PropertyValue looks up a single property's computed value out of decl,
// falling back to the property's registered initial value if decl
// leaves it unset.
func (e *Engine) PropertyValue(decl *Declaration, name string) value.Value {
	def, ok := e.Properties.Lookup(name)
	if !ok {
		return value.InvalidValue()
	}
	if v, ok := decl.Get(def.Key); ok {
		return v
	}
	return def.Initial
}

// PrintStyleRules writes every rule currently indexed to sb, one per
// line, in the selector text they were registered under - a debugging
// aid matching §6's print_style_rules.
func (e *Engine) PrintStyleRules(sb *strings.Builder) {
	seen := make(map[*Rule]bool)
	for _, g := range e.trie.groups {
		for _, l := range g.links {
			if seen[l.Rule] {
				continue
			}
			seen[l.Rule] = true
			fmt.Fprintf(sb, "%s { %d properties }\n", l.Rule.Selector.Text, countSet(l.Rule.Decl))
		}
	}
}

// PrintAll writes a full dump of the engine's state to sb: keyword
// count, property count, rule count and the rules themselves, matching
// §6's print_all.
func (e *Engine) PrintAll(sb *strings.Builder) {
	fmt.Fprintf(sb, "keywords: %d\n", e.Keywords.Count())
	fmt.Fprintf(sb, "properties: %d\n", e.Properties.Count())
	fmt.Fprintf(sb, "rules: %d\n", e.ruleCount)
	e.PrintStyleRules(sb)
}

func countSet(d *Declaration) int {
	n := 0
	for i := 0; i < d.Len(); i++ {
		if _, ok := d.Get(i); ok {
			n++
		}
	}
	return n
}
