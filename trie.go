package style

import "sort"

// Rule is one compiled style rule: the selector it was registered under
// and the declaration it contributes to the cascade.
type Rule struct {
	Selector *Selector
	Decl     *Declaration
}

// Link is one entry in a LinkGroup's bucket: a rule reachable through
// this bucket's full name, together with the ancestor chain (if any)
// still left to match against the element's ancestors during query.
type Link struct {
	Rule      *Rule
	Ancestors []*Node // selector's ancestor nodes, outermost first; empty for a single-node selector
}

// LinkGroup is the bucket of Links registered under one expanded full
// name. Links are kept sorted by (Rank desc, BatchNum desc) so that,
// per §4.7's cascade ordering, higher-specificity rules and then
// later-declared rules come first; a stable sort preserves insertion
// order for exact ties that still differ in neither (which shouldn't
// happen since BatchNum is unique, but the sort is stable regardless).
type LinkGroup struct {
	links []Link
}

func (g *LinkGroup) insert(l Link) {
	i := sort.Search(len(g.links), func(i int) bool {
		return less(l, g.links[i])
	})
	g.links = append(g.links, Link{})
	copy(g.links[i+1:], g.links[i:])
	g.links[i] = l
}

// less reports whether a sorts strictly before b: higher Rank first,
// then higher BatchNum first.
func less(a, b Link) bool {
	if a.Rule.Selector.Rank != b.Rule.Selector.Rank {
		return a.Rule.Selector.Rank > b.Rule.Selector.Rank
	}
	return a.Rule.Selector.BatchNum > b.Rule.Selector.BatchNum
}

// Trie is the multi-level index described in §4.7: a single-level map
// from full name to LinkGroup is enough to answer "which rules could
// possibly match an element with this full name", with ancestor
// combinators checked as a secondary filter at query time rather than by
// walking multiple trie levels - descendant selectors in this grammar
// have no intermediate indexable structure beyond their target node, so
// a second trie level per ancestor would index names that are never
// looked up directly.
//
// A rule is indexed under exactly one key: its own target node's literal
// FullName(). It lands in the "*" bucket only when its own target is the
// universal selector. Matching a broader query against a narrower rule
// (e.g. a live "button#ok" element finding a "button" rule) is done by
// expanding the query side instead (expandNode) - indexing every rule
// under every name it could ever be asked about would put unrelated
// rules with no qualifiers in common in the same bucket as each other.
type Trie struct {
	groups map[string]*LinkGroup
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{groups: make(map[string]*LinkGroup)}
}

// Insert registers rule under the exact full name of its selector's
// target node, per §4.7.
func (t *Trie) Insert(rule *Rule) {
	name := rule.Selector.Target().FullName()
	link := Link{Rule: rule, Ancestors: rule.Selector.Ancestors()}
	g, ok := t.groups[name]
	if !ok {
		g = &LinkGroup{}
		t.groups[name] = g
	}
	g.insert(link)
}

// AncestorChain is the element context a query needs beyond the target
// node itself: the chain of ancestor elements' own nodes, immediate
// parent last, used to satisfy a selector's descendant-combinator
// ancestors. A query caller (typically a host walking its live element
// tree) builds this once per query from whatever ancestor-walk API its
// document model provides.
type AncestorChain []*Node

// matchesAncestors reports whether every node in want (outermost first)
// has a matching ancestor somewhere in chain, in order - i.e. descendant
// matching, not strict parent-child matching: want's nodes need not be
// adjacent in chain, only appear as a subsequence satisfying each one's
// qualifiers.
func matchesAncestors(want []*Node, chain AncestorChain) bool {
	if len(want) == 0 {
		return true
	}
	ci := len(chain) - 1
	for wi := len(want) - 1; wi >= 0; wi-- {
		found := false
		for ci >= 0 {
			if nodeMatches(want[wi], chain[ci]) {
				found = true
				ci--
				break
			}
			ci--
		}
		if !found {
			return false
		}
	}
	return true
}

// nodeMatches reports whether a live element's node satisfies a
// selector node's qualifiers: type (or wildcard), id, and every
// class/state the selector node requires must be present on elem (extra
// classes/states on elem are fine - this is "at least", not "exactly").
func nodeMatches(want, elem *Node) bool {
	if want.Type != "" && want.Type != "*" && want.Type != elem.Type {
		return false
	}
	if want.ID != "" && want.ID != elem.ID {
		return false
	}
	for _, c := range want.Classes {
		if !containsSorted(elem.Classes, c) {
			return false
		}
	}
	for _, s := range want.Status {
		if !containsSorted(elem.Status, s) {
			return false
		}
	}
	return true
}

func containsSorted(list []string, v string) bool {
	i := sort.SearchStrings(list, v)
	return i < len(list) && list[i] == v
}

// Query returns every rule whose selector matches an element with the
// given target node and ancestor chain, in cascade order (highest
// specificity first, ties broken by later source order), per §4.7/§6's
// query_selector. It expands target into every name a rule matching it
// could have been indexed under and checks each resulting bucket -
// Insert never expands, so this is the only side that does.
func (t *Trie) Query(target *Node, chain AncestorChain) []*Rule {
	names := expandNode(target)
	seen := make(map[*Rule]bool)
	var links []Link

	for _, name := range names {
		g, ok := t.groups[name]
		if !ok {
			continue
		}
		for _, l := range g.links {
			if seen[l.Rule] {
				continue
			}
			if !matchesAncestors(l.Ancestors, chain) {
				continue
			}
			seen[l.Rule] = true
			links = append(links, l)
		}
	}

	sort.SliceStable(links, func(i, j int) bool {
		return less(links[i], links[j])
	})

	rules := make([]*Rule, len(links))
	for i, l := range links {
		rules[i] = l.Rule
	}
	return rules
}

// Count returns the number of distinct rules currently inserted. Each
// rule occupies exactly one bucket, but this still
// scans the link groups rather than returning a cheap pre-tracked count -
// callers wanting a genuinely O(1) counter should track insertions
// themselves (Engine does, via its own ruleCount field).
func (t *Trie) Count() int {
	seen := make(map[*Rule]bool)
	for _, g := range t.groups {
		for _, l := range g.links {
			seen[l.Rule] = true
		}
	}
	return len(seen)
}
