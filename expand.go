package style

import "sort"

// expandNode enumerates every compound name a rule could plausibly have
// been registered under that would still match n, per §4.6. It is a
// QUERY-side operation only: given a live element's node, it produces
// the set of trie bucket keys worth checking. Insertion never expands -
// a rule is indexed under exactly the one compound name its own target
// node resolves to (see Trie.Insert) - so a rule's bucket key is only
// ever found here if that key is a subset of what the queried element
// actually has. Concretely: a rule "button" must match any "button#ok"
// element, a rule "#ok" must match regardless of type, and a rule "*"
// matches everything; expandNode produces all three of those candidate
// keys for a "button#ok" element.
//
// The enumeration varies two axes beyond the classes/states power set:
// - id: present (the element's own id) or absent (a rule that doesn't
//   care about id).
// - type: the element's own concrete type, omitted (an untyped rule
//   like ".primary"), or the literal "*" (an explicitly wildcarded rule
//   like "*.primary") - CSS treats all three as equivalent ways to
//   write "don't require a specific type".
//
// The result is deterministic (sorted) and contains no duplicates.
func expandNode(n *Node) []string {
	idOptions := []string{""}
	if n.ID != "" {
		idOptions = append(idOptions, n.ID)
	}

	typeOptions := []string{""}
	if n.Type != "" && n.Type != "*" {
		typeOptions = append(typeOptions, n.Type)
	}
	typeOptions = append(typeOptions, "*")

	// Collect every distinguishing qualifier: classes and states are
	// interchangeable for the purposes of subset expansion (both widen
	// the match), so they're merged into one qualifier list tagged with
	// their original prefix character.
	type qualifier struct {
		prefix byte
		name   string
	}
	var quals []qualifier
	for _, c := range n.Classes {
		quals = append(quals, qualifier{'.', c})
	}
	for _, s := range n.Status {
		quals = append(quals, qualifier{':', s})
	}

	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	total := 1 << uint(len(quals))
	for _, id := range idOptions {
		for _, typ := range typeOptions {
			base := buildBase(typ, id)
			for mask := 0; mask < total; mask++ {
				name := base
				for i, q := range quals {
					if mask&(1<<uint(i)) != 0 {
						name += string(q.prefix) + q.name
					}
				}
				add(name)
			}
		}
	}

	sort.Strings(names)
	return names
}

// buildBase concatenates a type token (possibly empty, meaning "no type
// written") and an id token (possibly empty) the same way Node.finish
// does, so a name built here matches a stored Node.FullName() whenever
// the same type/id/qualifiers were chosen.
func buildBase(typ, id string) string {
	s := typ
	if id != "" {
		s += "#" + id
	}
	return s
}
