package valuedef

import "github.com/tekugo/styleengine/value"

// ParseValue walks tree against text and returns the Value it produces,
// per §4.4. text is first split into whitespace-separated component
// tokens (quoted strings and function calls like "url(...)" are kept
// whole); the tree is then matched against the full token stream. A
// successful match must consume every token - trailing, unmatched text
// is a parse failure, not a partial success.
func ParseValue(tree *Tree, text string) (value.Value, bool) {
	tokens := splitValueTokens(text)
	v, rest, ok := MatchNode(tree, tokens)
	if !ok || len(rest) != 0 {
		return value.InvalidValue(), false
	}
	return v, true
}

// MatchNode matches tree, including its own repetition bounds, against a
// prefix of tokens and returns the resulting value together with the
// unconsumed remainder. Zero matches of a Min==0 node is itself a
// success (producing value.NoneValue()), letting optional grammar
// members simply contribute nothing rather than aborting the match.
func MatchNode(tree *Tree, tokens []string) (value.Value, []string, bool) {
	min, max := tree.Min, tree.Max
	if min == 0 && max == 0 {
		min, max = 1, 1
	}

	var results []value.Value
	remaining := tokens
	for max == -1 || len(results) < max {
		v, rest, ok := matchSingle(tree, remaining)
		if !ok {
			break
		}
		results = append(results, v)
		remaining = rest
	}

	if len(results) < min {
		return value.Value{}, tokens, false
	}
	switch len(results) {
	case 0:
		return value.NoneValue(), remaining, true
	case 1:
		return results[0], remaining, true
	default:
		return value.ArrayValue(results...), remaining, true
	}
}

// matchSingle matches exactly one occurrence of tree's underlying shape,
// ignoring tree's own repetition bounds (MatchNode's job).
func matchSingle(tree *Tree, tokens []string) (value.Value, []string, bool) {
	switch tree.Kind {
	case NodeKeyword:
		if len(tokens) == 0 || tokens[0] != tree.KeywordName {
			return value.Value{}, tokens, false
		}
		return value.KeywordValue(tree.KeywordID), tokens[1:], true
	case NodeType:
		if len(tokens) == 0 {
			return value.Value{}, tokens, false
		}
		v, ok := tree.Type.Parser(tokens[0])
		if !ok {
			return value.Value{}, tokens, false
		}
		return v, tokens[1:], true
	case NodeGroup:
		switch tree.Sign {
		case SignJuxtaposition:
			return matchJuxtaposition(tree.Children, tokens)
		case SignDoubleAmpersand:
			return matchDoubleAmpersand(tree.Children, tokens)
		case SignDoubleBar:
			return matchDoubleBar(tree.Children, tokens)
		default: // SignSingleBar
			return matchSingleBar(tree.Children, tokens)
		}
	default:
		return value.Value{}, tokens, false
	}
}

// matchJuxtaposition requires every child to match, in order. Optional
// children (Min == 0) that fail to match contribute value.NoneValue()
// rather than aborting the whole group, since MatchNode already treats
// zero matches of an optional node as success.
func matchJuxtaposition(children []*Tree, tokens []string) (value.Value, []string, bool) {
	results := make([]value.Value, 0, len(children))
	remaining := tokens
	for _, c := range children {
		v, rest, ok := MatchNode(c, remaining)
		if !ok {
			return value.Value{}, tokens, false
		}
		results = append(results, v)
		remaining = rest
	}
	return collapse(results), remaining, true
}

// matchDoubleAmpersand requires every child to match exactly once, in
// any order: it greedily tries each still-unmatched child against the
// current position, restarting the scan after each successful match so
// an earlier child can still match later tokens out of source order.
func matchDoubleAmpersand(children []*Tree, tokens []string) (value.Value, []string, bool) {
	results := make([]value.Value, len(children))
	matched := make([]bool, len(children))
	remaining := tokens

	for progress := true; progress; {
		progress = false
		for i, c := range children {
			if matched[i] {
				continue
			}
			if v, rest, ok := matchSingle(c, remaining); ok {
				results[i], remaining, matched[i], progress = v, rest, true, true
				break
			}
		}
	}

	for i, c := range children {
		if matched[i] {
			continue
		}
		if c.Min == 0 {
			results[i] = value.NoneValue()
			continue
		}
		return value.Value{}, tokens, false
	}
	return collapse(results), remaining, true
}

// matchDoubleBar accepts one or more children, in any order, using the
// same greedy consumption as &&, but only requires at least one match
// overall rather than every child.
func matchDoubleBar(children []*Tree, tokens []string) (value.Value, []string, bool) {
	results := make([]value.Value, len(children))
	matched := make([]bool, len(children))
	remaining := tokens

	for progress := true; progress; {
		progress = false
		for i, c := range children {
			if matched[i] {
				continue
			}
			if v, rest, ok := matchSingle(c, remaining); ok {
				results[i], remaining, matched[i], progress = v, rest, true, true
				break
			}
		}
	}

	any := false
	for i := range children {
		if matched[i] {
			any = true
		} else {
			results[i] = value.NoneValue()
		}
	}
	if !any {
		return value.Value{}, tokens, false
	}
	return collapse(results), remaining, true
}

// matchSingleBar picks exactly one alternative: the leftmost child (in
// source order) that matches wins, per §4.4's "on ambiguity, the leftmost
// choice in source order is selected".
func matchSingleBar(children []*Tree, tokens []string) (value.Value, []string, bool) {
	for _, c := range children {
		if v, rest, ok := MatchNode(c, tokens); ok {
			return v, rest, true
		}
	}
	return value.Value{}, tokens, false
}

// collapse drops unset placeholder values (optional group members that
// matched zero times) and unwraps a single remaining value rather than
// wrapping it in a one-element array.
func collapse(results []value.Value) value.Value {
	present := results[:0:0]
	for _, r := range results {
		if r.IsSet() {
			present = append(present, r)
		}
	}
	switch len(present) {
	case 0:
		return value.NoneValue()
	case 1:
		return present[0]
	default:
		return value.ArrayValue(present...)
	}
}

func isValueSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// splitValueTokens splits raw property-value text into whitespace
// separated component tokens, keeping quoted strings and function calls
// such as "url(...)" or "rgb(...)" intact even though they contain
// spaces or commas.
func splitValueTokens(text string) []string {
	var tokens []string
	i, n := 0, len(text)

	for i < n {
		for i < n && isValueSpace(text[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i
		if text[i] == '"' || text[i] == '\'' {
			quote := text[i]
			i++
			for i < n && text[i] != quote {
				i++
			}
			if i < n {
				i++
			}
			tokens = append(tokens, text[start:i])
			continue
		}

		for i < n && !isValueSpace(text[i]) {
			if text[i] == '(' {
				depth := 1
				i++
				for i < n && depth > 0 {
					switch text[i] {
					case '(':
						depth++
					case ')':
						depth--
					}
					i++
				}
				continue
			}
			i++
		}
		tokens = append(tokens, text[start:i])
	}

	return tokens
}
