package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRule(t *testing.T, selText string) *Rule {
	t.Helper()
	sel, err := ParseSelector(selText)
	require.NoError(t, err)
	return &Rule{Selector: sel, Decl: NewDeclaration(1)}
}

func TestTrieQueryMatchesByType(t *testing.T) {
	trie := NewTrie()
	r := newRule(t, "button")
	trie.Insert(r)

	target := newNode()
	target.SetType("button")
	require.NoError(t, target.finish())

	rules := trie.Query(target, nil)
	require.Len(t, rules, 1)
	assert.Same(t, r, rules[0])
}

func TestTrieQueryOrdersBySpecificityThenRecency(t *testing.T) {
	trie := NewTrie()
	low := newRule(t, "button")
	high := newRule(t, "button#ok")
	trie.Insert(low)
	trie.Insert(high)

	target := newNode()
	target.SetType("button")
	target.SetID("ok")
	require.NoError(t, target.finish())

	rules := trie.Query(target, nil)
	require.Len(t, rules, 2)
	assert.Same(t, high, rules[0])
	assert.Same(t, low, rules[1])
}

func TestTrieQueryLaterRuleWinsOnTie(t *testing.T) {
	trie := NewTrie()
	first := newRule(t, "button.primary")
	second := newRule(t, "button.primary")
	trie.Insert(first)
	trie.Insert(second)

	target := newNode()
	target.SetType("button")
	target.AddClass("primary")
	require.NoError(t, target.finish())

	rules := trie.Query(target, nil)
	require.Len(t, rules, 2)
	assert.Same(t, second, rules[0])
}

func TestTrieQueryRespectsAncestorChain(t *testing.T) {
	trie := NewTrie()
	r := newRule(t, "dialog button")
	trie.Insert(r)

	target := newNode()
	target.SetType("button")
	require.NoError(t, target.finish())

	dialog := newNode()
	dialog.SetType("dialog")
	require.NoError(t, dialog.finish())

	assert.Empty(t, trie.Query(target, nil))
	assert.Len(t, trie.Query(target, AncestorChain{dialog}), 1)
}

func TestTrieQueryDescendantNeedNotBeImmediateParent(t *testing.T) {
	trie := NewTrie()
	r := newRule(t, "dialog button")
	trie.Insert(r)

	target := newNode()
	target.SetType("button")
	require.NoError(t, target.finish())

	dialog := newNode()
	dialog.SetType("dialog")
	require.NoError(t, dialog.finish())

	group := newNode()
	group.SetType("group")
	require.NoError(t, group.finish())

	chain := AncestorChain{dialog, group}
	assert.Len(t, trie.Query(target, chain), 1)
}

func TestTrieCountCountsDistinctRules(t *testing.T) {
	trie := NewTrie()
	trie.Insert(newRule(t, "button.primary"))
	trie.Insert(newRule(t, "button.secondary"))
	assert.Equal(t, 2, trie.Count())
}
