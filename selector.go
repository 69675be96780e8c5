package style

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Bounds from §4.5: a selector may carry at most MaxNodes simple
// selectors, and a generated full name may not exceed MaxNameLength
// characters.
const (
	MaxNodes      = 32
	MaxNameLength = 1024
)

// batchCounter is the process-wide monotonically increasing counter
// §4.5 assigns selectors from; later source order always produces a
// strictly larger batch number, which is how equal-specificity rules
// break ties during cascade.
var batchCounter int64

func nextBatch() int64 {
	return atomic.AddInt64(&batchCounter, 1)
}

// Node is a simple selector: the type, id, classes and pseudo-class
// states that describe one position in a compound selector. Classes and
// states are kept sorted and duplicate-free so two nodes with identical
// content always produce an identical FullName, per the §3 invariant.
type Node struct {
	Type    string
	ID      string
	Classes []string
	Status  []string

	fullname string
	rank     int
}

// newNode builds an empty, unfinished node; callers populate it through
// SetType/AddClass/AddStatus/SetID (used by the selector parser) and
// finish() to compute FullName/Rank once all parts are known.
func newNode() *Node {
	return &Node{}
}

// SetType sets the node's type selector. Per §4.5 it may be set at most
// once; a second call is a no-op on the first value (the parser itself
// enforces "set at most once" by only calling this once per node).
func (n *Node) SetType(t string) {
	if n.Type == "" {
		n.Type = t
	}
}

// SetID sets the node's id selector (may be set at most once).
func (n *Node) SetID(id string) {
	if n.ID == "" {
		n.ID = id
	}
}

// AddClass inserts a class into the node's sorted, duplicate-free class
// set. On a node that has already been finished, FullName and Rank are
// recomputed; the owning Selector's Rank and Hash are not.
func (n *Node) AddClass(class string) {
	n.Classes = insertSorted(n.Classes, class)
	if n.fullname != "" {
		_ = n.finish()
	}
}

// AddStatus inserts a pseudo-class state into the node's sorted,
// duplicate-free state set. On a node that has already been finished,
// FullName and Rank are recomputed; the owning Selector's Rank and Hash
// are not.
func (n *Node) AddStatus(state string) {
	n.Status = insertSorted(n.Status, state)
	if n.fullname != "" {
		_ = n.finish()
	}
}

// insertSorted inserts v into a sorted slice, doing nothing if v is
// already present.
func insertSorted(list []string, v string) []string {
	i := sort.SearchStrings(list, v)
	if i < len(list) && list[i] == v {
		return list
	}
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}

// HasState reports whether state is currently set on the node - a
// convenience for callers that toggle pseudo-class state on an existing
// node (e.g. a widget gaining focus) without re-parsing a selector
// string from scratch.
func (n *Node) HasState(state string) bool {
	i := sort.SearchStrings(n.Status, state)
	return i < len(n.Status) && n.Status[i] == state
}

// finish computes FullName and Rank from the node's current content, per
// §3's invariant that FullName is determined solely by (type, id, sorted
// classes, sorted states).
func (n *Node) finish() error {
	var b strings.Builder
	rank := 0

	if n.Type != "" {
		b.WriteString(n.Type)
		rank++
	}
	if n.ID != "" {
		b.WriteByte('#')
		b.WriteString(n.ID)
		rank += 100
	}
	for _, c := range n.Classes {
		b.WriteByte('.')
		b.WriteString(c)
		rank += 10
	}
	for _, s := range n.Status {
		b.WriteByte(':')
		b.WriteString(s)
		rank += 10
	}

	if b.Len() > MaxNameLength {
		return fmt.Errorf("simple selector name exceeds %d characters: %w", MaxNameLength, ErrCapacity)
	}

	n.fullname = b.String()
	n.rank = rank
	return nil
}

// FullName returns the canonical "type#id.class1.class2:state1:state2"
// string for this node (classes and states sorted). Returns "" until the
// node has been through finish() (i.e. for a node still being built by
// the parser).
func (n *Node) FullName() string { return n.fullname }

// Rank returns the node's specificity contribution: 100 per id, 10 per
// class or state, 1 for a type selector.
func (n *Node) Rank() int { return n.rank }

// Selector is a compound selector: an ordered chain of simple-selector
// Nodes separated by the descendant combinator, ancestor-first
// (left-to-right in source order, so Nodes[len-1] is the target/rightmost
// node per §3/§4.5).
type Selector struct {
	Nodes    []*Node
	Rank     int
	BatchNum int64
	Hash     uint64
	Text     string
}

// Target returns the rightmost (target) node, or nil for an empty
// selector.
func (s *Selector) Target() *Node {
	if len(s.Nodes) == 0 {
		return nil
	}
	return s.Nodes[len(s.Nodes)-1]
}

// Ancestors returns the nodes strictly above the target, ancestor-first
// (index 0 is the outermost ancestor, last element is the target's
// immediate parent).
func (s *Selector) Ancestors() []*Node {
	if len(s.Nodes) <= 1 {
		return nil
	}
	return s.Nodes[:len(s.Nodes)-1]
}

// djbHash is the DJB-style rolling hash §3/§4.5 specifies for a
// selector's Hash field: hash = hash*33 + c, seeded at 5381, over the
// concatenation of node full names in order.
func djbHash(nodes []*Node) uint64 {
	var h uint64 = 5381
	for _, n := range nodes {
		for i := 0; i < len(n.fullname); i++ {
			h = h*33 + uint64(n.fullname[i])
		}
		h = h*33 + '\n' // separator so "ab" + "c" hashes differently from "a" + "bc"
	}
	return h
}

// ParseSelector parses a selector string into a Selector, per §4.5 and
// §6's textual format:
//
//	simple_selector (WS simple_selector)*
//	simple_selector := [type | '*'] ('#' ident | '.' ident | ':' ident)*
//
// Identifier characters are letters, digits, '-', '_', and '*' (the type
// wildcard; the lexer accepts it inside any identifier, not only a type).
// Any other character aborts the parse with ErrSyntax.
// Exceeding MaxNodes or MaxNameLength returns ErrCapacity.
func ParseSelector(text string) (*Selector, error) {
	nodes, err := parseNodes(text)
	if err != nil {
		return nil, err
	}
	if len(nodes) > MaxNodes {
		return nil, fmt.Errorf("selector has %d nodes, limit is %d: %w", len(nodes), MaxNodes, ErrCapacity)
	}

	rank := 0
	for _, n := range nodes {
		if err := n.finish(); err != nil {
			return nil, err
		}
		rank += n.rank
	}

	return &Selector{
		Nodes:    nodes,
		Rank:     rank,
		BatchNum: nextBatch(),
		Hash:     djbHash(nodes),
		Text:     text,
	}, nil
}

func isSelectorIdentChar(c byte) bool {
	return c == '-' || c == '_' || c == '*' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// parseNodes is the character-driven lexer/builder described in §4.5:
// whitespace separates nodes, and '.', '#', ':' prefix class/id/state
// tokens while a bare leading identifier is the type.
func parseNodes(text string) ([]*Node, error) {
	var nodes []*Node
	var current *Node

	i, n := 0, len(text)
	flush := func() {
		if current != nil {
			nodes = append(nodes, current)
			current = nil
		}
	}

	for i < n {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
			i++
		case c == '.' || c == '#' || c == ':':
			if current == nil {
				current = newNode()
			}
			i++
			start := i
			for i < n && isSelectorIdentChar(text[i]) {
				i++
			}
			if start == i {
				return nil, fmt.Errorf("empty identifier after %q at offset %d: %w", string(c), start, ErrSyntax)
			}
			ident := text[start:i]
			switch c {
			case '.':
				current.AddClass(ident)
			case '#':
				current.SetID(ident)
			case ':':
				current.AddStatus(ident)
			}
		case isSelectorIdentChar(c):
			if current == nil {
				current = newNode()
			}
			start := i
			for i < n && isSelectorIdentChar(text[i]) {
				i++
			}
			current.SetType(text[start:i])
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d: %w", string(c), i, ErrSyntax)
		}
	}
	flush()

	return nodes, nil
}

// Duplicate returns a deep copy of the selector, owned by the caller,
// with a freshly assigned BatchNum (it is, after all, a new selector
// value as far as source order is concerned) and a recomputed hash.
func (s *Selector) Duplicate() *Selector {
	nodes := make([]*Node, len(s.Nodes))
	for i, n := range s.Nodes {
		clone := *n
		clone.Classes = append([]string(nil), n.Classes...)
		clone.Status = append([]string(nil), n.Status...)
		nodes[i] = &clone
	}
	return &Selector{
		Nodes:    nodes,
		Rank:     s.Rank,
		BatchNum: nextBatch(),
		Hash:     djbHash(nodes),
		Text:     s.Text,
	}
}

// Append adds node to the end of the selector's chain (the new
// rightmost/target position), recomputing Rank and Hash. Used by hosts
// building a selector incrementally rather than from a single string
// (e.g. appending a freshly-created child element's simple selector to
// its parent's compound selector while walking a live document tree).
func (s *Selector) Append(n *Node) error {
	if len(s.Nodes) >= MaxNodes {
		return fmt.Errorf("selector already has %d nodes: %w", MaxNodes, ErrCapacity)
	}
	if n.fullname == "" {
		if err := n.finish(); err != nil {
			return err
		}
	}
	s.Nodes = append(s.Nodes, n)
	s.Rank += n.rank
	s.Hash = djbHash(s.Nodes)
	return nil
}
