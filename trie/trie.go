// Package trie provides the prefix index used by the trie-forward solver.
//
// The index is build-once: markers are inserted during construction and the
// node graph is read-only afterwards, which makes it safe to share between
// any number of concurrent readers without synchronization.
package trie

import "errors"

// ErrEmptyMarker is returned when an empty marker is inserted.
//
// Empty markers are rejected because a zero-length match would consume no
// input and make any forward scan non-terminating.
var ErrEmptyMarker = errors.New("marker must not be empty")

// Node is a single node in the prefix index. The root node represents the
// empty prefix; every path from the root spells a prefix of at least one
// inserted marker.
type Node struct {
	children map[byte]*Node
	terminal bool
}

// Child returns the child node reached by consuming sym, or nil if no
// inserted marker has the consumed prefix extended by sym. A nil return
// means no longer extension can match either (prefix monotonicity), so
// callers can stop their walk immediately.
func (n *Node) Child(sym byte) *Node {
	return n.children[sym]
}

// Terminal reports whether some marker ends exactly at this node.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Trie is a prefix index over a set of markers.
type Trie struct {
	root *Node
	size int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: &Node{}}
}

// Build constructs a Trie from markers. It fails with ErrEmptyMarker if any
// marker is empty; duplicates collapse into a single entry.
func Build(markers []string) (*Trie, error) {
	t := New()
	for _, m := range markers {
		if err := t.Insert(m); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Insert adds one marker to the index, creating any missing intermediate
// nodes, and marks the final node terminal. Inserting the same marker twice
// is a no-op. Insert must not be called once the Trie is shared with
// readers.
func (t *Trie) Insert(marker string) error {
	if len(marker) == 0 {
		return ErrEmptyMarker
	}
	node := t.root
	for i := 0; i < len(marker); i++ {
		sym := marker[i]
		child := node.children[sym]
		if child == nil {
			if node.children == nil {
				node.children = make(map[byte]*Node)
			}
			child = &Node{}
			node.children[sym] = child
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
	return nil
}

// Root returns the root node, the starting point for walks.
func (t *Trie) Root() *Node {
	return t.root
}

// Size returns the number of distinct markers in the index.
func (t *Trie) Size() int {
	return t.size
}

// Contains reports whether marker was inserted into the index. It takes
// O(len(marker)) time.
func (t *Trie) Contains(marker string) bool {
	node := t.root
	for i := 0; i < len(marker); i++ {
		node = node.Child(marker[i])
		if node == nil {
			return false
		}
	}
	return node.Terminal()
}
