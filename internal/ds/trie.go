package ds

import "slices"

type Node[T any] struct {
	name     string
	value    T
	setted   bool
	children map[string]*Node[T]
}

func createNode[T any](name string) *Node[T] {
	return &Node[T]{
		name:     name,
		children: make(map[string]*Node[T]),
	}
}

type Trie[T any] struct {
	root *Node[T]
}

func NewTrie[T any]() *Trie[T] {
	trie := Trie[T]{
		root: createNode[T](""),
	}
	return &trie
}

// Find returns the value registered at path. When path is not registered, it
// reports the first unknown segment or the last one if path is incomplete.
func (t *Trie[T]) Find(path []string) (T, string, bool) {
	var (
		node = t.root
		zero T
	)
	for _, name := range path {
		child, ok := node.children[name]
		if !ok {
			return zero, name, false
		}
		node = child
	}
	if !node.setted {
		return zero, node.name, false
	}
	return node.value, "", true
}

func (t *Trie[T]) Walk(prefix []string, fn func(path []string, v T)) {
	node := t.root
	for _, name := range prefix {
		n, ok := node.children[name]
		if !ok {
			return
		}
		node = n
	}

	var walk func(n *Node[T], path []string)

	walk = func(n *Node[T], path []string) {
		if n.setted {
			fn(path, n.value)
		}
		for name, child := range n.children {
			walk(child, append(slices.Clip(path), name))
		}
	}

	walk(node, slices.Clone(prefix))
}

func (t *Trie[T]) Register(path []string, value T) {
	if len(path) == 0 {
		return
	}
	node := t.root
	for _, name := range path {
		if node.children[name] == nil {
			node.children[name] = createNode[T](name)
		}
		node = node.children[name]
	}
	node.value = value
	node.setted = true
}
