package ds

import (
	"slices"
	"strings"
	"testing"
)

func TestTrie(t *testing.T) {
	trie := NewTrie[int]()
	trie.Register([]string{"format", "minus"}, 1)
	trie.Register([]string{"format", "power"}, 2)
	trie.Register([]string{"print", "explain"}, 3)

	if v, _, ok := trie.Find([]string{"format", "power"}); !ok || v != 2 {
		t.Errorf("format power: results mismatched! want 2 - got %d", v)
	}
	if _, _, ok := trie.Find([]string{"format"}); ok {
		t.Errorf("format: intermediate node should not be set")
	}
	if _, name, ok := trie.Find([]string{"format", "color"}); ok || name != "color" {
		t.Errorf("format color: expected color to be reported missing, got %q", name)
	}
	if _, name, ok := trie.Find([]string{"print"}); ok || name != "print" {
		t.Errorf("print: expected print to be reported incomplete, got %q", name)
	}

	var paths []string
	trie.Walk([]string{"format"}, func(path []string, _ int) {
		paths = append(paths, strings.Join(path, " "))
	})
	slices.Sort(paths)
	want := []string{"format minus", "format power"}
	if !slices.Equal(paths, want) {
		t.Errorf("walk: results mismatched! want %v - got %v", want, paths)
	}
}

func TestTrieWalkPaths(t *testing.T) {
	trie := NewTrie[int]()
	trie.Register([]string{"batch", "csv", "quote", "all"}, 1)
	trie.Register([]string{"batch", "csv", "quote", "none"}, 2)
	trie.Register([]string{"batch", "csv", "eol", "crlf"}, 3)
	trie.Register([]string{"batch", "csv", "eol", "lf"}, 4)
	trie.Register([]string{"batch", "input"}, 5)

	var paths [][]string
	trie.Walk(nil, func(path []string, _ int) {
		paths = append(paths, path)
	})
	var got []string
	for _, p := range paths {
		got = append(got, strings.Join(p, " "))
	}
	slices.Sort(got)
	want := []string{
		"batch csv eol crlf",
		"batch csv eol lf",
		"batch csv quote all",
		"batch csv quote none",
		"batch input",
	}
	if !slices.Equal(got, want) {
		t.Errorf("walk: results mismatched! want %v - got %v", want, got)
	}

	prefix := make([]string, 2, 8)
	copy(prefix, []string{"batch", "csv"})
	backing := prefix[:cap(prefix)]
	trie.Walk(prefix, func([]string, int) {})
	for i := len(prefix); i < len(backing); i++ {
		if backing[i] != "" {
			t.Errorf("walk: prefix modified at %d: %q", i, backing[i])
		}
	}
}
