package conf

import (
	"maps"
	"slices"
	"strings"
)

// Store is an in-memory tree of settings addressed by dot-separated keys.
// Values are JSON-like: scalars (string, number, bool, nil) or nested
// map[string]any nodes of the same shape.
//
// A Store is not safe for concurrent use; each instance is owned
// exclusively by its creator.
type Store struct {
	path  string
	tree  map[string]any
	order []string // top-level keys in insertion order
}

// New creates an empty store with no bound file path.
func New() *Store {
	return &Store{
		tree: make(map[string]any),
	}
}

// Open creates a store bound to path and loads the file when it already
// exists. A missing file is not an error; the store starts empty and the
// path is used by later Load and Save calls.
func Open(path string) (*Store, error) {
	s := New()
	s.path = path

	if path != "" && fileExists(path) {
		if err := s.Load(""); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the file path bound at construction, if any.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves the value at key, walking the tree segment by segment.
// It returns def when any segment is absent or an intermediate value is
// not a map. Get never fails.
func (s *Store) Get(key string, def any) any {
	current := any(s.tree)

	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return def
		}
		value, exists := node[segment]
		if !exists {
			return def
		}
		current = value
	}

	return current
}

// Set assigns value at key, creating intermediate map nodes as needed.
// A scalar sitting on an intermediate segment is overwritten by a fresh
// map so the walk can continue.
func (s *Store) Set(key string, value any) {
	segments := strings.Split(key, ".")

	if _, exists := s.tree[segments[0]]; !exists {
		s.order = append(s.order, segments[0])
	}

	current := s.tree
	for _, segment := range segments[:len(segments)-1] {
		next, exists := current[segment]
		if !exists {
			child := make(map[string]any)
			current[segment] = child
			current = child
			continue
		}
		if child, isMap := next.(map[string]any); isMap {
			current = child
		} else {
			child := make(map[string]any)
			current[segment] = child
			current = child
		}
	}

	current[segments[len(segments)-1]] = value
}

// Has reports whether key resolves to a non-nil value. A stored nil is
// indistinguishable from an absent key; that equivalence is part of the
// contract.
func (s *Store) Has(key string) bool {
	return s.Get(key, nil) != nil
}

// Delete removes the value at key. It returns false and leaves the tree
// unchanged when any segment along the path is absent or not a map.
func (s *Store) Delete(key string) bool {
	segments := strings.Split(key, ".")

	current := s.tree
	for _, segment := range segments[:len(segments)-1] {
		child, ok := current[segment].(map[string]any)
		if !ok {
			return false
		}
		current = child
	}

	last := segments[len(segments)-1]
	if _, exists := current[last]; !exists {
		return false
	}
	delete(current, last)

	if len(segments) == 1 {
		s.forgetTop(last)
	}
	return true
}

// Clear removes all entries, leaving an empty tree. The bound file path
// is kept.
func (s *Store) Clear() {
	s.tree = make(map[string]any)
	s.order = nil
}

// Snapshot returns a shallow copy of the tree. Nested maps are shared
// with the store, not deep-copied.
func (s *Store) Snapshot() map[string]any {
	return maps.Clone(s.tree)
}

// Restore replaces the tree with a shallow copy of t. Nested maps are
// shared with the caller's tree.
func (s *Store) Restore(t map[string]any) {
	if t == nil {
		s.Clear()
		return
	}
	s.tree = maps.Clone(t)
	s.order = sortedKeys(s.tree)
}

// Merge recursively merges t into the store. Where both sides hold maps
// the merge recurses; otherwise the incoming value replaces the existing
// one. Keys absent from t are never removed.
func (s *Store) Merge(t map[string]any) {
	for _, key := range sortedKeys(t) {
		if _, exists := s.tree[key]; !exists {
			s.order = append(s.order, key)
		}
	}
	mergeTrees(s.tree, t)
}

// sortedKeys returns m's keys in ascending order. It stands in for
// slices.Sorted(maps.Keys(m)), whose iterator form needs Go 1.23+.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// mergeTrees merges src into dst, right-biased at every leaf.
func mergeTrees(dst, src map[string]any) {
	for key, value := range src {
		if existing, ok := dst[key].(map[string]any); ok {
			if incoming, ok := value.(map[string]any); ok {
				mergeTrees(existing, incoming)
				continue
			}
		}
		dst[key] = value
	}
}

// Section returns the subtree at name, which may be a dotted path. An
// absent key or a non-map value yields an empty map.
func (s *Store) Section(name string) map[string]any {
	if m, ok := s.Get(name, nil).(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// SetSection assigns a subtree at name.
func (s *Store) SetSection(name string, tree map[string]any) {
	s.Set(name, tree)
}

// Sections returns the top-level key names in insertion order.
func (s *Store) Sections() []string {
	return slices.Clone(s.order)
}

// setTree replaces the whole tree, recording key order. Used by Load.
func (s *Store) setTree(tree map[string]any, order []string) {
	s.tree = tree
	s.order = s.order[:0]
	seen := make(map[string]bool, len(order))
	for _, key := range order {
		if _, exists := tree[key]; exists && !seen[key] {
			s.order = append(s.order, key)
			seen[key] = true
		}
	}
}

func (s *Store) forgetTop(key string) {
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
}
