package fuzzy

import (
	"sort"
	"strings"
)

// FieldPath is the sequence of keys leading to a leaf in a nested record.
type FieldPath []string

// String joins the path with dots, the form used in [FieldResult.Field].
func (p FieldPath) String() string {
	return strings.Join(p, ".")
}

// Selector is a tree of field names. Every leaf marks a field path to search.
// Paths are enumerated in declaration order, which matters for scoring ties.
type Selector []SelectorNode

// SelectorNode is one key in a Selector. A node with no children is a leaf.
type SelectorNode struct {
	Key      string
	Children Selector
}

// Leaf reports whether n selects the path ending at its key.
func (n SelectorNode) Leaf() bool { return len(n.Children) == 0 }

// Fields returns a single-level selector over the given top-level names.
func Fields(names ...string) Selector {
	var s Selector
	for _, name := range names {
		s = s.Add(FieldPath{name})
	}
	return s
}

// ParseSelector builds a selector from comma-separated dotted paths, for
// example "name.last,email". Blank entries are ignored.
func ParseSelector(spec string) Selector {
	var s Selector
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		s = s.Add(FieldPath(strings.Split(part, ".")))
	}
	return s
}

// SelectorFromMap builds a selector from a nested map such as
// {"name": {"last": true}, "email": true}. Map values become subtrees and any
// other value marks a leaf. Go maps are unordered, so keys are visited in
// sorted order to keep enumeration deterministic.
func SelectorFromMap(m map[string]any) Selector {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make(Selector, 0, len(keys))
	for _, k := range keys {
		node := SelectorNode{Key: k}
		if sub, ok := m[k].(map[string]any); ok && len(sub) > 0 {
			node.Children = SelectorFromMap(sub)
		}
		s = append(s, node)
	}
	return s
}

// Add returns s with path merged in. Existing prefixes are shared; adding a
// path whose prefix is already a leaf turns that leaf into a branch.
func (s Selector) Add(path FieldPath) Selector {
	if len(path) == 0 {
		return s
	}
	for i := range s {
		if s[i].Key == path[0] {
			if len(path) > 1 {
				s[i].Children = s[i].Children.Add(path[1:])
			}
			return s
		}
	}
	node := SelectorNode{Key: path[0]}
	if len(path) > 1 {
		node.Children = Selector(nil).Add(path[1:])
	}
	return append(s, node)
}

// Paths enumerates every leaf path in declaration order.
func (s Selector) Paths() []FieldPath {
	var paths []FieldPath
	s.walk(nil, func(p FieldPath) {
		paths = append(paths, p)
	})
	return paths
}

// walk visits each leaf with a fresh copy of the accumulated key sequence.
func (s Selector) walk(prefix FieldPath, fn func(FieldPath)) {
	for _, n := range s {
		path := append(prefix[:len(prefix):len(prefix)], n.Key)
		if n.Leaf() {
			fn(path)
			continue
		}
		n.Children.walk(path, fn)
	}
}

// String renders s as the comma-separated dotted form ParseSelector accepts.
func (s Selector) String() string {
	paths := s.Paths()
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}
