// Package keyvalues parses KeyValues text, the quoted and brace-delimited
// format used by Source-engine games, into a tree that can be queried,
// merged and rendered as JSON or YAML.
//
// Scope:
// - Line-oriented parsing with depth tracking
// - Dotted-path lookup and flattened enumeration
// - Structural merge of several trees
// - JSON and YAML output
//
// Non-goals:
// - Validation of the source (malformed input yields a partial tree)
// - Comment preservation
// - Formatting round-trip
package keyvalues

import "strings"

// =========================
// Tree Definitions
// =========================

type Kind uint8

const (
	KindLeaf Kind = iota
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Node is either a *Leaf or a *Container.
//
// Path is the dot-joined chain of ancestor keys recorded when the node was
// built. It does not include the node's own key and is not updated if the
// node is later attached somewhere else.
type Node interface {
	Kind() Kind
	Key() string
	Path() string
}

// -------- Leaf --------

type Leaf struct {
	key   string
	path  string
	value string
}

func NewLeaf(path, key, value string) *Leaf {
	return &Leaf{key: key, path: path, value: value}
}

func (*Leaf) Kind() Kind { return KindLeaf }

func (l *Leaf) Key() string { return l.key }

func (l *Leaf) Path() string { return l.path }

func (l *Leaf) Value() string { return l.value }

func (l *Leaf) SetValue(v string) { l.value = v }

// -------- Container --------

// Container keeps its children in insertion order. Keys are unique;
// setting an existing key replaces the entry in place.
type Container struct {
	key   string
	path  string
	keys  []string
	items map[string]Node
}

func NewContainer(path, key string) *Container {
	return &Container{key: key, path: path, items: make(map[string]Node)}
}

// New returns an empty root.
func New() *Container {
	return NewContainer("", "")
}

func (*Container) Kind() Kind { return KindContainer }

func (c *Container) Key() string { return c.key }

func (c *Container) Path() string { return c.path }

func (c *Container) Len() int { return len(c.keys) }

// Keys returns the child keys in insertion order.
func (c *Container) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *Container) Child(key string) (Node, bool) {
	n, ok := c.items[key]
	return n, ok
}

// Set attaches n under key. Empty keys and nil nodes are ignored.
func (c *Container) Set(key string, n Node) {
	if key == "" || n == nil {
		return
	}
	if _, exists := c.items[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.items[key] = n
}

// SetValue stores value under key. An existing leaf is updated in place;
// anything else at key is replaced by a new leaf.
func (c *Container) SetValue(key, value string) *Leaf {
	if l, ok := c.items[key].(*Leaf); ok {
		l.value = value
		return l
	}
	l := NewLeaf(c.childPath(), key, value)
	c.Set(key, l)
	return l
}

// Container returns the child container at key, creating it (or
// converting a leaf found there) when needed.
func (c *Container) Container(key string) *Container {
	if sub, ok := c.items[key].(*Container); ok {
		return sub
	}
	sub := NewContainer(c.childPath(), key)
	c.Set(key, sub)
	return sub
}

// Add stores key=value under the dotted path below c, creating any
// missing intermediate containers. An empty path stores directly in c.
func (c *Container) Add(path, key, value string) *Leaf {
	cur := c
	if path != "" {
		for _, part := range strings.Split(path, ".") {
			if part == "" {
				continue
			}
			cur = cur.Container(part)
		}
	}
	return cur.SetValue(key, value)
}

// childPath is the path recorded on nodes created directly under c.
func (c *Container) childPath() string {
	return joinPath(c.path, c.key)
}

func (c *Container) String() string {
	return ToJSON(c)
}

// =========================
// Utilities
// =========================

// joinPath joins the non-empty parts with ".".
func joinPath(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

func splitPath(s string) []string {
	return strings.Split(s, ".")
}

// clone returns a deep copy of n that keeps every recorded path.
func clone(n Node) Node {
	switch v := n.(type) {
	case *Leaf:
		return NewLeaf(v.path, v.key, v.value)
	case *Container:
		out := NewContainer(v.path, v.key)
		for _, k := range v.keys {
			out.Set(k, clone(v.items[k]))
		}
		return out
	default:
		return nil
	}
}
