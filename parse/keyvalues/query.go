package keyvalues

import "strings"

// Unlimited is the depth limit that walks the whole tree.
const Unlimited = -1

// Entry is one leaf reported by Flatten.
type Entry struct {
	Path  string `json:"path"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// =========================
// Safe Access Helpers
// =========================

// Children returns the direct child keys of n, or nil when n is a leaf.
func Children(n Node) []string {
	c, ok := n.(*Container)
	if !ok || c.Len() == 0 {
		return nil
	}
	return c.Keys()
}

// Get walks the dotted path below n one segment at a time.
func Get(n Node, dotted string) (Node, bool) {
	cur := n
	for _, part := range splitPath(dotted) {
		c, ok := cur.(*Container)
		if !ok {
			return nil, false
		}
		cur, ok = c.items[part]
		if !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

func Contains(n Node, dotted string) bool {
	_, ok := Get(n, dotted)
	return ok
}

// Value returns the value of a leaf.
func Value(n Node) (string, bool) {
	l, ok := n.(*Leaf)
	if !ok {
		return "", false
	}
	return l.value, true
}

// ValueOr returns the value of a leaf, or def for anything else.
func ValueOr(n Node, def string) string {
	if v, ok := Value(n); ok {
		return v
	}
	return def
}

// ValueAt resolves dotted below n, then key below that, and returns the
// leaf value found there or def.
func ValueAt(n Node, dotted, key, def string) string {
	sub, ok := Get(n, dotted)
	if !ok {
		return def
	}
	leaf, ok := Get(sub, key)
	if !ok {
		return def
	}
	return ValueOr(leaf, def)
}

// =========================
// Enumeration
// =========================

// Flatten lists the leaves below n depth-first in insertion order. A nil
// prefix keeps every leaf; otherwise only leaves whose recorded path
// starts with *prefix are kept. depth 0 reports the leaves directly
// under n, each extra level reaches one container deeper, and Unlimited
// reaches everything.
func Flatten(n Node, prefix *string, depth int) []Entry {
	var out []Entry
	c, ok := n.(*Container)
	if !ok {
		return out
	}
	flatten(c, prefix, depth, &out)
	return out
}

func flatten(c *Container, prefix *string, depth int, out *[]Entry) {
	for _, k := range c.keys {
		switch v := c.items[k].(type) {
		case *Leaf:
			if prefix == nil || strings.HasPrefix(v.path, *prefix) {
				*out = append(*out, Entry{Path: v.path, Key: k, Value: v.value})
			}
		case *Container:
			if depth != 0 {
				flatten(v, prefix, depth-1, out)
			}
		}
	}
}

// Paths lists the dotted position of every node below n, containers and
// leaves alike, relative to n. The prefix filter and depth limit work as
// in Flatten, except that the prefix is matched against these positional
// paths.
func Paths(n Node, prefix *string, depth int) []string {
	var out []string
	c, ok := n.(*Container)
	if !ok {
		return out
	}
	paths(c, "", prefix, depth, &out)
	return out
}

func paths(c *Container, base string, prefix *string, depth int, out *[]string) {
	for _, k := range c.keys {
		full := joinPath(base, k)
		if prefix == nil || strings.HasPrefix(full, *prefix) {
			*out = append(*out, full)
		}
		sub, ok := c.items[k].(*Container)
		if !ok || depth == 0 {
			continue
		}
		// keep descending while the prefix may still match further down
		if prefix == nil || strings.HasPrefix(full, *prefix) || strings.HasPrefix(*prefix, full+".") {
			paths(sub, full, prefix, depth-1, out)
		}
	}
}
