package keyvalues

import "strings"

var yamlEscaper = strings.NewReplacer(`"`, `\"`)

// ToYAML renders the children of n as a YAML mapping, indenting each
// nesting level by indent spaces. Leaf values are always double quoted.
func ToYAML(n Node, indent int) string {
	c, ok := n.(*Container)
	if !ok {
		if l, isLeaf := n.(*Leaf); isLeaf {
			return `"` + yamlEscaper.Replace(l.value) + `"` + "\n"
		}
		return ""
	}
	if indent < 0 {
		indent = 0
	}
	var b strings.Builder
	writeYAML(&b, c, 0, strings.Repeat(" ", indent))
	return b.String()
}

type keyGroup struct {
	key   string
	nodes []Node
}

// groupByKey collects the children of c per key, in order. Keys are
// unique in a Container, so every group holds exactly one node.
func groupByKey(c *Container) []keyGroup {
	groups := make([]keyGroup, 0, len(c.keys))
	for _, k := range c.keys {
		groups = append(groups, keyGroup{key: k, nodes: []Node{c.items[k]}})
	}
	return groups
}

func writeYAML(b *strings.Builder, c *Container, level int, unit string) {
	indent := strings.Repeat(unit, level)
	for _, g := range groupByKey(c) {
		b.WriteString(indent)
		b.WriteString(quoteYAMLKey(g.key))
		b.WriteByte(':')
		switch v := g.nodes[0].(type) {
		case *Leaf:
			b.WriteString(` "`)
			b.WriteString(yamlEscaper.Replace(v.value))
			b.WriteString("\"\n")
		case *Container:
			b.WriteByte('\n')
			writeYAML(b, v, level+1, unit)
		}
	}
}

func quoteYAMLKey(key string) string {
	if strings.ContainsAny(key, `: "`) {
		return `"` + yamlEscaper.Replace(key) + `"`
	}
	return key
}
