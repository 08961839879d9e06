package keyvalues

import "strings"

var jsonEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ToJSON renders n as a JSON object with one member per line, in
// insertion order. A leaf renders as its quoted value.
func ToJSON(n Node) string {
	var b strings.Builder
	writeJSON(&b, n)
	return b.String()
}

func writeJSON(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Leaf:
		writeJSONString(b, v.value)
	case *Container:
		b.WriteString("{\n")
		for i, k := range v.keys {
			writeJSONString(b, k)
			b.WriteString(" : ")
			writeJSON(b, v.items[k])
			if i < len(v.keys)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString("}")
	default:
		b.WriteString("null")
	}
}

func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	jsonEscaper.WriteString(b, s)
	b.WriteByte('"')
}
