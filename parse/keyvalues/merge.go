package keyvalues

// Merge combines roots into a new tree. The children of every root are
// placed under their accumulated path; when two containers meet at the
// same path their children are merged one level further down, otherwise
// the later node replaces the earlier one. Inputs are copied, never
// shared or modified, and the copies keep their recorded paths.
func Merge(roots ...Node) *Container {
	merged := New()
	for _, root := range roots {
		c, ok := root.(*Container)
		if !ok || c == nil {
			continue
		}
		mergeInto(merged, c)
	}
	return merged
}

func mergeInto(dst, src *Container) {
	for _, k := range src.keys {
		child := src.items[k]
		existing, ok := dst.items[k].(*Container)
		incoming, isContainer := child.(*Container)
		if ok && isContainer {
			mergeInto(existing, incoming)
			continue
		}
		dst.Set(k, clone(child))
	}
}
