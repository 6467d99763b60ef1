package store

import "slices"

// Sections is the index of declared section paths. Each full dotted
// path maps to the indent its header was declared at, so two sections
// that share a name but not a parent never collide. Registration order
// is kept for deterministic output.
type Sections struct {
	order  []string
	indent map[string]int
}

// Register records path at the given indent. Re-registering keeps the
// original order position and overwrites the indent.
func (x *Sections) Register(path string, indent int) {
	if x.indent == nil {
		x.indent = map[string]int{}
	}
	if _, ok := x.indent[path]; !ok {
		x.order = append(x.order, path)
	}
	x.indent[path] = indent
}

// Indent returns the declared indent of path.
func (x *Sections) Indent(path string) (int, bool) {
	n, ok := x.indent[path]
	return n, ok
}

// Paths returns the registered section paths in registration order.
func (x *Sections) Paths() []string {
	return slices.Clone(x.order)
}

func (x *Sections) Len() int {
	return len(x.order)
}
