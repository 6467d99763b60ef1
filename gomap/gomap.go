package gomap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/sconf-format/go-sconf/store"
	"github.com/sconf-format/go-sconf/token"
)

// FromStore nests the flat dotted keys of st into an ordered mapping.
// Scalars stay strings, lists become string slices. A key that is both
// an entry and a section prefix has no nested form and is an error.
func FromStore(st *store.Store) (yaml.MapSlice, error) {
	root := newONode()
	for key, val := range st.All() {
		segs := strings.Split(key, token.KeySep)
		n := root
		for _, seg := range segs[:len(segs)-1] {
			child, err := n.child(seg)
			if err != nil {
				return nil, err
			}
			n = child
		}
		if err := n.leaf(segs[len(segs)-1], val); err != nil {
			return nil, err
		}
	}
	return root.mapSlice(), nil
}

// ToStore flattens a nested ordered mapping, as produced by decoding
// YAML or JSON with ordered maps, into a store. Mapping keys become
// dotted paths, nested mappings register their section paths, and
// sequences of scalars become lists. Sequences holding nested
// collections have no sconf form and are errors, as are mapping keys
// containing the path separator.
func ToStore(v any) (*store.Store, error) {
	st := store.New()
	switch ms := v.(type) {
	case nil:
		return st, nil
	case yaml.MapSlice:
		if err := flatten(st, nil, ms); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: top level is %T, not a mapping", store.ErrFormat, v)
	}
	st.MarkClean()
	return st, nil
}

func flatten(st *store.Store, path []string, ms yaml.MapSlice) error {
	for _, item := range ms {
		key, err := scalarText(item.Key)
		if err != nil {
			return fmt.Errorf("%w: mapping key %v", store.ErrFormat, item.Key)
		}
		if strings.Contains(key, token.KeySep) {
			return fmt.Errorf("%w: mapping key %q contains %q", store.ErrFormat, key, token.KeySep)
		}
		sub := append(path, key)
		switch val := item.Value.(type) {
		case yaml.MapSlice:
			st.Sections().Register(strings.Join(sub, token.KeySep), (len(sub)-1)*token.IndentSize)
			if err := flatten(st, sub, val); err != nil {
				return err
			}
		case []any:
			elems := make([]string, len(val))
			for i, e := range val {
				s, err := scalarText(e)
				if err != nil {
					return fmt.Errorf("%w: element %d of %q is not a scalar", store.ErrFormat, i, strings.Join(sub, token.KeySep))
				}
				elems[i] = s
			}
			st.Put(strings.Join(sub, token.KeySep), store.List(elems...))
		default:
			s, err := scalarText(val)
			if err != nil {
				return fmt.Errorf("%w: value of %q: %v", store.ErrFormat, strings.Join(sub, token.KeySep), err)
			}
			st.Put(strings.Join(sub, token.KeySep), store.Scalar(s))
		}
	}
	return nil
}

// scalarText renders a decoded scalar in the literal form an sconf
// entry would carry.
func scalarText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case nil:
		return "", fmt.Errorf("null has no sconf form")
	case yaml.MapSlice, map[string]any, map[any]any, []any:
		return "", fmt.Errorf("nested collection")
	default:
		return fmt.Sprintf("%v", t), nil
	}
}

// onode is a mutable ordered mapping used while nesting keys.
type onode struct {
	order    []string
	children map[string]*onode
	leaves   map[string]any
}

func newONode() *onode {
	return &onode{
		children: map[string]*onode{},
		leaves:   map[string]any{},
	}
}

func (n *onode) child(name string) (*onode, error) {
	if c, ok := n.children[name]; ok {
		return c, nil
	}
	if _, ok := n.leaves[name]; ok {
		return nil, fmt.Errorf("%w: %q is both an entry and a section", store.ErrFormat, name)
	}
	c := newONode()
	n.children[name] = c
	n.order = append(n.order, name)
	return c, nil
}

func (n *onode) leaf(name string, v store.Value) error {
	if _, ok := n.children[name]; ok {
		return fmt.Errorf("%w: %q is both an entry and a section", store.ErrFormat, name)
	}
	if _, ok := n.leaves[name]; !ok {
		n.order = append(n.order, name)
	}
	if v.IsList() {
		// yaml handles nil slices as empty sequences either way, but
		// keep the element type concrete
		elems := make([]string, len(v.Elems))
		copy(elems, v.Elems)
		n.leaves[name] = elems
	} else {
		n.leaves[name] = v.Str
	}
	return nil
}

func (n *onode) mapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(n.order))
	for _, name := range n.order {
		if c, ok := n.children[name]; ok {
			ms = append(ms, yaml.MapItem{Key: name, Value: c.mapSlice()})
			continue
		}
		ms = append(ms, yaml.MapItem{Key: name, Value: n.leaves[name]})
	}
	return ms
}
