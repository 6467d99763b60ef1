package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/sconf-format/go-sconf/format"
	"github.com/sconf-format/go-sconf/store"
	"github.com/sconf-format/go-sconf/token"
)

type EncState struct {
	format format.Format

	Color func(ColorAttr, string) string
}

// Encode writes st to w, by default as sconf text. Keys are grouped by
// their exact section path: a group sits where its first key sits in
// store order, keys inside it keep store order, and keys without a
// section stay exactly in place. Input whose sections were already
// contiguous round-trips in its original order.
//
// Emitting a header needs the section's indent from the index; a dotted
// key whose section was never registered is a format error.
func Encode(st *store.Store, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: format.SconfFormat}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat, format.JSONFormat:
		return encodeNested(st, w, es)
	}
	return encodeSconf(st, w, es)
}

type group struct {
	path string // exact dotted section path, "" for none
	keys []string
}

func encodeSconf(st *store.Store, w io.Writer, es *EncState) error {
	var groups []*group
	byPath := map[string]*group{}
	for key := range st.All() {
		i := strings.LastIndex(key, token.KeySep)
		if i < 0 {
			// sectionless keys are never regrouped
			groups = append(groups, &group{keys: []string{key}})
			continue
		}
		path := key[:i]
		g, ok := byPath[path]
		if !ok {
			g = &group{path: path}
			byPath[path] = g
			groups = append(groups, g)
		}
		g.keys = append(g.keys, key)
	}

	emitted := map[string]bool{}
	for _, g := range groups {
		if g.path != "" {
			if err := writeHeaders(w, st, g.path, emitted, es); err != nil {
				return err
			}
		}
		for _, key := range g.keys {
			if err := writeEntry(w, st, g.path, key, es); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeHeaders emits the header lines of every not yet emitted section
// on the dotted path, outermost first.
func writeHeaders(w io.Writer, st *store.Store, path string, emitted map[string]bool, es *EncState) error {
	segs := strings.Split(path, token.KeySep)
	for i := range segs {
		prefix := strings.Join(segs[:i+1], token.KeySep)
		if emitted[prefix] {
			continue
		}
		indent, ok := st.Sections().Indent(prefix)
		if !ok {
			return fmt.Errorf("%w: no indent for configuration section %q", store.ErrFormat, segs[i])
		}
		line := strings.Repeat(" ", indent) +
			es.color(SectionColor, segs[i]) +
			es.color(SepColor, token.SectionMark) + "\n"
		if err := writeString(w, line); err != nil {
			return err
		}
		emitted[prefix] = true
	}
	return nil
}

func writeEntry(w io.Writer, st *store.Store, path, key string, es *EncState) error {
	name := key
	depth := 0
	if path != "" {
		name = key[len(path)+len(token.KeySep):]
		depth = strings.Count(path, token.KeySep) + 1
	}
	if err := writeString(w, strings.Repeat(" ", depth*token.IndentSize)); err != nil {
		return err
	}
	if err := writeString(w, es.color(KeyColor, name)); err != nil {
		return err
	}
	if err := writeString(w, es.color(SepColor, token.AssignMark)); err != nil {
		return err
	}
	v, _ := st.Get(key)
	if err := writeValue(w, v, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeValue(w io.Writer, v store.Value, es *EncState) error {
	if !v.IsList() {
		return writeString(w, es.color(ValueColor, v.Str))
	}
	if err := writeString(w, es.color(SepColor, token.ListOpen)); err != nil {
		return err
	}
	for i, e := range v.Elems {
		if i > 0 {
			if err := writeString(w, es.color(SepColor, token.ListSep)); err != nil {
				return err
			}
		}
		if err := writeString(w, es.color(ValueColor, e)); err != nil {
			return err
		}
	}
	return writeString(w, es.color(SepColor, token.ListClose))
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
