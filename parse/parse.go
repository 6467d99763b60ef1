// Package parse provides sconf parsing support.
package parse

import (
	"strings"

	"github.com/sconf-format/go-sconf/debug"
	"github.com/sconf-format/go-sconf/format"
	"github.com/sconf-format/go-sconf/store"
	"github.com/sconf-format/go-sconf/token"
)

// Parse reads d into a store. The input format defaults to sconf and
// can be switched with ParseYAML or ParseJSON. The returned store is
// clean: parsing never counts as a change.
func Parse(d []byte, opts ...ParseOption) (*store.Store, error) {
	pOpts := &parseOpts{format: format.SconfFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.YAMLFormat, format.JSONFormat:
		return parseNested(d)
	}
	return parseSconf(d)
}

func parseSconf(d []byte) (*store.Store, error) {
	lines, err := token.Scan(d)
	if err != nil {
		return nil, err
	}
	st := store.New()
	var section []string
	indent := 0
	for i := range lines {
		ln := &lines[i]
		switch ln.Type {
		case token.Section:
			if ln.Indent < indent {
				section = popTo(section, ln.Indent)
			}
			section = append(section, ln.Name)
			st.Sections().Register(strings.Join(section, token.KeySep), ln.Indent)
			indent = ln.Indent
		case token.Entry:
			if ln.Indent < indent {
				section = popTo(section, ln.Indent)
			}
			key := ln.Key
			if len(section) > 0 {
				key = strings.Join(section, token.KeySep) + token.KeySep + key
			}
			st.Put(key, store.ParseValue(ln.Value))
			indent = ln.Indent
		}
	}
	st.MarkClean()
	if debug.Parse() {
		debug.Logf("parsed %d entries, %d sections\n", st.Len(), st.Sections().Len())
	}
	return st, nil
}

// popTo drops section names until the path is as deep as indent allows,
// one level per IndentSize spaces.
func popTo(section []string, indent int) []string {
	n := indent / token.IndentSize
	if n > len(section) {
		n = len(section)
	}
	return section[:n]
}
