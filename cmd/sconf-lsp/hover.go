package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sconf-format/go-sconf/token"
	"go.lsp.dev/protocol"
)

// Hover reports the full dotted path of the section or entry under the
// cursor, with the value when the document parses.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	key, isSection, ok := keyAtLine(doc.content, int(params.Position.Line)+1)
	if !ok {
		return nil, nil
	}

	var text string
	switch {
	case isSection:
		text = fmt.Sprintf("section `%s`", key)
	default:
		text = fmt.Sprintf("`%s`", key)
		if doc.st != nil {
			if v, found := doc.st.Get(key); found {
				text = fmt.Sprintf("`%s%s%s`", key, token.AssignMark, v.String())
			}
		}
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// keyAtLine resolves the dotted path of the section or entry on the
// 1-based line num, keeping the same section stack the parser keeps.
func keyAtLine(content string, num int) (key string, isSection bool, ok bool) {
	lines, err := token.Scan([]byte(content))
	if err != nil {
		return "", false, false
	}

	var section []string
	indent := 0
	for i := range lines {
		ln := &lines[i]
		switch ln.Type {
		case token.Section:
			if ln.Indent < indent {
				section = dropTo(section, ln.Indent)
			}
			section = append(section, ln.Name)
			indent = ln.Indent
			if ln.Num == num {
				return strings.Join(section, token.KeySep), true, true
			}
		case token.Entry:
			if ln.Indent < indent {
				section = dropTo(section, ln.Indent)
			}
			indent = ln.Indent
			if ln.Num == num {
				key = ln.Key
				if len(section) > 0 {
					key = strings.Join(section, token.KeySep) + token.KeySep + key
				}
				return key, false, true
			}
		}
	}
	return "", false, false
}

func dropTo(section []string, indent int) []string {
	n := indent / token.IndentSize
	if n > len(section) {
		n = len(section)
	}
	return section[:n]
}
