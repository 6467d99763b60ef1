package main

import (
	"bytes"
	"context"

	"github.com/sconf-format/go-sconf/encode"
	"go.lsp.dev/protocol"
)

// Formatting rewrites the whole document as the canonical encoding of
// its store. Documents that do not parse are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.st == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := encode.Encode(doc.st, &buf); err != nil {
		return nil, nil
	}
	formatted := buf.String()

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
