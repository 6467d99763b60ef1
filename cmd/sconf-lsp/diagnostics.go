package main

import (
	"context"
	"errors"
	"sync"

	"github.com/sconf-format/go-sconf/debug"
	"github.com/sconf-format/go-sconf/parse"
	"github.com/sconf-format/go-sconf/store"
	"github.com/sconf-format/go-sconf/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is one open editor buffer. st is nil while the buffer does
// not parse; content is kept either way so diagnostics and semantic
// tokens can work from the raw text.
type document struct {
	uri     string
	content string
	version int32
	st      *store.Store
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	st, err := parse.Parse([]byte(content))
	if err != nil {
		st = nil
	}
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		st:      st,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)
	if debug.LSP() {
		debug.Logf("%d diagnostics for %s\n", len(diagnostics), uri)
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.st == nil {
		_, err := parse.Parse([]byte(doc.content))
		if err != nil {
			diagnostic := protocol.Diagnostic{
				Range: protocol.Range{
					Start: protocol.Position{Line: 0, Character: 0},
					End:   protocol.Position{Line: 0, Character: 0},
				},
				Severity: protocol.DiagnosticSeverityError,
				Message:  err.Error(),
				Source:   "sconf",
			}

			// Scan errors carry the 1-based input line; protocol
			// positions are 0-based. Mark the whole line.
			var tokErr *token.Error
			if errors.As(err, &tokErr) && tokErr.Line > 0 {
				line := uint32(tokErr.Line - 1)
				diagnostic.Range = protocol.Range{
					Start: protocol.Position{Line: line, Character: 0},
					End:   protocol.Position{Line: line + 1, Character: 0},
				}
			}

			diagnostics = append(diagnostics, diagnostic)
		}
	}

	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		// A zero range means full document replacement.
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
			endOffset := lineColToOffset(content, int(rangeVal.End.Line), int(rangeVal.End.Character))
			if startOffset <= endOffset && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset maps a line/character position to a rune offset in
// content. Positions past the end clamp to the end.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	runes := []rune(content)
	for i, r := range runes {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(runes)
}
