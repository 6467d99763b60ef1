package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestScanTokens(t *testing.T) {
	doc := "# top comment\nsrv:\n    host = localhost\n    ports = [80, 443]"
	want := []semToken{
		{0, 0, 13, tokComment},
		{1, 0, 3, tokKeyword},
		{1, 3, 1, tokOperator},
		{2, 4, 4, tokProperty},
		{2, 9, 1, tokOperator},
		{2, 11, 9, tokString},
		{3, 4, 5, tokProperty},
		{3, 10, 1, tokOperator},
		{3, 12, 1, tokOperator},
		{3, 13, 2, tokNumber},
		{3, 17, 3, tokNumber},
		{3, 20, 1, tokOperator},
	}
	got := scanTokens(doc)
	if d := cmp.Diff(want, got, cmp.AllowUnexported(semToken{})); d != "" {
		t.Errorf("scanTokens: (-want +got)\n%s", d)
	}
}

func TestScanTokensTabs(t *testing.T) {
	// Columns count raw characters, a tab is one.
	got := scanTokens("srv:\n\thost = x")
	want := []semToken{
		{0, 0, 3, tokKeyword},
		{0, 3, 1, tokOperator},
		{1, 1, 4, tokProperty},
		{1, 6, 1, tokOperator},
		{1, 8, 1, tokString},
	}
	if d := cmp.Diff(want, got, cmp.AllowUnexported(semToken{})); d != "" {
		t.Errorf("scanTokens: (-want +got)\n%s", d)
	}
}

func TestEncodeTokens(t *testing.T) {
	toks := []semToken{
		{0, 0, 3, tokKeyword},
		{0, 3, 1, tokOperator},
		{2, 4, 4, tokProperty},
	}
	want := []uint32{
		0, 0, 3, tokKeyword, 0,
		0, 3, 1, tokOperator, 0,
		2, 4, 4, tokProperty, 0,
	}
	if d := cmp.Diff(want, encodeTokens(toks)); d != "" {
		t.Errorf("encodeTokens: (-want +got)\n%s", d)
	}
}

func TestKeyAtLine(t *testing.T) {
	doc := "top = 1\na:\n    b:\n        k = v\n    k2 = x\n"
	sts := []struct {
		num       int
		key       string
		isSection bool
		ok        bool
	}{
		{num: 1, key: "top", ok: true},
		{num: 2, key: "a", isSection: true, ok: true},
		{num: 3, key: "a.b", isSection: true, ok: true},
		{num: 4, key: "a.b.k", ok: true},
		{num: 5, key: "a.k2", ok: true},
		{num: 6},
		{num: 99},
	}
	for i := range sts {
		st := &sts[i]
		key, isSection, ok := keyAtLine(doc, st.num)
		if key != st.key || isSection != st.isSection || ok != st.ok {
			t.Errorf("line %d: got (%q, %v, %v), want (%q, %v, %v)",
				st.num, key, isSection, ok, st.key, st.isSection, st.ok)
		}
	}
}

func TestLineColToOffset(t *testing.T) {
	content := "ab\ncd"
	sts := []struct {
		line, col, want int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{1, 0, 3},
		{1, 1, 4},
		{5, 0, 5},
	}
	for i := range sts {
		st := &sts[i]
		if got := lineColToOffset(content, st.line, st.col); got != st.want {
			t.Errorf("(%d, %d): got %d, want %d", st.line, st.col, got, st.want)
		}
	}
}

func newTestServer() *Server {
	return &Server{docs: &documentStore{docs: make(map[string]*document)}}
}

func TestValidateDocument(t *testing.T) {
	s := newTestServer()

	s.docs.put("file:///ok.sconf", "k = v\n", 1)
	if diags := s.validateDocument(s.docs.get("file:///ok.sconf")); len(diags) != 0 {
		t.Errorf("clean document: got %d diagnostics", len(diags))
	}

	s.docs.put("file:///bad.sconf", "k = v\n  bad = x\n", 1)
	diags := s.validateDocument(s.docs.get("file:///bad.sconf"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := &diags[0]
	if d.Source != "sconf" || d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("got source %q severity %v", d.Source, d.Severity)
	}
	if d.Range.Start.Line != 1 || d.Range.End.Line != 2 {
		t.Errorf("got range %v, want line 1", d.Range)
	}
}

func TestFormatting(t *testing.T) {
	s := newTestServer()
	uri := "file:///f.sconf"
	params := &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
	}

	s.docs.put(uri, "a = 1\nb:\n    c = 2", 1)
	edits, err := s.Formatting(t.Context(), params)
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	if edits[0].NewText != "a = 1\nb:\n    c = 2\n" {
		t.Errorf("got %q", edits[0].NewText)
	}
	if edits[0].Range.End.Line != 3 {
		t.Errorf("got end line %d, want 3", edits[0].Range.End.Line)
	}

	s.docs.put(uri, "a = 1\nb:\n    c = 2\n", 2)
	edits, err = s.Formatting(t.Context(), params)
	if err != nil {
		t.Fatal(err)
	}
	if edits == nil || len(edits) != 0 {
		t.Errorf("canonical document: got %v, want empty edits", edits)
	}

	s.docs.put(uri, "  broken = x\n", 3)
	edits, err = s.Formatting(t.Context(), params)
	if err != nil || edits != nil {
		t.Errorf("broken document: got %v, %v", edits, err)
	}
}

func TestDidChange(t *testing.T) {
	s := newTestServer()
	uri := "file:///c.sconf"
	s.docs.put(uri, "key = old\n", 1)

	params := &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{
				Range: protocol.Range{
					Start: protocol.Position{Line: 0, Character: 6},
					End:   protocol.Position{Line: 0, Character: 9},
				},
				Text: "new",
			},
		},
	}
	if err := s.DidChange(t.Context(), params); err != nil {
		t.Fatal(err)
	}
	if got := s.docs.get(uri).content; got != "key = new\n" {
		t.Errorf("got %q", got)
	}

	params.ContentChanges = []protocol.TextDocumentContentChangeEvent{
		{Text: "swapped = 1\n"},
	}
	if err := s.DidChange(t.Context(), params); err != nil {
		t.Fatal(err)
	}
	if got := s.docs.get(uri).content; got != "swapped = 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestHover(t *testing.T) {
	s := newTestServer()
	uri := "file:///h.sconf"
	s.docs.put(uri, "srv:\n    host = localhost\n", 1)

	hov, err := s.Hover(t.Context(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
			Position:     protocol.Position{Line: 1, Character: 4},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if hov == nil {
		t.Fatal("no hover")
	}
	if want := "`srv.host = localhost`"; hov.Contents.Value != want {
		t.Errorf("got %q, want %q", hov.Contents.Value, want)
	}

	hov, err = s.Hover(t.Context(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
			Position:     protocol.Position{Line: 0, Character: 0},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := "section `srv`"; hov == nil || hov.Contents.Value != want {
		t.Errorf("got %v, want %q", hov, want)
	}
}
