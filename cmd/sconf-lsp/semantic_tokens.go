package main

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sconf-format/go-sconf/token"
	"go.lsp.dev/protocol"
)

// tokenTypes is the legend announced in Initialize. Index order is the
// wire encoding.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

const (
	tokComment uint32 = iota
	tokKeyword
	tokString
	tokNumber
	tokOperator
	tokProperty
)

type semToken struct {
	line   uint32
	start  uint32
	length uint32
	typ    uint32
}

// scanTokens classifies every line the way the scanner does, but works
// on the raw editor text so columns line up even before tab expansion.
// It is best effort: it still produces tokens for documents that do
// not parse.
func scanTokens(content string) []semToken {
	var toks []semToken
	for num, raw := range strings.Split(content, "\n") {
		line := uint32(num)
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lead := uint32(len(raw) - len(strings.TrimLeft(raw, " \t")))

		if strings.HasPrefix(trimmed, token.CommentMark) {
			toks = append(toks, semToken{line, lead, runeLen(trimmed), tokComment})
			continue
		}
		if runeLen(strings.ReplaceAll(trimmed, " ", "")) < 2 {
			continue
		}
		if strings.HasSuffix(trimmed, token.SectionMark) {
			name := strings.TrimSuffix(trimmed, token.SectionMark)
			if name != "" {
				toks = append(toks, semToken{line, lead, runeLen(name), tokKeyword})
			}
			toks = append(toks, semToken{line, lead + runeLen(name), 1, tokOperator})
			continue
		}

		key, val, found := strings.Cut(trimmed, token.AssignMark)
		if !found {
			continue
		}
		if kTrim := strings.TrimRight(key, " "); kTrim != "" {
			toks = append(toks, semToken{line, lead, runeLen(kTrim), tokProperty})
		}
		toks = append(toks, semToken{line, lead + runeLen(key) + 1, 1, tokOperator})

		vCol := lead + runeLen(key) + runeLen(token.AssignMark)
		vTrim := strings.TrimLeft(val, " ")
		vCol += runeLen(val) - runeLen(vTrim)
		vTrim = strings.TrimRight(vTrim, " ")
		if vTrim != "" {
			toks = append(toks, valueTokens(line, vCol, vTrim)...)
		}
	}
	return toks
}

func valueTokens(line, col uint32, val string) []semToken {
	if strings.HasPrefix(val, token.ListOpen) && strings.HasSuffix(val, token.ListClose) {
		toks := []semToken{{line, col, 1, tokOperator}}
		inner := val[1 : len(val)-1]
		at := col + 1
		for i, el := range strings.Split(inner, token.ListSep) {
			if i > 0 {
				at += runeLen(token.ListSep)
			}
			if el != "" {
				toks = append(toks, semToken{line, at, runeLen(el), scalarType(el)})
			}
			at += runeLen(el)
		}
		return append(toks, semToken{line, col + runeLen(val) - 1, 1, tokOperator})
	}
	return []semToken{{line, col, runeLen(val), scalarType(val)}}
}

func scalarType(s string) uint32 {
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return tokNumber
	}
	if _, err := strconv.ParseBool(s); err == nil {
		return tokKeyword
	}
	return tokString
}

func runeLen(s string) uint32 {
	return uint32(utf8.RuneCountInString(s))
}

// encodeTokens sorts tokens by position and emits the LSP delta
// encoding: five uint32 per token, no modifier bits.
func encodeTokens(toks []semToken) []uint32 {
	sort.Slice(toks, func(i, j int) bool {
		if toks[i].line != toks[j].line {
			return toks[i].line < toks[j].line
		}
		return toks[i].start < toks[j].start
	})

	data := []uint32{}
	var prevLine, prevStart uint32
	for _, t := range toks {
		deltaLine := t.line - prevLine
		deltaStart := t.start
		if deltaLine == 0 {
			deltaStart = t.start - prevStart
		}
		data = append(data, deltaLine, deltaStart, t.length, t.typ, 0)
		prevLine = t.line
		prevStart = t.start
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeTokens(scanTokens(doc.content))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	var ranged []semToken
	for _, t := range scanTokens(doc.content) {
		if t.line < params.Range.Start.Line || t.line > params.Range.End.Line {
			continue
		}
		ranged = append(ranged, t)
	}
	return &protocol.SemanticTokens{Data: encodeTokens(ranged)}, nil
}
