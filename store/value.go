package store

import (
	"strings"

	"github.com/sconf-format/go-sconf/token"
)

type Kind int

const (
	ScalarKind Kind = iota
	ListKind
)

func (k Kind) String() string {
	return map[Kind]string{
		ScalarKind: "Scalar",
		ListKind:   "List",
	}[k]
}

// Value is one configuration value: a scalar kept in its literal text
// form, or a list of such scalars. Typed interpretation happens at read
// time, never here.
type Value struct {
	Kind  Kind
	Str   string   // scalar text, set for ScalarKind
	Elems []string // list elements, set for ListKind
}

func Scalar(s string) Value {
	return Value{Kind: ScalarKind, Str: s}
}

func List(elems ...string) Value {
	return Value{Kind: ListKind, Elems: elems}
}

// ParseValue classifies raw value text. Text enclosed in the list marks
// becomes a list: the outer marks are stripped, nothing inside is, and
// elements are split on the literal separator without re-trimming.
// Everything else is a scalar, verbatim.
func ParseValue(text string) Value {
	if !strings.HasPrefix(text, token.ListOpen) || !strings.HasSuffix(text, token.ListClose) {
		return Scalar(text)
	}
	inner := text[len(token.ListOpen) : len(text)-len(token.ListClose)]
	if inner == "" {
		return List()
	}
	return List(strings.Split(inner, token.ListSep)...)
}

func (v Value) IsList() bool {
	return v.Kind == ListKind
}

// String renders the value in entry syntax: the scalar text itself, or
// the bracketed separator-joined list.
func (v Value) String() string {
	if v.Kind != ListKind {
		return v.Str
	}
	return token.ListOpen + strings.Join(v.Elems, token.ListSep) + token.ListClose
}

func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind != ListKind {
		return v.Str == o.Str
	}
	if len(v.Elems) != len(o.Elems) {
		return false
	}
	for i, e := range v.Elems {
		if o.Elems[i] != e {
			return false
		}
	}
	return true
}
