// Package token scans sconf text into classified lines and defines the
// marks of the surface syntax.
package token

import (
	"errors"
	"fmt"
)

// Surface syntax of the sconf format. Sections and entries are cut from
// the same cloth everywhere in this module, so the marks live here.
const (
	// IndentSize is the number of spaces per nesting level. Indents
	// that are not a multiple of it are format errors.
	IndentSize = 4

	// AssignMark splits an entry into key and value: {key} = {value}.
	AssignMark = " = "

	// SectionMark ends a section header line.
	SectionMark = ":"

	// CommentMark starts a comment line.
	CommentMark = "#"

	// KeySep joins section names into dotted key paths.
	KeySep = "."

	ListOpen  = "["
	ListClose = "]"
	ListSep   = ", "
)

// MinEntryLen is the shortest line that can hold an entry: a one rune
// key, the assign mark and a one rune value. Shorter non-header lines
// are skipped.
const MinEntryLen = len(AssignMark) + 2

// ErrFormat is the sentinel wrapped by every malformed-input error in
// this module.
var ErrFormat = errors.New("invalid sconf")

type Type int

const (
	Blank Type = iota
	Comment
	Section
	Entry
)

func (t Type) String() string {
	return map[Type]string{
		Blank:   "Blank",
		Comment: "Comment",
		Section: "Section",
		Entry:   "Entry",
	}[t]
}

// Line is one scanned input line. Which fields are meaningful depends
// on Type: Name for Section, Key and Value for Entry.
type Line struct {
	Type   Type
	Num    int // 1-based physical line number
	Indent int // leading spaces after tab expansion
	Name   string
	Key    string
	Value  string
	Raw    string // the line after tab expansion
}

func (l *Line) Info() string {
	return fmt.Sprintf("%s line=%d indent=%d", l.Type, l.Num, l.Indent)
}

// Error is a scan or parse error bound to the input line it came from.
type Error struct {
	Err  error
	Line int
}

func NewError(e error, line int) *Error {
	return &Error{Err: e, Line: line}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line=%d)", e.Err.Error(), e.Line)
}

func IndentErr(line int) error {
	return NewError(fmt.Errorf("%w: indent must be a multiple of %d", ErrFormat, IndentSize), line)
}

func StatementErr(stmt string, line int) error {
	return NewError(fmt.Errorf("%w: not a statement: '%s'", ErrFormat, stmt), line)
}
