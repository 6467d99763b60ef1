package token

import (
	"strings"
	"unicode/utf8"
)

var indentUnit = strings.Repeat(" ", IndentSize)

// Scan splits src into classified lines. Line breaks of any platform
// are accepted and every tab is expanded to IndentSize spaces before
// classification. Scan fails on the first malformed line: an indent
// that is not a multiple of IndentSize, or an entry-sized line without
// the assign mark.
func Scan(src []byte) ([]Line, error) {
	text := string(src)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		ln, err := scanLine(raw, i+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, nil
}

func scanLine(raw string, num int) (Line, error) {
	raw = strings.ReplaceAll(raw, "\t", indentUnit)
	spaceless := strings.ReplaceAll(raw, " ", "")

	ln := Line{Num: num, Raw: raw}
	switch {
	case strings.HasPrefix(spaceless, CommentMark):
		ln.Type = Comment
		return ln, nil
	case utf8.RuneCountInString(spaceless) < 2:
		ln.Type = Blank
		return ln, nil
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasSuffix(spaceless, SectionMark) {
		indent := readIndent(raw)
		if indent%IndentSize != 0 {
			return ln, IndentErr(num)
		}
		ln.Type = Section
		ln.Indent = indent
		ln.Name = trimmed[:len(trimmed)-len(SectionMark)]
		return ln, nil
	}

	// Too short to hold {key} = {value}. Skipped, not an error.
	if len(trimmed) < MinEntryLen {
		ln.Type = Blank
		return ln, nil
	}
	indent := readIndent(raw)
	if indent%IndentSize != 0 {
		return ln, IndentErr(num)
	}
	parts := strings.Split(trimmed, AssignMark)
	if len(parts) < 2 {
		return ln, StatementErr(trimmed, num)
	}
	ln.Type = Entry
	ln.Indent = indent
	ln.Key = parts[0]
	// A value may itself contain the assign mark; only the first one
	// splits.
	ln.Value = strings.TrimSpace(strings.Join(parts[1:], AssignMark))
	return ln, nil
}

func readIndent(s string) int {
	n := 0
	for _, c := range s {
		if c != ' ' {
			break
		}
		n++
	}
	return n
}
