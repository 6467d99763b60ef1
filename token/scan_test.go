package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type scanTest struct {
	in   string
	want Line
}

func TestScanClassify(t *testing.T) {
	sts := []scanTest{
		{
			in:   "x = 1",
			want: Line{Type: Entry, Num: 1, Key: "x", Value: "1", Raw: "x = 1"},
		},
		{
			in:   "    y = [a, b]",
			want: Line{Type: Entry, Num: 1, Indent: 4, Key: "y", Value: "[a, b]", Raw: "    y = [a, b]"},
		},
		{
			in:   "server:",
			want: Line{Type: Section, Num: 1, Name: "server", Raw: "server:"},
		},
		{
			in:   "    sub: ",
			want: Line{Type: Section, Num: 1, Indent: 4, Name: "sub", Raw: "    sub: "},
		},
		{
			// the mark need not be the last raw character, only the
			// last meaningful one
			in:   "odd name :",
			want: Line{Type: Section, Num: 1, Name: "odd name ", Raw: "odd name :"},
		},
		{
			in:   "  # note",
			want: Line{Type: Comment, Num: 1, Raw: "  # note"},
		},
		{
			in:   "",
			want: Line{Type: Blank, Num: 1},
		},
		{
			in:   "   ",
			want: Line{Type: Blank, Num: 1, Raw: "   "},
		},
		{
			// below MinEntryLen, silently skipped
			in:   "ab",
			want: Line{Type: Blank, Num: 1, Raw: "ab"},
		},
		{
			// only the first assign mark splits
			in:   "k = v = w",
			want: Line{Type: Entry, Num: 1, Key: "k", Value: "v = w", Raw: "k = v = w"},
		},
		{
			in:   "k =    spaced   ",
			want: Line{Type: Entry, Num: 1, Key: "k", Value: "spaced", Raw: "k =    spaced   "},
		},
		{
			// tabs count as one indent unit each
			in:   "\tx = 1",
			want: Line{Type: Entry, Num: 1, Indent: 4, Key: "x", Value: "1", Raw: "    x = 1"},
		},
	}
	for i := range sts {
		st := &sts[i]
		lines, err := Scan([]byte(st.in))
		if err != nil {
			t.Errorf("# line\n%s\n# error %v", st.in, err)
			continue
		}
		if len(lines) != 1 {
			t.Errorf("%q: got %d lines, want 1", st.in, len(lines))
			continue
		}
		if diff := cmp.Diff(st.want, lines[0]); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", st.in, diff)
		}
	}
}

func TestScanErrs(t *testing.T) {
	sts := []struct {
		in     string
		errHas string
	}{
		{
			in:     "   x = 1",
			errHas: "multiple of 4",
		},
		{
			in:     "   deep:",
			errHas: "multiple of 4",
		},
		{
			in:     "a == b",
			errHas: "not a statement: 'a == b'",
		},
		{
			in:     "ok = 1\n        bad == 2",
			errHas: "line=2",
		},
	}
	for i := range sts {
		st := &sts[i]
		_, err := Scan([]byte(st.in))
		if err == nil {
			t.Errorf("# doc\n%s\n# no error", st.in)
			continue
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%q: error %v does not wrap ErrFormat", st.in, err)
		}
		if !strings.Contains(err.Error(), st.errHas) {
			t.Errorf("%q: error %q does not mention %q", st.in, err, st.errHas)
		}
		var te *Error
		if !errors.As(err, &te) {
			t.Errorf("%q: error %v carries no line", st.in, err)
		}
	}
}

func TestScanBreaks(t *testing.T) {
	for _, brk := range []string{"\n", "\r\n", "\r"} {
		in := strings.Join([]string{"a = 1", "b = 2", ""}, brk)
		lines, err := Scan([]byte(in))
		if err != nil {
			t.Fatalf("break %q: %v", brk, err)
		}
		var entries []string
		for _, ln := range lines {
			if ln.Type == Entry {
				entries = append(entries, ln.Key)
			}
		}
		if diff := cmp.Diff([]string{"a", "b"}, entries); diff != "" {
			t.Errorf("break %q mismatch (-want +got):\n%s", brk, diff)
		}
	}
}

func TestScanLineNumbersCountSkipped(t *testing.T) {
	in := "# header\n\nname = x\n   bad = 1\n"
	_, err := Scan([]byte(in))
	if err == nil {
		t.Fatal("no error")
	}
	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("error %v carries no line", err)
	}
	if te.Line != 4 {
		t.Errorf("got line %d, want 4", te.Line)
	}
}
