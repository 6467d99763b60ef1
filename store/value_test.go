package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type valueTest struct {
	in   string
	want Value
}

func TestParseValue(t *testing.T) {
	vts := []valueTest{
		{
			in:   "hello world",
			want: Scalar("hello world"),
		},
		{
			in:   "[a, b, c]",
			want: List("a", "b", "c"),
		},
		{
			in:   "[]",
			want: List(),
		},
		{
			in:   "[only]",
			want: List("only"),
		},
		{
			// elements are not re-trimmed
			in:   "[a,  b]",
			want: List("a", " b"),
		},
		{
			// inner marks survive, only the outer pair is stripped
			in:   "[[a, b]]",
			want: List("[a", "b]"),
		},
		{
			// no closing mark: plain scalar
			in:   "[a, b",
			want: Scalar("[a, b"),
		},
		{
			in:   "3.14",
			want: Scalar("3.14"),
		},
	}
	for i := range vts {
		vt := &vts[i]
		got := ParseValue(vt.in)
		if diff := cmp.Diff(vt.want, got); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", vt.in, diff)
		}
	}
}

func TestValueString(t *testing.T) {
	vts := []struct {
		in   Value
		want string
	}{
		{in: Scalar("a"), want: "a"},
		{in: List("a", "b"), want: "[a, b]"},
		{in: List(), want: "[]"},
		{in: List(""), want: "[]"}, // indistinguishable from the empty list in text
	}
	for i := range vts {
		vt := &vts[i]
		if got := vt.in.String(); got != vt.want {
			t.Errorf("%#v: got %q, want %q", vt.in, got, vt.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !Scalar("x").Equal(Scalar("x")) {
		t.Error("equal scalars differ")
	}
	if Scalar("x").Equal(List("x")) {
		t.Error("scalar equals list")
	}
	if List("a", "b").Equal(List("a")) {
		t.Error("lists of different length equal")
	}
	if !List().Equal(List()) {
		t.Error("empty lists differ")
	}
}
