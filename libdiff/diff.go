package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sconf-format/go-sconf/debug"
	"github.com/sconf-format/go-sconf/store"
	"github.com/sconf-format/go-sconf/token"
)

// Op classifies a single change.
type Op int

const (
	Add Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "unknown"
}

// Change is one difference between two stores. From is set for Delete
// and Replace, To for Add and Replace.
type Change struct {
	Op   Op
	Key  string
	From store.Value
	To   store.Value
}

// String renders the change as one line, "+ key = v" for additions,
// "- key = v" for deletions and "~ key = old -> new" for replacements.
func (c *Change) String() string {
	switch c.Op {
	case Add:
		return "+ " + c.Key + token.AssignMark + c.To.String()
	case Delete:
		return "- " + c.Key + token.AssignMark + c.From.String()
	default:
		return "~ " + c.Key + token.AssignMark + c.From.String() + " -> " + c.To.String()
	}
}

// Diff computes the changes that turn from into to. Keys are diffed as
// sequences, so a key that only moved position reports nothing unless
// its value also changed.
func Diff(from, to *store.Store) []Change {
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(keyMap, runeMap, from.Keys())
	toRunes := mapKeysTo(keyMap, runeMap, to.Keys())
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	dels := map[string]bool{}
	ins := map[string]bool{}
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			switch diff.Type {
			case diffpatch.DiffDelete:
				dels[runeMap[r]] = true
			case diffpatch.DiffInsert:
				ins[runeMap[r]] = true
			}
		}
	}

	var res []Change
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			key := runeMap[r]
			switch diff.Type {
			case diffpatch.DiffDelete:
				if ins[key] {
					// moved key, handled at its insert position
					continue
				}
				fv, _ := from.Get(key)
				res = append(res, Change{Op: Delete, Key: key, From: fv})
			case diffpatch.DiffInsert:
				tv, _ := to.Get(key)
				if dels[key] {
					fv, _ := from.Get(key)
					if fv.Equal(tv) {
						continue
					}
					res = append(res, Change{Op: Replace, Key: key, From: fv, To: tv})
					continue
				}
				res = append(res, Change{Op: Add, Key: key, To: tv})
			case diffpatch.DiffEqual:
				fv, _ := from.Get(key)
				tv, _ := to.Get(key)
				if !fv.Equal(tv) {
					res = append(res, Change{Op: Replace, Key: key, From: fv, To: tv})
				}
			}
		}
	}
	if debug.Diff() {
		debug.Logf("diff produced %d changes\n", len(res))
	}
	return res
}

// DiffSection diffs only the entries at or under the dotted section
// path.
func DiffSection(from, to *store.Store, path string) []Change {
	return Diff(filter(from, path), filter(to, path))
}

// Equal reports whether from and to hold the same keys in the same
// order with equal values. The store hash serves as a fast reject.
func Equal(from, to *store.Store) bool {
	if from.Hash() != to.Hash() {
		return false
	}
	if from.Len() != to.Len() {
		return false
	}
	fk, tk := from.Keys(), to.Keys()
	for i := range fk {
		if fk[i] != tk[i] {
			return false
		}
		fv, _ := from.Get(fk[i])
		tv, _ := to.Get(tk[i])
		if !fv.Equal(tv) {
			return false
		}
	}
	return true
}

func mapKeysTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}

func filter(st *store.Store, path string) *store.Store {
	out := store.New()
	prefix := path + token.KeySep
	for key, val := range st.All() {
		if key == path || strings.HasPrefix(key, prefix) {
			out.Put(key, val)
		}
	}
	return out
}
