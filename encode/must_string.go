package encode

import (
	"bytes"
	"strings"

	"github.com/sconf-format/go-sconf/store"
)

// MustString encodes st as sconf text, panicking on error. Meant for
// tests and debug output where the store is known to be encodable.
func MustString(st *store.Store) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(st, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
