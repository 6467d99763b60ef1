package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sconf-format/go-sconf/encode"
	"github.com/sconf-format/go-sconf/store"
)

type JSON any

// Sconf wraps a store so Logf renders it as configuration text.
type Sconf struct{ *store.Store }

func (s Sconf) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(s.Store, buf); err != nil {
		return fmt.Sprintf("[raw store] %v", s.Store.Keys())
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *store.Store:
			args[i] = Sconf{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
