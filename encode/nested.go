package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/sconf-format/go-sconf/format"
	"github.com/sconf-format/go-sconf/gomap"
	"github.com/sconf-format/go-sconf/store"
)

// encodeNested writes the store's nested form as YAML or JSON. Colors
// do not apply here.
func encodeNested(st *store.Store, w io.Writer, es *EncState) error {
	ms, err := gomap.FromStore(st)
	if err != nil {
		return err
	}
	var d []byte
	if es.format == format.JSONFormat {
		d, err = yaml.MarshalWithOptions(ms, yaml.JSON())
	} else {
		d, err = yaml.Marshal(ms)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrFormat, err)
	}
	return writeString(w, string(d))
}
