package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/sconf-format/go-sconf/gomap"
	"github.com/sconf-format/go-sconf/store"
)

// parseNested ingests YAML or JSON documents. JSON parses as YAML, so
// one decoder serves both; ordered maps keep the document's key order.
func parseNested(d []byte) (*store.Store, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrFormat, err)
	}
	return gomap.ToStore(v)
}
