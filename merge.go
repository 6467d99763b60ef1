package sconf

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/sconf-format/go-sconf/debug"
	"github.com/sconf-format/go-sconf/gomap"
	"github.com/sconf-format/go-sconf/store"
)

// MergePatch applies an RFC 7386 JSON merge patch to the configuration
// and returns the patched result as a new Config. The patch document
// may be JSON or YAML: null values delete keys, objects merge
// recursively, everything else replaces. Surviving entries keep their
// order; keys the patch adds follow them. The result counts as
// changed.
func MergePatch(c *Config, patch []byte) (*Config, error) {
	ms, err := gomap.FromStore(c.st)
	if err != nil {
		return nil, err
	}
	docJSON, err := yaml.MarshalWithOptions(ms, yaml.JSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrFormat, err)
	}
	patchJSON, err := toJSON(patch)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(merged, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrFormat, err)
	}
	mergedSt, err := gomap.ToStore(v)
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("merge patch produced %d entries\n", mergedSt.Len())
	}
	return &Config{st: reorder(c.st, mergedSt)}, nil
}

// reorder rebuilds merged so that keys surviving from orig keep their
// original relative order. The patch machinery round-trips through
// JSON objects and loses it otherwise.
func reorder(orig, merged *store.Store) *store.Store {
	res := store.New()
	for _, p := range merged.Sections().Paths() {
		ind, _ := merged.Sections().Indent(p)
		res.Sections().Register(p, ind)
	}
	for key := range orig.All() {
		if mv, ok := merged.Get(key); ok {
			res.Put(key, mv)
		}
	}
	for key, mv := range merged.All() {
		if _, ok := res.Get(key); !ok {
			res.Put(key, mv)
		}
	}
	return res
}

// toJSON normalizes a patch document, which may be YAML or JSON, to
// JSON bytes.
func toJSON(d []byte) ([]byte, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrFormat, err)
	}
	return yaml.MarshalWithOptions(v, yaml.JSON())
}
