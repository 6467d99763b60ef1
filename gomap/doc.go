// Package gomap converts between stores and nested Go values.
//
// # Usage
//
//	// nest a store into an ordered mapping
//	ms, err := gomap.FromStore(st)
//
//	// flatten a decoded YAML or JSON document into a store
//	var v any
//	err = yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap())
//	st, err := gomap.ToStore(v)
//
// The nested form is what the YAML and JSON codecs and the merge
// operations work on. Scalars cross the boundary as strings in both
// directions; typed interpretation stays with the accessors.
//
// # Related Packages
//
//   - github.com/sconf-format/go-sconf/store - the flat dotted-key form
//   - github.com/sconf-format/go-sconf/encode - YAML and JSON output
//   - github.com/sconf-format/go-sconf/parse - YAML and JSON input
package gomap
