// Package parse parses sconf text into stores.
//
// # Usage
//
//	st, err := parse.Parse([]byte("server:\n    port = 8080\n"))
//	if err != nil {
//	    return err
//	}
//
//	// ingest YAML or JSON instead
//	st, err = parse.Parse(data, parse.ParseYAML())
//
// The parser is a single forward pass: section headers push onto the
// current section path, lower indents pop it, and entries land in the
// store under their full dotted key. Errors wrap token.ErrFormat and
// name the offending line.
//
// # Related Packages
//
//   - github.com/sconf-format/go-sconf/store - the parsed representation
//   - github.com/sconf-format/go-sconf/encode - encode a store to text
//   - github.com/sconf-format/go-sconf/token - line scanning
package parse
