// Package format names the textual formats go-sconf can read and write.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
//	// map a file name to a format
//	f, ok := format.ForPath("service.sconf")
//
// Format implements encoding.TextMarshaler and TextUnmarshaler so it can
// be used directly as a command line option value.
//
// # Related Packages
//
//   - github.com/sconf-format/go-sconf/parse - parse text to a store
//   - github.com/sconf-format/go-sconf/encode - encode a store to text
package format
