// Package eval expands expressions embedded in configuration values.
//
// Values may contain $[...] expressions, evaluated with expr-lang
// against an environment of named values. A value consisting of a
// single .[expr] reference is replaced by the expression result
// itself, so references can produce lists as well as scalars.
//
// # Related Packages
//
//   - github.com/sconf-format/go-sconf/store - Value model
//   - github.com/sconf-format/go-sconf/parse - Configuration parsing
package eval
