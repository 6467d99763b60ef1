// Package store holds sconf configurations in memory.
//
// # Overview
//
// A Store is an insertion-ordered key to value map plus a section
// index. Keys are dotted paths: every segment but the last names an
// enclosing section. Values are a tagged union of scalar and list, kept
// in their literal text form; nothing is coerced on the way in.
//
// # Order
//
// Iteration order is insertion order and is significant: the encoder
// walks it to lay the file back out. Overwriting a key keeps the key's
// original position.
//
// # Sections
//
// The index maps each full dotted section path to the indent its header
// was declared at. The encoder consults it when a header must be
// written; a dotted key whose sections were never registered cannot be
// encoded. The parser registers sections as it sees headers, and the
// programmatic constructors register them from dotted keys.
//
// # Change Tracking
//
// A Store carries a dirty flag. Put and Delete set it when they change
// anything, writing an equal value does not. Save gates on it so
// untouched configurations never hit the disk.
//
// # Thread Safety
//
// Stores are not thread-safe. Callers accessing a Store from multiple
// goroutines must synchronize.
//
// # Related Packages
//
//   - github.com/sconf-format/go-sconf/parse - parses text into a Store
//   - github.com/sconf-format/go-sconf/encode - encodes a Store to text
//   - github.com/sconf-format/go-sconf/libdiff - diffs two Stores
package store
