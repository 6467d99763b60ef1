// Package libdiff computes differences between configuration stores.
//
// # Usage
//
//	// Compute the changes that turn one store into another
//	changes := libdiff.Diff(oldStore, newStore)
//
//	// Fast content equality with a hash prefilter
//	same := libdiff.Equal(oldStore, newStore)
//
// Changes carry the key, the operation, and the values on both sides,
// so they can be rendered or replayed against a store.
//
// # Related Packages
//
//   - github.com/sconf-format/go-sconf/store - Store and value model
//   - github.com/sconf-format/go-sconf/parse - Configuration parsing
package libdiff
