// Package encode writes stores back out as text.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := encode.Encode(st, &buf)
//
//	// other formats and colored terminal output
//	err = encode.Encode(st, os.Stdout, encode.EncodeYAML())
//	err = encode.Encode(st, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Section headers are reconstructed from the dotted keys and the
// store's section index. Comments and blank lines from the original
// input are gone by the time a store exists, so they do not reappear
// here.
//
// # Related Packages
//
//   - github.com/sconf-format/go-sconf/store - the encoded representation
//   - github.com/sconf-format/go-sconf/parse - the inverse operation
package encode
