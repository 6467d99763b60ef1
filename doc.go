// Package sconf reads, edits and writes sconf configuration files.
//
// The format is line oriented: an entry is a {key} = {value}
// assignment, sections group entries under dotted key paths, and
// nesting is expressed with four spaces of indentation per level.
//
//	server:
//	    net:
//	        host = localhost
//	        ports = [80, 443]
//	debug = false
//
// parses to the entries server.net.host, server.net.ports and debug.
//
// # Usage
//
//	cfg, err := sconf.Load("app.sconf")
//	if err != nil {
//		return err
//	}
//	host, err := cfg.String("server.net.host")
//	...
//	cfg.Set("debug", true)
//	err = cfg.Save("app.sconf") // writes only when something changed
//
// # Related Packages
//
//   - github.com/sconf-format/go-sconf/store - Ordered store and values
//   - github.com/sconf-format/go-sconf/parse - Parsing
//   - github.com/sconf-format/go-sconf/encode - Serialization
//   - github.com/sconf-format/go-sconf/eval - Expression expansion
//   - github.com/sconf-format/go-sconf/libdiff - Store diffing
package sconf
