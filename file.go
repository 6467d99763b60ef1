package sconf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sconf-format/go-sconf/encode"
	"github.com/sconf-format/go-sconf/format"
	"github.com/sconf-format/go-sconf/parse"
)

// Load reads the configuration file at path. The input format follows
// the file suffix (.sconf, .yaml, .json, ...), defaulting to sconf.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load configuration %q: %w", path, err)
	}
	f, ok := format.ForPath(path)
	if !ok {
		f = format.SconfFormat
	}
	c, err := Parse(d, parse.ParseFormat(f))
	if err != nil {
		return nil, fmt.Errorf("could not parse configuration %q: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration to path when it has unsaved changes
// and marks it clean. A clean configuration leaves the file untouched.
func (c *Config) Save(path string) error {
	if !c.st.Dirty() {
		return nil
	}
	if err := c.Write(path); err != nil {
		return err
	}
	c.st.MarkClean()
	return nil
}

// Write renders the configuration to path unconditionally, replacing
// any previous content. The output format follows the file suffix,
// defaulting to sconf.
func (c *Config) Write(path string) error {
	f, ok := format.ForPath(path)
	if !ok {
		f = format.SconfFormat
	}
	var buf bytes.Buffer
	if err := encode.Encode(c.st, &buf, encode.EncodeFormat(f)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write configuration %q: %w", path, err)
	}
	return nil
}
