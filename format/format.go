package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	SconfFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":     SconfFormat,
		"sconf": SconfFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SconfFormat:
		return []byte("sconf"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsSconf() bool { return f == SconfFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case SconfFormat:
		return ".sconf"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// ForPath maps a file path to a format by its extension. The second
// result is false when the extension is not one of ours.
func ForPath(p string) (Format, bool) {
	switch filepath.Ext(p) {
	case ".sconf", ".scf":
		return SconfFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	case ".json":
		return JSONFormat, true
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{SconfFormat, YAMLFormat, JSONFormat}
}
