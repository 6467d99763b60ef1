package encode

import "github.com/sconf-format/go-sconf/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeYAML() EncodeOption {
	return EncodeFormat(format.YAMLFormat)
}

func EncodeJSON() EncodeOption {
	return EncodeFormat(format.JSONFormat)
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
