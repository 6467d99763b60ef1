package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	sconf "github.com/sconf-format/go-sconf"
	"github.com/sconf-format/go-sconf/encode"
	"github.com/sconf-format/go-sconf/format"
	"github.com/sconf-format/go-sconf/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	S bool `cli:"name=s aliases=sconf desc='do i/o in sconf'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// parseOptsFor selects the input format for path: the file suffix
// decides, then the i/o flags, then -I.
func (cfg *MainConfig) parseOptsFor(path string) []parse.ParseOption {
	fmat := format.SconfFormat
	if f, ok := format.ForPath(path); ok {
		fmat = f
	}
	switch {
	case cfg.S:
		fmat = format.SconfFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.SconfFormat
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if !fmat.IsSconf() {
		// colors only exist for sconf output
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// readArg reads one input argument, with "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

// readConfig loads one input argument, with "-" meaning stdin.
func (cfg *MainConfig) readConfig(arg string) (*sconf.Config, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	c, err := sconf.Parse(d, cfg.parseOptsFor(arg)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return c, nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Sections bool `cli:"name=sections desc='print section paths instead of keys'"`
	Keys     *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Section string `cli:"name=section desc='diff only the given section path'"`
	Diff    *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	NoOS bool `cli:"name=noos desc='do not include OS environment variables'"`

	Eval *cli.Command
}
