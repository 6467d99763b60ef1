package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/sconf-format/go-sconf/encode"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a file and at least one key=value", cli.ErrUsage)
	}
	file := args[0]
	c, err := cfg.readConfig(file)
	if err != nil {
		return err
	}
	for _, kv := range args[1:] {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%w: argument %q expected key=value", cli.ErrUsage, kv)
		}
		if err := c.Set(strings.TrimSpace(key), strings.TrimSpace(val)); err != nil {
			return err
		}
	}
	if file == "-" {
		return encode.Encode(c.Store(), cc.Out, cfg.encOpts(cc.Out)...)
	}
	// save writes only when a value actually changed
	return c.Save(file)
}
