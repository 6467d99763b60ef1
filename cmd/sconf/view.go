package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sconf-format/go-sconf/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		c, err := cfg.readConfig(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(c.Store(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
