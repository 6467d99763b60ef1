package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	sconf "github.com/sconf-format/go-sconf"
	"github.com/sconf-format/go-sconf/encode"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires a file and a patch file", cli.ErrUsage)
	}
	c, err := cfg.readConfig(args[0])
	if err != nil {
		return err
	}
	patch, err := readArg(args[1])
	if err != nil {
		return err
	}
	merged, err := sconf.MergePatch(c, patch)
	if err != nil {
		return fmt.Errorf("error merging %s with %s: %w", args[0], args[1], err)
	}
	return encode.Encode(merged.Store(), cc.Out, cfg.encOpts(cc.Out)...)
}
