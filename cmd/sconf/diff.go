package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sconf-format/go-sconf/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := cfg.readConfig(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.readConfig(args[1])
	if err != nil {
		return err
	}
	var changes []libdiff.Change
	if cfg.Section != "" {
		changes = libdiff.DiffSection(from.Store(), to.Store(), cfg.Section)
	} else {
		changes = libdiff.Diff(from.Store(), to.Store())
	}
	for i := range changes {
		fmt.Fprintln(cc.Out, changes[i].String())
	}
	if len(changes) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
