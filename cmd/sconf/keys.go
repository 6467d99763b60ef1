package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
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
		if cfg.Sections {
			for _, p := range c.Store().Sections().Paths() {
				fmt.Fprintln(cc.Out, p)
			}
			continue
		}
		for _, k := range c.Keys() {
			fmt.Fprintln(cc.Out, k)
		}
	}
	return nil
}
