package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a key argument", cli.ErrUsage)
	}
	key := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		c, err := cfg.readConfig(arg)
		if err != nil {
			return err
		}
		v, ok := c.Raw(key)
		if !ok {
			return fmt.Errorf("no key %q in %s", key, arg)
		}
		fmt.Fprintln(cc.Out, v.String())
	}
	return nil
}
