package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/microjson"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires two arguments, a base and a patch", cli.ErrUsage)
	}
	base, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	patch, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if _, err := microjson.Merge(base, patch, cc.Out); err != nil {
		return fmt.Errorf("error merging %s into %s: %w", args[1], args[0], err)
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}
