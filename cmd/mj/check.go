package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/microjson/token"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	for _, arg := range docArgs(args) {
		doc, err := readDoc(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		n, err := token.Scan(doc, nil)
		switch {
		case err != nil:
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
			}
		case !cfg.Quiet:
			fmt.Fprintf(cc.Out, "%s: ok, %d of %d bytes\n", arg, n, len(doc))
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
