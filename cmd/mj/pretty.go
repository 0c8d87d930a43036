package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/microjson"
	"github.com/signadot/microjson/token"
)

func pretty(cfg *PrettyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pretty.Parse(cc, args)
	if err != nil {
		cfg.Pretty.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	colorize := useColor(cfg.MainConfig, cc)
	for _, arg := range docArgs(args) {
		doc, err := readDoc(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		if colorize {
			sink := &colorSink{w: cc.Out, pad: cfg.Indent, colors: newColors()}
			if _, err := token.Scan(doc, sink); err != nil {
				return fmt.Errorf("error formatting %s: %w", arg, err)
			}
			if sink.err != nil {
				return sink.err
			}
		} else if _, err := microjson.Pretty(doc, cfg.Indent, cc.Out); err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		if _, err := fmt.Fprintln(cc.Out); err != nil {
			return err
		}
	}
	return nil
}
