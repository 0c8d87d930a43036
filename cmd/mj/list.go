package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/microjson"
	"github.com/signadot/microjson/token"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	for _, arg := range docArgs(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		kind, val, err := microjson.Find(doc, path)
		if errors.Is(err, microjson.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		if kind != token.Object && kind != token.Array {
			return fmt.Errorf("cannot list %s in %s: %s is not a container", path, arg, kind)
		}
		for off := 0; ; {
			m, next := microjson.Next(val, off)
			if next == 0 {
				break
			}
			off = next
			if m.Key != nil {
				_, err = fmt.Fprintf(cc.Out, "%s\t%s\n", m.Key, m.Value)
			} else {
				_, err = fmt.Fprintf(cc.Out, "%d\t%s\n", m.Index, m.Value)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
