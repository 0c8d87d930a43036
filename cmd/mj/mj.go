package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func mjMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readDoc loads one document argument, "-" for stdin. With -I yaml the
// input is converted to JSON before anything scans it.
func readDoc(cfg *MainConfig, cc *cli.Context, arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", arg, err)
	}
	if cfg.InYAML {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error converting %q: %w", arg, err)
		}
	}
	return d, nil
}

// docArgs defaults to stdin when no file arguments are given.
func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
