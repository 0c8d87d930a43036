package main

import (
	"os"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	// input is YAML, converted to JSON before scanning
	InYAML bool

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type GetConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='filter expression over value, kind, path'"`

	Get *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type PrettyConfig struct {
	*MainConfig

	Indent string `cli:"name=indent desc='indent pad, empty for compact'"`

	Pretty *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='no per-file report, exit status only'"`

	Check *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Addr string `cli:"name=l desc='listen address'"`

	Serve *cli.Command
}
