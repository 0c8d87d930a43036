package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j (default), yaml/y",
			Type:        cli.NamedFuncOpt(cfg.inFmtOpt, "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "mj").
		WithSynopsis("mj [opts] command [opts]").
		WithDescription("mj is a tool for querying, merging and reformatting JSON.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mjMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			MergeCommand(cfg),
			PrettyCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg),
			ListCommand(cfg),
			ServeCommand(cfg))
}

func (cfg *MainConfig) inFmtOpt(cc *cli.Context, a string) (any, error) {
	switch a {
	case "json", "j":
		cfg.InYAML = false
	case "yaml", "y":
		cfg.InYAML = true
	default:
		return nil, fmt.Errorf("%w: unknown input format %q", cli.ErrUsage, a)
	}
	return a, nil
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-where expr] <path> [files]").
		WithDescription("get the value at a path from documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge <base> <patch>").
		WithDescription("structurally merge a patch document into a base document").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func PrettyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PrettyConfig{MainConfig: mainCfg, Indent: "  "}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Pretty, "pretty").
		WithAliases("p", "fmt").
		WithSynopsis("pretty [-indent pad] [files]").
		WithDescription("reformat documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pretty(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two documents after reformatting").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("validate documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <path> [files]").
		WithDescription("list the members of the value at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg, Addr: "127.0.0.1:7870"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-l addr] <file>").
		WithDescription("serve a document's values over line-framed JSON-RPC").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
