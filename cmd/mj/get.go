package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/signadot/microjson"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	for _, arg := range docArgs(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		kind, val, err := microjson.Find(doc, path)
		if errors.Is(err, microjson.ErrNotFound) {
			// absent is not an error, just nothing to print
			continue
		}
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		if prg != nil {
			keep, err := where(prg, kind.String(), path, val)
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", arg, err)
			}
			if !keep {
				continue
			}
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", val); err != nil {
			return err
		}
	}
	return nil
}

// where runs the -where filter with the decoded value, the token kind
// and the query path in scope.
func where(prg *vm.Program, kind, path string, val []byte) (bool, error) {
	var value any
	if err := json.Unmarshal(val, &value); err != nil {
		return false, err
	}
	res, err := expr.Run(prg, map[string]any{
		"value": value,
		"kind":  kind,
		"path":  path,
	})
	if err != nil {
		return false, err
	}
	keep, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("-where must evaluate to a boolean, got %T", res)
	}
	return keep, nil
}
