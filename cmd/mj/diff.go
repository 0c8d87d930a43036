package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/microjson"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := reformat(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := reformat(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if useColor(cfg.MainConfig, cc) {
		if _, err := fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs)); err != nil {
			return err
		}
	} else if err := writeDiffs(cfg, cc, diffs); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// reformat normalizes one document so the text diff tracks structure
// rather than input whitespace.
func reformat(cfg *MainConfig, cc *cli.Context, arg string) (string, error) {
	doc, err := readDoc(cfg, cc, arg)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := microjson.Pretty(doc, "  ", &buf); err != nil {
		return "", fmt.Errorf("error formatting %s: %w", arg, err)
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func writeDiffs(cfg *DiffConfig, cc *cli.Context, diffs []diffpatch.Diff) error {
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			if _, err := fmt.Fprintf(cc.Out, "%s%s\n", prefix, line); err != nil {
				return err
			}
		}
	}
	return nil
}
