package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/microjson"
	"github.com/signadot/microjson/rpc"
	"github.com/signadot/microjson/token"
)

// serve exposes one loaded document over line-framed JSON-RPC:
// doc.get resolves a path, doc.check reports validity, and the
// built-in rpc.list enumerates methods.
func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		cfg.Serve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: serve requires one argument, a document file", cli.ErrUsage)
	}
	doc, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	if _, err := token.Scan(doc, nil); err != nil {
		return fmt.Errorf("cannot serve %s: %w", args[0], err)
	}

	rctx := rpc.NewContext(nil)
	rctx.Export("doc.get", func(r *rpc.Request) {
		path := pathParam(r.Params)
		if path == "" {
			r.ReturnError(rpc.CodeBadParams, "params must be [path]", "")
			return
		}
		kind, val, err := microjson.Find(doc, path)
		if err != nil {
			r.ReturnError(rpc.CodeBadParams, err.Error(), "%Q", path)
			return
		}
		r.ReturnSuccess(`{"kind":%Q,"value":%s}`, kind.String(), val)
	})
	rctx.Export("doc.check", func(r *rpc.Request) {
		n, err := token.Scan(doc, nil)
		if err != nil {
			r.ReturnError(rpc.CodeInternal, err.Error(), "")
			return
		}
		r.ReturnSuccess(`{"bytes":%d}`, n)
	})

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv, err := rpc.NewServer(cfg.Addr, rctx, log)
	if err != nil {
		return err
	}
	return srv.Serve(context.Background())
}

// pathParam pulls the query path out of a [path] params array.
func pathParam(params []byte) string {
	var buf [256]byte
	n, err := microjson.FindString(params, "$[0]", buf[:])
	if err != nil {
		return ""
	}
	return string(buf[:n])
}
