package rpc

import (
	"io"

	"github.com/signadot/microjson"
	"github.com/signadot/microjson/debug"
	"github.com/signadot/microjson/encode"
	"github.com/signadot/microjson/token"
)

// Standard JSON-RPC 2.0 error codes used by Process and handlers.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeBadParams      = -32602
	CodeInternal       = -32603
)

// Handler serves one inbound request.
type Handler func(*Request)

type method struct {
	pattern string
	handler Handler
}

// Context is an explicit method registry. Independent contexts can
// coexist in one process and be torn down independently; nothing here
// is process-global.
type Context struct {
	methods    []method
	onResponse func(frame []byte)
}

// NewContext returns a registry preloaded with the rpc.list built-in.
// onResponse, which may be nil, receives inbound frames that are
// responses rather than requests.
func NewContext(onResponse func(frame []byte)) *Context {
	c := &Context{onResponse: onResponse}
	c.Export("rpc.list", c.list)
	return c
}

// Export registers a handler for a glob method pattern. Patterns are
// tried in registration order and the first match wins.
func (c *Context) Export(pattern string, h Handler) {
	c.methods = append(c.methods, method{pattern: pattern, handler: h})
}

// Request carries the located spans of one inbound frame. All spans
// alias the frame buffer and are only valid inside the handler.
type Request struct {
	Ctx    *Context
	Frame  []byte
	ID     []byte // raw id value; empty for notifications
	Method []byte // raw method token, quotes included
	Params []byte // raw params value; may be empty
	w      io.Writer
}

// ReturnSuccess emits a result frame, rendering the result from an
// encode directive format. An empty format stands for a null result.
// Notifications produce no reply.
func (r *Request) ReturnSuccess(resultFmt string, args ...any) error {
	if len(r.ID) == 0 {
		return nil
	}
	if _, err := encode.Printf(r.w, `{"id":%s,"result":`, r.ID); err != nil {
		return err
	}
	if resultFmt == "" {
		if _, err := io.WriteString(r.w, "null"); err != nil {
			return err
		}
	} else if _, err := encode.Printf(r.w, resultFmt, args...); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, "}\n")
	return err
}

// ReturnError emits an error frame with the given code and message,
// plus an optional data member rendered from an encode directive
// format. Notifications produce no reply.
func (r *Request) ReturnError(code int, message, dataFmt string, args ...any) error {
	if len(r.ID) == 0 {
		return nil
	}
	if _, err := encode.Printf(r.w, `{"id":%s,"error":{"code":%d,"message":%Q`,
		r.ID, code, message); err != nil {
		return err
	}
	if dataFmt != "" {
		if _, err := io.WriteString(r.w, `,"data":`); err != nil {
			return err
		}
		if _, err := encode.Printf(r.w, dataFmt, args...); err != nil {
			return err
		}
	}
	_, err := io.WriteString(r.w, "}}\n")
	return err
}

// Process handles one inbound frame, writing any reply frame to w.
// Frames carrying a result or error member are responses and are
// routed to the context's response callback instead of a handler. A
// frame without a string method gets a parse-error reply; a method no
// pattern matches gets a method-not-found reply.
func (c *Context) Process(frame []byte, w io.Writer) error {
	_, res, err := microjson.Find(frame, "$.result")
	if err != nil {
		_, res, _ = microjson.Find(frame, "$.error")
	}
	if len(res) > 0 {
		if c.onResponse != nil {
			c.onResponse(frame)
		}
		return nil
	}

	mKind, m, err := microjson.Find(frame, "$.method")
	if err != nil || mKind != token.String {
		_, werr := encode.Printf(w, `{"error":{"code":%d,"message":%Q}}`+"\n",
			CodeParseError, string(frame))
		return werr
	}
	req := &Request{Ctx: c, Frame: frame, Method: m, w: w}
	if _, id, err := microjson.Find(frame, "$.id"); err == nil {
		req.ID = id
	}
	if _, params, err := microjson.Find(frame, "$.params"); err == nil {
		req.Params = params
	}

	name := string(m[1 : len(m)-1])
	if debug.RPC() {
		debug.Logf("rpc dispatch %q\n", name)
	}
	for i := range c.methods {
		if Match(c.methods[i].pattern, name) {
			c.methods[i].handler(req)
			return nil
		}
	}
	return req.ReturnError(CodeMethodNotFound, "method not found", "")
}

// list serves rpc.list: the registered patterns as a string array.
func (c *Context) list(r *Request) {
	r.ReturnSuccess("[%M]", encode.EmitFunc(func(w io.Writer) (int, error) {
		n := 0
		for i := range c.methods {
			if i > 0 {
				m, err := io.WriteString(w, ",")
				n += m
				if err != nil {
					return n, err
				}
			}
			m, err := encode.String(w, c.methods[i].pattern)
			n += m
			if err != nil {
				return n, err
			}
		}
		return n, nil
	}))
}
