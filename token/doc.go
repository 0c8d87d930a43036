// Package token is a single-pass JSON tokenizer. It never builds a
// document tree: a scan walks the input buffer exactly once and hands
// each token to a caller-supplied Sink as a byte span into that same
// buffer. The sink can stop the scan early, which is how the query and
// merge layers above this package avoid reading past what they need.
package token
