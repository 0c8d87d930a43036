// Package rpc dispatches JSON-RPC 2.0 frames over glob-matched method
// registries. Frames are plain byte buffers; request fields are
// located with path queries and replies are rendered with the encode
// directives, so no request ever becomes a document tree. A registry
// is an explicit Context value rather than process state.
package rpc
