// Package microjson queries, iterates, merges and reformats JSON held
// in a plain byte buffer, without ever building a document tree. Every
// operation is one or more forward passes of the token scanner; query
// results are spans aliasing the caller's buffer and stay valid only
// as long as that buffer does.
//
// The package trades per-member scan cost for a fixed memory
// footprint, which suits small documents on constrained targets; it is
// not a general replacement for encoding/json.
package microjson
