// Package encode emits JSON values through an io.Writer, one typed
// emitter per scalar shape plus a small printf-style directive
// language for composing reply frames. Scalar emitters stage bytes in
// stack buffers, so nothing on the emit path touches the heap.
package encode
