// Package view provides zero-copy typed readers over little-endian byte
// buffers. FloatView decodes IEEE-754 binary32 values and Half2View decodes
// packed pairs of IEEE-754 binary16 values widened to float32.
//
// Views borrow the caller's slice: they never copy or mutate it and must not
// outlive the call that supplied the buffer. Element counts are the byte
// length divided by the 4-byte stride, truncated; any trailing bytes are
// ignored and reported by Remainder. Indexing past Len is a programming
// error and panics.
package view
