// Package buffer provides ownership tracking for one-shot input byte
// buffers.
//
// The decoding library takes ownership of, and invalidates, whatever
// byte slice is handed to it. Buffer makes that protocol explicit: a
// decode call consumes a Buffer via [Buffer.Take], after which the
// Buffer is detached and any further Take or Clone fails with
// [ErrDetached]. Callers that need to decode the same bytes more than
// once must [Buffer.Clone] before every consuming call.
package buffer

import "errors"

// ErrDetached is returned when a Buffer is used after it has been
// consumed by a decode call.
var ErrDetached = errors.New("buffer: already consumed by a prior decode")

// Buffer owns a byte slice destined for exactly one decode call.
type Buffer struct {
	data     []byte
	detached bool
}

// New wraps data in a Buffer. The Buffer takes ownership of the
// slice; the caller must not mutate it afterwards.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Clone returns a byte-for-byte independent copy of the buffer. The
// original stays usable. Cloning an already-consumed buffer fails
// with ErrDetached.
func (b *Buffer) Clone() (*Buffer, error) {
	if b.detached {
		return nil, ErrDetached
	}
	dup := make([]byte, len(b.data))
	copy(dup, b.data)
	return &Buffer{data: dup}, nil
}

// Take consumes the buffer and returns its bytes. After Take the
// buffer is detached and cannot be used again. A second Take fails
// with ErrDetached.
func (b *Buffer) Take() ([]byte, error) {
	if b.detached {
		return nil, ErrDetached
	}
	b.detached = true
	data := b.data
	b.data = nil
	return data, nil
}

// Detached reports whether the buffer has been consumed.
func (b *Buffer) Detached() bool {
	return b.detached
}

// Len returns the number of bytes remaining in the buffer, which is
// zero once the buffer has been consumed.
func (b *Buffer) Len() int {
	return len(b.data)
}
