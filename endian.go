// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package endian converts fixed-size values to and from explicit
// little-endian and big-endian binary representations, reading from and
// writing to byte streams.
//
// Semantics and design:
//   - Deterministic layout: the encoded form depends only on the requested
//     byte order, never on the host machine's native order. The host-order
//     branch is resolved per build target (see internal/bo), not per call.
//   - Checked and unchecked paths: WriteLE/WriteBE/ReadLE/ReadBE operate on
//     io.Writer/io.Reader with full bounds and end-of-stream handling;
//     PutLE/PutBE/GetLE/GetBE operate on raw unsafe.Pointer memory and place
//     the entire validity burden on the caller.
//   - Non-blocking first: iox.ErrWouldBlock and iox.ErrMore from an
//     underlying stream are surfaced unchanged (re-exposed as
//     endian.ErrWouldBlock / endian.ErrMore). The conversions never retry;
//     wrap a stream with NewReader/NewWriter to opt into a retry policy.
//
// Eligibility: a type T qualifies for conversion only if its representation
// contains no pointers (duplicating it by raw byte copy must be sound),
// every bit pattern of its storage is a valid value, and its zero value is a
// meaningful default. Fixed-size numeric types, arrays of them, and structs
// composed of them qualify; types holding pointers, slices, maps, strings,
// channels, funcs, or interfaces do not. Violating eligibility on the
// unchecked paths is undefined behavior, not a reported error.
package endian

import (
	"encoding/binary"
	"io"
	"unsafe"
)

// WriteLE writes v to w in little-endian representation.
//
// Zero-size types succeed immediately with n=0 and never touch w. The
// result of w.Write is surfaced unchanged: per the io.Writer contract a
// short write carries its own error, and WriteLE does not re-validate the
// count.
func WriteLE[T any](w io.Writer, v T) (n int, err error) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return 0, nil
	}
	if w == nil {
		return 0, ErrInvalidArgument
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	toLittle(buf)
	return w.Write(buf)
}

// WriteBE writes v to w in big-endian representation.
//
// See WriteLE for the zero-size and short-write semantics.
func WriteBE[T any](w io.Writer, v T) (n int, err error) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return 0, nil
	}
	if w == nil {
		return 0, ErrInvalidArgument
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	toBig(buf)
	return w.Write(buf)
}

// Write writes v to w in the given byte order. It behaves exactly like
// WriteLE or WriteBE with the order selected at run time.
func Write[T any](w io.Writer, order binary.ByteOrder, v T) (n int, err error) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return 0, nil
	}
	if w == nil || order == nil {
		return 0, ErrInvalidArgument
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	toOrder(buf, order)
	return w.Write(buf)
}

// ReadLE reads a little-endian value of type T from r.
//
// n is the number of bytes consumed. Exactly unsafe.Sizeof(T) bytes are
// required: if r ends before any byte is read the error is io.EOF, and if it
// ends mid-value the error is io.ErrUnexpectedEOF with n reporting how many
// bytes were obtained. On any error the returned value is the zero value,
// never a truncated one. Zero-size types return immediately without
// touching r.
func ReadLE[T any](r io.Reader) (v T, n int, err error) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return v, 0, nil
	}
	if r == nil {
		return v, 0, ErrInvalidArgument
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	n, err = io.ReadFull(r, buf)
	if err != nil {
		var zero T
		return zero, n, err
	}
	toLittle(buf)
	return v, n, nil
}

// ReadBE reads a big-endian value of type T from r.
//
// See ReadLE for the exact-read and zero-size semantics.
func ReadBE[T any](r io.Reader) (v T, n int, err error) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return v, 0, nil
	}
	if r == nil {
		return v, 0, ErrInvalidArgument
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	n, err = io.ReadFull(r, buf)
	if err != nil {
		var zero T
		return zero, n, err
	}
	toBig(buf)
	return v, n, nil
}

// Read reads a value of type T from r in the given byte order. It behaves
// exactly like ReadLE or ReadBE with the order selected at run time.
func Read[T any](r io.Reader, order binary.ByteOrder) (v T, n int, err error) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return v, 0, nil
	}
	if r == nil || order == nil {
		return v, 0, ErrInvalidArgument
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	n, err = io.ReadFull(r, buf)
	if err != nil {
		var zero T
		return zero, n, err
	}
	toOrder(buf, order)
	return v, n, nil
}
