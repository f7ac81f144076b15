// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "unsafe"

// Unchecked conversions over raw memory.
//
// These are the explicit escape hatch for callers that have already
// established buffer validity and cannot afford the stream layer. None of
// them perform bounds checking: the pointer must be valid, suitably aligned
// for byte access, and cover exactly unsafe.Sizeof(T) bytes. Violations are
// undefined behavior, not reported errors.

// PutLE encodes v at dst in little-endian order and returns the number of
// bytes written, always unsafe.Sizeof(T). Zero-size types write nothing and
// return 0 without touching dst.
func PutLE[T any](dst unsafe.Pointer, v T) int {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return 0
	}
	out := unsafe.Slice((*byte)(dst), size)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
	toLittle(out)
	return size
}

// PutBE encodes v at dst in big-endian order. See PutLE.
func PutBE[T any](dst unsafe.Pointer, v T) int {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return 0
	}
	out := unsafe.Slice((*byte)(dst), size)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
	toBig(out)
	return size
}

// GetLE decodes a little-endian value of type T from src. The bytes at src
// are staged into a zero-initialized local before transformation; src is
// never modified. Zero-size types return the zero value without touching
// src.
func GetLE[T any](src unsafe.Pointer) (v T) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return v
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	copy(buf, unsafe.Slice((*byte)(src), size))
	toLittle(buf)
	return v
}

// GetBE decodes a big-endian value of type T from src. See GetLE.
func GetBE[T any](src unsafe.Pointer) (v T) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return v
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	copy(buf, unsafe.Slice((*byte)(src), size))
	toBig(buf)
	return v
}
