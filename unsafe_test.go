// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"bytes"
	"math"
	"testing"
	"unsafe"
)

func TestPutBE_OrderCorrectness(t *testing.T) {
	var dst [8]byte
	n := PutBE(unsafe.Pointer(&dst[0]), uint64(0x0102030405060708))
	if n != 8 {
		t.Fatalf("want n=8, got n=%d", n)
	}
	if want := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}; dst != want {
		t.Fatalf("want % x, got % x", want, dst)
	}
}

func TestPutLE_OrderCorrectness(t *testing.T) {
	var dst [4]byte
	n := PutLE(unsafe.Pointer(&dst[0]), uint32(0x01020304))
	if n != 4 {
		t.Fatalf("want n=4, got n=%d", n)
	}
	if want := [4]byte{4, 3, 2, 1}; dst != want {
		t.Fatalf("want % x, got % x", want, dst)
	}
}

func TestGet_RoundTrip(t *testing.T) {
	var scratch [8]byte

	PutBE(unsafe.Pointer(&scratch[0]), int64(-42))
	if got := GetBE[int64](unsafe.Pointer(&scratch[0])); got != -42 {
		t.Fatalf("want -42, got %d", got)
	}

	PutLE(unsafe.Pointer(&scratch[0]), float32(math.MaxFloat32))
	if got := GetLE[float32](unsafe.Pointer(&scratch[0])); got != math.MaxFloat32 {
		t.Fatalf("want %v, got %v", float32(math.MaxFloat32), got)
	}
}

func TestGet_SourceLeftUntouched(t *testing.T) {
	src := [4]byte{0x01, 0x02, 0x03, 0x04}
	orig := src

	if got := GetBE[uint32](unsafe.Pointer(&src[0])); got != 0x01020304 {
		t.Fatalf("want %#x, got %#x", 0x01020304, got)
	}
	if src != orig {
		t.Fatalf("source modified: % x", src)
	}
}

func TestUncheckedMatchesChecked(t *testing.T) {
	type pair struct {
		A uint16
		B uint16
	}

	check := func(encode func() ([]byte, []byte)) {
		t.Helper()
		checked, unchecked := encode()
		if !bytes.Equal(checked, unchecked) {
			t.Fatalf("checked % x != unchecked % x", checked, unchecked)
		}
	}

	check(func() ([]byte, []byte) {
		var buf bytes.Buffer
		var raw [4]byte
		if _, err := WriteLE(&buf, uint32(0xDEADBEEF)); err != nil {
			t.Fatalf("err=%v", err)
		}
		PutLE(unsafe.Pointer(&raw[0]), uint32(0xDEADBEEF))
		return buf.Bytes(), raw[:]
	})
	check(func() ([]byte, []byte) {
		var buf bytes.Buffer
		var raw [8]byte
		if _, err := WriteBE(&buf, float64(6.25)); err != nil {
			t.Fatalf("err=%v", err)
		}
		PutBE(unsafe.Pointer(&raw[0]), float64(6.25))
		return buf.Bytes(), raw[:]
	})
	check(func() ([]byte, []byte) {
		var buf bytes.Buffer
		var raw [4]byte
		if _, err := WriteBE(&buf, pair{A: 0x0102, B: 0x0304}); err != nil {
			t.Fatalf("err=%v", err)
		}
		PutBE(unsafe.Pointer(&raw[0]), pair{A: 0x0102, B: 0x0304})
		return buf.Bytes(), raw[:]
	})

	// Decode side: the same bytes produce bit-identical values.
	src := [4]byte{0x11, 0x22, 0x33, 0x44}
	fromStream, _, err := ReadLE[uint32](bytes.NewReader(src[:]))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if fromRaw := GetLE[uint32](unsafe.Pointer(&src[0])); fromRaw != fromStream {
		t.Fatalf("checked %#x != unchecked %#x", fromStream, fromRaw)
	}
}

func TestUnchecked_ZeroSize(t *testing.T) {
	// Size-0 paths never dereference the pointer, so nil is acceptable.
	if n := PutLE(nil, struct{}{}); n != 0 {
		t.Fatalf("want n=0, got n=%d", n)
	}
	if n := PutBE(nil, [0]uint32{}); n != 0 {
		t.Fatalf("want n=0, got n=%d", n)
	}
	if v := GetLE[struct{}](nil); v != (struct{}{}) {
		t.Fatalf("want zero value, got %+v", v)
	}
	GetBE[[0]byte](nil)
}
