// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"encoding/binary"

	"code.hybscloud.com/endian/internal/bo"
)

// toLittle rearranges b in place from native order to little-endian order.
// Reversal is self-inverse, so the same call also decodes little-endian
// bytes back into native order.
func toLittle(b []byte) {
	if bo.Big {
		reverse(b)
	}
}

// toBig rearranges b in place from native order to big-endian order, and
// decodes by the same self-inverse property.
func toBig(b []byte) {
	if !bo.Big {
		reverse(b)
	}
}

// toOrder rearranges b in place between native order and the given order.
func toOrder(b []byte, order binary.ByteOrder) {
	if order != bo.Native() {
		reverse(b)
	}
}

// reverse flips b in place. Regions of length 0 or 1 are left untouched;
// for odd lengths the middle byte stays where it is.
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
