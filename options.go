// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"encoding/binary"
	"time"
)

// Options configures the stream decorators and the Swapper.
type Options struct {
	// ReadByteOrder is the byte order of the data arriving from the source.
	ReadByteOrder binary.ByteOrder
	// WriteByteOrder is the byte order the destination expects.
	WriteByteOrder binary.ByteOrder

	// BufferSize sets the Swapper's internal chunk buffer in bytes. Zero
	// means the default (32KiB). The effective size is rounded down to a
	// multiple of the element width, with a minimum of one element.
	BufferSize int

	// RetryDelay controls how iox.ErrWouldBlock from the underlying stream
	// is handled:
	//   - negative: nonblock, return ErrWouldBlock immediately
	//   - zero: yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration
}

var defaultOptions = Options{
	ReadByteOrder:  binary.BigEndian,
	WriteByteOrder: binary.BigEndian,
	BufferSize:     0,
	RetryDelay:     -1, // default: nonblock
}

type Option func(*Options)

func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) {
		o.ReadByteOrder = order
		o.WriteByteOrder = order
	}
}

func WithReadByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.ReadByteOrder = order }
}

func WithWriteByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.WriteByteOrder = order }
}

func WithBufferSize(size int) Option {
	return func(o *Options) { o.BufferSize = size }
}

// WithRetryDelay sets the retry/wait policy used when the underlying stream
// returns iox.ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on iox.ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior (return iox.ErrWouldBlock immediately).
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}
