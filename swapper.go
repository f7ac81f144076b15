// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"encoding/binary"
	"io"
)

// Swapper relays a stream of fixed-width elements from a source to a
// destination, converting each element between the configured read and
// write byte orders.
//
// Semantics:
//   - Elements are width bytes each; every element in the stream is
//     reordered independently. When the read and write orders are equal the
//     relay is pass-through.
//   - Two-phase state machine per chunk:
//     1) Read whole elements from src into an internal buffer (may return
//     early with partial progress and ErrWouldBlock or ErrMore).
//     2) Write the converted chunk to dst (same non-blocking semantics).
//   - Returns (n, nil) when a whole chunk has been written to dst; n is the
//     progress made in the current phase.
//   - A source that ends mid-element yields io.ErrUnexpectedEOF; a source
//     that ends on an element boundary flushes the final chunk, and the next
//     call returns io.EOF.
//
// Retry rule:
//   - On ErrWouldBlock or ErrMore, the caller must retry SwapOnce on the
//     SAME Swapper instance to complete the in-flight chunk. The read/write
//     progress of that chunk is maintained internally.
type Swapper struct {
	rd *Reader
	wr *Writer

	rbo   binary.ByteOrder
	wbo   binary.ByteOrder
	width int

	// Internal chunk buffer reused across calls. Its length is a multiple of
	// width, so a full buffer always ends on an element boundary.
	buf []byte

	// Per-chunk state.
	need  int   // bytes staged for the current chunk
	got   int   // bytes read into buf so far
	off   int   // bytes of the current chunk written to dst
	state uint8 // swapRead or swapWrite

	// EOF handling: a source may return (n>0, io.EOF) on the final read.
	// The final chunk is flushed first and io.EOF is reported on the next call.
	eofAfterThis bool
	eofPending   bool
}

const (
	swapRead uint8 = iota
	swapWrite
)

const defaultSwapBufferSize = 32 * 1024

// NewSwapper constructs a Swapper that relays width-byte elements from src
// to dst. Byte orders, buffer size, and the would-block retry policy are
// set via opts; by default both orders are big-endian (pass-through) and
// the Swapper is non-blocking.
func NewSwapper(dst io.Writer, src io.Reader, width int, opts ...Option) (*Swapper, error) {
	if dst == nil || src == nil || width <= 0 {
		return nil, ErrInvalidArgument
	}
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.ReadByteOrder == nil || o.WriteByteOrder == nil {
		return nil, ErrInvalidArgument
	}
	size := o.BufferSize
	if size <= 0 {
		size = defaultSwapBufferSize
	}
	if size < width {
		size = width
	}
	size -= size % width
	return &Swapper{
		rd:    &Reader{rd: src, retryDelay: o.RetryDelay},
		wr:    &Writer{wr: dst, retryDelay: o.RetryDelay},
		rbo:   o.ReadByteOrder,
		wbo:   o.WriteByteOrder,
		width: width,
		buf:   make([]byte, size),
	}, nil
}

// SwapOnce relays at most one chunk of whole elements. See Swapper docs for
// semantics.
func (s *Swapper) SwapOnce() (n int, err error) {
	if s.state == swapRead {
		if s.eofPending {
			return 0, io.EOF
		}

		for s.got < len(s.buf) {
			rn, re := s.rd.Read(s.buf[s.got:])
			s.got += rn
			n += rn
			if re != nil {
				if re == io.EOF {
					if s.got == 0 {
						return n, io.EOF
					}
					if s.got%s.width != 0 {
						// Stream ended inside an element.
						return n, io.ErrUnexpectedEOF
					}
					s.eofAfterThis = true
					break
				}
				// ErrWouldBlock/ErrMore and hard failures: surface with the
				// progress made; the chunk state is kept for the retry.
				return n, re
			}
			if s.got%s.width == 0 {
				break
			}
			// Trailing partial element; keep reading to complete it.
		}

		// Chunk staged; convert once at the phase transition so a resumed
		// write never reorders twice.
		s.need = s.got
		if s.rbo != s.wbo {
			swapEach(s.buf[:s.need], s.width)
		}
		s.off = 0
		s.state = swapWrite
		n = 0
	}

	for s.off < s.need {
		wn, we := s.wr.Write(s.buf[s.off:s.need])
		s.off += wn
		n += wn
		if we != nil {
			return n, we
		}
		if wn == 0 {
			return n, io.ErrShortWrite
		}
	}

	// Chunk fully relayed; reset for the next one.
	if s.eofAfterThis {
		s.eofAfterThis = false
		s.eofPending = true
	}
	s.state = swapRead
	s.need, s.got, s.off = 0, 0, 0
	return n, nil
}

// Copy relays elements until the source reports io.EOF, which is mapped to
// a nil error. Any other error, including ErrWouldBlock and ErrMore in
// non-blocking mode, aborts the copy with the progress made so far.
func (s *Swapper) Copy() (total int64, err error) {
	for {
		n, e := s.SwapOnce()
		total += int64(n)
		if e != nil {
			if e == io.EOF {
				return total, nil
			}
			return total, e
		}
	}
}

// swapEach reverses each width-byte group of b in place. len(b) must be a
// multiple of width.
func swapEach(b []byte, width int) {
	for i := 0; i+width <= len(b); i += width {
		reverse(b[i : i+width])
	}
}
