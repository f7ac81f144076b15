// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"io"
	"runtime"
	"time"
)

// Reader decorates an io.Reader with a retry policy for iox.ErrWouldBlock.
//
// The conversion functions themselves never retry; wrapping the source in a
// Reader is how a caller opts into cooperative blocking on top of a
// non-blocking transport. A Reader adds no buffering and no framing.
type Reader struct {
	rd         io.Reader
	retryDelay time.Duration
}

// NewReader wraps r with the retry policy configured via opts
// (WithRetryDelay, WithBlock, WithNonblock).
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &Reader{rd: r, retryDelay: o.RetryDelay}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if r.rd == nil {
		return 0, ErrInvalidArgument
	}
	for {
		n, err = r.rd.Read(p)
		// Guard against broken Readers that violate the io.Reader contract by
		// returning (0, nil) on a non-empty buffer. Without this, callers
		// looping on exact reads can spin indefinitely.
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrNoProgress
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if !waitOnce(r.retryDelay) {
			return n, err
		}
	}
}

// Writer decorates an io.Writer with a retry policy for iox.ErrWouldBlock.
// See Reader.
type Writer struct {
	wr         io.Writer
	retryDelay time.Duration
}

// NewWriter wraps w with the retry policy configured via opts.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &Writer{wr: w, retryDelay: o.RetryDelay}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.wr == nil {
		return 0, ErrInvalidArgument
	}
	for {
		n, err = w.wr.Write(p)
		// Guard against broken Writers that violate the io.Writer contract by
		// returning (0, nil) on a non-empty buffer.
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrShortWrite
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if !waitOnce(w.retryDelay) {
			return n, err
		}
	}
}

func waitOnce(retryDelay time.Duration) bool {
	// returns whether the caller should retry
	if retryDelay < 0 {
		return false
	}
	if retryDelay == 0 {
		// Cooperative yield to avoid burning a full core when emulating
		// blocking on top of a non-blocking transport.
		runtime.Gosched()
		return true
	}
	time.Sleep(retryDelay)
	return true
}
