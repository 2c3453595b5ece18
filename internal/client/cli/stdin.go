package cli

import (
	"context"
	"io"
)

type chunk struct {
	b   []byte
	err error
}

// cancelableReader delivers the bytes of src until ctx is done; after that
// every Read fails with ctx.Err(). src is read on a separate goroutine, which
// may stay blocked in src.Read until the process exits.
type cancelableReader struct {
	ctx     context.Context
	chunks  chan chunk
	pending []byte
	err     error
}

func newCancelableReader(ctx context.Context, src io.Reader) *cancelableReader {
	r := &cancelableReader{ctx: ctx, chunks: make(chan chunk)}
	go r.pump(src)
	return r
}

func (r *cancelableReader) pump(src io.Reader) {
	for {
		buf := make([]byte, 4096)
		n, err := src.Read(buf)
		select {
		case r.chunks <- chunk{b: buf[:n], err: err}:
		case <-r.ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (r *cancelableReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		select {
		case <-r.ctx.Done():
			return 0, r.ctx.Err()
		case c := <-r.chunks:
			r.pending, r.err = c.b, c.err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	if len(r.pending) == 0 && r.err != nil {
		return n, r.err
	}
	return n, nil
}
