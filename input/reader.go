package input

import (
	"context"
	"io"
)

// Reader decodes key events from a raw byte stream on background
// goroutines.
type Reader struct {
	events chan KeyEvent
}

// NewReader starts decoding r. The returned Reader's channel closes
// when r returns an error or EOF, or when ctx is canceled.
// Cancellation stops delivery and closes the channel right away; a
// read blocked on the terminal cannot be interrupted portably, so the
// decoding goroutine itself unwinds when that read next returns.
func NewReader(ctx context.Context, r io.Reader) *Reader {
	rd := &Reader{events: make(chan KeyEvent, 32)}
	decoded := make(chan KeyEvent)
	go decode(ctx, r, decoded)
	go rd.forward(ctx, decoded)
	return rd
}

// Events returns the stream of decoded keystrokes.
func (rd *Reader) Events() <-chan KeyEvent {
	return rd.events
}

func (rd *Reader) forward(ctx context.Context, decoded <-chan KeyEvent) {
	defer close(rd.events)
	for {
		select {
		case ev, ok := <-decoded:
			if !ok {
				return
			}
			select {
			case rd.events <- ev:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func decode(ctx context.Context, r io.Reader, out chan<- KeyEvent) {
	defer close(out)

	var pending []byte
	chunk := make([]byte, 256)
	for {
		n, err := r.Read(chunk)
		if ctx.Err() != nil {
			return
		}
		if n > 0 {
			pending = append(pending, chunk[:n]...)
			// A full chunk suggests more bytes are in flight, so hold
			// a trailing lone ESC until the rest arrives.
			var ok bool
			pending, ok = drainInto(ctx, out, pending, n < len(chunk))
			if !ok {
				return
			}
		}
		if err != nil {
			if len(pending) > 0 {
				drainInto(ctx, out, pending, true)
			}
			return
		}
	}
}

// drainInto emits every complete event at the front of buf and returns
// the undecoded tail. It reports false once ctx is canceled.
func drainInto(ctx context.Context, out chan<- KeyEvent, buf []byte, final bool) ([]byte, bool) {
	for len(buf) > 0 {
		ev, n, ok := parseKey(buf, final)
		if n == 0 {
			break
		}
		buf = buf[n:]
		if ok {
			select {
			case out <- ev:
			case <-ctx.Done():
				return buf, false
			}
		}
	}
	return buf, true
}
