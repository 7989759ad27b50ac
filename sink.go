package printf

import "io"

// Sink accepts formatted output one character at a time. The
// interpreter pushes every character it produces into the sink and
// keeps its own count, so a sink is free to drop characters without
// disturbing the would-be-length contract of the entry points.
type Sink interface {
	Put(c byte)
}

// DeviceSink forwards characters to a single-character device
// primitive, the shape of output hookup found on serial consoles and
// memory-mapped UARTs. The NUL character never reaches the device; it
// still counts toward the emitted total.
type DeviceSink struct {
	Out func(c byte)
}

func (d DeviceSink) Put(c byte) {
	if c != 0 {
		d.Out(c)
	}
}

// BufferSink copies characters into a fixed buffer. Once the buffer is
// full further characters are dropped silently; the interpreter keeps
// counting them, which is what gives [Snprintf] its would-be-length
// return.
type BufferSink struct {
	Buf []byte
	pos int
}

func (b *BufferSink) Put(c byte) {
	if b.pos < len(b.Buf) {
		b.Buf[b.pos] = c
		b.pos++
	}
}

// Len reports how many characters the buffer actually holds.
func (b *BufferSink) Len() int { return b.pos }

// Reset rewinds the sink so the buffer can be filled again.
func (b *BufferSink) Reset() { b.pos = 0 }

// Terminate writes the trailing NUL: at the current position when room
// remains, over the final character when the buffer filled up. A
// zero-length buffer is left untouched.
func (b *BufferSink) Terminate() {
	switch {
	case len(b.Buf) == 0:
	case b.pos < len(b.Buf):
		b.Buf[b.pos] = 0
	default:
		b.Buf[len(b.Buf)-1] = 0
	}
}

// writerSink adapts an io.Writer as a character device for [Fprintf].
// After the first write error it stops forwarding and holds the error;
// the interpreter's count is unaffected.
type writerSink struct {
	w   io.Writer
	err error
	b   [1]byte
}

func (s *writerSink) Put(c byte) {
	if c == 0 || s.err != nil {
		return
	}
	s.b[0] = c
	if _, err := s.w.Write(s.b[:]); err != nil {
		s.err = err
	}
}
