package printf

import (
	"io"
	"os"
)

// Output is the device primitive behind [Printf]: the host's
// single-character output hookup, in the role a linked-in putchar plays
// on bare-metal targets. Assign it once at program start; the engine
// reads it on every call and never synchronizes around it. The default
// forwards to os.Stdout.
var Output = func(c byte) {
	b := [1]byte{c}
	_, _ = os.Stdout.Write(b[:])
}

// Printf formats args according to format and streams the result to
// [Output] one character at a time. It returns the number of
// characters emitted.
func Printf(format string, args ...any) int {
	return EmitFrom(DeviceSink{Out: Output}, format, &argList{args: args})
}

// Fprintf formats args according to format and writes the result to w.
// The count keeps the would-be-length contract even when w fails
// mid-stream; err reports the first write error.
func Fprintf(w io.Writer, format string, args ...any) (n int, err error) {
	s := writerSink{w: w}
	n = EmitFrom(&s, format, &argList{args: args})
	return n, s.err
}

// Snprintf formats args into dst, dropping whatever does not fit, and
// NUL-terminates what it wrote: after the characters when room remains,
// over the final one when dst filled up. A zero-length dst is not
// written at all.
//
// The return is the untruncated length, excluding the terminator; a
// return of len(dst) or more means the output was cut short.
func Snprintf(dst []byte, format string, args ...any) int {
	s := BufferSink{Buf: dst}
	n := EmitFrom(&s, format, &argList{args: args})
	s.Terminate()
	return n
}

// Sprintf is the trusting variant of [Snprintf]: it formats into the
// full backing capacity of dst, cap(dst) rather than len(dst), starting
// at index 0, and NUL-terminates. Callers typically hand it an empty
// slice of adequate capacity and re-slice to the returned count:
//
//	buf := make([]byte, 0, 64)
//	n := printf.Sprintf(buf, "%d/%d", done, total)
//	line := buf[:n]
//
// As with Snprintf the return is the untruncated length; re-slicing is
// only valid when it is below cap(dst).
func Sprintf(dst []byte, format string, args ...any) int {
	s := BufferSink{Buf: dst[:cap(dst)]}
	n := EmitFrom(&s, format, &argList{args: args})
	s.Terminate()
	return n
}

// Emit formats args into an arbitrary sink. It is the generalized form
// the convenience wrappers are built on.
func Emit(sink Sink, format string, args ...any) int {
	return EmitFrom(sink, format, &argList{args: args})
}
