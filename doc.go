// Package printf is a self-contained formatted-output engine in the
// printf family, built for hosts where the standard library's fmt is
// too heavy: it allocates nothing, uses a small fixed amount of stack
// regardless of argument values, and is fully reentrant. Digits are
// produced most significant first by power-of-ten division or bit
// shifting and streamed straight to the output, so no conversion
// buffer ever exists.
//
// # Entry points
//
// [Printf] streams to the package-level [Output] device hook.
// [Fprintf] streams to an io.Writer. [Snprintf] fills a byte slice up
// to its length and NUL-terminates; [Sprintf] is its trusting sibling
// that uses the slice's full capacity. [Emit] and [EmitFrom] format
// into any [Sink], the latter drawing values from an [ArgSource]
// instead of a variadic list.
//
// All entry points return the untruncated character count, excluding
// any NUL terminator. Checking for truncation is the usual idiom:
//
//	n := printf.Snprintf(buf, "%s=%d", key, val)
//	if n >= len(buf) {
//		// output was cut short
//	}
//
// # Format strings
//
// A directive has the shape %[flags][width][.precision][length]verb.
//
// Verbs:
//
//	d, i    signed decimal
//	u       unsigned decimal
//	x, X    unsigned hexadecimal, lower or upper case
//	o       unsigned octal
//	b       unsigned binary
//	c       single character
//	s       string, stopping at an interior NUL if one exists
//	p       raw address: zero-padded full-width uppercase hex
//	%       literal percent sign
//
// Flags:
//
//	-       left-justify within the field width
//	0       pad numbers with leading zeros instead of spaces
//	+       always print a sign on signed conversions
//	space   print a space where the minus sign would go
//	#       radix prefix: 0x or 0X for hex, 0b for binary, 0 for octal
//
// Width and precision may each be a decimal run or '*', which consumes
// one argument; a negative '*' width left-justifies, a negative '*'
// precision reads as zero. Both are deliberately narrow: values
// truncate to the 0..255 range, keeping field arithmetic in single
// bytes. The returned character counts are ordinary ints and carry no
// such bound.
//
// Length modifiers hh, h, l, ll, t, z and j resolve each integer verb
// to one of two converter widths, the machine word or 64 bits; hh and h
// narrow the value to 8 or 16 bits first. There is no floating point.
//
// Semantics follow the embedded printf tradition rather than fmt: an
// unknown verb is emitted verbatim, a zero value under an explicit
// precision of zero prints nothing, and the lone zero digit of "%5d"
// with a zero value is appended after the padding rather than counted
// inside it.
//
// # Sinks and argument sources
//
// Output is abstracted behind [Sink], a one-method interface fed a
// character at a time. [DeviceSink] adapts a bare output primitive such
// as a UART register write; [BufferSink] fills a fixed byte slice and
// drops the overflow. The engine counts every character it produces
// whether or not the sink keeps it, which is what holds the
// would-be-length contract together under truncation.
//
// Arguments normally arrive as a variadic list. [EmitFrom] instead
// accepts an [ArgSource], letting callers stream values from whatever
// representation they already hold; the directive's resolved width
// class picks which method is read.
//
// # Concurrency
//
// A call builds its entire state on the caller's stack and shares
// nothing, so any number of goroutines may format concurrently as long
// as their sinks are independent. [Output] is read without
// synchronization and should be assigned before the first [Printf].
package printf
