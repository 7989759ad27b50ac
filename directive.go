package printf

// flags collects the switches gathered while scanning one conversion
// directive. All of them fit a single machine halfword so a directive's
// whole parse state stays register-resident.
type flags uint16

const (
	flagZeroPad flags = 1 << iota // '0': pad the field with leading zeros
	flagLeft                      // '-': left-justify within the field
	flagPlus                      // '+': print a plus before positive numbers
	flagSpace                     // ' ': print a space before positive numbers
	flagHash                      // '#': radix prefix for hex, octal, binary
	flagUpper                     // uppercase digit alphabet (X)
	flagChar                      // hh: value narrows to 8 bits
	flagShort                     // h: value narrows to 16 bits
	flagLong                      // l, and the word-sized length verbs
	flagLongLong                  // ll, and 64-bit length verbs on 32-bit targets
	flagPrecision                 // an explicit precision was given
	flagNegative                  // the converted value was negative
)

// radix selects the numeral system of one integer conversion.
type radix uint8

const (
	radixBinary radix = iota
	radixOctal
	radixDecimal
	radixHex
)

// Per-radix digit geometry, indexed by radix. Decimal is zero in both
// tables: its digits come from power-of-ten division, not shift and
// mask.
var (
	radixBits = [4]uint8{1, 3, 0, 4}
	radixMask = [4]uint8{1, 7, 0, 15}
)

// state carries one formatting call from scanner to sink. A fresh value
// lives on the caller's stack for the duration of the call and nothing
// survives it, so concurrent calls never share anything but the format
// string they were given.
type state struct {
	sink   Sink
	flags  flags
	width  uint8
	prec   uint8
	base   radix
	digits uint8
	n      int // characters emitted, counted even when the sink drops them
}

// put routes one character into the sink and counts it.
func (st *state) put(c byte) {
	st.sink.Put(c)
	st.n++
}

// pad emits spaces until the content length l reaches the field width.
func (st *state) pad(l uint) {
	for ; l < uint(st.width); l++ {
		st.put(' ')
	}
}

// sub8 is saturating subtraction; field arithmetic bottoms out at zero
// instead of wrapping.
func sub8(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}
