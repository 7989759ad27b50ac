package printf

// Machine-word geometry, fixed at compile time.
const (
	wordBits    = 32 << (^uint(0) >> 63)
	uintptrBits = 32 << (^uintptr(0) >> 63)
)

// pow10 holds the ascending powers of ten the 64-bit converter scans
// and divides by; pow10Word is the length of the prefix that fits a
// machine word, which bounds the word-width converter (ten entries on
// 32-bit targets). Walking a table replaces the usual divide-and-count
// loop and, because digits come out most significant first, the
// converter needs no buffer to reverse into.
var pow10 = [20]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

const pow10Word = wordBits / 32 * 10

// digitCount reports how many digits value renders in under the given
// base: decimal by table scan, the power-of-two bases by shifting.
// Zero counts as zero digits; the converter emits its lone '0'
// separately.
func digitCount[T ~uint | ~uint64](value T, base radix, table []uint64) uint8 {
	var d uint8
	if base == radixDecimal {
		for int(d) < len(table) && uint64(value) >= table[d] {
			d++
		}
		return d
	}
	for ; value > 0; value >>= radixBits[base] {
		d++
	}
	return d
}

// digitChar maps a single digit to ASCII, honoring the uppercase
// alphabet for 10 through 15.
func digitChar(d byte, upper bool) byte {
	if d < 10 {
		return '0' + d
	}
	if upper {
		return 'A' + d - 10
	}
	return 'a' + d - 10
}

// prepare records value's digit count and sign and applies the
// zero-value rule before layout runs: zero takes no radix prefix.
func prepare[T ~uint | ~uint64](st *state, value T, negative bool, table []uint64) {
	st.digits = digitCount(value, st.base, table)
	if value == 0 {
		st.flags &^= flagHash
	}
	if negative {
		st.flags |= flagNegative
	}
}

// ntoa streams value's digits most significant first straight into the
// sink. Each decimal digit is one division by the matching power of
// ten; power-of-two bases shift and mask instead. [state.layout] must
// have run first; for left-justified fields the trailing pad is emitted
// here, completing the directive in a single pass.
//
// A value of zero renders as '0' unless an explicit precision asked for
// a zero-digit rendering, in which case nothing is emitted.
func ntoa[T ~uint | ~uint64](st *state, value T, table []uint64) {
	if st.flags&flagPrecision == 0 || value != 0 {
		switch {
		case value == 0:
			st.put('0')
		case st.base == radixDecimal:
			for st.digits > 0 {
				st.digits--
				p := T(table[st.digits])
				st.put(byte(value/p) + '0')
				value %= p
			}
		default:
			shift := uint(radixBits[st.base])
			mask := T(radixMask[st.base])
			for ; st.digits > 0; st.digits-- {
				d := byte((value >> (uint(st.digits-1) * shift)) & mask)
				st.put(digitChar(d, st.flags&flagUpper != 0))
			}
		}
	}
	for st.flags&flagLeft != 0 && st.width > 0 {
		st.put(' ')
		st.width--
	}
}

// renderWord runs the full numeric pipeline at machine-word width.
func (st *state) renderWord(u uint, negative bool) {
	prepare(st, u, negative, pow10[:pow10Word])
	st.layout()
	ntoa(st, u, pow10[:pow10Word])
}

// render64 runs the full numeric pipeline at 64-bit width.
func (st *state) render64(u uint64, negative bool) {
	prepare(st, u, negative, pow10[:])
	st.layout()
	ntoa(st, u, pow10[:])
}
