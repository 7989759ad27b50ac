package printf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitCount(t *testing.T) {
	t.Parallel()

	t.Run("decimal", func(t *testing.T) {
		t.Parallel()
		tests := map[uint64]uint8{
			0:                    0,
			1:                    1,
			9:                    1,
			10:                   2,
			99:                   2,
			100:                  3,
			9999999999999999999:  19,
			10000000000000000000: 20,
			18446744073709551615: 20,
		}
		for value, want := range tests {
			assert.Equal(t, want, digitCount(value, radixDecimal, pow10[:]), "value %d", value)
		}
	})

	t.Run("word table prefix", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint8(1), digitCount(uint(9), radixDecimal, pow10[:pow10Word]))
		assert.Equal(t, uint8(10), digitCount(uint(4294967295), radixDecimal, pow10[:pow10Word]))
	})

	t.Run("shifted bases", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint8(0), digitCount(uint64(0), radixHex, pow10[:]))
		assert.Equal(t, uint8(2), digitCount(uint64(0xff), radixHex, pow10[:]))
		assert.Equal(t, uint8(3), digitCount(uint64(0x100), radixHex, pow10[:]))
		assert.Equal(t, uint8(1), digitCount(uint64(7), radixOctal, pow10[:]))
		assert.Equal(t, uint8(2), digitCount(uint64(8), radixOctal, pow10[:]))
		assert.Equal(t, uint8(1), digitCount(uint64(1), radixBinary, pow10[:]))
		assert.Equal(t, uint8(8), digitCount(uint64(255), radixBinary, pow10[:]))
	})
}

func TestDigitChar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('0'), digitChar(0, false))
	assert.Equal(t, byte('9'), digitChar(9, false))
	assert.Equal(t, byte('a'), digitChar(10, false))
	assert.Equal(t, byte('f'), digitChar(15, false))
	assert.Equal(t, byte('A'), digitChar(10, true))
	assert.Equal(t, byte('F'), digitChar(15, true))
	assert.Equal(t, byte('5'), digitChar(5, true), "uppercase leaves plain digits alone")
}

func TestSub8(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(2), sub8(5, 3))
	assert.Equal(t, uint8(0), sub8(3, 5))
	assert.Equal(t, uint8(0), sub8(0, 0))
	assert.Equal(t, uint8(0), sub8(255, 255))
	assert.Equal(t, uint8(255), sub8(255, 0))
}

func TestStrnlen(t *testing.T) {
	t.Parallel()

	noLimit := ^uint(0)
	assert.Equal(t, uint(3), strnlen("abc", noLimit))
	assert.Equal(t, uint(2), strnlen("ab\x00c", noLimit))
	assert.Equal(t, uint(2), strnlen("abc", 2))
	assert.Equal(t, uint(0), strnlen("", noLimit))
	assert.Equal(t, uint(0), strnlen("\x00abc", noLimit))
}

func TestAtoiu(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		s     string
		start int
		want  uint
		next  int
	}{
		"run then letter": {s: "123x", want: 123, next: 3},
		"whole string":    {s: "42", want: 42, next: 2},
		"no digits":       {s: "x9", want: 0, next: 0},
		"offset start":    {s: "a99", start: 1, want: 99, next: 3},
		"empty":           {s: ""},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, i := atoiu(tt.s, tt.start)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.next, i)
		})
	}
}

func TestLayoutOrder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flags     flags
		width     uint8
		prec      uint8
		base      radix
		digits    uint8
		want      string
		leftWidth uint8 // width remaining for the trailing pad
	}{
		"sign consumes width": {
			flags: flagNegative, width: 5, base: radixDecimal, digits: 2,
			want: "  -",
		},
		"hex prefix consumes two": {
			flags: flagHash, width: 6, base: radixHex, digits: 2,
			want: "  0x",
		},
		"zero padding": {
			flags: flagZeroPad, width: 5, base: radixDecimal, digits: 2,
			want: "000",
		},
		"precision zeros inside width": {
			flags: flagPrecision, width: 8, prec: 5, base: radixDecimal, digits: 2,
			want: "   000",
		},
		"left justify defers width": {
			flags: flagLeft, width: 7, base: radixDecimal, digits: 3,
			want: "", leftWidth: 4,
		},
		"octal prefix consumes one": {
			flags: flagHash, width: 4, base: radixOctal, digits: 2,
			want: " 0",
		},
		"zero padded binary prefix": {
			flags: flagHash | flagZeroPad, width: 6, base: radixBinary, digits: 1,
			want: "0b000",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sink := &BufferSink{Buf: make([]byte, 32)}
			st := state{
				sink:   sink,
				flags:  tt.flags,
				width:  tt.width,
				prec:   tt.prec,
				base:   tt.base,
				digits: tt.digits,
			}
			st.layout()
			assert.Equal(t, tt.want, string(sink.Buf[:sink.pos]))
			assert.Equal(t, tt.leftWidth, st.width)
		})
	}
}

func TestPrepareZeroDropsHash(t *testing.T) {
	t.Parallel()

	st := state{flags: flagHash, base: radixHex}
	prepare(&st, uint64(0), false, pow10[:])
	assert.Zero(t, st.flags&flagHash)
	assert.Zero(t, st.digits)

	st = state{flags: flagHash, base: radixHex}
	prepare(&st, uint64(1), false, pow10[:])
	assert.NotZero(t, st.flags&flagHash)
	assert.Equal(t, uint8(1), st.digits)
}

func TestEmitFromAllocatesNothing(t *testing.T) {
	sink := &BufferSink{Buf: make([]byte, 128)}
	src := &argList{args: []any{42, uint64(0xbeef), "text", -7}}

	allocs := testing.AllocsPerRun(200, func() {
		sink.Reset()
		src.next = 0
		EmitFrom(sink, "%d %#llx %s %+05d", src)
	})
	assert.Zero(t, allocs)
}

func TestArgListExhaustion(t *testing.T) {
	t.Parallel()

	src := &argList{args: []any{1}}
	assert.Equal(t, 1, src.NextInt())
	assert.Equal(t, 0, src.NextInt())
	assert.Equal(t, "", src.NextString())
	assert.Equal(t, uintptr(0), src.NextPointer())
}

func TestArgListWidening(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   any
		want int64
	}{
		"int":        {in: int(-5), want: -5},
		"int8":       {in: int8(-5), want: -5},
		"int16":      {in: int16(-5), want: -5},
		"int32":      {in: int32(-5), want: -5},
		"int64":      {in: int64(-5), want: -5},
		"uint":       {in: uint(5), want: 5},
		"uint8":      {in: uint8(5), want: 5},
		"uint16":     {in: uint16(5), want: 5},
		"uint32":     {in: uint32(5), want: 5},
		"uint64":     {in: uint64(5), want: 5},
		"uintptr":    {in: uintptr(5), want: 5},
		"non number": {in: "5"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, asInt64(tt.in))
		})
	}
}

func TestAsUint64KeepsBitPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0xffffffffffffffff), asUint64(int64(-1)))
	assert.Equal(t, uint64(0xffffffffffffffff), asUint64(int8(-1)))
	assert.Equal(t, uint64(5), asUint64(uint8(5)))
	assert.Equal(t, uint64(0), asUint64(3.14))
}
