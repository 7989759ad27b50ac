package printf

// EmitFrom interprets format, pulling one value from src per conversion
// directive and streaming the output into sink. It returns the number
// of characters produced, independent of how many the sink kept. Every
// entry point in the package routes through here.
func EmitFrom(sink Sink, format string, src ArgSource) int {
	st := state{sink: sink}
	st.run(format, src)
	return st.n
}

// run is the interpreter loop: literal bytes pass straight through, '%'
// opens a directive scanned as %[flags][width][.precision][length]verb.
func (st *state) run(format string, src ArgSource) {
	i := 0
	for i < len(format) {
		if format[i] != '%' {
			st.put(format[i])
			i++
			continue
		}
		i++

		st.flags = 0
	flags:
		for i < len(format) {
			switch format[i] {
			case '0':
				st.flags |= flagZeroPad
			case '-':
				st.flags |= flagLeft
			case '+':
				st.flags |= flagPlus
			case ' ':
				st.flags |= flagSpace
			case '#':
				st.flags |= flagHash
			default:
				break flags
			}
			i++
		}

		st.width = 0
		if i < len(format) && isDigit(format[i]) {
			var w uint
			w, i = atoiu(format, i)
			st.width = uint8(w)
		} else if i < len(format) && format[i] == '*' {
			w := src.NextInt()
			if w < 0 {
				st.flags |= flagLeft
				w = -w
			}
			st.width = uint8(w)
			i++
		}

		st.prec = 0
		if i < len(format) && format[i] == '.' {
			st.flags |= flagPrecision
			i++
			if i < len(format) && isDigit(format[i]) {
				var p uint
				p, i = atoiu(format, i)
				st.prec = uint8(p)
			} else if i < len(format) && format[i] == '*' {
				if p := src.NextInt(); p > 0 {
					st.prec = uint8(p)
				}
				i++
			}
		}

		if i < len(format) {
			switch format[i] {
			case 'l':
				st.flags |= flagLong
				i++
				if i < len(format) && format[i] == 'l' {
					st.flags |= flagLongLong
					i++
				}
			case 'h':
				st.flags |= flagShort
				i++
				if i < len(format) && format[i] == 'h' {
					st.flags |= flagChar
					i++
				}
			case 't':
				// ptrdiff analogue: the machine word.
				st.flags |= flagLong
				i++
			case 'j':
				// intmax analogue: 64 bits whatever the word size.
				if wordBits < 64 {
					st.flags |= flagLongLong
				} else {
					st.flags |= flagLong
				}
				i++
			case 'z':
				// size analogue: a uintptr.
				if uintptrBits > wordBits {
					st.flags |= flagLongLong
				} else {
					st.flags |= flagLong
				}
				i++
			}
		}

		if i >= len(format) {
			return // directive cut off by end of format
		}

		verb := format[i]
		i++
		switch verb {
		case 'd', 'i', 'u', 'x', 'X', 'o', 'b':
			st.number(verb, src)
		case 'c':
			st.renderChar(byte(src.NextInt()))
		case 's':
			st.renderString(src.NextString())
		case 'p':
			st.pointer(src)
		case '%':
			st.put('%')
		default:
			st.put(verb) // unknown verbs fall through verbatim
		}
	}
}

// number renders one integer directive: fix the radix, apply the
// per-verb flag rules, then read the value at the resolved width class
// and hand it to the matching pipeline.
func (st *state) number(verb byte, src ArgSource) {
	switch verb {
	case 'x', 'X':
		st.base = radixHex
	case 'o':
		st.base = radixOctal
	case 'b':
		st.base = radixBinary
	default:
		st.base = radixDecimal
		st.flags &^= flagHash // no radix prefix in decimal
	}
	if verb == 'X' {
		st.flags |= flagUpper
	}
	if verb != 'i' && verb != 'd' {
		st.flags &^= flagPlus | flagSpace // sign flags are signed-only
	}
	if st.flags&flagPrecision != 0 {
		st.flags &^= flagZeroPad // precision supplies the zeros
	}

	if verb == 'i' || verb == 'd' {
		if st.flags&flagLongLong != 0 {
			v := src.NextInt64()
			u := uint64(v)
			if v < 0 {
				u = uint64(-v)
			}
			st.render64(u, v < 0)
			return
		}
		v := src.NextInt()
		switch {
		case st.flags&flagChar != 0:
			v = int(int8(v))
		case st.flags&flagShort != 0:
			v = int(int16(v))
		}
		u := uint(v)
		if v < 0 {
			u = uint(-v)
		}
		st.renderWord(u, v < 0)
		return
	}

	if st.flags&flagLongLong != 0 {
		st.render64(src.NextUint64(), false)
		return
	}
	u := src.NextUint()
	switch {
	case st.flags&flagChar != 0:
		u = uint(uint8(u))
	case st.flags&flagShort != 0:
		u = uint(uint16(u))
	}
	st.renderWord(u, false)
}

// pointer renders a raw address: full-width, zero-padded, uppercase
// hex, at whichever width class holds a uintptr on this target.
func (st *state) pointer(src ArgSource) {
	st.width = uintptrBits / 4
	st.flags |= flagZeroPad | flagUpper
	st.base = radixHex
	v := src.NextPointer()
	if uintptrBits > wordBits {
		st.render64(uint64(v), false)
	} else {
		st.renderWord(uint(v), false)
	}
}

// isDigit reports whether ch is an ASCII decimal digit.
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// atoiu consumes the decimal run starting at i and returns its value
// together with the first unconsumed index.
func atoiu(s string, i int) (uint, int) {
	var v uint
	for i < len(s) && isDigit(s[i]) {
		v = v*10 + uint(s[i]-'0')
		i++
	}
	return v, i
}
