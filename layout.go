package printf

// layout emits everything that precedes the digits of a numeric
// directive: pad spaces, sign character, radix prefix, leading zeros.
// It consumes width and precision as it accounts for each piece, in the
// one order that yields printf field alignment. Whatever width survives
// belongs to the trailing pad of a left-justified field and is spent by
// the converter.
func (st *state) layout() {
	st.width = sub8(st.width, st.digits)
	st.prec = sub8(st.prec, st.digits)

	if st.width > 0 && st.flags&(flagNegative|flagPlus|flagSpace) != 0 {
		st.width--
	}
	if st.flags&flagPrecision != 0 {
		st.width = sub8(st.width, st.prec)
	}
	if st.flags&flagHash != 0 {
		if st.base == radixHex || st.base == radixBinary {
			st.width = sub8(st.width, 2)
		} else if st.width > 0 {
			st.width-- // octal prefix is the single '0'
		}
	}

	// Right-justified fields without zero padding lead with spaces.
	if st.flags&(flagLeft|flagZeroPad) == 0 {
		for st.width > 0 {
			st.put(' ')
			st.width--
		}
	}

	switch {
	case st.flags&flagNegative != 0:
		st.put('-')
	case st.flags&flagPlus != 0:
		st.put('+')
	case st.flags&flagSpace != 0:
		st.put(' ')
	}

	if st.flags&flagHash != 0 {
		st.put('0')
		switch {
		case st.base == radixHex && st.flags&flagUpper != 0:
			st.put('X')
		case st.base == radixHex:
			st.put('x')
		case st.base == radixBinary:
			st.put('b')
		}
	}

	// Leading zeros sit between prefix and digits: first the zeros an
	// explicit precision demands, then zero padding out to the width.
	if st.flags&flagLeft == 0 {
		for ; st.prec > 0; st.prec-- {
			st.put('0')
		}
		for st.flags&flagZeroPad != 0 && st.width > 0 {
			st.put('0')
			st.width--
		}
	}
}
