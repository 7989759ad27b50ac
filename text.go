package printf

// strnlen is the bounded length scan of the string renderer. Go strings
// may legally carry interior NUL when they wrap C-style buffers; the
// renderer treats the first NUL as end of data.
func strnlen(s string, limit uint) uint {
	var n uint
	for n < limit && n < uint(len(s)) && s[n] != 0 {
		n++
	}
	return n
}

// renderString emits one string directive. The content length is the
// NUL-bounded byte count, capped by precision when one was given; pad
// spaces go before or after the bytes according to the justify flag.
func (st *state) renderString(s string) {
	limit := ^uint(0)
	if st.prec != 0 {
		limit = uint(st.prec)
	}
	l := strnlen(s, limit)
	if st.flags&flagPrecision != 0 && uint(st.prec) < l {
		l = uint(st.prec)
	}

	if st.flags&flagLeft == 0 {
		st.pad(l)
	}
	for i := 0; i < len(s) && s[i] != 0; i++ {
		if st.flags&flagPrecision != 0 {
			if st.prec == 0 {
				break
			}
			st.prec--
		}
		st.put(s[i])
	}
	if st.flags&flagLeft != 0 {
		st.pad(l)
	}
}

// renderChar emits one character directive: a lone byte padded to the
// field width.
func (st *state) renderChar(c byte) {
	if st.flags&flagLeft == 0 {
		st.pad(1)
	}
	st.put(c)
	if st.flags&flagLeft != 0 {
		st.pad(1)
	}
}
