package conv

// formatHex renders %a/%A straight from the mantissa bits: a leading 1 (0
// for subnormals and zero), the fraction as hex digits, and the signed power
// of two of the leading bit. Without a precision, exactly the digits needed
// for the full mantissa are written, trailing zero nibbles trimmed. binary32
// fractions are left-aligned by one bit so they fill whole nibbles.
func formatHex(buf []byte, f decodedFloat, upper bool, opts FormatOptions) []byte {
	hexDigits := digits
	x, p := byte('x'), byte('p')
	if upper {
		hexDigits = digitsUpper
		x, p = 'X', 'P'
	}

	nib := int(f.layout.MantissaBits+3) / 4
	lead := byte('0')
	var frac uint64
	exp := 0
	if f.kind != kindZero {
		frac = (f.mant &^ (uint64(1) << f.layout.MantissaBits)) << (uint(nib)*4 - f.layout.MantissaBits)
		exp = f.binaryExponent()
		if f.kind == kindNormal {
			lead = '1'
		}
	}

	prec := opts.Precision
	n := nib
	out := n
	switch {
	case prec < 0:
		for n > 0 && frac&0xF == 0 {
			frac >>= 4
			n--
		}
		out = n
	case prec < n:
		drop := uint(n-prec) * 4
		kept := frac >> drop
		class := classifyBits(frac&(uint64(1)<<drop-1), drop)
		odd := kept&1 == 1
		if prec == 0 {
			odd = lead == '1'
		}
		if shouldRoundUp(class, opts.Rounding, f.neg, odd) {
			kept++
			if kept>>(uint(prec)*4) != 0 {
				// The carry leaves the fraction and lands on the leading
				// digit; the binary exponent does not move.
				kept = 0
				lead++
			}
		}
		frac = kept
		n = prec
		out = prec
	default:
		out = prec
	}

	esign := byte('+')
	if exp < 0 {
		esign = '-'
		exp = -exp
	}
	var eb [5]byte
	ebuf := UInt16ToBytes(uint16(exp), &eb)

	dst := ensure(buf, out+len(ebuf)+8)
	dst = appendSign(dst, f.neg, opts)
	dst = append(dst, '0', x, lead)
	if out > 0 || opts.Alternate {
		dst = append(dst, '.')
		for i := 0; i < out; i++ {
			if i < n {
				dst = append(dst, hexDigits[frac>>(uint(n-1-i)*4)&0xF])
			} else {
				dst = append(dst, '0')
			}
		}
	}
	dst = append(dst, p, esign)
	return append(dst, ebuf...)
}
