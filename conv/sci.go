package conv

// formatSci renders %e/%E: one digit before the point, prec after it
// (default six), and a signed decimal exponent of at least two digits.
func formatSci(buf []byte, f decodedFloat, upper bool, opts FormatOptions) []byte {
	prec := opts.Precision
	if prec < 0 {
		prec = 6
	}
	var d decimal
	if f.kind != kindZero {
		d.extract(f, prec+2, noLimit)
		d.roundAt(prec+1, opts.Rounding, f.neg)
	}
	dst := ensure(buf, prec+10)
	dst = appendSign(dst, f.neg, opts)
	e := byte('e')
	if upper {
		e = 'E'
	}
	return fmtE(dst, &d, prec, e, opts.Alternate)
}

// fmtE writes a rounded decimal in exponential form. An empty decimal is a
// true zero and keeps exponent zero.
func fmtE(dst []byte, d *decimal, prec int, e byte, alt bool) []byte {
	ch := byte('0')
	if d.nd > 0 {
		ch = d.d[0]
	}
	dst = append(dst, ch)
	if prec > 0 || alt {
		dst = append(dst, '.')
		for i := 1; i <= prec; i++ {
			if i < d.nd {
				dst = append(dst, d.d[i])
			} else {
				dst = append(dst, '0')
			}
		}
	}
	exp := 0
	if d.nd > 0 {
		exp = d.dp - 1
	}
	dst = append(dst, e)
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	} else {
		dst = append(dst, '+')
	}
	// Decimal exponents of binary32/binary64 values never reach four digits.
	switch {
	case exp < 10:
		dst = append(dst, '0', digits[exp])
	case exp < 100:
		dst = append(dst, digits2[exp]...)
	default:
		dst = append(dst, digits[exp/100])
		dst = append(dst, digits2[exp%100]...)
	}
	return dst
}
