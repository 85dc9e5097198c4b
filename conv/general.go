package conv

// formatGeneral renders %g/%G. The value is rounded to prec significant
// digits first; the style is then chosen from the rounded decimal exponent,
// so values that rounding pushes across a power of ten pick their style from
// the result, not the input. Trailing zeros are trimmed unless the alternate
// flag keeps them.
func formatGeneral(buf []byte, f decodedFloat, upper bool, opts FormatOptions) []byte {
	prec := opts.Precision
	if prec < 0 {
		prec = 6
	}
	if prec == 0 {
		prec = 1
	}
	if f.kind == kindZero {
		dst := ensure(buf, prec+3)
		dst = appendSign(dst, f.neg, opts)
		dst = append(dst, '0')
		if opts.Alternate {
			dst = append(dst, '.')
			for i := 1; i < prec; i++ {
				dst = append(dst, '0')
			}
		}
		return dst
	}
	var d decimal
	d.extract(f, prec+1, noLimit)
	d.roundAt(prec, opts.Rounding, f.neg)
	for !opts.Alternate && d.nd > 1 && d.d[d.nd-1] == '0' {
		d.nd--
	}
	x := d.dp - 1
	dst := ensure(buf, prec+10)
	dst = appendSign(dst, f.neg, opts)
	if x < -4 || x >= prec {
		e := byte('e')
		if upper {
			e = 'E'
		}
		ep := prec - 1
		if !opts.Alternate {
			ep = d.nd - 1
		}
		return fmtE(dst, &d, ep, e, opts.Alternate)
	}
	fp := prec - 1 - x
	if !opts.Alternate {
		fp = d.nd - d.dp
		if fp < 0 {
			fp = 0
		}
	}
	return fmtF(dst, &d, fp, opts.Alternate)
}
