package conv

// formatFixed renders %f/%F: the exact integer part, then prec fractional
// digits, default six. Rounding happens at the last fractional position and
// its carry may add one leading integer digit.
func formatFixed(buf []byte, f decodedFloat, opts FormatOptions) []byte {
	prec := opts.Precision
	if prec < 0 {
		prec = 6
	}
	var d decimal
	if f.kind != kindZero {
		d.extract(f, noLimit, prec+1)
		d.roundAt(d.dp+prec, opts.Rounding, f.neg)
	}
	n := prec + 3
	if d.dp > 0 {
		n += d.dp
	}
	dst := ensure(buf, n)
	dst = appendSign(dst, f.neg, opts)
	return fmtF(dst, &d, prec, opts.Alternate)
}

// fmtF writes the digits of a rounded decimal in fixed-point form,
// zero-filling every position outside the stored range.
func fmtF(dst []byte, d *decimal, prec int, alt bool) []byte {
	if d.dp > 0 {
		m := d.nd
		if d.dp < m {
			m = d.dp
		}
		dst = append(dst, d.d[:m]...)
		for i := m; i < d.dp; i++ {
			dst = append(dst, '0')
		}
	} else {
		dst = append(dst, '0')
	}
	if prec > 0 || alt {
		dst = append(dst, '.')
		for i := 0; i < prec; i++ {
			if j := d.dp + i; 0 <= j && j < d.nd {
				dst = append(dst, d.d[j])
			} else {
				dst = append(dst, '0')
			}
		}
	}
	return dst
}
