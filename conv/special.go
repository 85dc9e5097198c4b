package conv

// appendSpecial writes nan or inf, cased by the verb, with the sign bit of a
// NaN still deciding a leading minus the way C printf does.
func appendSpecial(dst []byte, f decodedFloat, upper bool, opts FormatOptions) []byte {
	dst = appendSign(dst, f.neg, opts)
	s := "nan"
	if f.kind == kindInf {
		s = "inf"
	}
	if upper {
		if f.kind == kindInf {
			s = "INF"
		} else {
			s = "NAN"
		}
	}
	return append(dst, s...)
}
