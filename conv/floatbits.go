package conv

// FloatLayout describes one IEEE-754 binary interchange format. MantissaBits
// counts the stored fraction bits, without the implicit leading bit.
type FloatLayout struct {
	ExponentBits uint
	MantissaBits uint
	Bias         int
}

var (
	Binary32 = FloatLayout{ExponentBits: 8, MantissaBits: 23, Bias: 127}
	Binary64 = FloatLayout{ExponentBits: 11, MantissaBits: 52, Bias: 1023}

	// Binary80 is the x87 extended format. Only its layout constants are
	// needed here; finite values travel through the binary64 engine when
	// they are exactly representable there (see FormatFloat80).
	Binary80 = FloatLayout{ExponentBits: 15, MantissaBits: 64, Bias: 16383}
)

type floatKind uint8

const (
	kindZero floatKind = iota
	kindNormal
	kindSubnormal
	kindInf
	kindNaN
)

// decodedFloat is the result of pulling a value apart into its fields. The
// mantissa carries the implicit leading bit for normal values, so that
// value = mant * 2^exp holds for every finite decodedFloat.
type decodedFloat struct {
	neg    bool
	mant   uint64
	exp    int
	kind   floatKind
	layout FloatLayout
}

// decompose splits the raw bit pattern of a binary32 or binary64 value. A
// binary32 mantissa is widened to uint64 here so the digit engines never
// branch on the source width again.
func decompose(bits uint64, layout FloatLayout) decodedFloat {
	d := decodedFloat{layout: layout}
	d.neg = bits>>(layout.ExponentBits+layout.MantissaBits)&1 == 1
	bexp := uint(bits>>layout.MantissaBits) & (1<<layout.ExponentBits - 1)
	frac := bits & (uint64(1)<<layout.MantissaBits - 1)

	switch {
	case bexp == 1<<layout.ExponentBits-1:
		if frac == 0 {
			d.kind = kindInf
		} else {
			d.kind = kindNaN
		}
	case bexp == 0:
		if frac == 0 {
			d.kind = kindZero
			return d
		}
		d.kind = kindSubnormal
		d.mant = frac
		d.exp = 1 - layout.Bias - int(layout.MantissaBits)
	default:
		d.kind = kindNormal
		d.mant = frac | uint64(1)<<layout.MantissaBits
		d.exp = int(bexp) - layout.Bias - int(layout.MantissaBits)
	}
	return d
}

// binaryExponent is the power of two attached to the leading digit in %a
// output. Subnormals stay unnormalized, so their exponent is pinned at the
// format's minimum.
func (d decodedFloat) binaryExponent() int {
	return d.exp + int(d.layout.MantissaBits)
}
