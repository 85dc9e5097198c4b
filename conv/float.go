package conv

import (
	"math"
	"math/bits"

	"github.com/greenplum-db/gp-format-go-libs/gperror"
)

// Error codes for the two caller contract violations the formatter rejects.
const (
	UnsupportedVerb        gperror.ErrorCode = 8101
	UnrepresentableFloat80 gperror.ErrorCode = 8102
)

// FormatOptions carries everything about a conversion except the value and
// the verb. The zero value of Rounding is NearestTiesToEven; Precision must
// be set negative to request the verb's default, since zero is a meaningful
// precision.
type FormatOptions struct {
	Precision int
	Alternate bool
	Plus      bool
	Space     bool
	Rounding  RoundingMode
}

// DefaultFormatOptions returns options with an unspecified precision and
// default rounding.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Precision: -1}
}

// ValidVerb reports whether verb is one of the supported printf conversion
// letters a, e, f, g in either case.
func ValidVerb(verb byte) bool {
	switch verb | 0x20 {
	case 'a', 'e', 'f', 'g':
		return true
	}
	return false
}

// FormatFloat64 renders n per the printf conversion verb into buf, or into a
// freshly allocated slice when buf is too small. The returned slice holds
// the text; no padding or grouping is applied.
func FormatFloat64(buf []byte, n float64, verb byte, opts FormatOptions) ([]byte, gperror.Error) {
	return format(buf, math.Float64bits(n), Binary64, verb, opts)
}

// FormatFloat32 renders n at binary32 width. Decimal conversions print the
// same digits its binary64 widening would; the hex conversion shows the
// 24-bit mantissa instead of the 53-bit one.
func FormatFloat32(buf []byte, n float32, verb byte, opts FormatOptions) ([]byte, gperror.Error) {
	return format(buf, uint64(math.Float32bits(n)), Binary32, verb, opts)
}

// FormatFloat80 renders an x87 extended-precision value supplied as raw
// fields: se holds the sign and 15-bit biased exponent, mant the mantissa
// with its explicit integer bit. Specials and zeros format directly. A
// finite value is accepted only when exactly representable as binary64 and
// is then routed through the binary64 engine; everything else, including
// non-canonical encodings, is rejected.
func FormatFloat80(buf []byte, se uint16, mant uint64, verb byte, opts FormatOptions) ([]byte, gperror.Error) {
	var sign uint64
	if se&0x8000 != 0 {
		sign = uint64(1) << 63
	}
	bexp := int(se & 0x7fff)

	if bexp == 0x7fff {
		b64 := sign | 0x7ff<<52
		if mant != 1<<63 {
			b64 |= 1 << 51
		}
		return format(buf, b64, Binary64, verb, opts)
	}
	if mant == 0 {
		if bexp != 0 {
			return nil, gperror.New(UnrepresentableFloat80, "non-canonical extended-precision encoding %04x:%016x", se, mant)
		}
		return format(buf, sign, Binary64, verb, opts)
	}
	if bexp > 0 && mant>>63 == 0 {
		return nil, gperror.New(UnrepresentableFloat80, "non-canonical extended-precision encoding %04x:%016x", se, mant)
	}

	e2 := bexp - Binary80.Bias - 63
	if bexp == 0 {
		e2 = 1 - Binary80.Bias - 63
	}
	tz := bits.TrailingZeros64(mant)
	m := mant >> uint(tz)
	p := e2 + tz
	w := bits.Len64(m)
	if w > 53 {
		return nil, gperror.New(UnrepresentableFloat80, "extended-precision value needs %d mantissa bits; binary64 holds 53", w)
	}
	if p+w-1 > 1023 || p < -1074 {
		return nil, gperror.New(UnrepresentableFloat80, "extended-precision exponent is outside the binary64 range")
	}
	b64 := sign | math.Float64bits(math.Ldexp(float64(m), p))
	return format(buf, b64, Binary64, verb, opts)
}

func format(buf []byte, raw uint64, layout FloatLayout, verb byte, opts FormatOptions) ([]byte, gperror.Error) {
	if !ValidVerb(verb) {
		return nil, gperror.New(UnsupportedVerb, "unsupported conversion verb %q", verb)
	}
	upper := verb&0x20 == 0
	f := decompose(raw, layout)
	if f.kind == kindInf || f.kind == kindNaN {
		return appendSpecial(ensure(buf, 5), f, upper, opts), nil
	}
	switch verb | 0x20 {
	case 'a':
		return formatHex(buf, f, upper, opts), nil
	case 'e':
		return formatSci(buf, f, upper, opts), nil
	case 'f':
		return formatFixed(buf, f, opts), nil
	}
	return formatGeneral(buf, f, upper, opts), nil
}

// ensure hands back a zero-length slice with at least n bytes of capacity,
// reusing the caller's buffer whenever it is large enough.
func ensure(buf []byte, n int) []byte {
	if cap(buf) >= n {
		return buf[:0]
	}
	return make([]byte, 0, n)
}

func appendSign(dst []byte, neg bool, opts FormatOptions) []byte {
	switch {
	case neg:
		return append(dst, '-')
	case opts.Plus:
		return append(dst, '+')
	case opts.Space:
		return append(dst, ' ')
	}
	return dst
}

// Float64ToBytes renders n in fixed-point form with prec fractional digits,
// as the engine's f conversion does. Negative prec means the default six
// digits. Kept for callers that predate FormatFloat64.
func Float64ToBytes(n float64, prec int, buf *[39]byte) []byte {
	if n != n {
		return NaNb
	}
	if n == 0 && !math.Signbit(n) {
		if prec == 0 {
			return float0[0]
		}
		if prec < 0 {
			return float0[6]
		}
		if prec < 18 {
			return float0[prec]
		}
	}
	out, _ := FormatFloat64(buf[:0], n, 'f', FormatOptions{Precision: prec})
	return out
}

// Float64ToString is the string flavor of Float64ToBytes.
func Float64ToString(n float64, prec int, buf *[39]byte) string {
	if n != n {
		return NaN
	}
	if n == 0 && !math.Signbit(n) {
		if prec == 0 {
			return float0s[0]
		}
		if prec < 0 {
			return float0s[6]
		}
		if prec < 18 {
			return float0s[prec]
		}
	}
	out, _ := FormatFloat64(buf[:0], n, 'f', FormatOptions{Precision: prec})
	return string(out)
}
