package conv_test

import (
	"math"

	. "github.com/greenplum-db/gp-format-go-libs/conv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Hex Conversion functions", func() {
	hex64 := func(n float64, opts FormatOptions) string {
		var b [40]byte
		out, err := FormatFloat64(b[:0], n, 'a', opts)
		Expect(err).To(BeNil())
		return string(out)
	}
	hex32 := func(n float32, opts FormatOptions) string {
		var b [40]byte
		out, err := FormatFloat32(b[:0], n, 'a', opts)
		Expect(err).To(BeNil())
		return string(out)
	}
	prec := func(p int) FormatOptions {
		return FormatOptions{Precision: p}
	}

	Context("without a precision", func() {
		It("should trim a zero fraction entirely", func() {
			Expect(hex64(1.0, DefaultFormatOptions())).To(Equal("0x1p+0"))
		})
		It("should keep one significant nibble", func() {
			Expect(hex64(1.5, DefaultFormatOptions())).To(Equal("0x1.8p+0"))
		})
		It("should write the full mantissa when nothing trims", func() {
			Expect(hex64(0.1, DefaultFormatOptions())).To(Equal("0x1.999999999999ap-4"))
		})
		It("should be exact for the largest finite value", func() {
			Expect(hex64(math.MaxFloat64, DefaultFormatOptions())).To(Equal("0x1.fffffffffffffp+1023"))
		})
		It("should keep subnormals unnormalized", func() {
			Expect(hex64(5e-324, DefaultFormatOptions())).To(Equal("0x0.0000000000001p-1022"))
		})
		It("should format the smallest normal value", func() {
			Expect(hex64(2.2250738585072014e-308, DefaultFormatOptions())).To(Equal("0x1p-1022"))
		})
		It("should sign a negative zero", func() {
			Expect(hex64(math.Copysign(0, -1), DefaultFormatOptions())).To(Equal("-0x0p+0"))
		})
	})

	Context("with a precision", func() {
		It("should zero pad past the mantissa", func() {
			Expect(hex64(1.0, prec(3))).To(Equal("0x1.000p+0"))
			Expect(hex64(1.5, prec(5))).To(Equal("0x1.80000p+0"))
		})
		It("should pad a zero value", func() {
			Expect(hex64(0, prec(2))).To(Equal("0x0.00p+0"))
		})
		It("should round the dropped nibbles to nearest", func() {
			Expect(hex64(1.9375, prec(0))).To(Equal("0x2p+0"))
		})
		It("should round a tie to the even nibble", func() {
			Expect(hex64(1.09375, prec(1))).To(Equal("0x1.2p+0"))
			Expect(hex64(1.15625, prec(1))).To(Equal("0x1.2p+0"))
		})
		It("should carry into the leading digit of a subnormal without moving the exponent", func() {
			n := math.Float64frombits(0x000F000000000000)
			Expect(hex64(n, DefaultFormatOptions())).To(Equal("0x0.fp-1022"))
			Expect(hex64(n, prec(0))).To(Equal("0x1p-1022"))
		})
	})

	Context("flags and casing", func() {
		It("should uppercase the prefix, digits and exponent letter for A", func() {
			var b [40]byte
			out, err := FormatFloat64(b[:0], 1.5, 'A', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(string(out)).To(Equal("0X1.8P+0"))
		})
		It("should keep the point with the alternate flag", func() {
			Expect(hex64(1.0, FormatOptions{Precision: -1, Alternate: true})).To(Equal("0x1.p+0"))
		})
		It("should honor directed rounding", func() {
			Expect(hex64(1.03125, FormatOptions{Precision: 1, Rounding: Down})).To(Equal("0x1.0p+0"))
			Expect(hex64(1.03125, FormatOptions{Precision: 1, Rounding: Up})).To(Equal("0x1.1p+0"))
		})
	})

	Context("binary32 values", func() {
		It("should fill six fraction nibbles", func() {
			Expect(hex32(1.5, DefaultFormatOptions())).To(Equal("0x1.8p+0"))
			Expect(hex32(math.MaxFloat32, DefaultFormatOptions())).To(Equal("0x1.fffffep+127"))
		})
		It("should keep binary32 subnormals unnormalized", func() {
			Expect(hex32(math.Float32frombits(1), DefaultFormatOptions())).To(Equal("0x0.000002p-126"))
		})
	})
})
