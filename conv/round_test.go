package conv_test

import (
	. "github.com/greenplum-db/gp-format-go-libs/conv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Rounding modes", func() {
	fixed := func(n float64, p int, mode RoundingMode) string {
		var b [64]byte
		out, err := FormatFloat64(b[:0], n, 'f', FormatOptions{Precision: p, Rounding: mode})
		Expect(err).To(BeNil())
		return string(out)
	}

	Context("ties to even", func() {
		It("is the zero value of the options", func() {
			Expect(fixed(11.5, 0, NearestTiesToEven)).To(Equal("12"))
			Expect(fixed(12.5, 0, NearestTiesToEven)).To(Equal("12"))
		})
		It("only sees a tie when the remainder is exactly half", func() {
			Expect(fixed(12.5000000000001, 0, NearestTiesToEven)).To(Equal("13"))
		})
	})

	Context("ties away from zero", func() {
		It("rounds a positive tie up", func() {
			Expect(fixed(11.5, 0, NearestTiesAwayFromZero)).To(Equal("12"))
			Expect(fixed(12.5, 0, NearestTiesAwayFromZero)).To(Equal("13"))
		})
		It("rounds a negative tie down", func() {
			Expect(fixed(-11.5, 0, NearestTiesAwayFromZero)).To(Equal("-12"))
			Expect(fixed(-12.5, 0, NearestTiesAwayFromZero)).To(Equal("-13"))
		})
		It("leaves non-ties alone", func() {
			Expect(fixed(12.4, 0, NearestTiesAwayFromZero)).To(Equal("12"))
		})
	})

	Context("toward positive infinity", func() {
		It("rounds any positive remainder up", func() {
			Expect(fixed(12.001, 0, Up)).To(Equal("13"))
		})
		It("truncates a negative value", func() {
			Expect(fixed(-12.999, 0, Up)).To(Equal("-12"))
		})
		It("raises a value below the last place to one unit of it", func() {
			Expect(fixed(1e-300, 1, Up)).To(Equal("0.1"))
		})
	})

	Context("toward negative infinity", func() {
		It("truncates a positive value", func() {
			Expect(fixed(12.999, 0, Down)).To(Equal("12"))
		})
		It("rounds any negative remainder down", func() {
			Expect(fixed(-12.001, 0, Down)).To(Equal("-13"))
		})
		It("lowers a tiny negative value to minus one unit in the last place", func() {
			Expect(fixed(-1e-300, 1, Down)).To(Equal("-0.1"))
		})
	})

	Context("toward zero", func() {
		It("truncates both signs", func() {
			Expect(fixed(12.999, 0, TowardZero)).To(Equal("12"))
			Expect(fixed(-12.999, 0, TowardZero)).To(Equal("-12"))
		})
	})

	Context("exact values", func() {
		It("are unchanged in every mode", func() {
			for _, mode := range []RoundingMode{NearestTiesToEven, NearestTiesAwayFromZero, Up, Down, TowardZero} {
				Expect(fixed(0.25, 2, mode)).To(Equal("0.25"))
				Expect(fixed(-0.25, 2, mode)).To(Equal("-0.25"))
			}
		})
	})

	Context("mode names", func() {
		It("reads back the mode", func() {
			Expect(NearestTiesToEven.String()).To(Equal("nearest-even"))
			Expect(NearestTiesAwayFromZero.String()).To(Equal("nearest-away"))
			Expect(Up.String()).To(Equal("up"))
			Expect(Down.String()).To(Equal("down"))
			Expect(TowardZero.String()).To(Equal("toward-zero"))
		})
	})
})
