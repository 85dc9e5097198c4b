package conv_test

import (
	"math"

	. "github.com/greenplum-db/gp-format-go-libs/conv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bit pattern dumps", func() {
	Context("FormatBits64", func() {
		var b16 = [16]byte{}
		It("should dump a binary64 encoding", func() {
			FormatBits64(math.Float64bits(1.5), &b16)
			Expect(string(b16[:])).To(Equal("3ff8000000000000"))
		})
		It("should keep leading zeros", func() {
			FormatBits64(math.Float64bits(5e-324), &b16)
			Expect(string(b16[:])).To(Equal("0000000000000001"))
		})
	})
	Context("FormatBits32", func() {
		var b8 = [8]byte{}
		It("should dump a binary32 encoding", func() {
			FormatBits32(math.Float32bits(1.5), &b8)
			Expect(string(b8[:])).To(Equal("3fc00000"))
		})
	})
	Context("FormatBits80", func() {
		var b20 = [20]byte{}
		It("should dump the exponent word then the mantissa", func() {
			FormatBits80(0x3fff, 1<<63, &b20)
			Expect(string(b20[:])).To(Equal("3fff8000000000000000"))
		})
	})
})
