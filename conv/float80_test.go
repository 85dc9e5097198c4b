package conv_test

import (
	"math"
	"strconv"

	. "github.com/greenplum-db/gp-format-go-libs/conv"
	"github.com/greenplum-db/gp-format-go-libs/gperror"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Extended precision conversion", func() {
	format80 := func(se uint16, mant uint64, verb byte, opts FormatOptions) (string, gperror.Error) {
		var b [64]byte
		out, err := FormatFloat80(b[:0], se, mant, verb, opts)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	Context("values that format", func() {
		It("formats one", func() {
			out, err := format80(0x3fff, 1<<63, 'f', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(out).To(Equal("1.000000"))
		})
		It("formats a negative fraction", func() {
			out, err := format80(0xbfff, 0xc000000000000000, 'f', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(out).To(Equal("-1.500000"))
		})
		It("formats both zeros", func() {
			out, err := format80(0, 0, 'f', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(out).To(Equal("0.000000"))
			out, err = format80(0x8000, 0, 'f', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(out).To(Equal("-0.000000"))
		})
		It("reaches the top of the binary64 range", func() {
			out, err := format80(0x3fff+1023, 1<<63, 'e', FormatOptions{Precision: 6})
			Expect(err).To(BeNil())
			Expect(out).To(Equal(strconv.FormatFloat(math.Ldexp(1, 1023), 'e', 6, 64)))
		})
		It("reaches the bottom of the binary64 range", func() {
			out, err := format80(15309, 1<<63, 'e', FormatOptions{Precision: 3})
			Expect(err).To(BeNil())
			Expect(out).To(Equal("4.941e-324"))
		})
		It("accepts a full 53-bit mantissa", func() {
			out, err := format80(0x3fff, 1<<63|1<<11, 'e', FormatOptions{Precision: 16})
			Expect(err).To(BeNil())
			Expect(out).To(Equal(strconv.FormatFloat(1+math.Ldexp(1, -52), 'e', 16, 64)))
		})
		It("formats infinities", func() {
			out, err := format80(0x7fff, 1<<63, 'f', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(out).To(Equal("inf"))
			out, err = format80(0xffff, 1<<63, 'f', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(out).To(Equal("-inf"))
		})
		It("formats NaNs with the sign bit", func() {
			out, err := format80(0x7fff, 1<<63|1<<62, 'f', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(out).To(Equal("nan"))
			out, err = format80(0xffff, 1<<63|1<<62, 'F', DefaultFormatOptions())
			Expect(err).To(BeNil())
			Expect(out).To(Equal("-NAN"))
		})
	})

	Context("values that do not fit binary64", func() {
		It("rejects a 64-bit mantissa", func() {
			_, err := format80(0x4000, 0xc90fdaa22168c235, 'e', DefaultFormatOptions())
			Expect(err).ToNot(BeNil())
			Expect(err.GetCode()).To(Equal(UnrepresentableFloat80))
			Expect(err.Error()).To(ContainSubstring("mantissa bits"))
		})
		It("rejects a 54-bit mantissa", func() {
			_, err := format80(0x3fff, 1<<63|1<<10, 'e', DefaultFormatOptions())
			Expect(err).ToNot(BeNil())
			Expect(err.GetCode()).To(Equal(UnrepresentableFloat80))
		})
		It("rejects an exponent above the binary64 range", func() {
			_, err := format80(0x3fff+1024, 1<<63, 'e', DefaultFormatOptions())
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("binary64 range"))
		})
		It("rejects an exponent below the binary64 range", func() {
			_, err := format80(15308, 1<<63, 'e', DefaultFormatOptions())
			Expect(err).ToNot(BeNil())
			Expect(err.GetCode()).To(Equal(UnrepresentableFloat80))
		})
		It("rejects extended-precision subnormals", func() {
			_, err := format80(0, 1, 'e', DefaultFormatOptions())
			Expect(err).ToNot(BeNil())
			Expect(err.GetCode()).To(Equal(UnrepresentableFloat80))
		})
		It("rejects a pseudo-denormal", func() {
			_, err := format80(0, 1<<63, 'e', DefaultFormatOptions())
			Expect(err).ToNot(BeNil())
			Expect(err.GetCode()).To(Equal(UnrepresentableFloat80))
		})
	})

	Context("non-canonical encodings", func() {
		It("rejects a clear integer bit with a nonzero exponent", func() {
			_, err := format80(0x0001, 1, 'e', DefaultFormatOptions())
			Expect(err).ToNot(BeNil())
			Expect(err.GetCode()).To(Equal(UnrepresentableFloat80))
			Expect(err.Error()).To(ContainSubstring("non-canonical"))
		})
		It("rejects an unnormal with a zero fraction", func() {
			_, err := format80(0x4000, 0, 'e', DefaultFormatOptions())
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("non-canonical"))
		})
	})
})
