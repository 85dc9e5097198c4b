package conv_test

import (
	"math"
	"math/rand"
	"time"

	. "github.com/greenplum-db/gp-format-go-libs/conv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shogo82148/int128"
)

var _ = Describe("Large integer expansion", func() {
	// decimalString expands a 128-bit integer the slow, obvious way so the
	// limb-based expansion has an independent witness.
	decimalString := func(x int128.Uint128) string {
		ten := int128.Uint128{L: 10}
		zero := int128.Uint128{}
		if x.Cmp(zero) == 0 {
			return "0"
		}
		var digits []byte
		for x.Cmp(zero) > 0 {
			var mod int128.Uint128
			x, mod = x.DivMod(ten)
			digits = append(digits, byte(mod.L)+'0')
		}
		for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
		return string(digits)
	}

	It("should match an independent 128-bit witness", func() {
		var b [64]byte
		rand.Seed(time.Now().UnixNano())
		for i := 0; i < 20000; i++ {
			mant := rand.Uint64() >> 11
			shift := rand.Intn(64)
			want := decimalString(int128.Uint128{L: mant}.Mul(int128.Uint128{L: 1 << uint(shift)}))
			out, err := FormatFloat64(b[:0], math.Ldexp(float64(mant), shift), 'f', FormatOptions{Precision: 0})
			Expect(err).To(BeNil())
			Expect(string(out)).To(Equal(want))
		}
	})

	It("should carry across limb boundaries", func() {
		var b [64]byte
		for _, shift := range []int{59, 60, 61} {
			want := decimalString(int128.Uint128{L: 1 << uint(shift)})
			out, err := FormatFloat64(b[:0], math.Ldexp(1, shift), 'f', FormatOptions{Precision: 0})
			Expect(err).To(BeNil())
			Expect(string(out)).To(Equal(want))
		}
	})
})
