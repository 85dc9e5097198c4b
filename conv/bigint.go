package conv

import "math/bits"

const (
	// Limbs hold 60 significant bits so that limb*10+carry and rem<<60|limb
	// both stay inside uint64 during digit extraction.
	limbBits = 60
	limbMask = uint64(1)<<limbBits - 1

	// maxLimbs covers the widest need in either direction: a binary64 value
	// shifted up to an exact integer spans ceil(1024/60) limbs, the smallest
	// subnormal fraction ceil(1074/60).
	maxLimbs = 18
)

// intLimbs is an exact nonzero integer, most-significant limb first.
type intLimbs struct {
	w   [maxLimbs]uint64
	n   int
	top int
}

// setShifted loads mant << shift.
func (b *intLimbs) setShifted(mant uint64, shift uint) {
	width := uint(bits.Len64(mant)) + shift
	if mant == 0 || width > maxLimbs*limbBits {
		panic("conv: integer does not fit the limb array")
	}
	b.n = int((width + limbBits - 1) / limbBits)
	b.top = 0
	for i := 0; i < b.n; i++ {
		lo := (b.n-1-i)*limbBits - int(shift)
		var c uint64
		if lo >= 0 {
			c = mant >> uint(lo)
		} else {
			c = mant << uint(-lo)
		}
		b.w[i] = c & limbMask
	}
}

// divmod10 divides the whole sequence by ten in place and returns the
// remainder, the next least-significant decimal digit.
func (b *intLimbs) divmod10() byte {
	var rem uint64
	for i := b.top; i < b.n; i++ {
		cur := rem<<limbBits | b.w[i]
		b.w[i] = cur / 10
		rem = cur % 10
	}
	for b.top < b.n && b.w[b.top] == 0 {
		b.top++
	}
	return byte(rem)
}

func (b *intLimbs) zero() bool {
	return b.top == b.n
}

// fracLimbs is a pure fraction, value = w / 2^(60n), least-significant limb
// first.
type fracLimbs struct {
	w [maxLimbs]uint64
	n int
}

// setFraction loads mant / 2^denom, denom > 60.
func (b *fracLimbs) setFraction(mant uint64, denom uint) {
	b.n = int((denom + limbBits - 1) / limbBits)
	if mant == 0 || b.n > maxLimbs || uint(bits.Len64(mant)) > denom {
		panic("conv: fraction does not fit the limb array")
	}
	shift := uint(b.n)*limbBits - denom
	for i := 0; i < b.n; i++ {
		lo := i*limbBits - int(shift)
		var c uint64
		if lo >= 0 {
			c = mant >> uint(lo)
		} else {
			c = mant << uint(-lo)
		}
		b.w[i] = c & limbMask
	}
}

// mul10 multiplies the fraction by ten in place and returns the part that
// crossed above the point, always a single decimal digit.
func (b *fracLimbs) mul10() byte {
	var carry uint64
	for i := 0; i < b.n; i++ {
		t := b.w[i]*10 + carry
		b.w[i] = t & limbMask
		carry = t >> limbBits
	}
	return byte(carry)
}

func (b *fracLimbs) zero() bool {
	for i := b.n - 1; i >= 0; i-- {
		if b.w[i] != 0 {
			return false
		}
	}
	return true
}
