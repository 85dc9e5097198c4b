package conv

// decimal accumulates the significant digits of a finite nonzero value:
// value = 0.d[0:nd] * 10^dp. trunc records that nonzero digits exist beyond
// d[0:nd] because a producer stopped at its digit limit.
//
// 800 bytes covers the longest exact expansion a binary64 value has (767
// digits, for the smallest normals).
type decimal struct {
	d     [800]byte
	nd    int
	dp    int
	trunc bool
}

const noLimit = 1 << 30

// extract produces decimal digits for a finite nonzero value. sigLimit caps
// the number of significant digits, fracLimit the deepest fractional position
// (both counted inclusive of the extra digit the rounding classifier wants);
// digit production also ends as soon as the exact expansion is exhausted.
func (d *decimal) extract(f decodedFloat, sigLimit, fracLimit int) {
	switch {
	case f.exp > 0:
		d.fromInt(f.mant, uint(f.exp))
	case f.exp >= -limbBits:
		d.fromParts(f.mant, uint(-f.exp), sigLimit, fracLimit)
	default:
		d.fromFrac(f.mant, uint(-f.exp), sigLimit, fracLimit)
	}
}

// fromInt handles the large regime: mant << shift is an exact integer wider
// than uint64. Digits fall out of repeated division least-significant first
// and are reversed here, with trailing decimal zeros folded into dp.
func (d *decimal) fromInt(mant uint64, shift uint) {
	var b intLimbs
	b.setShifted(mant, shift)
	var tmp [336]byte
	n := 0
	for !b.zero() {
		tmp[n] = b.divmod10()
		n++
	}
	z := 0
	for z < n && tmp[z] == 0 {
		z++
	}
	d.dp = n
	d.nd = n - z
	for i := 0; i < d.nd; i++ {
		d.d[i] = '0' + tmp[n-1-i]
	}
}

// fromParts handles the medium regime: the split point lies inside the
// mantissa, so both halves fit native words. s is the number of fraction
// bits, at most 60.
func (d *decimal) fromParts(mant uint64, s uint, sigLimit, fracLimit int) {
	intPart := mant >> s
	frac := mant & (uint64(1)<<s - 1)
	if intPart > 0 {
		d.putUint(intPart)
	}
	for frac != 0 {
		if d.nd >= sigLimit || d.nd-d.dp >= fracLimit {
			d.trunc = true
			return
		}
		frac *= 10
		dig := byte(frac >> s)
		frac &= uint64(1)<<s - 1
		if d.nd == 0 && dig == 0 {
			d.dp--
			continue
		}
		d.d[d.nd] = '0' + dig
		d.nd++
	}
}

// fromFrac handles the small regime: the value is a pure fraction below
// 2^-61. Each multiply by ten pushes the next digit out of the top limb;
// leading zeros are not stored, only counted into dp.
func (d *decimal) fromFrac(mant uint64, denom uint, sigLimit, fracLimit int) {
	var b fracLimbs
	b.setFraction(mant, denom)
	for !b.zero() {
		if d.nd >= sigLimit || d.nd-d.dp >= fracLimit {
			d.trunc = true
			return
		}
		dig := b.mul10()
		if d.nd == 0 && dig == 0 {
			d.dp--
			continue
		}
		d.d[d.nd] = '0' + dig
		d.nd++
	}
}

// putUint writes the decimal digits of u to the front of the buffer.
func (d *decimal) putUint(u uint64) {
	var tmp [20]byte
	pos := 20
	for u >= 100 {
		pos -= 2
		is := u % 100
		u /= 100
		tmp[pos+1], tmp[pos] = digits2[is][1], digits2[is][0]
	}
	if u < 10 {
		pos--
		tmp[pos] = digits[u]
	} else {
		pos -= 2
		tmp[pos+1], tmp[pos] = digits2[u][1], digits2[u][0]
	}
	d.nd = copy(d.d[:], tmp[pos:])
	d.dp = d.nd
}

// roundAt keeps the first cut digits and resolves the discarded remainder
// per the rounding mode. A negative cut means every retained position is
// zero; only a directed mode can then pull the result up to a single one in
// the last retained place.
func (d *decimal) roundAt(cut int, mode RoundingMode, neg bool) {
	if cut < 0 {
		if shouldRoundUp(roundBelowHalf, mode, neg, false) {
			d.dp = d.dp - cut + 1
			d.d[0] = '1'
			d.nd = 1
		} else {
			d.nd = 0
		}
		return
	}
	if cut >= d.nd {
		// Exact: the producers only stop short of their limits when the
		// expansion terminates, so nothing is hiding past nd.
		return
	}
	sticky := d.trunc
	for i := cut + 1; i < d.nd && !sticky; i++ {
		sticky = d.d[i] != '0'
	}
	class := classifyDigit(d.d[cut], sticky)
	odd := cut > 0 && (d.d[cut-1]-'0')%2 == 1
	if !shouldRoundUp(class, mode, neg, odd) {
		d.nd = cut
		for d.nd > 0 && d.d[d.nd-1] == '0' {
			d.nd--
		}
		return
	}
	for i := cut - 1; i >= 0; i-- {
		if d.d[i] != '9' {
			d.d[i]++
			d.nd = i + 1
			return
		}
	}
	// All nines: a new leading one appears and the point moves right.
	d.d[0] = '1'
	d.nd = 1
	d.dp++
}
