package conv

// RoundingMode selects how a discarded remainder moves the last retained
// digit. The zero value is NearestTiesToEven, the IEEE-754 default.
type RoundingMode uint8

const (
	NearestTiesToEven RoundingMode = iota
	NearestTiesAwayFromZero
	// Up and Down are directed toward +inf and -inf respectively,
	// independent of the sign of the value being rounded.
	Up
	Down
	TowardZero
)

func (m RoundingMode) String() string {
	switch m {
	case NearestTiesToEven:
		return "nearest-even"
	case NearestTiesAwayFromZero:
		return "nearest-away"
	case Up:
		return "up"
	case Down:
		return "down"
	case TowardZero:
		return "toward-zero"
	}
	return "unknown"
}

// roundClass places the discarded tail relative to one half of the last
// retained position. It is always derived from digit or bit patterns, never
// from a floating-point comparison.
type roundClass uint8

const (
	roundZero roundClass = iota
	roundBelowHalf
	roundExactlyHalf
	roundAboveHalf
)

// classifyDigit buckets a discarded decimal digit plus a sticky flag covering
// everything beyond it.
func classifyDigit(first byte, sticky bool) roundClass {
	switch {
	case first == '0' && !sticky:
		return roundZero
	case first < '5':
		return roundBelowHalf
	case first == '5' && !sticky:
		return roundExactlyHalf
	}
	return roundAboveHalf
}

// classifyBits buckets discarded low-order mantissa bits. width is the number
// of bits dropped; the top dropped bit decides which side of half we are on.
func classifyBits(dropped uint64, width uint) roundClass {
	if dropped == 0 {
		return roundZero
	}
	half := uint64(1) << (width - 1)
	switch {
	case dropped < half:
		return roundBelowHalf
	case dropped == half:
		return roundExactlyHalf
	}
	return roundAboveHalf
}

// shouldRoundUp decides whether the last retained digit is incremented.
func shouldRoundUp(class roundClass, mode RoundingMode, neg bool, oddLast bool) bool {
	if class == roundZero {
		return false
	}
	switch mode {
	case TowardZero:
		return false
	case Up:
		return !neg
	case Down:
		return neg
	case NearestTiesAwayFromZero:
		return class == roundAboveHalf || class == roundExactlyHalf
	}
	return class == roundAboveHalf || class == roundExactlyHalf && oddLast
}
