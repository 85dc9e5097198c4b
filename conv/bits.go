package conv

// FormatBits64 dumps the raw IEEE-754 encoding of a binary64 value as
// sixteen lowercase hex digits, most significant nibble first
func FormatBits64(bits uint64, buf *[16]byte) {
	for i := 0; i < 16; i++ {
		buf[i] = digits[bits>>60]
		bits <<= 4
	}
}

// FormatBits32 dumps the raw IEEE-754 encoding of a binary32 value as
// eight lowercase hex digits, most significant nibble first
func FormatBits32(bits uint32, buf *[8]byte) {
	for i := 0; i < 8; i++ {
		buf[i] = digits[bits>>28]
		bits <<= 4
	}
}

// FormatBits80 dumps an extended-precision encoding as four hex digits
// for the sign and exponent word followed by sixteen for the mantissa
func FormatBits80(se uint16, mant uint64, buf *[20]byte) {
	for i := 0; i < 4; i++ {
		buf[i] = digits[se>>12]
		se <<= 4
	}
	for i := 4; i < 20; i++ {
		buf[i] = digits[mant>>60]
		mant <<= 4
	}
}
