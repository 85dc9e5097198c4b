package conv

// UInt16ToBytes is the fastest way to convert uint16 into byte slice
func UInt16ToBytes(n uint16, buf *[5]byte) []byte {
	if n == 0 {
		return digits1[0]
	}
	return ui16Dig(n, buf)
}

// UInt64ToBytes is the fastest way to convert uint64 into byte slice
func UInt64ToBytes(n uint64, buf *[20]byte) []byte {
	if n == 0 {
		return digits1[0]
	}
	return ui64Dig(n, buf)
}

// UInt64ToString is the string flavor of UInt64ToBytes
func UInt64ToString(n uint64, buf *[20]byte) string {
	if n == 0 {
		return "0"
	}
	return string(ui64Dig(n, buf))
}

func ui16Dig(u uint16, buf *[5]byte) []byte {
	if u < 10 {
		return digits1[u]
	} else if u < 100 {
		return digits2[u]
	}

	pos := 5
	for u >= 100 {
		pos -= 2
		is := u % 100
		u /= 100
		buf[pos+1], buf[pos] = digits2[is][1], digits2[is][0]
	}

	if u < 10 {
		pos--
		buf[pos] = digits[u]
	} else {
		pos -= 2
		buf[pos+1], buf[pos] = digits2[u][1], digits2[u][0]
	}

	return buf[pos:]
}

func ui64Dig(u uint64, buf *[20]byte) []byte {
	if u < 10 {
		return digits1[u]
	} else if u < 100 {
		return digits2[u]
	}

	pos := 20
	for u >= 100 {
		pos -= 2

		is := u % 100
		u /= 100

		buf[pos+1], buf[pos] = digits2[is][1], digits2[is][0]
	}

	if u < 10 {
		pos--
		buf[pos] = digits[u]
	} else {
		pos -= 2
		buf[pos+1], buf[pos] = digits2[u][1], digits2[u][0]
	}

	return buf[pos:]
}
