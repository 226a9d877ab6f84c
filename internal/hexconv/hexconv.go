package hexconv

// Halfbyte maps every hexadecimal digit into its value. Any other char maps to 0,
// so use IsHex before trusting a zero.
var Halfbyte = [256]byte{
	'0': 0x0, '1': 0x1, '2': 0x2, '3': 0x3, '4': 0x4,
	'5': 0x5, '6': 0x6, '7': 0x7, '8': 0x8, '9': 0x9,
	'a': 0xa, 'b': 0xb, 'c': 0xc, 'd': 0xd, 'e': 0xe, 'f': 0xf,
	'A': 0xA, 'B': 0xB, 'C': 0xC, 'D': 0xD, 'E': 0xE, 'F': 0xF,
}

func IsHex(char byte) bool {
	switch {
	case char >= '0' && char <= '9':
		return true
	case char >= 'a' && char <= 'f', char >= 'A' && char <= 'F':
		return true
	}

	return false
}

// Byte builds a byte out of two hexadecimal digits. ok is false if any of them isn't one.
func Byte(high, low byte) (b byte, ok bool) {
	if !IsHex(high) || !IsHex(low) {
		return 0, false
	}

	return Halfbyte[high]<<4 | Halfbyte[low], true
}
