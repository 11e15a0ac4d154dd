// Package encode converts signed integers to textual binary and hexadecimal
// representations. Negative values are encoded as fixed-width two's complement
// computed digit by digit over the string form; positive values keep their
// natural (unpadded) width. All functions are pure and safe for concurrent use.
package encode

const (
	// DefaultBits is the binary width applied to negative inputs.
	DefaultBits = 10
	// HexDigits is the fixed width of the negative hexadecimal encoding.
	HexDigits = 10
)

const hexd = "0123456789ABCDEF"

// ToBinary returns the binary representation of n.
//
// Zero encodes as "0". Positive values encode at their natural width with no
// padding. Negative values encode as two's complement over exactly bits
// characters; a magnitude wider than bits wraps modulo 2^bits.
//
// bits must be positive; callers own that contract.
func ToBinary(n int64, bits int) string {
	if n == 0 {
		return "0"
	}
	bin := magnitudeDigits(n, 2)
	if n > 0 {
		return bin
	}
	return twosComplement(padLeft(bin, bits, '0'), bits)
}

// ToHex returns the uppercase hexadecimal representation of n.
//
// Zero encodes as "0". Positive values encode at their natural width with no
// padding. Negative values encode as two's complement over exactly HexDigits
// nibbles, sign-extended with 'F'; a magnitude wider than HexDigits nibbles
// wraps modulo 16^HexDigits.
func ToHex(n int64) string {
	if n == 0 {
		return "0"
	}
	hex := magnitudeDigits(n, 16)
	if n > 0 {
		return hex
	}
	inverted := invertHex(padLeft(hex, HexDigits, '0'))
	return fit(hexAddOne(inverted), HexDigits, 'F')
}

// magnitudeDigits returns |n| in the given base (2 or 16), most significant
// digit first, by repeated division. The magnitude is taken in uint64 so that
// the smallest int64 does not overflow on negation.
func magnitudeDigits(n int64, base uint64) string {
	mag := uint64(n)
	if n < 0 {
		mag = -mag
	}
	var buf []byte
	for mag > 0 {
		buf = append(buf, hexd[mag%base])
		mag /= base
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// twosComplement inverts every bit of bin, adds one, and fits the result to
// exactly bits characters. A carry surviving past the most significant digit
// is dropped (modular wraparound, not an error).
func twosComplement(bin string, bits int) string {
	inv := make([]byte, len(bin))
	for i := 0; i < len(bin); i++ {
		if bin[i] == '0' {
			inv[i] = '1'
		} else {
			inv[i] = '0'
		}
	}
	return fit(binaryAddOne(string(inv)), bits, '0')
}

// binaryAddOne adds one to a binary digit string, rippling the carry from the
// least significant digit leftward. A carry off the top wraps to all zeros at
// the input width.
func binaryAddOne(bin string) string {
	out := []byte(bin)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == '1' {
			out[i] = '0'
			continue
		}
		out[i] = '1'
		return string(out)
	}
	return string(out)
}

// hexAddOne adds one to an uppercase hex digit string with the same carry
// contract as binaryAddOne, cascading F -> 0 transitions until a non-F digit
// absorbs the carry.
func hexAddOne(hex string) string {
	out := []byte(hex)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == 'F' {
			out[i] = '0'
			continue
		}
		out[i] = hexd[hexVal(out[i])+1]
		return string(out)
	}
	return string(out)
}

// invertHex maps every digit d to 15-d.
func invertHex(hex string) string {
	out := make([]byte, len(hex))
	for i := 0; i < len(hex); i++ {
		out[i] = hexd[15-hexVal(hex[i])]
	}
	return string(out)
}

func hexVal(b byte) int {
	if b >= '0' && b <= '9' {
		return int(b - '0')
	}
	return int(b-'A') + 10
}

// fit pads s on the left with pad up to width, or truncates to the width
// least significant characters when s is longer.
func fit(s string, width int, pad byte) string {
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return padLeft(s, width, pad)
}

// padLeft pads s on the left with pad up to width. A string already at or
// beyond width is returned unchanged; the two's-complement transform then
// operates on the longer string and truncates at the end.
func padLeft(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	out := make([]byte, width)
	for i := 0; i < width-len(s); i++ {
		out[i] = pad
	}
	copy(out[width-len(s):], s)
	return string(out)
}
