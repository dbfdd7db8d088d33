// Package byteswap provides the byte-order inversion primitives used to move
// big-endian console data into host (little-endian) order.
//
// All functions are pure and each is its own inverse.
package byteswap

import "math"

// Swap16 reverses the byte order of a 16-bit value.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the byte order of a 32-bit value.
func Swap32(v uint32) uint32 {
	return v<<24 |
		(v&0x0000ff00)<<8 |
		(v&0x00ff0000)>>8 |
		v>>24
}

// SwapFloat32 reverses the byte order of a float32's bit pattern.
// NaN payloads and infinities are preserved bit for bit.
func SwapFloat32(f float32) float32 {
	return math.Float32frombits(Swap32(math.Float32bits(f)))
}

// SwapWords16 writes src into dst with the bytes of every 2-byte word
// exchanged. An odd trailing byte is copied unchanged.
// dst must be at least len(src) bytes; it returns the number of bytes written.
func SwapWords16(dst, src []byte) int {
	n := len(src)
	even := n &^ 1
	for i := 0; i < even; i += 2 {
		dst[i], dst[i+1] = src[i+1], src[i]
	}
	if even != n {
		dst[even] = src[even]
	}
	return n
}
