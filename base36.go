package cuid

import "strconv"

// encodeBase36 renders v in base 36, left-padded with the zero digit to
// width. Values at or above 36^width render unpadded; callers keep inputs
// below that bound so blocks never exceed their width.
func encodeBase36(v uint64, width int) string {
	s := strconv.FormatUint(v, base)
	if len(s) >= width {
		return s
	}
	buf := make([]byte, width)
	pad := width - len(s)
	for i := 0; i < pad; i++ {
		buf[i] = '0'
	}
	copy(buf[pad:], s)
	return string(buf)
}

func encodeBlock(v uint64) string { return encodeBase36(v, blockWidth) }

func decodeBase36(s string) (uint64, error) {
	return strconv.ParseUint(s, base, 64)
}
