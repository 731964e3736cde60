package crypto

import "fmt"

// pkcs7Pad appends data followed by PKCS#7 padding to dst. A full block of
// padding is added when data is already block aligned.
func pkcs7Pad(dst, data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	dst = append(dst, data...)
	for i := 0; i < n; i++ {
		dst = append(dst, byte(n))
	}
	return dst
}

// pkcs7Unpad strips PKCS#7 padding from data in place.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrPadding, len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: pad byte 0x%02x", ErrPadding, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrPadding)
		}
	}

	return data[:len(data)-n], nil
}
