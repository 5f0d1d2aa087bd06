package testutils

// MinimalPNG returns the smallest byte sequence that http.DetectContentType
// recognizes as image/png.
func MinimalPNG() []byte {
	return []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
}

// MinimalGIF returns bytes recognized as image/gif.
func MinimalGIF() []byte {
	return []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")
}
