package firmware

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Size multipliers for ParseSize suffixes.
const (
	Kibibyte int64 = 1024
	Mebibyte int64 = 1024 * Kibibyte
	Gibibyte int64 = 1024 * Mebibyte
)

// Load reads a binary firmware image from path.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader reads a binary firmware image from any io.Reader.
// This is useful for testing and reading from non-file sources.
func LoadReader(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	return data, nil
}

// LoadPadded reads a binary firmware image and zero-pads it to padTo
// bytes. A padTo smaller than the image size leaves the image unchanged;
// a padTo of zero disables padding.
func LoadPadded(path string, padTo int64) ([]byte, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Pad(data, padTo), nil
}

// Pad zero-pads data to size bytes. Data already at least size bytes long
// is returned unchanged.
func Pad(data []byte, size int64) []byte {
	if size <= int64(len(data)) {
		return data
	}
	padded := make([]byte, size)
	copy(padded, data)
	return padded
}

// ParseSize parses a byte size with an optional K, M, or G suffix
// (powers of 1024). Examples: "512", "64K", "5M", "1G".
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	multiplier := int64(1)
	switch s[len(s)-1] {
	case 'K':
		multiplier = Kibibyte
		s = s[:len(s)-1]
	case 'M':
		multiplier = Mebibyte
		s = s[:len(s)-1]
	case 'G':
		multiplier = Gibibyte
		s = s[:len(s)-1]
	}

	size, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: use a number with optional K, M, or G suffix", s)
	}
	if size < 0 {
		return 0, fmt.Errorf("invalid size %q: must not be negative", s)
	}

	return size * multiplier, nil
}
