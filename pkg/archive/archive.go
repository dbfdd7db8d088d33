package archive

import (
	"fmt"

	"github.com/DataDog/zstd"
)

// DefaultCompressionLevel is the level used when none is given.
const DefaultCompressionLevel = zstd.BestSpeed

// MaxLength is the largest uncompressed size Unwrap accepts (1 GiB).
const MaxLength = 1 << 30

// Wrap compresses data into an archive at the given zstd level.
func Wrap(data []byte, level int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("nothing to wrap")
	}

	compressed, err := zstd.CompressLevel(nil, data, level)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	out := make([]byte, HeaderSize+len(compressed))
	NewHeader(uint64(len(data)), uint64(len(compressed))).EncodeTo(out)
	copy(out[HeaderSize:], compressed)
	return out, nil
}

// Unwrap validates the archive header and returns the decompressed file.
func Unwrap(data []byte) ([]byte, error) {
	h := &Header{}
	if err := h.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	if h.Length > MaxLength {
		return nil, fmt.Errorf("archive too large: %d bytes exceeds limit of %d", h.Length, MaxLength)
	}

	body := data[HeaderSize:]
	if uint64(len(body)) < h.CompressedLength {
		return nil, fmt.Errorf("truncated archive: need %d compressed bytes, got %d", h.CompressedLength, len(body))
	}

	dst := make([]byte, h.Length)
	out, err := zstd.Decompress(dst, body[:h.CompressedLength])
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	if uint64(len(out)) != h.Length {
		return nil, fmt.Errorf("incomplete read: expected %d, got %d", h.Length, len(out))
	}
	return out, nil
}
