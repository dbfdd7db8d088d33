package vtf

import "github.com/goopsie/vtfx360/pkg/byteswap"

// ConvertPayload returns the pixel payload located by the single resource
// entry with the byte order of every 16-bit word reversed.
//
// The payload runs from the entry's offset to fileSize. An odd trailing
// byte is copied unchanged. buf is not modified.
func ConvertPayload(buf []byte, entries []ResourceEntry, fileSize int) ([]byte, error) {
	if len(entries) != 1 {
		return nil, &UnsupportedResourceCountError{Count: len(entries)}
	}
	if fileSize < 0 || fileSize > len(buf) {
		return nil, formatErrorf("file size %d outside buffer of %d bytes", fileSize, len(buf))
	}

	offset := entries[0].DataOrOffset
	if uint64(offset) > uint64(fileSize) {
		return nil, formatErrorf("payload offset %d beyond end of file (%d bytes)", offset, fileSize)
	}

	start := int(offset)
	out := make([]byte, fileSize-start)
	byteswap.SwapWords16(out, buf[start:fileSize])
	return out, nil
}
