package vtf

import (
	"encoding/binary"
	"math"
	"testing"
)

// consoleFile assembles a console VTF by hand with encoding/binary so tests
// do not depend on the package's own encoder.
type consoleFile struct {
	magic        [4]byte
	major, minor uint32
	flags        uint32
	width        uint16
	height       uint16
	depth        uint16
	frames       uint16
	reflectivity [3]float32
	bumpScale    float32
	format       int32
	resources    []ResourceEntry
	numResources int // overrides len(resources) when >= 0
	payload      []byte
}

func newConsoleFile(width, height uint16, payload []byte) *consoleFile {
	return &consoleFile{
		magic:        Magic,
		major:        ConsoleVersionMajor,
		minor:        ConsoleVersionMinor,
		width:        width,
		height:       height,
		depth:        1,
		frames:       1,
		reflectivity: [3]float32{0.25, 0.5, 0.75},
		bumpScale:    1.0,
		format:       int32(ImageFormatDXT1),
		resources: []ResourceEntry{
			{Type: ResourceImage, DataOrOffset: ConsoleHeaderSize + ResourceEntrySize},
		},
		numResources: -1,
		payload:      payload,
	}
}

func (f *consoleFile) bytes(t testing.TB) []byte {
	t.Helper()

	count := len(f.resources)
	if f.numResources >= 0 {
		count = f.numResources
	}

	buf := make([]byte, ConsoleHeaderSize+len(f.resources)*ResourceEntrySize)
	be := binary.BigEndian
	copy(buf[0x00:], f.magic[:])
	be.PutUint32(buf[0x04:], f.major)
	be.PutUint32(buf[0x08:], f.minor)
	be.PutUint32(buf[0x0C:], ConsoleHeaderSize)
	be.PutUint32(buf[0x10:], f.flags)
	be.PutUint16(buf[0x14:], f.width)
	be.PutUint16(buf[0x16:], f.height)
	be.PutUint16(buf[0x18:], f.depth)
	be.PutUint16(buf[0x1A:], f.frames)
	be.PutUint16(buf[0x1C:], 0x1234) // preloadDataSize
	buf[0x1E] = 2                    // mipSkipCount
	buf[0x1F] = uint8(count)
	be.PutUint32(buf[0x20:], math.Float32bits(f.reflectivity[0]))
	be.PutUint32(buf[0x24:], math.Float32bits(f.reflectivity[1]))
	be.PutUint32(buf[0x28:], math.Float32bits(f.reflectivity[2]))
	be.PutUint32(buf[0x2C:], math.Float32bits(f.bumpScale))
	be.PutUint32(buf[0x30:], uint32(f.format))
	copy(buf[0x34:], []byte{0xAA, 0xBB, 0xCC, 0xDD})
	be.PutUint32(buf[0x38:], 0xCAFE)

	for i, e := range f.resources {
		off := ConsoleHeaderSize + i*ResourceEntrySize
		copy(buf[off:], e.Type[:])
		be.PutUint32(buf[off+4:], e.DataOrOffset)
	}

	return append(buf, f.payload...)
}
