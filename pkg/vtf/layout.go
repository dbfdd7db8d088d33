package vtf

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/goopsie/vtfx360/pkg/byteswap"
)

// ByteOrder describes how a field's bytes are laid out in a file.
type ByteOrder uint8

const (
	// Raw fields are copied byte for byte (magic strings, packed IDs, padding).
	Raw ByteOrder = iota
	BigEndian
	LittleEndian
)

func (o ByteOrder) String() string {
	switch o {
	case Raw:
		return "raw"
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// Field is one entry of a packed record's layout table.
type Field struct {
	Name   string
	Offset int
	Width  int
	Order  ByteOrder
}

func (f Field) end() int {
	return f.Offset + f.Width
}

// Layout is the complete field table of a packed record. Fields are listed
// in offset order and, padding included, tile the record with no gaps.
type Layout struct {
	Name   string
	Size   int
	Fields []Field
}

// Field returns the named field. It panics if the name is unknown, since
// layouts are package constants.
func (l *Layout) Field(name string) Field {
	for _, f := range l.Fields {
		if f.Name == name {
			return f
		}
	}
	panic(fmt.Sprintf("vtf: layout %s has no field %q", l.Name, name))
}

// Validate checks that the fields are contiguous and cover exactly Size bytes.
func (l *Layout) Validate() error {
	offset := 0
	for _, f := range l.Fields {
		if f.Offset != offset {
			return fmt.Errorf("layout %s: field %s at offset %d, expected %d", l.Name, f.Name, f.Offset, offset)
		}
		if f.Width <= 0 {
			return fmt.Errorf("layout %s: field %s has width %d", l.Name, f.Name, f.Width)
		}
		if f.Order != Raw && f.Width != 1 && f.Width != 2 && f.Width != 4 {
			return fmt.Errorf("layout %s: scalar field %s has width %d", l.Name, f.Name, f.Width)
		}
		offset = f.end()
	}
	if offset != l.Size {
		return fmt.Errorf("layout %s: fields cover %d bytes, expected %d", l.Name, offset, l.Size)
	}
	return nil
}

// fieldReader decodes fields from a byte buffer. The first out-of-range
// access is recorded in err and every later read returns zero.
type fieldReader struct {
	buf  []byte
	base int
	err  error
}

func newFieldReader(buf []byte, base int) *fieldReader {
	return &fieldReader{buf: buf, base: base}
}

func (r *fieldReader) bytes(f Field) []byte {
	if r.err != nil {
		return nil
	}
	start := r.base + f.Offset
	end := start + f.Width
	if start < 0 || end > len(r.buf) {
		r.err = formatErrorf("field %s [%d:%d] exceeds buffer length %d", f.Name, start, end, len(r.buf))
		return nil
	}
	return r.buf[start:end]
}

func (r *fieldReader) copyTo(dst []byte, f Field) {
	copy(dst, r.bytes(f))
}

func (r *fieldReader) u8(f Field) uint8 {
	b := r.bytes(f)
	if b == nil {
		return 0
	}
	return b[0]
}

// Scalars are read in host order (little-endian) and swapped when the
// field is stored big-endian.

func (r *fieldReader) u16(f Field) uint16 {
	b := r.bytes(f)
	if b == nil {
		return 0
	}
	v := binary.LittleEndian.Uint16(b)
	if f.Order == BigEndian {
		v = byteswap.Swap16(v)
	}
	return v
}

func (r *fieldReader) u32(f Field) uint32 {
	b := r.bytes(f)
	if b == nil {
		return 0
	}
	v := binary.LittleEndian.Uint32(b)
	if f.Order == BigEndian {
		v = byteswap.Swap32(v)
	}
	return v
}

func (r *fieldReader) f32(f Field) float32 {
	b := r.bytes(f)
	if b == nil {
		return 0
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(b))
	if f.Order == BigEndian {
		v = byteswap.SwapFloat32(v)
	}
	return v
}

// fieldWriter encodes fields into a buffer sized for the layout.
// Bytes not covered by a put call keep their zero value.
type fieldWriter struct {
	buf []byte
}

func (w *fieldWriter) bytes(f Field) []byte {
	return w.buf[f.Offset:f.end()]
}

func (w *fieldWriter) putBytes(f Field, src []byte) {
	copy(w.bytes(f), src)
}

func (w *fieldWriter) putUint8(f Field, v uint8) {
	w.bytes(f)[0] = v
}

func (w *fieldWriter) putUint16(f Field, v uint16) {
	if f.Order == BigEndian {
		v = byteswap.Swap16(v)
	}
	binary.LittleEndian.PutUint16(w.bytes(f), v)
}

func (w *fieldWriter) putUint32(f Field, v uint32) {
	if f.Order == BigEndian {
		v = byteswap.Swap32(v)
	}
	binary.LittleEndian.PutUint32(w.bytes(f), v)
}

func (w *fieldWriter) putFloat32(f Field, v float32) {
	if f.Order == BigEndian {
		v = byteswap.SwapFloat32(v)
	}
	binary.LittleEndian.PutUint32(w.bytes(f), math.Float32bits(v))
}
