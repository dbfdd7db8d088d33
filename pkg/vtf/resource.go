package vtf

import "fmt"

// ResourceEntrySize is the packed size of one dictionary record.
const ResourceEntrySize = 8

// ResourceLayout is the field table of a dictionary record. The type is a
// packed byte identifier whose bytes read the same on both platforms.
var ResourceLayout = Layout{
	Name: "resource",
	Size: ResourceEntrySize,
	Fields: []Field{
		{"type", 0x00, 4, Raw},
		{"dataOrOffset", 0x04, 4, BigEndian},
	},
}

var (
	rType         = ResourceLayout.Field("type")
	rDataOrOffset = ResourceLayout.Field("dataOrOffset")
)

// ResourceType identifies a resource. Bytes 0-2 are the ID, byte 3 holds flags.
type ResourceType [4]byte

// Known resource IDs.
var (
	ResourceLowResImage = ResourceType{0x01, 0, 0, 0}
	ResourceImage       = ResourceType{0x30, 0, 0, 0}
	ResourceSheet       = ResourceType{0x10, 0, 0, 0}
)

// ResourceFlagNoDataChunk marks a resource whose DataOrOffset is the data
// itself rather than an offset.
const ResourceFlagNoDataChunk = 0x02

// ID returns the type with the flag byte cleared.
func (t ResourceType) ID() ResourceType {
	return ResourceType{t[0], t[1], t[2], 0}
}

// Flags returns the flag byte.
func (t ResourceType) Flags() byte {
	return t[3]
}

func (t ResourceType) String() string {
	switch t.ID() {
	case ResourceLowResImage:
		return "low-res image"
	case ResourceImage:
		return "image"
	case ResourceSheet:
		return "sheet"
	default:
		return fmt.Sprintf("unknown(%02x%02x%02x)", t[0], t[1], t[2])
	}
}

// ResourceEntry is one decoded dictionary record.
type ResourceEntry struct {
	Type         ResourceType
	DataOrOffset uint32
}

// HasNoDataChunk reports whether DataOrOffset holds inline data.
func (e ResourceEntry) HasNoDataChunk() bool {
	return e.Type.Flags()&ResourceFlagNoDataChunk != 0
}

// ScanResources decodes the h.NumResources dictionary records that follow
// the console header in buf.
func ScanResources(buf []byte, h *ConsoleHeader) ([]ResourceEntry, error) {
	n := int(h.NumResources)
	if end := h.DictionaryEnd(); end > len(buf) {
		return nil, formatErrorf("dictionary exceeds buffer: %d entries end at %d, buffer is %d bytes", n, end, len(buf))
	}

	entries := make([]ResourceEntry, n)
	for i := range entries {
		r := newFieldReader(buf, ConsoleHeaderSize+i*ResourceEntrySize)
		r.copyTo(entries[i].Type[:], rType)
		entries[i].DataOrOffset = r.u32(rDataOrOffset)
		if r.err != nil {
			return nil, fmt.Errorf("resource %d: %w", i, r.err)
		}
	}
	return entries, nil
}
