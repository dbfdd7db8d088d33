// Package vtf converts console (Xbox 360) Valve Texture Files into PC
// VTF 7.1 files.
//
// A console file is a packed big-endian header, a dictionary of resource
// entries and the raw pixel bytes. Conversion transcodes the header into a
// little-endian 7.1 header, derives the mip count the console header does
// not store, and swaps the byte order of every 16-bit word of the payload.
// Texel tiling is not reversed and block-compressed data is not decoded.
//
// Each record version is described by its own field table (see Layout);
// records are decoded and encoded field by field through those tables.
package vtf

// Magic is the file type string shared by every VTF variant.
var Magic = [4]byte{'V', 'T', 'F', 0}

// The one console version this package converts.
const (
	ConsoleVersionMajor = 0x0360
	ConsoleVersionMinor = 8
)

// ConsoleHeaderSize is the packed size of the console header. The resource
// dictionary starts immediately after it.
const ConsoleHeaderSize = 60

// ConsoleLayout is the field table of the console header.
var ConsoleLayout = Layout{
	Name: "x360",
	Size: ConsoleHeaderSize,
	Fields: []Field{
		{"magic", 0x00, 4, Raw},
		{"versionMajor", 0x04, 4, BigEndian},
		{"versionMinor", 0x08, 4, BigEndian},
		{"headerSize", 0x0C, 4, BigEndian},
		{"flags", 0x10, 4, BigEndian},
		{"width", 0x14, 2, BigEndian},
		{"height", 0x16, 2, BigEndian},
		{"depth", 0x18, 2, BigEndian},
		{"numFrames", 0x1A, 2, BigEndian},
		{"preloadDataSize", 0x1C, 2, BigEndian},
		{"mipSkipCount", 0x1E, 1, Raw},
		{"numResources", 0x1F, 1, Raw},
		{"reflectivityX", 0x20, 4, BigEndian},
		{"reflectivityY", 0x24, 4, BigEndian},
		{"reflectivityZ", 0x28, 4, BigEndian},
		{"bumpScale", 0x2C, 4, BigEndian},
		{"imageFormat", 0x30, 4, BigEndian},
		{"lowResImageSample", 0x34, 4, Raw},
		{"compressedSize", 0x38, 4, BigEndian},
	},
}

var (
	cMagic             = ConsoleLayout.Field("magic")
	cVersionMajor      = ConsoleLayout.Field("versionMajor")
	cVersionMinor      = ConsoleLayout.Field("versionMinor")
	cHeaderSize        = ConsoleLayout.Field("headerSize")
	cFlags             = ConsoleLayout.Field("flags")
	cWidth             = ConsoleLayout.Field("width")
	cHeight            = ConsoleLayout.Field("height")
	cDepth             = ConsoleLayout.Field("depth")
	cNumFrames         = ConsoleLayout.Field("numFrames")
	cPreloadDataSize   = ConsoleLayout.Field("preloadDataSize")
	cMipSkipCount      = ConsoleLayout.Field("mipSkipCount")
	cNumResources      = ConsoleLayout.Field("numResources")
	cReflectivity      = [3]Field{ConsoleLayout.Field("reflectivityX"), ConsoleLayout.Field("reflectivityY"), ConsoleLayout.Field("reflectivityZ")}
	cBumpScale         = ConsoleLayout.Field("bumpScale")
	cImageFormat       = ConsoleLayout.Field("imageFormat")
	cLowResImageSample = ConsoleLayout.Field("lowResImageSample")
	cCompressedSize    = ConsoleLayout.Field("compressedSize")
)

// ConsoleHeader is the decoded console header with every field in host order.
type ConsoleHeader struct {
	Magic             [4]byte
	VersionMajor      uint32
	VersionMinor      uint32
	HeaderSize        uint32
	Flags             TextureFlags
	Width             uint16 // actual width of data in file
	Height            uint16 // actual height of data in file
	Depth             uint16
	NumFrames         uint16
	PreloadDataSize   uint16 // may extend into the image data
	MipSkipCount      uint8
	NumResources      uint8
	Reflectivity      [3]float32
	BumpScale         float32
	ImageFormat       ImageFormat
	LowResImageSample [4]byte
	CompressedSize    uint32
}

// ParseConsoleHeader decodes the console header at the start of buf.
// numResources is not checked against the buffer; ScanResources does that.
func ParseConsoleHeader(buf []byte) (*ConsoleHeader, error) {
	if len(buf) < ConsoleHeaderSize {
		return nil, &FormatError{Reason: "truncated header"}
	}
	h := &ConsoleHeader{}
	if err := h.DecodeFrom(buf); err != nil {
		return nil, err
	}
	return h, nil
}

// DecodeFrom reads the header fields from buf without validating them.
func (h *ConsoleHeader) DecodeFrom(buf []byte) error {
	r := newFieldReader(buf, 0)
	r.copyTo(h.Magic[:], cMagic)
	h.VersionMajor = r.u32(cVersionMajor)
	h.VersionMinor = r.u32(cVersionMinor)
	h.HeaderSize = r.u32(cHeaderSize)
	h.Flags = TextureFlags(r.u32(cFlags))
	h.Width = r.u16(cWidth)
	h.Height = r.u16(cHeight)
	h.Depth = r.u16(cDepth)
	h.NumFrames = r.u16(cNumFrames)
	h.PreloadDataSize = r.u16(cPreloadDataSize)
	h.MipSkipCount = r.u8(cMipSkipCount)
	h.NumResources = r.u8(cNumResources)
	for i, f := range cReflectivity {
		h.Reflectivity[i] = r.f32(f)
	}
	h.BumpScale = r.f32(cBumpScale)
	h.ImageFormat = ImageFormat(int32(r.u32(cImageFormat)))
	r.copyTo(h.LowResImageSample[:], cLowResImageSample)
	h.CompressedSize = r.u32(cCompressedSize)
	return r.err
}

// MarshalBinary encodes the header back into its big-endian packed form.
func (h *ConsoleHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ConsoleHeaderSize)
	h.EncodeTo(buf)
	return buf, nil
}

// EncodeTo writes the header to buf, which must hold ConsoleHeaderSize bytes.
func (h *ConsoleHeader) EncodeTo(buf []byte) {
	w := &fieldWriter{buf: buf[:ConsoleHeaderSize]}
	w.putBytes(cMagic, h.Magic[:])
	w.putUint32(cVersionMajor, h.VersionMajor)
	w.putUint32(cVersionMinor, h.VersionMinor)
	w.putUint32(cHeaderSize, h.HeaderSize)
	w.putUint32(cFlags, uint32(h.Flags))
	w.putUint16(cWidth, h.Width)
	w.putUint16(cHeight, h.Height)
	w.putUint16(cDepth, h.Depth)
	w.putUint16(cNumFrames, h.NumFrames)
	w.putUint16(cPreloadDataSize, h.PreloadDataSize)
	w.putUint8(cMipSkipCount, h.MipSkipCount)
	w.putUint8(cNumResources, h.NumResources)
	for i, f := range cReflectivity {
		w.putFloat32(f, h.Reflectivity[i])
	}
	w.putFloat32(cBumpScale, h.BumpScale)
	w.putUint32(cImageFormat, uint32(h.ImageFormat))
	w.putBytes(cLowResImageSample, h.LowResImageSample[:])
	w.putUint32(cCompressedSize, h.CompressedSize)
}

// CheckVersion reports whether the header carries the console version.
func (h *ConsoleHeader) CheckVersion() bool {
	return h.VersionMajor == ConsoleVersionMajor && h.VersionMinor == ConsoleVersionMinor
}

// Validate checks the magic and the version.
func (h *ConsoleHeader) Validate() error {
	if h.Magic != Magic {
		return formatErrorf("invalid magic: expected %q, got %q", Magic[:], h.Magic[:])
	}
	if !h.CheckVersion() {
		return &UnsupportedVersionError{Major: h.VersionMajor, Minor: h.VersionMinor}
	}
	return nil
}

// DictionaryEnd returns the offset just past the resource dictionary.
func (h *ConsoleHeader) DictionaryEnd() int {
	return ConsoleHeaderSize + int(h.NumResources)*ResourceEntrySize
}
