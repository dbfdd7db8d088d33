package vtf

import "fmt"

// HostHeaderSize is the packed size of a VTF 7.1 header.
const HostHeaderSize = 64

// Version written to every converted file.
const (
	HostVersionMajor = 7
	HostVersionMinor = 1
)

// HostLayout is the field table of the PC VTF 7.1 header. The pad fields
// keep the layout compatible with binaries built against the aligned
// structure and are always written as zero.
var HostLayout = Layout{
	Name: "v7.1",
	Size: HostHeaderSize,
	Fields: []Field{
		{"magic", 0x00, 4, Raw},
		{"versionMajor", 0x04, 4, LittleEndian},
		{"versionMinor", 0x08, 4, LittleEndian},
		{"headerSize", 0x0C, 4, LittleEndian},
		{"width", 0x10, 2, LittleEndian},
		{"height", 0x12, 2, LittleEndian},
		{"flags", 0x14, 4, LittleEndian},
		{"numFrames", 0x18, 2, LittleEndian},
		{"startFrame", 0x1A, 2, LittleEndian},
		{"pad1", 0x1C, 4, Raw},
		{"reflectivityX", 0x20, 4, LittleEndian},
		{"reflectivityY", 0x24, 4, LittleEndian},
		{"reflectivityZ", 0x28, 4, LittleEndian},
		{"pad2", 0x2C, 4, Raw},
		{"bumpScale", 0x30, 4, LittleEndian},
		{"imageFormat", 0x34, 4, LittleEndian},
		{"numMipLevels", 0x38, 1, Raw},
		{"lowResImageFormat", 0x39, 4, LittleEndian},
		{"lowResImageWidth", 0x3D, 1, Raw},
		{"lowResImageHeight", 0x3E, 1, Raw},
		{"pad3", 0x3F, 1, Raw},
	},
}

var (
	hMagic             = HostLayout.Field("magic")
	hVersionMajor      = HostLayout.Field("versionMajor")
	hVersionMinor      = HostLayout.Field("versionMinor")
	hHeaderSize        = HostLayout.Field("headerSize")
	hWidth             = HostLayout.Field("width")
	hHeight            = HostLayout.Field("height")
	hFlags             = HostLayout.Field("flags")
	hNumFrames         = HostLayout.Field("numFrames")
	hStartFrame        = HostLayout.Field("startFrame")
	hReflectivity      = [3]Field{HostLayout.Field("reflectivityX"), HostLayout.Field("reflectivityY"), HostLayout.Field("reflectivityZ")}
	hBumpScale         = HostLayout.Field("bumpScale")
	hImageFormat       = HostLayout.Field("imageFormat")
	hNumMipLevels      = HostLayout.Field("numMipLevels")
	hLowResImageFormat = HostLayout.Field("lowResImageFormat")
	hLowResImageWidth  = HostLayout.Field("lowResImageWidth")
	hLowResImageHeight = HostLayout.Field("lowResImageHeight")
)

// HostHeader is a PC VTF 7.1 header. Padding is not represented; it is
// zero on output and ignored on input.
type HostHeader struct {
	Magic             [4]byte
	VersionMajor      uint32
	VersionMinor      uint32
	HeaderSize        uint32
	Width             uint16
	Height            uint16
	Flags             TextureFlags
	NumFrames         uint16
	StartFrame        uint16
	Reflectivity      [3]float32
	BumpScale         float32
	ImageFormat       ImageFormat
	NumMipLevels      uint8
	LowResImageFormat ImageFormat
	LowResImageWidth  uint8
	LowResImageHeight uint8
}

// BuildHostHeader maps a console header onto a 7.1 header.
//
// The console format carries no low-resolution image, yet lowResImageFormat
// is set to the main image format (with a 0x0 size) to match what existing
// converted files contain.
func BuildHostHeader(h *ConsoleHeader, mipLevels uint8) *HostHeader {
	return &HostHeader{
		Magic:             Magic,
		VersionMajor:      HostVersionMajor,
		VersionMinor:      HostVersionMinor,
		HeaderSize:        HostHeaderSize,
		Width:             h.Width,
		Height:            h.Height,
		Flags:             h.Flags,
		NumFrames:         h.NumFrames,
		StartFrame:        0, // no console equivalent
		Reflectivity:      h.Reflectivity,
		BumpScale:         h.BumpScale,
		ImageFormat:       h.ImageFormat,
		NumMipLevels:      mipLevels,
		LowResImageFormat: h.ImageFormat,
		LowResImageWidth:  0,
		LowResImageHeight: 0,
	}
}

// MarshalBinary encodes the header to its 64-byte little-endian form.
func (h *HostHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HostHeaderSize)
	h.EncodeTo(buf)
	return buf, nil
}

// EncodeTo writes the header to buf, which must hold HostHeaderSize bytes.
// Padding bytes are zeroed.
func (h *HostHeader) EncodeTo(buf []byte) {
	buf = buf[:HostHeaderSize]
	clear(buf)
	w := &fieldWriter{buf: buf}
	w.putBytes(hMagic, h.Magic[:])
	w.putUint32(hVersionMajor, h.VersionMajor)
	w.putUint32(hVersionMinor, h.VersionMinor)
	w.putUint32(hHeaderSize, h.HeaderSize)
	w.putUint16(hWidth, h.Width)
	w.putUint16(hHeight, h.Height)
	w.putUint32(hFlags, uint32(h.Flags))
	w.putUint16(hNumFrames, h.NumFrames)
	w.putUint16(hStartFrame, h.StartFrame)
	for i, f := range hReflectivity {
		w.putFloat32(f, h.Reflectivity[i])
	}
	w.putFloat32(hBumpScale, h.BumpScale)
	w.putUint32(hImageFormat, uint32(h.ImageFormat))
	w.putUint8(hNumMipLevels, h.NumMipLevels)
	w.putUint32(hLowResImageFormat, uint32(h.LowResImageFormat))
	w.putUint8(hLowResImageWidth, h.LowResImageWidth)
	w.putUint8(hLowResImageHeight, h.LowResImageHeight)
}

// UnmarshalBinary decodes and validates a 7.x header.
func (h *HostHeader) UnmarshalBinary(data []byte) error {
	if len(data) < HostHeaderSize {
		return formatErrorf("header data too short: need %d, got %d", HostHeaderSize, len(data))
	}
	if err := h.DecodeFrom(data); err != nil {
		return err
	}
	return h.Validate()
}

// DecodeFrom reads the header from data. Does not validate.
func (h *HostHeader) DecodeFrom(data []byte) error {
	r := newFieldReader(data, 0)
	r.copyTo(h.Magic[:], hMagic)
	h.VersionMajor = r.u32(hVersionMajor)
	h.VersionMinor = r.u32(hVersionMinor)
	h.HeaderSize = r.u32(hHeaderSize)
	h.Width = r.u16(hWidth)
	h.Height = r.u16(hHeight)
	h.Flags = TextureFlags(r.u32(hFlags))
	h.NumFrames = r.u16(hNumFrames)
	h.StartFrame = r.u16(hStartFrame)
	for i, f := range hReflectivity {
		h.Reflectivity[i] = r.f32(f)
	}
	h.BumpScale = r.f32(hBumpScale)
	h.ImageFormat = ImageFormat(int32(r.u32(hImageFormat)))
	h.NumMipLevels = r.u8(hNumMipLevels)
	h.LowResImageFormat = ImageFormat(int32(r.u32(hLowResImageFormat)))
	h.LowResImageWidth = r.u8(hLowResImageWidth)
	h.LowResImageHeight = r.u8(hLowResImageHeight)
	return r.err
}

// Validate checks the magic and that the header is a version 7 header.
func (h *HostHeader) Validate() error {
	if h.Magic != Magic {
		return formatErrorf("invalid magic: expected %q, got %q", Magic[:], h.Magic[:])
	}
	if h.VersionMajor != HostVersionMajor {
		return &UnsupportedVersionError{Major: h.VersionMajor, Minor: h.VersionMinor}
	}
	return nil
}

// String returns a human-readable summary.
func (h *HostHeader) String() string {
	return fmt.Sprintf("VTF %d.%d: %dx%d, %d mips, %d frames, format=%s, flags=%s",
		h.VersionMajor, h.VersionMinor, h.Width, h.Height, h.NumMipLevels,
		h.NumFrames, h.ImageFormat, h.Flags)
}
