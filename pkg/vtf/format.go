package vtf

import (
	"fmt"
	"strings"
)

// ImageFormat is the pixel format enum stored in both header variants.
type ImageFormat int32

const (
	ImageFormatUnknown ImageFormat = -1

	ImageFormatRGBA8888 ImageFormat = iota - 1
	ImageFormatABGR8888
	ImageFormatRGB888
	ImageFormatBGR888
	ImageFormatRGB565
	ImageFormatI8
	ImageFormatIA88
	ImageFormatP8
	ImageFormatA8
	ImageFormatRGB888Bluescreen
	ImageFormatBGR888Bluescreen
	ImageFormatARGB8888
	ImageFormatBGRA8888
	ImageFormatDXT1
	ImageFormatDXT3
	ImageFormatDXT5
	ImageFormatBGRX8888
	ImageFormatBGR565
	ImageFormatBGRX5551
	ImageFormatBGRA4444
	ImageFormatDXT1OneBitAlpha
	ImageFormatBGRA5551
	ImageFormatUV88
	ImageFormatUVWQ8888
	ImageFormatRGBA16161616F
	ImageFormatRGBA16161616
	ImageFormatUVLX8888
	ImageFormatR32F
	ImageFormatRGB323232F
	ImageFormatRGBA32323232F
	ImageFormatNVDST16
	ImageFormatNVDST24
	ImageFormatNVINTZ
	ImageFormatNVRAWZ
	ImageFormatATIDST16
	ImageFormatATIDST24
	ImageFormatNVNULL
	ImageFormatATI2N
	ImageFormatATI1N

	// Console-only formats. They follow ATI1N in the console build's enum.
	ImageFormatX360DST16
	ImageFormatX360DST24
	ImageFormatX360DST24F
	ImageFormatLinearBGRX8888
	ImageFormatLinearRGBA8888
	ImageFormatLinearABGR8888
	ImageFormatLinearARGB8888
	ImageFormatLinearBGRA8888
	ImageFormatLinearRGB888
	ImageFormatLinearBGR888
	ImageFormatLinearBGRX5551
	ImageFormatLinearI8
	ImageFormatLinearRGBA16161616
	ImageFormatLEBGRX8888
	ImageFormatLEBGRA8888
)

var imageFormatNames = map[ImageFormat]string{
	ImageFormatUnknown:            "UNKNOWN",
	ImageFormatRGBA8888:           "RGBA8888",
	ImageFormatABGR8888:           "ABGR8888",
	ImageFormatRGB888:             "RGB888",
	ImageFormatBGR888:             "BGR888",
	ImageFormatRGB565:             "RGB565",
	ImageFormatI8:                 "I8",
	ImageFormatIA88:               "IA88",
	ImageFormatP8:                 "P8",
	ImageFormatA8:                 "A8",
	ImageFormatRGB888Bluescreen:   "RGB888_BLUESCREEN",
	ImageFormatBGR888Bluescreen:   "BGR888_BLUESCREEN",
	ImageFormatARGB8888:           "ARGB8888",
	ImageFormatBGRA8888:           "BGRA8888",
	ImageFormatDXT1:               "DXT1",
	ImageFormatDXT3:               "DXT3",
	ImageFormatDXT5:               "DXT5",
	ImageFormatBGRX8888:           "BGRX8888",
	ImageFormatBGR565:             "BGR565",
	ImageFormatBGRX5551:           "BGRX5551",
	ImageFormatBGRA4444:           "BGRA4444",
	ImageFormatDXT1OneBitAlpha:    "DXT1_ONEBITALPHA",
	ImageFormatBGRA5551:           "BGRA5551",
	ImageFormatUV88:               "UV88",
	ImageFormatUVWQ8888:           "UVWQ8888",
	ImageFormatRGBA16161616F:      "RGBA16161616F",
	ImageFormatRGBA16161616:       "RGBA16161616",
	ImageFormatUVLX8888:           "UVLX8888",
	ImageFormatR32F:               "R32F",
	ImageFormatRGB323232F:         "RGB323232F",
	ImageFormatRGBA32323232F:      "RGBA32323232F",
	ImageFormatNVDST16:            "NV_DST16",
	ImageFormatNVDST24:            "NV_DST24",
	ImageFormatNVINTZ:             "NV_INTZ",
	ImageFormatNVRAWZ:             "NV_RAWZ",
	ImageFormatATIDST16:           "ATI_DST16",
	ImageFormatATIDST24:           "ATI_DST24",
	ImageFormatNVNULL:             "NV_NULL",
	ImageFormatATI2N:              "ATI2N",
	ImageFormatATI1N:              "ATI1N",
	ImageFormatX360DST16:          "X360_DST16",
	ImageFormatX360DST24:          "X360_DST24",
	ImageFormatX360DST24F:         "X360_DST24F",
	ImageFormatLinearBGRX8888:     "LINEAR_BGRX8888",
	ImageFormatLinearRGBA8888:     "LINEAR_RGBA8888",
	ImageFormatLinearABGR8888:     "LINEAR_ABGR8888",
	ImageFormatLinearARGB8888:     "LINEAR_ARGB8888",
	ImageFormatLinearBGRA8888:     "LINEAR_BGRA8888",
	ImageFormatLinearRGB888:       "LINEAR_RGB888",
	ImageFormatLinearBGR888:       "LINEAR_BGR888",
	ImageFormatLinearBGRX5551:     "LINEAR_BGRX5551",
	ImageFormatLinearI8:           "LINEAR_I8",
	ImageFormatLinearRGBA16161616: "LINEAR_RGBA16161616",
	ImageFormatLEBGRX8888:         "LE_BGRX8888",
	ImageFormatLEBGRA8888:         "LE_BGRA8888",
}

// String returns the format name, or UNKNOWN(n) for values outside the enum.
func (f ImageFormat) String() string {
	if name, ok := imageFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int32(f))
}

// ConsoleOnly reports whether the format has no PC equivalent.
// Such textures convert, but PC tools will not recognise the format.
func (f ImageFormat) ConsoleOnly() bool {
	return f >= ImageFormatX360DST16 && f <= ImageFormatLEBGRA8888
}

// TextureFlags is the texture attribute bitset shared by both headers.
type TextureFlags uint32

const (
	FlagPointSample       TextureFlags = 0x00000001
	FlagTrilinear         TextureFlags = 0x00000002
	FlagClampS            TextureFlags = 0x00000004
	FlagClampT            TextureFlags = 0x00000008
	FlagAnisotropic       TextureFlags = 0x00000010
	FlagHintDXT5          TextureFlags = 0x00000020
	FlagSRGB              TextureFlags = 0x00000040
	FlagNormal            TextureFlags = 0x00000080
	FlagNoMip             TextureFlags = 0x00000100
	FlagNoLOD             TextureFlags = 0x00000200
	FlagAllMips           TextureFlags = 0x00000400
	FlagProcedural        TextureFlags = 0x00000800
	FlagOneBitAlpha       TextureFlags = 0x00001000
	FlagEightBitAlpha     TextureFlags = 0x00002000
	FlagEnvMap            TextureFlags = 0x00004000
	FlagRenderTarget      TextureFlags = 0x00008000
	FlagDepthRenderTarget TextureFlags = 0x00010000
	FlagNoDebugOverride   TextureFlags = 0x00020000
	FlagSingleCopy        TextureFlags = 0x00040000
	FlagNoDepthBuffer     TextureFlags = 0x00800000
	FlagClampU            TextureFlags = 0x02000000
	FlagVertexTexture     TextureFlags = 0x04000000
	FlagSSBump            TextureFlags = 0x08000000
	FlagBorder            TextureFlags = 0x20000000
)

var flagNames = []struct {
	flag TextureFlags
	name string
}{
	{FlagPointSample, "POINTSAMPLE"},
	{FlagTrilinear, "TRILINEAR"},
	{FlagClampS, "CLAMPS"},
	{FlagClampT, "CLAMPT"},
	{FlagAnisotropic, "ANISOTROPIC"},
	{FlagHintDXT5, "HINT_DXT5"},
	{FlagSRGB, "SRGB"},
	{FlagNormal, "NORMAL"},
	{FlagNoMip, "NOMIP"},
	{FlagNoLOD, "NOLOD"},
	{FlagAllMips, "ALL_MIPS"},
	{FlagProcedural, "PROCEDURAL"},
	{FlagOneBitAlpha, "ONEBITALPHA"},
	{FlagEightBitAlpha, "EIGHTBITALPHA"},
	{FlagEnvMap, "ENVMAP"},
	{FlagRenderTarget, "RENDERTARGET"},
	{FlagDepthRenderTarget, "DEPTHRENDERTARGET"},
	{FlagNoDebugOverride, "NODEBUGOVERRIDE"},
	{FlagSingleCopy, "SINGLECOPY"},
	{FlagNoDepthBuffer, "NODEPTHBUFFER"},
	{FlagClampU, "CLAMPU"},
	{FlagVertexTexture, "VERTEXTEXTURE"},
	{FlagSSBump, "SSBUMP"},
	{FlagBorder, "BORDER"},
}

// Has reports whether every bit of flag is set.
func (f TextureFlags) Has(flag TextureFlags) bool {
	return f&flag == flag
}

// Names lists the known flags that are set, in bit order.
// Unused bits are reported as a single hex remainder.
func (f TextureFlags) Names() []string {
	var names []string
	rest := f
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%08x", uint32(rest)))
	}
	return names
}

func (f TextureFlags) String() string {
	if f == 0 {
		return "0"
	}
	return strings.Join(f.Names(), "|")
}
