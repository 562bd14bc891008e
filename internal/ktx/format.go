package ktx

import "sb7/internal/gfx"

// rowAlignment is the unpack alignment KTX payload rows are padded to.
const rowAlignment = 4

// components returns the channel count of an uncompressed base format, or
// 0 for formats the loader does not know.
func components(baseFormat uint32) int {
	switch baseFormat {
	case gfx.Red, gfx.Green, gfx.Blue, gfx.Alpha, gfx.Luminance,
		gfx.RedInteger, gfx.DepthComponent, gfx.StencilIndex:
		return 1
	case gfx.RG, gfx.RGInteger, gfx.LuminanceAlpha:
		return 2
	case gfx.RGB, gfx.BGR, gfx.RGBInteger, gfx.BGRInteger:
		return 3
	case gfx.RGBA, gfx.BGRA, gfx.RGBAInteger, gfx.BGRAInteger:
		return 4
	}
	return 0
}

// stride is the byte length of one row of width pixels padded to align.
func stride(h Header, width, align int) int {
	s := int(h.TypeSize) * components(h.BaseInternalFormat) * width
	return (s + align - 1) &^ (align - 1)
}
