// Package color has the CSS named colors as opaque RGBA vectors.
package color

import "sb7/internal/vmath"

// FromHex converts 0xRRGGBB to an opaque RGBA color in [0, 1].
func FromHex(rgb uint32) vmath.Vec4f {
	return vmath.Vec4f{
		float32((rgb>>16)&0xFF) / 255,
		float32((rgb>>8)&0xFF) / 255,
		float32(rgb&0xFF) / 255,
		1,
	}
}

var (
	AliceBlue            = FromHex(0xF0F8FF)
	AntiqueWhite         = FromHex(0xFAEBD7)
	Aqua                 = FromHex(0x00FFFF)
	Aquamarine           = FromHex(0x7FFFD4)
	Azure                = FromHex(0xF0FFFF)
	Beige                = FromHex(0xF5F5DC)
	Bisque               = FromHex(0xFFE4C4)
	Black                = FromHex(0x000000)
	BlanchedAlmond       = FromHex(0xFFEBCD)
	Blue                 = FromHex(0x0000FF)
	BlueViolet           = FromHex(0x8A2BE2)
	Brown                = FromHex(0xA52A2A)
	BurlyWood            = FromHex(0xDEB887)
	CadetBlue            = FromHex(0x5F9EA0)
	Chartreuse           = FromHex(0x7FFF00)
	Chocolate            = FromHex(0xD2691E)
	Coral                = FromHex(0xFF7F50)
	CornflowerBlue       = FromHex(0x6495ED)
	Cornsilk             = FromHex(0xFFF8DC)
	Crimson              = FromHex(0xDC143C)
	Cyan                 = FromHex(0x00FFFF)
	DarkBlue             = FromHex(0x00008B)
	DarkCyan             = FromHex(0x008B8B)
	DarkGoldenRod        = FromHex(0xB8860B)
	DarkGray             = FromHex(0xA9A9A9)
	DarkGreen            = FromHex(0x006400)
	DarkKhaki            = FromHex(0xBDB76B)
	DarkMagenta          = FromHex(0x8B008B)
	DarkOliveGreen       = FromHex(0x556B2F)
	DarkOrange           = FromHex(0xFF8C00)
	DarkOrchid           = FromHex(0x9932CC)
	DarkRed              = FromHex(0x8B0000)
	DarkSalmon           = FromHex(0xE9967A)
	DarkSeaGreen         = FromHex(0x8FBC8F)
	DarkSlateBlue        = FromHex(0x483D8B)
	DarkSlateGray        = FromHex(0x2F4F4F)
	DarkTurquoise        = FromHex(0x00CED1)
	DarkViolet           = FromHex(0x9400D3)
	DeepPink             = FromHex(0xFF1493)
	DeepSkyBlue          = FromHex(0x00BFFF)
	DimGray              = FromHex(0x696969)
	DodgerBlue           = FromHex(0x1E90FF)
	FireBrick            = FromHex(0xB22222)
	FloralWhite          = FromHex(0xFFFAF0)
	ForestGreen          = FromHex(0x228B22)
	Fuchsia              = FromHex(0xFF00FF)
	Gainsboro            = FromHex(0xDCDCDC)
	GhostWhite           = FromHex(0xF8F8FF)
	Gold                 = FromHex(0xFFD700)
	GoldenRod            = FromHex(0xDAA520)
	Gray                 = FromHex(0x808080)
	Green                = FromHex(0x008000)
	GreenYellow          = FromHex(0xADFF2F)
	HoneyDew             = FromHex(0xF0FFF0)
	HotPink              = FromHex(0xFF69B4)
	IndianRed            = FromHex(0xCD5C5C)
	Indigo               = FromHex(0x4B0082)
	Ivory                = FromHex(0xFFFFF0)
	Khaki                = FromHex(0xF0E68C)
	Lavender             = FromHex(0xE6E6FA)
	LavenderBlush        = FromHex(0xFFF0F5)
	LawnGreen            = FromHex(0x7CFC00)
	LemonChiffon         = FromHex(0xFFFACD)
	LightBlue            = FromHex(0xADD8E6)
	LightCoral           = FromHex(0xF08080)
	LightCyan            = FromHex(0xE0FFFF)
	LightGoldenRodYellow = FromHex(0xFAFAD2)
	LightGray            = FromHex(0xD3D3D3)
	LightGreen           = FromHex(0x90EE90)
	LightPink            = FromHex(0xFFB6C1)
	LightSalmon          = FromHex(0xFFA07A)
	LightSeaGreen        = FromHex(0x20B2AA)
	LightSkyBlue         = FromHex(0x87CEFA)
	LightSlateGray       = FromHex(0x778899)
	LightSteelBlue       = FromHex(0xB0C4DE)
	LightYellow          = FromHex(0xFFFFE0)
	Lime                 = FromHex(0x00FF00)
	LimeGreen            = FromHex(0x32CD32)
	Linen                = FromHex(0xFAF0E6)
	Magenta              = FromHex(0xFF00FF)
	Maroon               = FromHex(0x800000)
	MediumAquaMarine     = FromHex(0x66CDAA)
	MediumBlue           = FromHex(0x0000CD)
	MediumOrchid         = FromHex(0xBA55D3)
	MediumPurple         = FromHex(0x9370DB)
	MediumSeaGreen       = FromHex(0x3CB371)
	MediumSlateBlue      = FromHex(0x7B68EE)
	MediumSpringGreen    = FromHex(0x00FA9A)
	MediumTurquoise      = FromHex(0x48D1CC)
	MediumVioletRed      = FromHex(0xC71585)
	MidnightBlue         = FromHex(0x191970)
	MintCream            = FromHex(0xF5FFFA)
	MistyRose            = FromHex(0xFFE4E1)
	Moccasin             = FromHex(0xFFE4B5)
	NavajoWhite          = FromHex(0xFFDEAD)
	Navy                 = FromHex(0x000080)
	OldLace              = FromHex(0xFDF5E6)
	Olive                = FromHex(0x808000)
	OliveDrab            = FromHex(0x6B8E23)
	Orange               = FromHex(0xFFA500)
	OrangeRed            = FromHex(0xFF4500)
	Orchid               = FromHex(0xDA70D6)
	PaleGoldenRod        = FromHex(0xEEE8AA)
	PaleGreen            = FromHex(0x98FB98)
	PaleTurquoise        = FromHex(0xAFEEEE)
	PaleVioletRed        = FromHex(0xDB7093)
	PapayaWhip           = FromHex(0xFFEFD5)
	PeachPuff            = FromHex(0xFFDAB9)
	Peru                 = FromHex(0xCD853F)
	Pink                 = FromHex(0xFFC0CB)
	Plum                 = FromHex(0xDDA0DD)
	PowderBlue           = FromHex(0xB0E0E6)
	Purple               = FromHex(0x800080)
	RebeccaPurple        = FromHex(0x663399)
	Red                  = FromHex(0xFF0000)
	RosyBrown            = FromHex(0xBC8F8F)
	RoyalBlue            = FromHex(0x4169E1)
	SaddleBrown          = FromHex(0x8B4513)
	Salmon               = FromHex(0xFA8072)
	SandyBrown           = FromHex(0xF4A460)
	SeaGreen             = FromHex(0x2E8B57)
	SeaShell             = FromHex(0xFFF5EE)
	Sienna               = FromHex(0xA0522D)
	Silver               = FromHex(0xC0C0C0)
	SkyBlue              = FromHex(0x87CEEB)
	SlateBlue            = FromHex(0x6A5ACD)
	SlateGray            = FromHex(0x708090)
	Snow                 = FromHex(0xFFFAFA)
	SpringGreen          = FromHex(0x00FF7F)
	SteelBlue            = FromHex(0x4682B4)
	Tan                  = FromHex(0xD2B48C)
	Teal                 = FromHex(0x008080)
	Thistle              = FromHex(0xD8BFD8)
	Tomato               = FromHex(0xFF6347)
	Turquoise            = FromHex(0x40E0D0)
	Violet               = FromHex(0xEE82EE)
	Wheat                = FromHex(0xF5DEB3)
	White                = FromHex(0xFFFFFF)
	WhiteSmoke           = FromHex(0xF5F5F5)
	Yellow               = FromHex(0xFFFF00)
	YellowGreen          = FromHex(0x9ACD32)
)
