package graphics

import (
	"image"
	"image/draw"
	"log/slog"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"sb7/internal/gfx"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel rectangle of the glyph in the atlas (top-left origin)
	X, Y int
	W, H int
	// Offset of the bitmap's top-left corner from the pen position on the
	// baseline
	BearingX int
	BearingY int
	// Advance in pixels
	Advance float32
}

// FontAtlas is a single-channel glyph atlas baked from a font face.
type FontAtlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float32
	Ascent     float32
}

// ASCII returns the printable ASCII range.
func ASCII() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	return runes
}

// DefaultFace returns Go Regular at the given pixel size, or the fixed
// 7x13 bitmap face if the embedded font cannot be parsed.
func DefaultFace(pixels float64) font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err == nil {
		var face font.Face
		face, err = opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
		if err == nil {
			return face
		}
	}
	slog.Warn("falling back to bitmap font", "err", err)
	return basicfont.Face7x13
}

// BakeFont rasterizes runes from face into rows of an atlas atlasW pixels
// wide. The height is whatever the rows need. Runes the face lacks are
// skipped.
func BakeFont(face font.Face, runes []rune, atlasW int) *FontAtlas {
	const padding = 1

	type placed struct {
		r     rune
		dr    image.Rectangle
		mask  image.Image
		maskp image.Point
		adv   fixed.Int26_6
	}

	// First pass: lay glyphs out in rows to find the atlas height
	var glyphs []placed
	offsetX, offsetY, rowHeight := 0, 0, 0
	positions := make(map[rune]image.Point)
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, placed{r, dr, mask, maskp, advance})
		gw, gh := dr.Dx(), dr.Dy()
		if gw == 0 || gh == 0 || mask == nil {
			continue
		}
		if offsetX+gw > atlasW {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		positions[r] = image.Pt(offsetX, offsetY)
		offsetX += gw + padding
		if gh > rowHeight {
			rowHeight = gh
		}
	}
	atlasH := offsetY + rowHeight
	if atlasH == 0 {
		atlasH = 1
	}

	atlas := &FontAtlas{
		Image:  image.NewAlpha(image.Rect(0, 0, atlasW, atlasH)),
		Glyphs: make(map[rune]Glyph, len(glyphs)),
	}

	// Second pass: copy glyph coverage into the atlas and record metrics
	for _, g := range glyphs {
		glyph := Glyph{
			BearingX: g.dr.Min.X,
			BearingY: -g.dr.Min.Y,
			Advance:  float32(math.Round(float64(g.adv) / 64.0)),
		}
		if pos, ok := positions[g.r]; ok {
			glyph.X, glyph.Y = pos.X, pos.Y
			glyph.W, glyph.H = g.dr.Dx(), g.dr.Dy()
			dst := image.Rect(pos.X, pos.Y, pos.X+glyph.W, pos.Y+glyph.H)
			draw.Draw(atlas.Image, dst, g.mask, g.maskp, draw.Src)
		}
		atlas.Glyphs[g.r] = glyph
	}

	m := face.Metrics()
	atlas.LineHeight = float32(m.Height.Ceil())
	atlas.Ascent = float32(m.Ascent.Ceil())
	return atlas
}

// Upload stores the atlas in a new R8 texture with linear filtering and
// returns its name.
func (a *FontAtlas) Upload(gl gfx.Context) uint32 {
	b := a.Image.Bounds()
	w, h := int32(b.Dx()), int32(b.Dy())

	tex := gl.GenTexture()
	gl.BindTexture(gfx.Texture2D, tex)
	gl.TexStorage2D(gfx.Texture2D, 1, gfx.R8, w, h)
	// rows of a single-channel image are not 4-byte aligned
	gl.PixelStorei(gfx.UnpackAlignment, 1)
	gl.TexSubImage2D(gfx.Texture2D, 0, 0, 0, w, h, gfx.Red, gfx.UnsignedByte, a.Image.Pix)
	gl.PixelStorei(gfx.UnpackAlignment, 4)
	gl.TexParameteri(gfx.Texture2D, gfx.TextureWrapS, gfx.ClampToEdge)
	gl.TexParameteri(gfx.Texture2D, gfx.TextureWrapT, gfx.ClampToEdge)
	gl.TexParameteri(gfx.Texture2D, gfx.TextureMinFilter, gfx.Linear)
	gl.TexParameteri(gfx.Texture2D, gfx.TextureMagFilter, gfx.Linear)
	gl.BindTexture(gfx.Texture2D, 0)
	return tex
}

// Measure returns the width and height in pixels text occupies at scale.
// Missing glyphs advance like a space.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		width += g.Advance * scale
		if h := float32(g.H) * scale; h > maxH {
			maxH = h
		}
	}
	return width, maxH
}
