package graphics

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"sb7/internal/assets"
	"sb7/internal/gfx"
)

// Texture is a 2D RGBA8 texture uploaded from a decoded image.
type Texture struct {
	ID     uint32
	Width  int
	Height int

	gl gfx.Context
}

// LoadTexture decodes a PNG, JPEG, BMP or TIFF media file and uploads it.
func LoadTexture(gl gfx.Context, name string) (*Texture, error) {
	data, err := assets.ReadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, assets.Formatf("%s: %v", name, err)
	}
	return UploadImage(gl, img)
}

// UploadImage converts img to RGBA and stores it in a new immutable texture
// with a single level and nearest filtering.
func UploadImage(gl gfx.Context, img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("cannot upload empty image %v", b)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	w, h := int32(b.Dx()), int32(b.Dy())
	tex := gl.GenTexture()
	gl.BindTexture(gfx.Texture2D, tex)

	gl.TexParameteri(gfx.Texture2D, gfx.TextureWrapS, gfx.ClampToEdge)
	gl.TexParameteri(gfx.Texture2D, gfx.TextureWrapT, gfx.ClampToEdge)
	gl.TexParameteri(gfx.Texture2D, gfx.TextureMinFilter, gfx.Nearest)
	gl.TexParameteri(gfx.Texture2D, gfx.TextureMagFilter, gfx.Nearest)

	gl.TexStorage2D(gfx.Texture2D, 1, gfx.RGBA8, w, h)
	gl.TexSubImage2D(gfx.Texture2D, 0, 0, 0, w, h, gfx.RGBA, gfx.UnsignedByte, rgba.Pix)

	gl.BindTexture(gfx.Texture2D, 0)

	return &Texture{ID: tex, Width: b.Dx(), Height: b.Dy(), gl: gl}, nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	t.gl.ActiveTexture(gfx.Texture0 + unit)
	t.gl.BindTexture(gfx.Texture2D, t.ID)
}

func (t *Texture) Delete() {
	if t == nil || t.ID == 0 {
		return
	}
	t.gl.DeleteTexture(t.ID)
	t.ID = 0
}
