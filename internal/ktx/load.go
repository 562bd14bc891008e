package ktx

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/bits"

	"sb7/internal/assets"
	"sb7/internal/gfx"
)

// Texture is a GL texture and the header it was loaded from. The demo that
// loaded it owns it.
type Texture struct {
	ID     uint32
	Target uint32
	Header Header
	// Metadata holds the container's key/value pairs.
	Metadata map[string]string

	gl gfx.Context
}

// Delete releases the texture. Calling it again is a no-op.
func (t *Texture) Delete() {
	if t == nil || t.ID == 0 {
		return
	}
	t.gl.DeleteTexture(t.ID)
	t.ID = 0
}

type loadOptions struct {
	texture uint32
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithTexture uploads into an existing texture name instead of generating
// one.
func WithTexture(id uint32) LoadOption {
	return func(o *loadOptions) { o.texture = id }
}

// LoadFile reads a media file and loads it with Load.
func LoadFile(gl gfx.Context, name string, opts ...LoadOption) (*Texture, error) {
	data, err := assets.ReadFile(name)
	if err != nil {
		return nil, err
	}
	tex, err := Load(gl, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tex, nil
}

// upload is one TexSubImage call.
type upload struct {
	target  uint32
	level   int32
	w, h, d int32
	data    []byte
}

// Load parses a container, allocates immutable storage for every mip level
// and uploads the payload. A container with a single level gets its chain
// generated by the driver.
func Load(gl gfx.Context, data []byte, opts ...LoadOption) (*Texture, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	h, order, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	target, err := h.Target()
	if err != nil {
		return nil, err
	}

	if uint64(h.KeyValueBytes) > uint64(len(data)-HeaderSize) {
		return nil, assets.Formatf("ktx metadata of %d bytes overruns the file", h.KeyValueBytes)
	}
	meta, err := parseMetadata(data[HeaderSize:HeaderSize+int(h.KeyValueBytes)], order)
	if err != nil {
		return nil, err
	}
	payload := data[HeaderSize+int(h.KeyValueBytes):]

	if h.MipLevels == 0 {
		h.MipLevels = 1
	}
	if err := checkLimits(h); err != nil {
		return nil, err
	}

	// Work out every upload before touching GL so a bad file leaves no
	// half-initialized texture behind.
	var uploads []upload
	if h.IsCompressed() {
		if target != gfx.Texture2D {
			return nil, fmt.Errorf("%w: compressed payload for target 0x%x", ErrUnsupportedTarget, target)
		}
		if len(payload) == 0 {
			return nil, assets.Formatf("ktx compressed payload is empty")
		}
	} else {
		if components(h.BaseInternalFormat) == 0 {
			return nil, fmt.Errorf("%w: base internal format 0x%x", ErrUnsupportedTarget, h.BaseInternalFormat)
		}
		if h.TypeSize > 1 && order == binary.BigEndian {
			payload = swapElements(payload, int(h.TypeSize))
		}
		uploads, err = plan(h, target, payload)
		if err != nil {
			return nil, err
		}
	}

	tex := o.texture
	if tex == 0 {
		tex = gl.GenTexture()
	}
	gl.BindTexture(target, tex)

	levels := int32(h.MipLevels)
	w, ht, d := int32(h.PixelWidth), int32(h.PixelHeight), int32(h.PixelDepth)
	layers := int32(h.ArrayElements)

	switch {
	case h.IsCompressed():
		gl.CompressedTexImage2D(target, 0, h.InternalFormat, w, ht, payload)
	default:
		switch target {
		case gfx.Texture1D:
			gl.TexStorage1D(target, levels, h.InternalFormat, w)
		case gfx.Texture1DArray:
			gl.TexStorage2D(target, levels, h.InternalFormat, w, layers)
		case gfx.Texture2D, gfx.TextureCubeMap:
			gl.TexStorage2D(target, levels, h.InternalFormat, w, ht)
		case gfx.Texture2DArray:
			gl.TexStorage3D(target, levels, h.InternalFormat, w, ht, layers)
		case gfx.TextureCubeMapArray:
			gl.TexStorage3D(target, levels, h.InternalFormat, w, ht, layers*6)
		case gfx.Texture3D:
			gl.TexStorage3D(target, levels, h.InternalFormat, w, ht, d)
		}

		gl.PixelStorei(gfx.UnpackAlignment, rowAlignment)
		for _, u := range uploads {
			switch target {
			case gfx.Texture1D:
				gl.TexSubImage1D(u.target, u.level, 0, u.w, h.Format, h.Type, u.data)
			case gfx.Texture1DArray, gfx.Texture2D, gfx.TextureCubeMap:
				gl.TexSubImage2D(u.target, u.level, 0, 0, u.w, u.h, h.Format, h.Type, u.data)
			default:
				gl.TexSubImage3D(u.target, u.level, 0, 0, 0, u.w, u.h, u.d, h.Format, h.Type, u.data)
			}
		}
	}

	if h.MipLevels == 1 {
		gl.GenerateMipmap(target)
	}

	slog.Debug("loaded ktx texture",
		"texture", tex,
		"target", fmt.Sprintf("0x%x", target),
		"width", h.PixelWidth,
		"height", h.PixelHeight,
		"levels", h.MipLevels,
		"compressed", h.IsCompressed())

	return &Texture{ID: tex, Target: target, Header: h, Metadata: meta, gl: gl}, nil
}

// maxDimension bounds every extent and layer count. It is above any
// driver's GL_MAX_TEXTURE_SIZE and keeps level sizes far from overflow.
const maxDimension = 1 << 16

// checkLimits rejects headers whose sizes no texture can have.
func checkLimits(h Header) error {
	for _, d := range []struct {
		name string
		v    uint32
	}{
		{"width", h.PixelWidth},
		{"height", h.PixelHeight},
		{"depth", h.PixelDepth},
		{"array elements", h.ArrayElements},
	} {
		if d.v > maxDimension {
			return fmt.Errorf("%w: %s %d exceeds %d", ErrHeaderMismatch, d.name, d.v, maxDimension)
		}
	}
	if !h.IsCompressed() {
		switch h.TypeSize {
		case 1, 2, 4:
		default:
			return fmt.Errorf("%w: element size %d", ErrHeaderMismatch, h.TypeSize)
		}
	}
	// a full chain ends at 1x1x1
	if most := bits.Len32(max(h.PixelWidth, h.PixelHeight, h.PixelDepth)); h.MipLevels > uint32(most) {
		return fmt.Errorf("%w: %d mip levels for a %dx%dx%d texture", ErrHeaderMismatch,
			h.MipLevels, h.PixelWidth, h.PixelHeight, h.PixelDepth)
	}
	return nil
}

// plan slices the payload into per-level uploads. Levels are stored back
// to back with rows padded to rowAlignment. Array layers and cube faces are
// not halved.
func plan(h Header, target uint32, payload []byte) ([]upload, error) {
	w, ht, d := int(h.PixelWidth), int(h.PixelHeight), int(h.PixelDepth)
	layers := int(h.ArrayElements)

	var uploads []upload
	off := 0
	// sizes are computed in uint64 so no header can wrap them
	take := func(n uint64, level int) ([]byte, error) {
		if n > uint64(len(payload)-off) {
			return nil, assets.Formatf("ktx level %d needs %d bytes at %d, payload has %d", level, n, off, len(payload))
		}
		b := payload[off : off+int(n)]
		off += int(n)
		return b, nil
	}

	for level := 0; level < int(h.MipLevels); level++ {
		row := uint64(stride(h, w, rowAlignment))
		rows, depth, count := uint64(ht), uint64(d), uint64(layers)

		switch target {
		case gfx.TextureCubeMap:
			for face := 0; face < 6; face++ {
				b, err := take(row*rows, level)
				if err != nil {
					return nil, err
				}
				uploads = append(uploads, upload{
					target: gfx.TextureCubeMapPositiveX + uint32(face),
					level:  int32(level), w: int32(w), h: int32(ht), data: b,
				})
			}
		default:
			u := upload{target: target, level: int32(level), w: int32(w), h: 1, d: 1}
			n := row
			switch target {
			case gfx.Texture1DArray:
				u.h = int32(layers)
				n = row * count
			case gfx.Texture2D:
				u.h = int32(ht)
				n = row * rows
			case gfx.Texture2DArray:
				u.h, u.d = int32(ht), int32(layers)
				n = row * rows * count
			case gfx.TextureCubeMapArray:
				u.h, u.d = int32(ht), int32(layers*6)
				n = row * rows * count * 6
			case gfx.Texture3D:
				u.h, u.d = int32(ht), int32(d)
				n = row * rows * depth
			}
			b, err := take(n, level)
			if err != nil {
				return nil, err
			}
			u.data = b
			uploads = append(uploads, u)
		}

		w = max(w>>1, 1)
		if ht > 0 {
			ht = max(ht>>1, 1)
		}
		if target == gfx.Texture3D {
			d = max(d>>1, 1)
		}
	}
	return uploads, nil
}

// swapElements returns a copy of a big-endian payload with every element
// of size bytes reversed into little-endian order, which is what GL hosts
// use.
func swapElements(payload []byte, size int) []byte {
	out := make([]byte, len(payload))
	copy(out, payload)
	for i := 0; i+size <= len(out); i += size {
		for a, b := i, i+size-1; a < b; a, b = a+1, b-1 {
			out[a], out[b] = out[b], out[a]
		}
	}
	return out
}
