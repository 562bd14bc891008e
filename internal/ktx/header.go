// Package ktx loads KTX 1.1 texture containers into GL textures.
package ktx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"sb7/internal/assets"
	"sb7/internal/gfx"
)

var (
	// ErrHeaderMismatch is returned for a missing identifier, an unknown
	// endianness marker or dimensions that do not describe a texture.
	ErrHeaderMismatch = fmt.Errorf("%w: ktx header mismatch", assets.ErrFormat)
	// ErrUnsupportedTarget is returned for texture kinds and pixel formats
	// the loader cannot upload.
	ErrUnsupportedTarget = errors.New("ktx: unsupported texture target")
)

// Identifier is the 12-byte signature every container starts with.
var Identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

const (
	// HeaderSize is the size of the fixed header, including the identifier.
	HeaderSize = 64

	// Endianness is the marker as read in the writer's byte order.
	Endianness        = 0x04030201
	swappedEndianness = 0x01020304
)

// Header is the fixed part of a container. Fields are stored in host order
// after parsing.
type Header struct {
	Endianness         uint32
	Type               uint32
	TypeSize           uint32
	Format             uint32
	InternalFormat     uint32
	BaseInternalFormat uint32
	PixelWidth         uint32
	PixelHeight        uint32
	PixelDepth         uint32
	ArrayElements      uint32
	Faces              uint32
	MipLevels          uint32
	KeyValueBytes      uint32
}

// fields lists the header words in file order.
func (h *Header) fields() []*uint32 {
	return []*uint32{
		&h.Endianness, &h.Type, &h.TypeSize, &h.Format, &h.InternalFormat, &h.BaseInternalFormat,
		&h.PixelWidth, &h.PixelHeight, &h.PixelDepth, &h.ArrayElements, &h.Faces, &h.MipLevels,
		&h.KeyValueBytes,
	}
}

// ParseHeader reads the fixed header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	h, _, err := parseHeader(data)
	return h, err
}

func parseHeader(data []byte) (Header, binary.ByteOrder, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrHeaderMismatch, len(data))
	}
	if !bytes.Equal(data[:12], Identifier[:]) {
		return h, nil, fmt.Errorf("%w: bad identifier", ErrHeaderMismatch)
	}

	var order binary.ByteOrder
	switch binary.LittleEndian.Uint32(data[12:]) {
	case Endianness:
		order = binary.LittleEndian
	case swappedEndianness:
		order = binary.BigEndian
	default:
		return h, nil, fmt.Errorf("%w: endianness marker 0x%08x", ErrHeaderMismatch, binary.LittleEndian.Uint32(data[12:]))
	}

	off := 12
	for _, f := range h.fields() {
		*f = order.Uint32(data[off:])
		off += 4
	}
	return h, order, nil
}

// Encode writes the header in the given byte order. The endianness marker
// is always written as Endianness so readers can detect the order.
func (h Header) Encode(order binary.ByteOrder) []byte {
	h.Endianness = Endianness
	buf := make([]byte, HeaderSize)
	copy(buf, Identifier[:])
	off := 12
	for _, f := range h.fields() {
		order.PutUint32(buf[off:], *f)
		off += 4
	}
	return buf
}

// IsCube reports whether the header describes cube faces. Containers for
// ordinary textures carry either 0 or 1 in the face count.
func (h Header) IsCube() bool { return h.Faces > 1 }

// IsCompressed reports whether the payload is a compressed image.
func (h Header) IsCompressed() bool { return h.Type == gfx.None }

// Target infers the texture target from the dimensions and checks that
// they are consistent.
func (h Header) Target() (uint32, error) {
	if h.PixelWidth == 0 {
		return gfx.None, fmt.Errorf("%w: texture has no width", ErrHeaderMismatch)
	}
	if h.PixelHeight == 0 && h.PixelDepth > 0 {
		return gfx.None, fmt.Errorf("%w: texture has depth but no height", ErrHeaderMismatch)
	}
	if h.IsCube() && h.Faces != 6 {
		return gfx.None, fmt.Errorf("%w: cube map with %d faces", ErrHeaderMismatch, h.Faces)
	}

	switch {
	case h.PixelHeight == 0:
		if h.IsCube() {
			return gfx.None, fmt.Errorf("%w: 1D textures cannot be cube maps", ErrUnsupportedTarget)
		}
		if h.ArrayElements == 0 {
			return gfx.Texture1D, nil
		}
		return gfx.Texture1DArray, nil
	case h.PixelDepth == 0:
		switch {
		case h.ArrayElements == 0 && !h.IsCube():
			return gfx.Texture2D, nil
		case h.ArrayElements == 0:
			return gfx.TextureCubeMap, nil
		case !h.IsCube():
			return gfx.Texture2DArray, nil
		default:
			return gfx.TextureCubeMapArray, nil
		}
	}
	if h.IsCube() || h.ArrayElements > 0 {
		return gfx.None, fmt.Errorf("%w: 3D textures cannot be arrays or cube maps", ErrUnsupportedTarget)
	}
	return gfx.Texture3D, nil
}

// Encode writes a complete container: the header with KeyValueBytes set
// from metadata, the metadata block, then payload unchanged.
func Encode(h Header, metadata map[string]string, payload []byte, order binary.ByteOrder) []byte {
	kv := encodeMetadata(metadata, order)
	h.KeyValueBytes = uint32(len(kv))
	out := h.Encode(order)
	out = append(out, kv...)
	return append(out, payload...)
}
