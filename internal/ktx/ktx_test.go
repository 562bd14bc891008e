package ktx

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sb7/internal/assets"
	"sb7/internal/gfx"
	"sb7/internal/gfx/gfxtest"
)

func rgba8(w, h uint32) Header {
	return Header{
		Endianness:         Endianness,
		Type:               gfx.UnsignedByte,
		TypeSize:           1,
		Format:             gfx.RGBA,
		InternalFormat:     gfx.RGBA8,
		BaseInternalFormat: gfx.RGBA,
		PixelWidth:         w,
		PixelHeight:        h,
		MipLevels:          1,
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Endianness:         Endianness,
		Type:               gfx.UnsignedShort,
		TypeSize:           2,
		Format:             gfx.RG,
		InternalFormat:     0x822C,
		BaseInternalFormat: gfx.RG,
		PixelWidth:         640,
		PixelHeight:        480,
		PixelDepth:         0,
		ArrayElements:      3,
		Faces:              1,
		MipLevels:          10,
		KeyValueBytes:      24,
	}

	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			data := h.Encode(order)
			require.Len(t, data, HeaderSize)
			got, err := ParseHeader(data)
			require.NoError(t, err)
			assert.Equal(t, h, got)
		})
	}

	// the swapped encoding must actually differ byte for byte
	assert.NotEqual(t, h.Encode(binary.LittleEndian), h.Encode(binary.BigEndian))
}

func TestParseHeaderErrors(t *testing.T) {
	good := rgba8(4, 4).Encode(binary.LittleEndian)

	_, err := ParseHeader(good[:40])
	assert.ErrorIs(t, err, ErrHeaderMismatch)

	bad := append([]byte(nil), good...)
	bad[1] = 'X'
	_, err = ParseHeader(bad)
	assert.ErrorIs(t, err, ErrHeaderMismatch)
	assert.ErrorIs(t, err, assets.ErrFormat)

	bad = append([]byte(nil), good...)
	binary.LittleEndian.PutUint32(bad[12:], 0xdeadbeef)
	_, err = ParseHeader(bad)
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestTargetInference(t *testing.T) {
	tests := []struct {
		height, depth, arrays, faces uint32
		want                         uint32
	}{
		{0, 0, 0, 0, gfx.Texture1D},
		{0, 0, 4, 0, gfx.Texture1DArray},
		{8, 0, 0, 0, gfx.Texture2D},
		{8, 0, 0, 1, gfx.Texture2D},
		{8, 0, 0, 6, gfx.TextureCubeMap},
		{8, 0, 4, 0, gfx.Texture2DArray},
		{8, 0, 4, 6, gfx.TextureCubeMapArray},
		{8, 8, 0, 0, gfx.Texture3D},
	}
	for _, tt := range tests {
		h := Header{PixelWidth: 8, PixelHeight: tt.height, PixelDepth: tt.depth, ArrayElements: tt.arrays, Faces: tt.faces}
		got, err := h.Target()
		require.NoError(t, err, "%+v", tt)
		assert.Equal(t, uint32(tt.want), got, "%+v", tt)
	}
}

func TestTargetRejectsInsaneDimensions(t *testing.T) {
	for _, h := range []Header{
		{PixelWidth: 0, PixelHeight: 4},
		{PixelWidth: 4, PixelHeight: 0, PixelDepth: 4},
		{PixelWidth: 4, PixelHeight: 4, Faces: 3},
	} {
		_, err := h.Target()
		assert.ErrorIs(t, err, ErrHeaderMismatch, "%+v", h)
	}

	_, err := Header{PixelWidth: 4, PixelHeight: 4, PixelDepth: 4, ArrayElements: 2}.Target()
	assert.ErrorIs(t, err, ErrUnsupportedTarget)
}

func TestTargetRejects1DCube(t *testing.T) {
	for _, arrays := range []uint32{0, 3} {
		_, err := Header{PixelWidth: 16, Faces: 6, ArrayElements: arrays}.Target()
		assert.ErrorIs(t, err, ErrUnsupportedTarget)
	}
}

func TestLoadRejectsHugeDimensions(t *testing.T) {
	h := rgba8(0xFFFFFFFF, 0xFFFFFFFF)
	h.TypeSize = 4

	rec := gfxtest.New()
	_, err := Load(rec, Encode(h, nil, make([]byte, 16), binary.LittleEndian))
	assert.ErrorIs(t, err, ErrHeaderMismatch)
	assert.ErrorIs(t, err, assets.ErrFormat)
	assert.Empty(t, rec.Calls)

	// the largest accepted size still needs its bytes
	h = rgba8(maxDimension, maxDimension)
	h.TypeSize = 4
	_, err = Load(rec, Encode(h, nil, make([]byte, 16), binary.LittleEndian))
	assert.ErrorIs(t, err, assets.ErrFormat)
	assert.Empty(t, rec.Calls)

	h = rgba8(4, 4)
	h.ArrayElements = maxDimension + 1
	_, err = Load(rec, Encode(h, nil, nil, binary.LittleEndian))
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestLoadRejectsBadElementSize(t *testing.T) {
	for _, size := range []uint32{0, 3, 8} {
		h := rgba8(4, 4)
		h.TypeSize = size
		rec := gfxtest.New()
		_, err := Load(rec, Encode(h, nil, make([]byte, 4*4*4*8), binary.LittleEndian))
		assert.ErrorIs(t, err, ErrHeaderMismatch, "type size %d", size)
		assert.Empty(t, rec.Calls)
	}
}

func TestLoadRejectsExtraMipLevels(t *testing.T) {
	for _, levels := range []uint32{4, 1000, 0xFFFFFFFF} {
		h := rgba8(4, 4)
		h.MipLevels = levels
		rec := gfxtest.New()
		_, err := Load(rec, Encode(h, nil, make([]byte, 4096), binary.LittleEndian))
		assert.ErrorIs(t, err, ErrHeaderMismatch, "levels %d", levels)
		assert.Empty(t, rec.Calls)
	}

	// 4x4, 2x2, 1x1 is a full chain
	h := rgba8(4, 4)
	h.MipLevels = 3
	rec := gfxtest.New()
	_, err := Load(rec, Encode(h, nil, make([]byte, 64+16+4), binary.LittleEndian))
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Count("TexSubImage2D"))
	assert.Zero(t, rec.Count("GenerateMipmap"))
}

func TestLoad2DGeneratesMipmaps(t *testing.T) {
	rec := gfxtest.New()
	data := Encode(rgba8(256, 256), nil, make([]byte, 256*256*4), binary.LittleEndian)

	tex, err := Load(rec, data)
	require.NoError(t, err)
	assert.Equal(t, uint32(gfx.Texture2D), tex.Target)
	assert.NotZero(t, tex.ID)

	storage := rec.Find("TexStorage2D")
	require.Len(t, storage, 1)
	assert.Equal(t, []any{uint32(gfx.Texture2D), int32(1), uint32(gfx.RGBA8), int32(256), int32(256)}, storage[0].Args)

	sub := rec.Find("TexSubImage2D")
	require.Len(t, sub, 1)
	assert.Equal(t, 256*256*4, sub[0].Args[8])

	gen := rec.Find("GenerateMipmap")
	require.Len(t, gen, 1)
	assert.Equal(t, uint32(gfx.Texture2D), gen[0].Args[0])
}

func TestLoadMipChain(t *testing.T) {
	h := rgba8(4, 2)
	h.Format, h.BaseInternalFormat, h.InternalFormat = gfx.RGB, gfx.RGB, gfx.RGB8
	h.MipLevels = 3

	// rows of 12, 6 and 3 bytes pad to 12, 8 and 4
	payload := make([]byte, 12*2+8*1+4*1)
	rec := gfxtest.New()
	_, err := Load(rec, Encode(h, nil, payload, binary.LittleEndian))
	require.NoError(t, err)

	sub := rec.Find("TexSubImage2D")
	require.Len(t, sub, 3)
	levels := []struct {
		w, h int32
		n    int
	}{{4, 2, 24}, {2, 1, 8}, {1, 1, 4}}
	for i, want := range levels {
		assert.Equal(t, int32(i), sub[i].Args[1])
		assert.Equal(t, want.w, sub[i].Args[4])
		assert.Equal(t, want.h, sub[i].Args[5])
		assert.Equal(t, want.n, sub[i].Args[8])
	}
	assert.Zero(t, rec.Count("GenerateMipmap"))

	align := rec.Find("PixelStorei")
	require.Len(t, align, 1)
	assert.Equal(t, []any{uint32(gfx.UnpackAlignment), int32(4)}, align[0].Args)
}

func TestLoadCubeMap(t *testing.T) {
	h := rgba8(2, 2)
	h.Faces = 6
	rec := gfxtest.New()

	tex, err := Load(rec, Encode(h, nil, make([]byte, 6*16), binary.LittleEndian))
	require.NoError(t, err)
	assert.Equal(t, uint32(gfx.TextureCubeMap), tex.Target)

	storage := rec.Find("TexStorage2D")
	require.Len(t, storage, 1)
	assert.Equal(t, uint32(gfx.TextureCubeMap), storage[0].Args[0])

	sub := rec.Find("TexSubImage2D")
	require.Len(t, sub, 6)
	faces := []uint32{
		gfx.TextureCubeMapPositiveX, gfx.TextureCubeMapNegativeX,
		gfx.TextureCubeMapPositiveY, gfx.TextureCubeMapNegativeY,
		gfx.TextureCubeMapPositiveZ, gfx.TextureCubeMapNegativeZ,
	}
	for i, face := range faces {
		assert.Equal(t, face, sub[i].Args[0])
		assert.Equal(t, 16, sub[i].Args[8])
	}
}

func TestLoadArrayAnd3D(t *testing.T) {
	h := rgba8(2, 2)
	h.ArrayElements = 3
	rec := gfxtest.New()
	_, err := Load(rec, Encode(h, nil, make([]byte, 2*2*4*3), binary.LittleEndian))
	require.NoError(t, err)
	storage := rec.Find("TexStorage3D")
	require.Len(t, storage, 1)
	assert.Equal(t, []any{uint32(gfx.Texture2DArray), int32(1), uint32(gfx.RGBA8), int32(2), int32(2), int32(3)}, storage[0].Args)
	sub := rec.Find("TexSubImage3D")
	require.Len(t, sub, 1)
	assert.Equal(t, 48, sub[0].Args[10])

	h = rgba8(2, 2)
	h.PixelDepth = 2
	rec = gfxtest.New()
	_, err = Load(rec, Encode(h, nil, make([]byte, 2*2*2*4), binary.LittleEndian))
	require.NoError(t, err)
	sub = rec.Find("TexSubImage3D")
	require.Len(t, sub, 1)
	assert.Equal(t, uint32(gfx.Texture3D), sub[0].Args[0])
	assert.Equal(t, int32(2), sub[0].Args[7])

	h = rgba8(8, 0)
	rec = gfxtest.New()
	_, err = Load(rec, Encode(h, nil, make([]byte, 32), binary.LittleEndian))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Count("TexStorage1D"))
	assert.Equal(t, 1, rec.Count("TexSubImage1D"))
}

func TestLoadCompressed(t *testing.T) {
	h := rgba8(4, 4)
	h.Type, h.TypeSize, h.Format = gfx.None, 1, gfx.None
	h.InternalFormat = 0x8D64

	rec := gfxtest.New()
	_, err := Load(rec, Encode(h, nil, make([]byte, 8), binary.LittleEndian))
	require.NoError(t, err)
	comp := rec.Find("CompressedTexImage2D")
	require.Len(t, comp, 1)
	assert.Equal(t, []any{uint32(gfx.Texture2D), int32(0), uint32(0x8D64), int32(4), int32(4), 8}, comp[0].Args)
	assert.Zero(t, rec.Count("TexStorage2D"))

	h.PixelDepth = 4
	_, err = Load(gfxtest.New(), Encode(h, nil, make([]byte, 8), binary.LittleEndian))
	assert.ErrorIs(t, err, ErrUnsupportedTarget)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	h := rgba8(4, 4)
	h.BaseInternalFormat = 0x1234
	rec := gfxtest.New()
	_, err := Load(rec, Encode(h, nil, make([]byte, 64), binary.LittleEndian))
	assert.ErrorIs(t, err, ErrUnsupportedTarget)
	assert.Zero(t, rec.Count("GenTexture"))
}

func TestLoadTruncatedPayload(t *testing.T) {
	rec := gfxtest.New()
	_, err := Load(rec, Encode(rgba8(16, 16), nil, make([]byte, 100), binary.LittleEndian))
	assert.ErrorIs(t, err, assets.ErrFormat)
	assert.Empty(t, rec.Calls)
}

func TestLoadIntoExistingTexture(t *testing.T) {
	h := rgba8(2, 2)
	h.MipLevels = 0
	rec := gfxtest.New()

	tex, err := Load(rec, Encode(h, nil, make([]byte, 16), binary.LittleEndian), WithTexture(42))
	require.NoError(t, err)
	assert.Equal(t, uint32(42), tex.ID)
	assert.Equal(t, uint32(1), tex.Header.MipLevels)
	assert.Zero(t, rec.Count("GenTexture"))
	assert.Equal(t, uint32(42), rec.Bound(gfx.Texture2D))
	assert.Equal(t, 1, rec.Count("GenerateMipmap"))

	tex.Delete()
	tex.Delete()
	assert.Equal(t, 1, rec.Count("DeleteTexture"))
}

func TestLoadBigEndian(t *testing.T) {
	h := rgba8(1, 1)
	h.Type, h.TypeSize = gfx.UnsignedShort, 2
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	data := Encode(h, map[string]string{"KTXorientation": "S=r,T=d"}, payload, binary.BigEndian)

	tex, err := Load(gfxtest.New(), data)
	require.NoError(t, err)
	assert.Equal(t, h.PixelWidth, tex.Header.PixelWidth)
	assert.Equal(t, "S=r,T=d", tex.Metadata["KTXorientation"])
	// the caller's buffer is left alone
	assert.Equal(t, byte(0x01), data[len(data)-8])
}

func TestMetadata(t *testing.T) {
	meta := map[string]string{"KTXorientation": "S=r,T=u", "a": ""}
	data := Encode(rgba8(1, 1), meta, make([]byte, 4), binary.LittleEndian)

	h, err := ParseHeader(data)
	require.NoError(t, err)
	assert.Zero(t, h.KeyValueBytes%4)

	tex, err := Load(gfxtest.New(), data)
	require.NoError(t, err)
	assert.Equal(t, meta, tex.Metadata)

	// an entry claiming more bytes than the block holds
	bad := append([]byte(nil), data...)
	binary.LittleEndian.PutUint32(bad[HeaderSize:], 1000)
	_, err = Load(gfxtest.New(), bad)
	assert.ErrorIs(t, err, assets.ErrFormat)

	// metadata length past the end of the file
	bad = append([]byte(nil), data...)
	binary.LittleEndian.PutUint32(bad[60:], 1<<20)
	_, err = Load(gfxtest.New(), bad)
	assert.ErrorIs(t, err, assets.ErrFormat)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(gfxtest.New(), filepath.Join(t.TempDir(), "missing.ktx"))
	var ioErr *assets.IOError
	assert.ErrorAs(t, err, &ioErr)
}
