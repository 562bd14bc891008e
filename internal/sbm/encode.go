package sbm

import (
	"encoding/binary"
	"math"

	"sb7/internal/gfx"
)

// Builder assembles an SBM file. Indices is nil for a non-indexed mesh.
type Builder struct {
	Flags         uint32
	Attribs       []AttribDecl
	Vertices      []byte
	TotalVertices uint32
	IndexType     uint32
	Indices       []byte
	SubObjects    []SubObject
	Comment       string
	// Combined writes vertices and indices into one DATA chunk.
	Combined bool
}

type chunkWriter struct {
	buf []byte
}

func (w *chunkWriter) u32(v ...uint32) {
	for _, x := range v {
		w.buf = binary.LittleEndian.AppendUint32(w.buf, x)
	}
}

// chunk appends a chunk whose body is written by fn and patches its size.
func (w *chunkWriter) chunk(typ uint32, fn func()) {
	start := len(w.buf)
	w.u32(typ, 0)
	fn()
	for len(w.buf)%4 != 0 {
		w.buf = append(w.buf, 0)
	}
	binary.LittleEndian.PutUint32(w.buf[start+4:], uint32(len(w.buf)-start))
}

// Encode writes the file. Offsets in VRTX and INDX are resolved to the
// position of the payloads that follow the chunks.
func (b *Builder) Encode() []byte {
	indexed := b.Indices != nil
	var count uint32 = 2 // ATRB, VRTX
	for _, present := range []bool{indexed, len(b.SubObjects) > 0, b.Comment != "", b.Combined} {
		if present {
			count++
		}
	}

	// Chunk sizes do not depend on the offsets, so lay out once with
	// placeholders to learn where the payload starts.
	layout := func(vertexOff, indexOff uint32) *chunkWriter {
		w := &chunkWriter{}
		w.u32(Magic, headerSize, count, b.Flags)
		w.chunk(ChunkVertexAttribs, func() {
			w.u32(uint32(len(b.Attribs)))
			for _, a := range b.Attribs {
				var name [attribNameSize]byte
				copy(name[:attribNameSize-1], a.Name)
				w.buf = append(w.buf, name[:]...)
				w.u32(a.Size, a.Type, a.Stride, a.Flags, a.Offset)
			}
		})
		w.chunk(ChunkVertexData, func() {
			w.u32(uint32(len(b.Vertices)), vertexOff, b.TotalVertices)
		})
		if indexed {
			w.chunk(ChunkIndexData, func() {
				w.u32(b.IndexType, b.indexCount(), indexOff)
			})
		}
		if len(b.SubObjects) > 0 {
			w.chunk(ChunkSubObjectList, func() {
				w.u32(uint32(len(b.SubObjects)))
				for _, s := range b.SubObjects {
					w.u32(s.First, s.Count)
				}
			})
		}
		if b.Comment != "" {
			w.chunk(ChunkComment, func() {
				w.buf = append(w.buf, b.Comment...)
				w.buf = append(w.buf, 0)
			})
		}
		return w
	}

	if b.Combined {
		w := layout(0, uint32(len(b.Vertices)))
		w.chunk(ChunkData, func() {
			w.u32(EncodingRaw, chunkHeaderSize+12, uint32(len(b.Vertices)+len(b.Indices)))
			w.buf = append(w.buf, b.Vertices...)
			w.buf = append(w.buf, b.Indices...)
		})
		return w.buf
	}

	payload := uint32(len(layout(0, 0).buf))
	w := layout(payload, payload+uint32(len(b.Vertices)))
	w.buf = append(w.buf, b.Vertices...)
	w.buf = append(w.buf, b.Indices...)
	return w.buf
}

func (b *Builder) indexCount() uint32 {
	size := gfx.IndexSize(b.IndexType)
	if size == 0 {
		return 0
	}
	return uint32(len(b.Indices) / size)
}

// Float32Bytes packs vertex data in little-endian order.
func Float32Bytes(v ...float32) []byte {
	out := make([]byte, 0, 4*len(v))
	for _, f := range v {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	return out
}

// Uint16Bytes packs UNSIGNED_SHORT indices.
func Uint16Bytes(v ...uint16) []byte {
	out := make([]byte, 0, 2*len(v))
	for _, i := range v {
		out = binary.LittleEndian.AppendUint16(out, i)
	}
	return out
}
