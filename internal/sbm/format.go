// Package sbm reads and writes SBM chunked mesh files and uploads them into
// vertex arrays.
package sbm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"sb7/internal/assets"
	"sb7/internal/gfx"
)

func fourCC(s string) uint32 { return binary.LittleEndian.Uint32([]byte(s)) }

// Magic is the "SB6M" signature in the first word of a file.
var Magic = fourCC("SB6M")

// Chunk types.
var (
	ChunkIndexData     = fourCC("INDX")
	ChunkVertexData    = fourCC("VRTX")
	ChunkVertexAttribs = fourCC("ATRB")
	ChunkSubObjectList = fourCC("OLST")
	ChunkComment       = fourCC("CMNT")
	ChunkData          = fourCC("DATA")
)

// Attribute flags.
const (
	AttribNormalized = 0x1
	AttribInteger    = 0x2
)

const (
	headerSize      = 16
	chunkHeaderSize = 8
	attribNameSize  = 64
	attribDeclSize  = attribNameSize + 5*4
	subObjectSize   = 8

	// EncodingRaw is the only DATA chunk encoding.
	EncodingRaw = 0
)

// IndexData describes the INDX chunk. Offset is a file offset, or an
// offset into the DATA blob when one is present.
type IndexData struct {
	Type   uint32
	Count  uint32
	Offset uint32
	// Bytes holds Count indices of Type.
	Bytes []byte
}

// VertexData describes the VRTX chunk. Offset follows the same rule as
// IndexData.Offset.
type VertexData struct {
	Size          uint32
	Offset        uint32
	TotalVertices uint32
	Bytes         []byte
}

// AttribDecl configures one vertex attribute.
type AttribDecl struct {
	Name   string
	Size   uint32
	Type   uint32
	Stride uint32
	Flags  uint32
	Offset uint32
}

// Normalized reports whether fixed-point values are mapped to [0, 1] or
// [-1, 1] when fetched.
func (a AttribDecl) Normalized() bool { return a.Flags&AttribNormalized != 0 }

// Integer reports whether the attribute is fetched as an integer.
func (a AttribDecl) Integer() bool { return a.Flags&AttribInteger != 0 }

// SubObject is a (first, count) range of vertices, or of indices for an
// indexed mesh.
type SubObject struct {
	First uint32
	Count uint32
}

// File is a parsed SBM file. Byte slices alias the parsed data.
type File struct {
	Flags    uint32
	Vertex   *VertexData
	Index    *IndexData
	Attribs  []AttribDecl
	Comments []string
	// Data is the combined payload of a DATA chunk, nil without one.
	Data []byte
	// SubObjects always has at least one entry. Without an OLST chunk it
	// spans the whole mesh.
	SubObjects []SubObject
}

// Indexed reports whether the mesh is drawn with an index buffer.
func (f *File) Indexed() bool { return f.Index != nil }

func chunkName(typ uint32) string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], typ)
	return fmt.Sprintf("%q", b[:])
}

// in reports whether [off, off+n) lies within a buffer of size.
func in(off, n uint64, size int) bool { return off+n <= uint64(size) }

// Parse decodes a file. Every offset and size is range checked; errors wrap
// assets.ErrFormat.
func Parse(data []byte) (*File, error) {
	le := binary.LittleEndian
	if len(data) < headerSize {
		return nil, assets.Formatf("sbm: %d bytes is shorter than the file header", len(data))
	}
	if magic := le.Uint32(data); magic != Magic {
		return nil, assets.Formatf("sbm: bad magic %s", chunkName(magic))
	}
	size := le.Uint32(data[4:])
	if size < headerSize || !in(0, uint64(size), len(data)) {
		return nil, assets.Formatf("sbm: header size %d out of range", size)
	}
	numChunks := le.Uint32(data[8:])

	f := &File{Flags: le.Uint32(data[12:])}
	var subObjects []SubObject
	haveList := false

	off := uint64(size)
	for i := uint32(0); i < numChunks; i++ {
		if !in(off, chunkHeaderSize, len(data)) {
			return nil, assets.Formatf("sbm: chunk %d header at %d out of range", i, off)
		}
		typ := le.Uint32(data[off:])
		csize := uint64(le.Uint32(data[off+4:]))
		if csize < chunkHeaderSize || !in(off, csize, len(data)) {
			return nil, assets.Formatf("sbm: chunk %d %s of %d bytes at %d out of range", i, chunkName(typ), csize, off)
		}
		start := off
		body := data[off+chunkHeaderSize : off+csize]
		off += csize

		need := func(n uint64) error {
			if !in(0, n, len(body)) {
				return assets.Formatf("sbm: chunk %s body of %d bytes is too short, need %d", chunkName(typ), len(body), n)
			}
			return nil
		}

		switch typ {
		case ChunkIndexData:
			if err := need(12); err != nil {
				return nil, err
			}
			f.Index = &IndexData{Type: le.Uint32(body), Count: le.Uint32(body[4:]), Offset: le.Uint32(body[8:])}

		case ChunkVertexData:
			if err := need(12); err != nil {
				return nil, err
			}
			f.Vertex = &VertexData{Size: le.Uint32(body), Offset: le.Uint32(body[4:]), TotalVertices: le.Uint32(body[8:])}

		case ChunkVertexAttribs:
			if err := need(4); err != nil {
				return nil, err
			}
			count := uint64(le.Uint32(body))
			if err := need(4 + count*attribDeclSize); err != nil {
				return nil, err
			}
			f.Attribs = make([]AttribDecl, count)
			for j := range f.Attribs {
				d := body[4+j*attribDeclSize:]
				name := d[:attribNameSize]
				if nul := bytes.IndexByte(name, 0); nul >= 0 {
					name = name[:nul]
				}
				f.Attribs[j] = AttribDecl{
					Name:   string(name),
					Size:   le.Uint32(d[64:]),
					Type:   le.Uint32(d[68:]),
					Stride: le.Uint32(d[72:]),
					Flags:  le.Uint32(d[76:]),
					Offset: le.Uint32(d[80:]),
				}
			}

		case ChunkSubObjectList:
			if err := need(4); err != nil {
				return nil, err
			}
			count := uint64(le.Uint32(body))
			if err := need(4 + count*subObjectSize); err != nil {
				return nil, err
			}
			subObjects = make([]SubObject, count)
			for j := range subObjects {
				d := body[4+j*subObjectSize:]
				subObjects[j] = SubObject{First: le.Uint32(d), Count: le.Uint32(d[4:])}
			}
			haveList = true

		case ChunkData:
			if err := need(12); err != nil {
				return nil, err
			}
			if enc := le.Uint32(body); enc != EncodingRaw {
				return nil, assets.Formatf("sbm: unsupported data encoding %d", enc)
			}
			// the payload offset is relative to the chunk
			dataOff := start + uint64(le.Uint32(body[4:]))
			dataLen := uint64(le.Uint32(body[8:]))
			if !in(dataOff, dataLen, len(data)) {
				return nil, assets.Formatf("sbm: data payload of %d bytes at %d out of range", dataLen, dataOff)
			}
			f.Data = data[dataOff : dataOff+dataLen]

		case ChunkComment:
			f.Comments = append(f.Comments, string(bytes.TrimRight(body, "\x00")))
		}
	}

	if err := f.resolve(data); err != nil {
		return nil, err
	}

	if !haveList {
		whole := SubObject{Count: f.Vertex.TotalVertices}
		if f.Indexed() {
			whole.Count = f.Index.Count
		}
		subObjects = []SubObject{whole}
	}
	if err := f.checkSubObjects(subObjects); err != nil {
		return nil, err
	}
	f.SubObjects = subObjects
	return f, nil
}

// resolve slices the vertex and index bytes out of the file, or out of the
// DATA blob when there is one.
func (f *File) resolve(file []byte) error {
	if f.Vertex == nil {
		return assets.Formatf("sbm: missing vertex data chunk")
	}
	src, where := file, "file"
	if f.Data != nil {
		src, where = f.Data, "data payload"
	}

	v := f.Vertex
	if !in(uint64(v.Offset), uint64(v.Size), len(src)) {
		return assets.Formatf("sbm: vertex data of %d bytes at %d exceeds the %s", v.Size, v.Offset, where)
	}
	v.Bytes = src[v.Offset : uint64(v.Offset)+uint64(v.Size)]
	if err := f.checkVertexCount(); err != nil {
		return err
	}

	if ix := f.Index; ix != nil {
		size := gfx.IndexSize(ix.Type)
		if size == 0 {
			return assets.Formatf("sbm: unsupported index type 0x%x", ix.Type)
		}
		n := uint64(ix.Count) * uint64(size)
		if !in(uint64(ix.Offset), n, len(src)) {
			return assets.Formatf("sbm: %d indices at %d exceed the %s", ix.Count, ix.Offset, where)
		}
		ix.Bytes = src[ix.Offset : uint64(ix.Offset)+n]
	}
	return nil
}

// checkVertexCount makes sure every attribute of the last vertex lies inside
// the vertex data. Without attributes the count is bounded by the byte size.
func (f *File) checkVertexCount() error {
	v := f.Vertex
	n := uint64(v.TotalVertices)
	if n > math.MaxInt32 {
		return assets.Formatf("sbm: %d vertices is too many", n)
	}
	if len(f.Attribs) == 0 {
		if n > uint64(v.Size) {
			return assets.Formatf("sbm: %d vertices in %d bytes", n, v.Size)
		}
		return nil
	}
	if n == 0 {
		return nil
	}
	for i, a := range f.Attribs {
		// unknown types count as one byte per component
		elem := uint64(max(gfx.ScalarSize(a.Type), 1)) * uint64(a.Size)
		stride := uint64(a.Stride)
		if stride == 0 {
			stride = elem
		}
		end := uint64(a.Offset) + (n-1)*stride + elem
		if end > uint64(v.Size) {
			return assets.Formatf("sbm: attribute %d (%s) of %d vertices needs %d bytes, vertex data has %d",
				i, a.Name, n, end, v.Size)
		}
	}
	return nil
}

func (f *File) checkSubObjects(subs []SubObject) error {
	if len(subs) == 0 {
		return assets.Formatf("sbm: empty sub-object list")
	}
	limit, what := uint64(f.Vertex.TotalVertices), "vertices"
	if f.Indexed() {
		limit, what = uint64(f.Index.Count), "indices"
	}
	for i, s := range subs {
		end := uint64(s.First) + uint64(s.Count)
		if end > math.MaxInt32 {
			return assets.Formatf("sbm: sub-object %d (%d+%d) is out of range", i, s.First, s.Count)
		}
		if end > limit {
			return assets.Formatf("sbm: sub-object %d (%d+%d) exceeds %d %s", i, s.First, s.Count, limit, what)
		}
	}
	return nil
}
