package ktx

import (
	"bytes"
	"encoding/binary"
	"slices"

	"sb7/internal/assets"
)

// parseMetadata decodes the key/value block. Each entry is a u32 length,
// then a NUL-terminated key and its value, padded to 4 bytes.
func parseMetadata(block []byte, order binary.ByteOrder) (map[string]string, error) {
	if len(block) == 0 {
		return nil, nil
	}
	meta := make(map[string]string)
	for off := 0; off < len(block); {
		if len(block)-off < 4 {
			return nil, assets.Formatf("ktx metadata: truncated entry at %d", off)
		}
		size := int(order.Uint32(block[off:]))
		off += 4
		if size > len(block)-off {
			return nil, assets.Formatf("ktx metadata: entry of %d bytes at %d overruns the block", size, off)
		}
		kv := block[off : off+size]
		nul := bytes.IndexByte(kv, 0)
		if nul < 0 {
			return nil, assets.Formatf("ktx metadata: key at %d is not terminated", off)
		}
		meta[string(kv[:nul])] = string(bytes.TrimSuffix(kv[nul+1:], []byte{0}))
		off += pad4(size)
	}
	return meta, nil
}

// encodeMetadata writes entries sorted by key. Values get a trailing NUL.
func encodeMetadata(meta map[string]string, order binary.ByteOrder) []byte {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf []byte
	for _, k := range keys {
		kv := make([]byte, 0, len(k)+len(meta[k])+2)
		kv = append(kv, k...)
		kv = append(kv, 0)
		kv = append(kv, meta[k]...)
		kv = append(kv, 0)

		var size [4]byte
		order.PutUint32(size[:], uint32(len(kv)))
		buf = append(buf, size[:]...)
		buf = append(buf, kv...)
		buf = append(buf, make([]byte, pad4(len(kv))-len(kv))...)
	}
	return buf
}

func pad4(n int) int { return (n + 3) &^ 3 }
