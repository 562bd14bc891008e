package color

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sb7/internal/vmath"
)

func TestNamedColors(t *testing.T) {
	assert.Equal(t, vmath.Vec4f{0x9A / 255.0, 0xCD / 255.0, 0x32 / 255.0, 1}, YellowGreen)
	assert.Equal(t, vmath.Vec4f{0xEE / 255.0, 0x82 / 255.0, 0xEE / 255.0, 1}, Violet)
	assert.Equal(t, vmath.Vec4f{0, 0, 0, 1}, Black)
	assert.Equal(t, vmath.Vec4f{1, 1, 1, 1}, White)
}

func TestFromHexIgnoresHighByte(t *testing.T) {
	assert.Equal(t, FromHex(0x336699), FromHex(0xFF336699))
	assert.Equal(t, float32(1), FromHex(0)[3])
}
