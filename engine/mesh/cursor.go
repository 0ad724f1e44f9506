package mesh

import "github.com/go-gl/mathgl/mgl32"

// indexCursor writes triangles into a pre-sized index buffer. n is the number of
// indices written so far; generators compare it against their predicted count.
type indexCursor struct {
	buf []uint32
	n   uint32
}

func (c *indexCursor) tri(i0, i1, i2 uint32) {
	c.buf[c.n] = i0
	c.buf[c.n+1] = i1
	c.buf[c.n+2] = i2
	c.n += 3
}

// vertexCursor writes positions into a pre-sized vertex buffer.
type vertexCursor struct {
	buf []mgl32.Vec3
	n   uint32
}

func (c *vertexCursor) put(p mgl32.Vec3) {
	c.buf[c.n] = p
	c.n++
}
