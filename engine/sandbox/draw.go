package sandbox

import (
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/go-gl/mathgl/mgl32"
)

// drawIndexed submits every triangle of an indexed mesh, or its edges when wireframe is set.
func drawIndexed(d immediate.Drawer, inds []uint32, pos func(i uint32) mgl32.Vec3, wireframe bool) {
	for i := 0; i+2 < len(inds); i += 3 {
		p0, p1, p2 := pos(inds[i]), pos(inds[i+1]), pos(inds[i+2])
		if wireframe {
			d.DrawLine(p0, p1)
			d.DrawLine(p1, p2)
			d.DrawLine(p2, p0)
			continue
		}
		d.DrawTriangle(p0, p1, p2)
	}
}

// drawNormals submits a line from each vertex along its normal.
func drawNormals(d immediate.Drawer, n int, pos, normal func(i int) mgl32.Vec3, length float32) {
	for i := 0; i < n; i++ {
		p := pos(i)
		d.DrawLine(p, p.Add(normal(i).Mul(length)))
	}
}
