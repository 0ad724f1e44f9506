package sandbox

import (
	"math"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/Carmen-Shannon/giterate/engine/mesh"
	"github.com/Carmen-Shannon/giterate/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	stripSections  = 30
	stripLength    = 3
	stripNormalLen = 0.1
)

// quadStripSandbox draws a ribbon following h = 0.3*sin(2l) with its smoothed normals.
type quadStripSandbox struct {
	normals bool
	builder *mesh.MeshBuilder
}

var (
	_ Sandbox = &quadStripSandbox{}
	_ Modeler = &quadStripSandbox{}
	_ Framer  = &quadStripSandbox{}
)

func newQuadStrip(s *settings) Sandbox {
	return &quadStripSandbox{normals: s.normals}
}

// RibbonPoints returns the rail points of the demo ribbon: cross-section i sits at
// l = i*L/sections with rail A at z = -1 and rail B at z = +1.
//
// Returns:
//   - []common.VertexPosTexCoord: 2*sections rail points
func RibbonPoints() []common.VertexPosTexCoord {
	pts := make([]common.VertexPosTexCoord, 2*stripSections)
	for i := 0; i < stripSections; i++ {
		l := float32(i*stripLength) / stripSections
		h := float32(0.3 * math.Sin(2*float64(l)))
		u := float32(i) / (stripSections - 1)
		pts[2*i] = common.VertexPosTexCoord{Pos: mgl32.Vec3{l, h, -1}, TexCoord: mgl32.Vec2{u, 0}}
		pts[2*i+1] = common.VertexPosTexCoord{Pos: mgl32.Vec3{l, h, 1}, TexCoord: mgl32.Vec2{u, 1}}
	}
	return pts
}

func (q *quadStripSandbox) Name() string { return QuadStripName }

func (q *quadStripSandbox) Init() {
	pts := RibbonPoints()
	q.builder = mesh.NewMeshBuilder(mesh.WithStripCapacity(len(pts)))
	q.builder.AddQuadStrip(pts)
}

func (q *quadStripSandbox) Draw(dt float32, d immediate.Drawer) {
	verts := q.builder.Vertices()

	d.PushColor(common.Red)
	drawIndexed(d, q.builder.Indices(), func(i uint32) mgl32.Vec3 { return verts[i].Pos }, false)
	d.PopColor()

	if q.normals {
		d.PushColor(common.Blue)
		drawNormals(d, len(verts),
			func(i int) mgl32.Vec3 { return verts[i].Pos },
			func(i int) mgl32.Vec3 { return verts[i].Normal },
			stripNormalLen)
		d.PopColor()
	}
}

func (q *quadStripSandbox) Model() model.Model {
	return model.FromMeshBuilder(QuadStripName, q.builder)
}

func (q *quadStripSandbox) Focus() (mgl32.Vec3, float32) {
	return mgl32.Vec3{stripLength / 2.0, 0, 0}, 1.9
}
