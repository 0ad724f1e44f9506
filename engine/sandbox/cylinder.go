package sandbox

import (
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/Carmen-Shannon/giterate/engine/mesh"
	"github.com/Carmen-Shannon/giterate/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	cylinderRadius     = 0.1
	cylinderMinY       = 0
	cylinderMaxY       = 0.2
	cylinderResolution = 8
	cylinderNormalLen  = 0.05
)

// cylinderSandbox draws a small capped cylinder in red with its normals in blue.
type cylinderSandbox struct {
	wireframe bool
	normals   bool
	mesh      *mesh.CylinderMesh
}

var (
	_ Sandbox = &cylinderSandbox{}
	_ Modeler = &cylinderSandbox{}
	_ Framer  = &cylinderSandbox{}
)

func newCylinder(s *settings) Sandbox {
	return &cylinderSandbox{
		wireframe: s.wireframeOr(false),
		normals:   s.normals,
	}
}

func (c *cylinderSandbox) Name() string { return CylinderName }

func (c *cylinderSandbox) Init() {
	c.mesh = mesh.NewCylinder(cylinderRadius, cylinderMinY, cylinderMaxY, cylinderResolution)
}

func (c *cylinderSandbox) Draw(dt float32, d immediate.Drawer) {
	verts := c.mesh.Vertices

	d.PushColor(common.Red)
	drawIndexed(d, c.mesh.Indices, func(i uint32) mgl32.Vec3 { return verts[i].Pos }, c.wireframe)
	d.PopColor()

	if c.normals {
		d.PushColor(common.Blue)
		drawNormals(d, len(verts),
			func(i int) mgl32.Vec3 { return verts[i].Pos },
			func(i int) mgl32.Vec3 { return verts[i].Normal },
			cylinderNormalLen)
		d.PopColor()
	}
}

func (c *cylinderSandbox) Model() model.Model {
	return model.FromCylinder(CylinderName, c.mesh)
}

func (c *cylinderSandbox) Focus() (mgl32.Vec3, float32) {
	return mgl32.Vec3{0, (cylinderMinY + cylinderMaxY) / 2, 0}, 0.15
}
