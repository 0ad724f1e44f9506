package model

import (
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

func posNormal(v common.VertexPosNormal) mgl32.Vec3 { return v.Pos }
func vertexPos(v common.Vertex) mgl32.Vec3          { return v.Pos }
func position(p mgl32.Vec3) mgl32.Vec3              { return p }

// FromCylinder packages a generated cylinder (position + normal vertices).
//
// Parameters:
//   - name: the model identifier
//   - c: the generated cylinder
//
// Returns:
//   - Model: the packaged model
func FromCylinder(name string, c *mesh.CylinderMesh) Model {
	return NewModel(
		WithName(name),
		WithVertices(c.Vertices, posNormal),
		WithIndices(c.Indices),
	)
}

// FromMeshBuilder packages the current contents of a quad-strip arena
// (position + normal + texcoord vertices). The data is copied, so the builder may keep growing.
//
// Parameters:
//   - name: the model identifier
//   - mb: the builder to snapshot
//
// Returns:
//   - Model: the packaged model
func FromMeshBuilder(name string, mb *mesh.MeshBuilder) Model {
	return NewModel(
		WithName(name),
		WithVertices(mb.Vertices(), vertexPos),
		WithIndices(mb.Indices()),
	)
}

// FromIcosphere packages a cached icosphere level (bare positions). With normalized set the
// positions are projected onto the unit sphere first; the cache entry itself is untouched.
//
// Parameters:
//   - name: the model identifier
//   - m: the cached level
//   - normalized: project positions onto the unit sphere
//
// Returns:
//   - Model: the packaged model
func FromIcosphere(name string, m *mesh.IcosphereMesh, normalized bool) Model {
	verts := m.Vertices()
	if normalized {
		projected := make([]mgl32.Vec3, len(verts))
		for i, p := range verts {
			projected[i] = mesh.NormalizedPosition(p)
		}
		verts = projected
	}
	return NewModel(
		WithName(name),
		WithVertices(verts, position),
		WithIndices(m.Indices()),
	)
}
