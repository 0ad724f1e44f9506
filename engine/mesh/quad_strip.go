package mesh

import (
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MeshBuilder accumulates independent quad strips into one shared vertex/index arena.
// Indices always reference absolute positions in the arena, so strips added one after
// another never collide. The builder is append-only; Reset empties it for reuse.
type MeshBuilder struct {
	verts []common.Vertex
	inds  []uint32
}

// NewMeshBuilder creates an empty MeshBuilder with the specified options applied.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions (capacity reservation)
//
// Returns:
//   - *MeshBuilder: the new, empty builder
func NewMeshBuilder(options ...MeshBuilderOption) *MeshBuilder {
	mb := &MeshBuilder{}
	for _, opt := range options {
		opt(mb)
	}
	return mb
}

// QuadStripSizes reports how many vertices and indices AddQuadStrip appends for a strip
// of n rail points.
//
// Parameters:
//   - n: number of rail points (even, >= 4)
//
// Returns:
//   - numVerts: n
//   - numInds: 6 per quad, (n-2)/2 quads
func QuadStripSizes(n int) (numVerts, numInds uint32) {
	requireStripLength("mesh.QuadStripSizes", n)
	numQuads := (n - 2) / 2
	return uint32(n), uint32(6 * numQuads)
}

// NumVerts returns the number of vertices appended so far.
func (mb *MeshBuilder) NumVerts() uint32 { return uint32(len(mb.verts)) }

// NumInds returns the number of indices appended so far.
func (mb *MeshBuilder) NumInds() uint32 { return uint32(len(mb.inds)) }

// Vertices returns the vertex arena. The slice aliases builder memory and is only valid
// until the next AddQuadStrip or Reset.
func (mb *MeshBuilder) Vertices() []common.Vertex { return mb.verts }

// Indices returns the index arena. The slice aliases builder memory and is only valid
// until the next AddQuadStrip or Reset.
func (mb *MeshBuilder) Indices() []uint32 { return mb.inds }

// Reset empties the arena, keeping its capacity.
func (mb *MeshBuilder) Reset() {
	mb.verts = mb.verts[:0]
	mb.inds = mb.inds[:0]
}

// AddQuadStrip triangulates a ribbon and appends it to the arena.
// points lists the cross-sections in order, two rail points each: points[2k] on rail A
// and points[2k+1] on rail B. Boundary cross-sections take their normals from their
// single neighboring segment; interior ones average the normalized normals of both
// neighboring segments and renormalize, which smooths the shading along the strip.
//
// Parameters:
//   - points: the rail points; len(points) must be even and >= 4
func (mb *MeshBuilder) AddQuadStrip(points []common.VertexPosTexCoord) {
	nv, ni := QuadStripSizes(len(points))
	offset := mb.NumVerts()
	indStart := mb.NumInds()
	n := len(points)

	for i := 0; i < n; i += 2 {
		vm := points[i+1].Pos.Sub(points[i].Pos)
		var na, nb mgl32.Vec3
		switch {
		case i == 0:
			a1 := points[i+2].Pos.Sub(points[i].Pos)
			b1 := points[i+3].Pos.Sub(points[i+1].Pos)
			na = vm.Cross(a1)
			nb = vm.Cross(b1)
		case i == n-2:
			a0 := points[i].Pos.Sub(points[i-2].Pos)
			b0 := points[i+1].Pos.Sub(points[i-1].Pos)
			na = vm.Cross(a0)
			nb = vm.Cross(b0)
		default:
			a0 := points[i].Pos.Sub(points[i-2].Pos)
			b0 := points[i+1].Pos.Sub(points[i-1].Pos)
			a1 := points[i+2].Pos.Sub(points[i].Pos)
			b1 := points[i+3].Pos.Sub(points[i+1].Pos)
			na = vm.Cross(a0).Normalize().Add(vm.Cross(a1).Normalize())
			nb = vm.Cross(b0).Normalize().Add(vm.Cross(b1).Normalize())
		}

		mb.verts = append(mb.verts,
			common.Vertex{Pos: points[i].Pos, Normal: na.Normalize(), TexCoord: points[i].TexCoord},
			common.Vertex{Pos: points[i+1].Pos, Normal: nb.Normalize(), TexCoord: points[i+1].TexCoord},
		)
	}

	for i := 0; i < n-2; i += 2 {
		a0 := offset + uint32(i)
		b0 := a0 + 1
		a1 := a0 + 2
		b1 := a0 + 3
		mb.inds = append(mb.inds,
			a0, b0, b1,
			a0, b1, a1,
		)
	}

	common.Require(mb.NumVerts()-offset == nv && mb.NumInds()-indStart == ni, "mesh.AddQuadStrip",
		"appended %d vertices / %d indices, predicted %d / %d",
		mb.NumVerts()-offset, mb.NumInds()-indStart, nv, ni)
}

func requireStripLength(op string, n int) {
	common.Require(n >= 4, op, "strip has %d points, need at least 4", n)
	common.Require(n%2 == 0, op, "strip has an odd number of points (%d)", n)
}
