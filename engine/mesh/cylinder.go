// Package mesh contains the procedural mesh generators: cylinder, quad strip and icosphere.
// Every generator follows the same two-phase protocol: a pure sizing query reports exact
// vertex and index counts, and a fill pass writes into caller-owned buffers of at least
// that size. Broken preconditions panic with a *common.ContractViolation.
package mesh

import (
	"math"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MinCylinderResolution is the smallest ring resolution that still encloses a volume.
const MinCylinderResolution = 3

// CylinderMesh holds exactly-sized buffers produced by NewCylinder.
type CylinderMesh struct {
	// Vertices holds 4*resolution vertices: bottom cap ring, top cap ring, then the side ring.
	Vertices []common.VertexPosNormal
	// Indices holds counter-clockwise triangles (outward facing).
	Indices []uint32
}

// CylinderSizes reports the vertex and index counts of a cylinder with the given ring resolution.
//
// Parameters:
//   - resolution: number of vertices around the ring (must be >= 3)
//
// Returns:
//   - numVerts: 4 * resolution
//   - numInds: 2*3*(resolution-2) + 6*resolution
func CylinderSizes(resolution uint32) (numVerts, numInds uint32) {
	common.Require(resolution >= MinCylinderResolution, "mesh.CylinderSizes",
		"resolution %d is below %d", resolution, MinCylinderResolution)
	numVerts = 4 * resolution
	numInds = 2*3*(resolution-2) + 6*resolution
	return numVerts, numInds
}

// GenerateCylinder writes a capped cylinder around the Y axis into verts and inds.
// Caps and sides do not share vertices, so each face gets its own normal.
//
// Parameters:
//   - verts: destination vertex buffer, at least the size reported by CylinderSizes
//   - inds: destination index buffer, at least the size reported by CylinderSizes
//   - radius: ring radius in the XZ plane
//   - minY: y coordinate of the bottom cap
//   - maxY: y coordinate of the top cap
//   - resolution: number of vertices around the ring (must be >= 3)
//
// Returns:
//   - numVerts: the number of vertices written
//   - numInds: the number of indices written
func GenerateCylinder(verts []common.VertexPosNormal, inds []uint32, radius, minY, maxY float32, resolution uint32) (numVerts, numInds uint32) {
	numVerts, numInds = CylinderSizes(resolution)
	common.Require(uint32(len(verts)) >= numVerts, "mesh.GenerateCylinder",
		"vertex buffer holds %d, need %d", len(verts), numVerts)
	common.Require(uint32(len(inds)) >= numInds, "mesh.GenerateCylinder",
		"index buffer holds %d, need %d", len(inds), numInds)

	writeCylinderVertices(verts, radius, minY, maxY, resolution)
	written := writeCylinderIndices(inds, resolution)
	common.Require(written == numInds, "mesh.GenerateCylinder",
		"wrote %d indices, predicted %d", written, numInds)

	common.Logger().Debug("cylinder generated",
		"resolution", resolution, "vertices", numVerts, "indices", numInds)
	return numVerts, numInds
}

// NewCylinder queries the cylinder size, allocates exactly-sized buffers and fills them.
//
// Parameters:
//   - radius: ring radius in the XZ plane
//   - minY: y coordinate of the bottom cap
//   - maxY: y coordinate of the top cap
//   - resolution: number of vertices around the ring (must be >= 3)
//
// Returns:
//   - *CylinderMesh: the generated mesh
func NewCylinder(radius, minY, maxY float32, resolution uint32) *CylinderMesh {
	nv, ni := CylinderSizes(resolution)
	m := &CylinderMesh{
		Vertices: make([]common.VertexPosNormal, nv),
		Indices:  make([]uint32, ni),
	}
	GenerateCylinder(m.Vertices, m.Indices, radius, minY, maxY, resolution)
	return m
}

func writeCylinderVertices(verts []common.VertexPosNormal, radius, minY, maxY float32, res uint32) {
	down := mgl32.Vec3{0, -1, 0}
	up := mgl32.Vec3{0, 1, 0}
	for i := uint32(0); i < res; i++ {
		alpha := float64(2*common.Pi*float32(i)) / float64(res)
		x := float32(math.Sin(alpha))
		z := float32(math.Cos(alpha))

		bottom := mgl32.Vec3{x * radius, minY, z * radius}
		top := mgl32.Vec3{x * radius, maxY, z * radius}
		radial := mgl32.Vec3{x, 0, z}

		verts[i] = common.VertexPosNormal{Pos: bottom, Normal: down}
		verts[res+i] = common.VertexPosNormal{Pos: top, Normal: up}
		verts[2*res+2*i] = common.VertexPosNormal{Pos: bottom, Normal: radial}
		verts[2*res+2*i+1] = common.VertexPosNormal{Pos: top, Normal: radial}
	}
}

// writeCylinderIndices emits the bottom fan, the mirrored top fan and the side quads,
// returning the cursor so the caller can check it against the predicted count.
func writeCylinderIndices(inds []uint32, res uint32) uint32 {
	c := indexCursor{buf: inds}

	// bottom cap, normal down
	for i := uint32(0); i < res-2; i++ {
		c.tri(0, i+2, i+1)
	}
	// top cap, normal up
	for i := uint32(0); i < res-2; i++ {
		c.tri(res, res+i+1, res+i+2)
	}
	// sides, over the duplicated side ring
	side := 2 * res
	for i := uint32(0); i < res; i++ {
		next := (i + 1) % res
		b0 := side + 2*i
		t0 := b0 + 1
		b1 := side + 2*next
		t1 := b1 + 1
		c.tri(b0, b1, t1)
		c.tri(b0, t1, t0)
	}
	return c.n
}
