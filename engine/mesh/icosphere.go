package mesh

import (
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxIcosphereLevel is the highest subdivision level the generator and cache accept.
const MaxIcosphereLevel = 6

// wedges is the number of repeating sectors around the icosahedron's polar axis.
const wedges = 5

// IcosahedronVertices is the level-0 mesh: apex, upper ring, lower ring, south pole.
// Upper ring vertex 1+f and lower ring vertex 6+f belong to wedge f.
var IcosahedronVertices = [12]mgl32.Vec3{
	{0.0000000000000000000000000, 1.0000000000000000000000000, 0.0000000000000000000000000},
	{0.0000000000000000000000000, 0.4472136497497558593750000, -0.8944272398948669433593750},
	{-0.8506507873535156250000000, 0.4472136497497558593750000, -0.2763932347297668457031250},
	{-0.5257311463356018066406250, 0.4472136497497558593750000, 0.7236067652702331542968750},
	{0.5257310271263122558593750, 0.4472136497497558593750000, 0.7236068248748779296875000},
	{0.8506507873535156250000000, 0.4472136497497558593750000, -0.2763930857181549072265625},
	{-0.5257310867309570312500000, -0.4472136497497558593750000, -0.7236068248748779296875000},
	{-0.8506507873535156250000000, -0.4472136497497558593750000, 0.2763931453227996826171875},
	{-0.0000000626720364493849047, -0.4472136497497558593750000, 0.8944271802902221679687500},
	{0.8506507277488708496093750, -0.4472136497497558593750000, 0.2763932645320892333984375},
	{0.5257312059402465820312500, -0.4472136497497558593750000, -0.7236067056655883789062500},
	{0.0000000000000000000000000, -1.0000000000000000000000000, 0.0000000000000000000000000},
}

// IcosphereSizes reports the vertex and index counts of a subdivided icosahedron.
// With fnl = 2^level rows per wedge band:
//
//	vertices = 2 + 5*(fnl-1)*fnl + 5*(fnl+1)*fnl
//	indices  = 3 * 20 * 4^level
//
// Parameters:
//   - level: subdivision level in [0, MaxIcosphereLevel]
//
// Returns:
//   - numVerts: the vertex count
//   - numInds: the index count
func IcosphereSizes(level int) (numVerts, numInds uint32) {
	common.Require(level >= 0 && level <= MaxIcosphereLevel, "mesh.IcosphereSizes",
		"level %d outside [0, %d]", level, MaxIcosphereLevel)
	fnl := uint32(1) << level
	numVerts = 2 + // apex and south pole
		wedges*(fnl-1)*fnl + // top and bottom cap interiors
		wedges*(fnl+1)*fnl // middle band rows
	numInds = 3 * (20 * (uint32(1) << (2 * level)))
	return numVerts, numInds
}

// GenerateIcosphere subdivides every face of the icosahedron into 4^level triangles and
// writes the result into verts and inds. Points are linear blends of level-0 vertices,
// so the mesh is a planar subdivision of the icosahedron. Projecting onto the unit
// sphere is left to the caller (see NormalizedPosition).
//
// Vertex order is apex, top cap rows, middle band rows, bottom cap rows, south pole.
// Each row walks the five wedges in order. The index passes depend on this exact order.
//
// Parameters:
//   - level: subdivision level in [0, MaxIcosphereLevel]
//   - verts: destination positions, at least the size reported by IcosphereSizes
//   - inds: destination indices, at least the size reported by IcosphereSizes
//
// Returns:
//   - numVerts: the number of vertices written
//   - numInds: the number of indices written
func GenerateIcosphere(level int, verts []mgl32.Vec3, inds []uint32) (numVerts, numInds uint32) {
	numVerts, numInds = IcosphereSizes(level)
	common.Require(uint32(len(verts)) >= numVerts, "mesh.GenerateIcosphere",
		"vertex buffer holds %d, need %d", len(verts), numVerts)
	common.Require(uint32(len(inds)) >= numInds, "mesh.GenerateIcosphere",
		"index buffer holds %d, need %d", len(inds), numInds)

	fnl := uint32(1) << level
	vc := vertexCursor{buf: verts}
	writeIcosphereVertices(&vc, fnl)
	common.Require(vc.n == numVerts, "mesh.GenerateIcosphere",
		"wrote %d vertices, predicted %d", vc.n, numVerts)

	ic := indexCursor{buf: inds}
	writeIcosphereIndices(&ic, fnl, numVerts)
	common.Require(ic.n == numInds, "mesh.GenerateIcosphere",
		"wrote %d indices, predicted %d", ic.n, numInds)

	return numVerts, numInds
}

// NormalizedPosition projects an icosphere vertex onto the unit sphere.
func NormalizedPosition(p mgl32.Vec3) mgl32.Vec3 {
	return p.Normalize()
}

func writeIcosphereVertices(vc *vertexCursor, fnl uint32) {
	ico := &IcosahedronVertices
	vc.put(ico[0])

	// top cap: row l has l points per wedge, blended between the apex edges
	for l := uint32(1); l < fnl; l++ {
		t := float32(l) / float32(fnl)
		for f := uint32(0); f < wedges; f++ {
			pLeft := common.Mix(ico[0], ico[1+f], t)
			pRight := common.Mix(ico[0], ico[1+(f+1)%wedges], t)
			for x := uint32(0); x < l; x++ {
				vc.put(common.Mix(pLeft, pRight, float32(x)/float32(l)))
			}
		}
	}

	// middle band: each wedge is a parallelogram split along topRight-botLeft;
	// row l crosses the upper-left triangle with fnl-l points, the lower-right with l
	for l := uint32(0); l < fnl; l++ {
		t := float32(l) / float32(fnl)
		for f := uint32(0); f < wedges; f++ {
			topLeft := ico[1+f]
			topRight := ico[1+(f+1)%wedges]
			botLeft := ico[6+f]
			botRight := ico[6+(f+1)%wedges]
			left := common.Mix(topLeft, botLeft, t)
			mid := common.Mix(topRight, botLeft, t)
			right := common.Mix(topRight, botRight, t)
			for x := uint32(0); x < fnl-l; x++ {
				vc.put(common.Mix(left, mid, float32(x)/float32(fnl-l)))
			}
			for x := uint32(0); x < l; x++ {
				vc.put(common.Mix(mid, right, float32(x)/float32(l)))
			}
		}
	}

	// bottom cap: row l has fnl-l points per wedge, blended toward the south pole
	for l := uint32(0); l < fnl; l++ {
		t := float32(l) / float32(fnl)
		for f := uint32(0); f < wedges; f++ {
			pLeft := common.Mix(ico[6+f], ico[11], t)
			pRight := common.Mix(ico[6+(f+1)%wedges], ico[11], t)
			for x := uint32(0); x < fnl-l; x++ {
				vc.put(common.Mix(pLeft, pRight, float32(x)/float32(fnl-l)))
			}
		}
	}

	vc.put(ico[11])
}

func writeIcosphereIndices(ic *indexCursor, fnl, numVerts uint32) {
	// apex fan
	for f := uint32(0); f < wedges; f++ {
		ic.tri(0, 1+f, 1+(f+1)%wedges)
	}

	// top cap: row l (5l points) against row l+1 (5(l+1) points)
	rowOffset := uint32(1)
	for l := uint32(1); l < fnl; l++ {
		rowLen := l * wedges
		nextRowLen := (l + 1) * wedges
		for f := uint32(0); f < wedges; f++ {
			for x := uint32(0); x < l; x++ {
				topLeft := rowOffset + l*f + x
				topRight := rowOffset + (l*f+x+1)%rowLen
				botLeft := rowOffset + rowLen + (l+1)*f + x
				ic.tri(topLeft, botLeft, botLeft+1)
				ic.tri(topLeft, botLeft+1, topRight)
			}
			// the wedge's last bottom edge closes against the next wedge's first top point
			ic.tri(
				rowOffset+(l*(f+1))%rowLen,
				rowOffset+rowLen+(l+1)*f+l,
				rowOffset+rowLen+((l+1)*f+l+1)%nextRowLen,
			)
		}
		rowOffset += rowLen
	}

	// middle band: fnl rows of 5*fnl quads, wrapping at the seam of wedge 0
	rowLen := wedges * fnl
	for l := uint32(0); l < fnl; l++ {
		for x := uint32(0); x < rowLen; x++ {
			topLeft := rowOffset + x
			topRight := rowOffset + (x+1)%rowLen
			botLeft := rowOffset + rowLen + x
			botRight := rowOffset + rowLen + (x+1)%rowLen
			ic.tri(topLeft, botLeft, topRight)
			ic.tri(topRight, botLeft, botRight)
		}
		rowOffset += rowLen
	}

	// bottom cap: mirror of the top cap, rows shrink by one point per wedge
	for l := uint32(0); l+1 < fnl; l++ {
		faceLen := fnl - l
		rowLen := faceLen * wedges
		nextRowLen := (faceLen - 1) * wedges
		for f := uint32(0); f < wedges; f++ {
			for x := uint32(0); x+1 < faceLen; x++ {
				topLeft := rowOffset + faceLen*f + x
				topRight := rowOffset + faceLen*f + x + 1
				botLeft := rowOffset + rowLen + (faceLen-1)*f + x
				botRight := rowOffset + rowLen + ((faceLen-1)*f+x+1)%nextRowLen
				ic.tri(topLeft, botLeft, topRight)
				ic.tri(topRight, botLeft, botRight)
			}
			ic.tri(
				rowOffset+faceLen*(f+1)-1,
				rowOffset+rowLen+((faceLen-1)*(f+1))%nextRowLen,
				rowOffset+(faceLen*(f+1))%rowLen,
			)
		}
		rowOffset += rowLen
	}

	// south pole fan over the last ring (5 points)
	ring := numVerts - 1 - wedges
	for f := uint32(0); f < wedges; f++ {
		ic.tri(ring+f, numVerts-1, ring+(f+1)%wedges)
	}
}
