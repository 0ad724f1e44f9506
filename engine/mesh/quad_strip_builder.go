package mesh

import "github.com/Carmen-Shannon/giterate/common"

// MeshBuilderOption is a functional option for configuring a MeshBuilder via NewMeshBuilder.
type MeshBuilderOption func(*MeshBuilder)

// WithVertexCapacity is an option builder that pre-reserves room for n vertices.
//
// Parameters:
//   - n: number of vertices to reserve
//
// Returns:
//   - MeshBuilderOption: a function that applies the reservation to a builder
func WithVertexCapacity(n int) MeshBuilderOption {
	return func(mb *MeshBuilder) {
		mb.verts = make([]common.Vertex, 0, n)
	}
}

// WithIndexCapacity is an option builder that pre-reserves room for n indices.
//
// Parameters:
//   - n: number of indices to reserve
//
// Returns:
//   - MeshBuilderOption: a function that applies the reservation to a builder
func WithIndexCapacity(n int) MeshBuilderOption {
	return func(mb *MeshBuilder) {
		mb.inds = make([]uint32, 0, n)
	}
}

// WithStripCapacity reserves room for the given strip lengths, using QuadStripSizes for each.
//
// Parameters:
//   - lengths: the rail point counts of the strips that will be added
//
// Returns:
//   - MeshBuilderOption: a function that applies the reservation to a builder
func WithStripCapacity(lengths ...int) MeshBuilderOption {
	return func(mb *MeshBuilder) {
		var nv, ni uint32
		for _, n := range lengths {
			v, i := QuadStripSizes(n)
			nv += v
			ni += i
		}
		mb.verts = make([]common.Vertex, 0, nv)
		mb.inds = make([]uint32, 0, ni)
	}
}
