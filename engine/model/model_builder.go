package model

import (
	"unsafe"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that copies verts into the Model's vertex data and
// derives the stride, the vertex count and the bounding radius. pos extracts the position
// of each vertex.
//
// Parameters:
//   - verts: the vertices to copy
//   - pos: position accessor for a vertex
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertex data to a model
func WithVertices[V any](verts []V, pos func(V) mgl32.Vec3) ModelBuilderOption {
	return func(m *model) {
		var zero V
		m.vertexData = append([]byte(nil), common.SliceToBytes(verts)...)
		m.vertexStride = int(unsafe.Sizeof(zero))
		m.vertexCount = len(verts)
		m.boundingRadius = 0
		for _, v := range verts {
			if l := pos(v).Len(); l > m.boundingRadius {
				m.boundingRadius = l
			}
		}
	}
}

// WithIndices is an option builder that copies inds into the Model's index data.
//
// Parameters:
//   - inds: the triangle indices to copy
//
// Returns:
//   - ModelBuilderOption: a function that applies the index data to a model
func WithIndices(inds []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indexData = append([]byte(nil), common.SliceToBytes(inds)...)
		m.indexCount = len(inds)
	}
}

// WithBoundingRadius is an option builder that overrides the derived bounding radius.
// Apply it after WithVertices.
//
// Parameters:
//   - radius: the bounding sphere radius
//
// Returns:
//   - ModelBuilderOption: a function that applies the radius to a model
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *model) {
		m.boundingRadius = radius
	}
}
