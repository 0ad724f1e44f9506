package immediate

import "github.com/go-gl/mathgl/mgl32"

// RendererBuilderOption is a functional option for configuring a Renderer via NewRenderer.
type RendererBuilderOption func(*rendererImpl)

// WithBaseColor is an option builder that sets the color at the bottom of the color stack.
//
// Parameters:
//   - c: RGBA base color
//
// Returns:
//   - RendererBuilderOption: a function that applies the base color to a renderer
func WithBaseColor(c mgl32.Vec4) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.baseColor = c
	}
}

// WithCapacity is an option builder that pre-sizes the primitive lists.
//
// Parameters:
//   - points: expected points per frame
//   - lines: expected lines per frame
//   - triangles: expected triangles per frame
//
// Returns:
//   - RendererBuilderOption: a function that applies the capacities to a renderer
func WithCapacity(points, lines, triangles int) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.frame.Points = make([]Vertex, 0, points)
		r.frame.Lines = make([]Line, 0, lines)
		r.frame.Triangles = make([]Triangle, 0, triangles)
	}
}
