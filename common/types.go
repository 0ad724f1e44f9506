// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types shared by the mesh generators, the immediate renderer and the sandboxes.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexPosNormal is the vertex layout produced by the cylinder generator.
type VertexPosNormal struct {
	// Pos is the object-space position.
	Pos mgl32.Vec3
	// Normal is the unit shading normal.
	Normal mgl32.Vec3
}

// VertexPosTexCoord is the input layout of a quad strip: one rail point of a cross-section.
type VertexPosTexCoord struct {
	// Pos is the object-space position.
	Pos mgl32.Vec3
	// TexCoord is the texture coordinate carried through to the output vertex.
	TexCoord mgl32.Vec2
}

// Vertex is the full position + normal + texture coordinate layout produced by the quad-strip builder.
type Vertex struct {
	// Pos is the object-space position.
	Pos mgl32.Vec3
	// Normal is the unit shading normal.
	Normal mgl32.Vec3
	// TexCoord is the texture coordinate.
	TexCoord mgl32.Vec2
}

// Commonly used draw colors (RGBA, each component in [0, 1]).
var (
	White = mgl32.Vec4{1, 1, 1, 1}
	Red   = mgl32.Vec4{1, 0, 0, 1}
	Green = mgl32.Vec4{0, 1, 0, 1}
	Blue  = mgl32.Vec4{0, 0, 1, 1}
)
