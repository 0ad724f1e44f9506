package immediate

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one transformed, colored primitive vertex.
type Vertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec4
}

// Line is a segment between two vertices.
type Line [2]Vertex

// Triangle is a counter-clockwise triangle.
type Triangle [3]Vertex

// Frame holds the primitives collected since the last Reset, in submission order.
type Frame struct {
	Points    []Vertex
	Lines     []Line
	Triangles []Triangle
}

// Primitives returns the total number of points, lines and triangles in the frame.
func (f *Frame) Primitives() int {
	return len(f.Points) + len(f.Lines) + len(f.Triangles)
}

// Empty reports whether nothing was drawn.
func (f *Frame) Empty() bool {
	return f.Primitives() == 0
}

func (f *Frame) clear() {
	f.Points = f.Points[:0]
	f.Lines = f.Lines[:0]
	f.Triangles = f.Triangles[:0]
}
