// Package immediate implements the immediate-mode draw interface used by the sandboxes:
// a color stack, a transform stack and per-frame lists of points, lines and triangles.
package immediate

import (
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawer is the primitive interface the sandboxes draw through.
// Every primitive takes the color on top of the color stack and has its vertices
// transformed by the matrix on top of the transform stack at submission time.
type Drawer interface {
	// PushColor makes c the current color until the matching PopColor.
	//
	// Parameters:
	//   - c: RGBA color, each component in [0, 1]
	PushColor(c mgl32.Vec4)

	// PopColor restores the previous color. Popping the base color panics.
	PopColor()

	// PushTransform multiplies m onto the current transform (current * m).
	//
	// Parameters:
	//   - m: the transform to append
	PushTransform(m mgl32.Mat4)

	// PopTransform restores the previous transform. Popping the base transform panics.
	PopTransform()

	// DrawPoint submits a point.
	DrawPoint(a mgl32.Vec3)

	// DrawLine submits a segment from a to b.
	DrawLine(a, b mgl32.Vec3)

	// DrawTriangle submits a triangle; a, b, c should be counter-clockwise seen from the front.
	DrawTriangle(a, b, c mgl32.Vec3)
}

// Renderer is a Drawer that owns its stacks and collected primitives across frames.
type Renderer interface {
	Drawer

	// Reset starts a new frame: both stacks return to their single base entry
	// (white and identity unless configured) and all primitive lists are emptied.
	Reset()

	// Frame returns the primitives collected since the last Reset.
	// The returned Frame is owned by the renderer and reused by the next Reset.
	//
	// Returns:
	//   - *Frame: the collected primitives
	Frame() *Frame

	// ColorDepth returns the number of entries on the color stack, base included.
	ColorDepth() int

	// TransformDepth returns the number of entries on the transform stack, base included.
	TransformDepth() int

	// Balanced reports whether every push since Reset was matched by a pop.
	Balanced() bool
}

type rendererImpl struct {
	baseColor mgl32.Vec4

	colors     []mgl32.Vec4
	transforms []mgl32.Mat4

	frame Frame
}

var _ Renderer = &rendererImpl{}

// NewRenderer creates a Renderer ready for its first frame.
//
// Parameters:
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the new renderer, already Reset
func NewRenderer(options ...RendererBuilderOption) Renderer {
	r := &rendererImpl{
		baseColor:  common.White,
		colors:     make([]mgl32.Vec4, 0, 8),
		transforms: make([]mgl32.Mat4, 0, 8),
	}
	for _, option := range options {
		option(r)
	}
	r.Reset()
	return r
}

func (r *rendererImpl) Reset() {
	r.colors = append(r.colors[:0], r.baseColor)
	r.transforms = append(r.transforms[:0], mgl32.Ident4())
	r.frame.clear()
}

func (r *rendererImpl) Frame() *Frame {
	return &r.frame
}

func (r *rendererImpl) ColorDepth() int {
	return len(r.colors)
}

func (r *rendererImpl) TransformDepth() int {
	return len(r.transforms)
}

func (r *rendererImpl) Balanced() bool {
	return len(r.colors) == 1 && len(r.transforms) == 1
}

func (r *rendererImpl) PushColor(c mgl32.Vec4) {
	r.colors = append(r.colors, c)
}

func (r *rendererImpl) PopColor() {
	common.Require(len(r.colors) > 1, "immediate.PopColor", "color stack holds only the base entry")
	r.colors = r.colors[:len(r.colors)-1]
}

func (r *rendererImpl) PushTransform(m mgl32.Mat4) {
	top := r.transforms[len(r.transforms)-1]
	r.transforms = append(r.transforms, top.Mul4(m))
}

func (r *rendererImpl) PopTransform() {
	common.Require(len(r.transforms) > 1, "immediate.PopTransform", "transform stack holds only the base entry")
	r.transforms = r.transforms[:len(r.transforms)-1]
}

func (r *rendererImpl) DrawPoint(a mgl32.Vec3) {
	r.frame.Points = append(r.frame.Points, r.vertex(a))
}

func (r *rendererImpl) DrawLine(a, b mgl32.Vec3) {
	r.frame.Lines = append(r.frame.Lines, Line{r.vertex(a), r.vertex(b)})
}

func (r *rendererImpl) DrawTriangle(a, b, c mgl32.Vec3) {
	r.frame.Triangles = append(r.frame.Triangles, Triangle{r.vertex(a), r.vertex(b), r.vertex(c)})
}

func (r *rendererImpl) vertex(p mgl32.Vec3) Vertex {
	return Vertex{
		Pos:   common.TransformAffine(r.transforms[len(r.transforms)-1], p),
		Color: r.colors[len(r.colors)-1],
	}
}
