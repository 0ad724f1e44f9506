// Package frustum reconstructs a perspective frustum from five captured world-space points
// and exposes each stage of mapping it back to a canonical frustum. Nothing here is
// cached: Visualize is a pure function of its input.
package frustum

import (
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

// PointCount is the size of a frustum point set: the apex followed by four corners.
const PointCount = 5

// DefaultPoints is a frustum captured from a running camera: apex, then the far corners
// in winding order.
var DefaultPoints = [PointCount]mgl32.Vec3{
	{9005.59961, 1892.62, -711.854980},
	{-14079.7998, -6845.97021, 23258.0996},
	{-16129.7998, -6845.97021, -19866.9004},
	{-17058.1992, 657.554016, -19822.8008},
	{-15008.2002, 657.554016, 23302.1992},
}

// Result carries every intermediate of Visualize.
type Result struct {
	Original [PointCount]mgl32.Vec3

	// Dirs are the unit directions from the apex to each corner.
	Dirs [4]mgl32.Vec3

	AxisX mgl32.Vec3
	AxisY mgl32.Vec3
	AxisZ mgl32.Vec3

	// XDist and YDist are the half-extents of the frustum at unit depth.
	XDist float32
	YDist float32

	TR     mgl32.Mat4 // frustum basis with the apex as origin
	InvTR  mgl32.Mat4 // world to frustum-local
	Proj   mgl32.Mat4 // w' = z
	Scale  mgl32.Mat4 // diag(1/XDist, 1/YDist, 1, 1)
	Matrix mgl32.Mat4 // Scale * Proj * InvTR

	Local     [PointCount]mgl32.Vec3
	Projected [PointCount]mgl32.Vec3
	Scaled    [PointCount]mgl32.Vec3
	Combined  [PointCount]mgl32.Vec3
}

// Visualize builds the frustum basis from points and runs each point through the chain.
// The apex lands on the projection plane (w = 0), so its Projected, Scaled and Combined
// entries are not meaningful. Collinear or coincident corners produce NaN components;
// they never panic. Check Degenerate before trusting the output.
//
// Parameters:
//   - points: apex followed by the four corners
//
// Returns:
//   - Result: the basis, matrices and the four transformed point sets
func Visualize(points [PointCount]mgl32.Vec3) Result {
	r := Result{Original: points}
	apex := points[0]

	for i := 1; i < PointCount; i++ {
		r.Dirs[i-1] = points[i].Sub(apex).Normalize()
	}
	v := r.Dirs
	r.AxisX = v[1].Sub(v[0]).Normalize()
	r.AxisY = v[3].Sub(v[0]).Normalize()
	r.AxisZ = v[0].Add(v[1]).Add(v[2]).Add(v[3]).Normalize()

	// the y extent divides by corner 2's depth, not corner 3's
	r.XDist = v[1].Dot(r.AxisX) / v[1].Dot(r.AxisZ)
	r.YDist = v[3].Dot(r.AxisY) / v[2].Dot(r.AxisZ)

	r.TR = mgl32.Mat4FromCols(r.AxisX.Vec4(0), r.AxisY.Vec4(0), r.AxisZ.Vec4(0), apex.Vec4(1))
	r.InvTR = common.AffineInverse(r.TR)
	r.Proj = PerspectiveDivide()
	r.Scale = mgl32.Diag4(mgl32.Vec4{1 / r.XDist, 1 / r.YDist, 1, 1})
	r.Matrix = r.Scale.Mul4(r.Proj).Mul4(r.InvTR)

	for i, p := range points {
		r.Local[i] = common.TransformAffine(r.InvTR, p)
		r.Projected[i] = common.TransformPoint(r.Proj, r.Local[i])
		r.Scaled[i] = common.TransformAffine(r.Scale, r.Projected[i])
		r.Combined[i] = common.TransformPoint(r.Matrix, p)
	}
	return r
}

// PerspectiveDivide returns the identity with w' = z: (x, y, z, 1) maps to (x, y, z, z).
func PerspectiveDivide() mgl32.Mat4 {
	p := mgl32.Ident4()
	p.Set(3, 2, 1)
	p.Set(3, 3, 0)
	return p
}

// Degenerate reports whether the basis, the extents or any projected corner is not finite.
func (r Result) Degenerate() bool {
	if !common.IsFinite(r.AxisX) || !common.IsFinite(r.AxisY) || !common.IsFinite(r.AxisZ) {
		return true
	}
	if !common.IsFinite(mgl32.Vec3{r.XDist, r.YDist, 0}) {
		return true
	}
	for _, p := range r.Combined[1:] {
		if !common.IsFinite(p) {
			return true
		}
	}
	return false
}

// BasisDots returns the pairwise dot products of AxisX, AxisY and AxisZ. A captured
// frustum whose corners are not a perfect rectangle shows up as off-diagonal terms.
func (r Result) BasisDots() mgl32.Mat3 {
	axes := [3]mgl32.Vec3{r.AxisX, r.AxisY, r.AxisZ}
	var m mgl32.Mat3
	for i := range axes {
		for j := range axes {
			m.Set(i, j, axes[i].Dot(axes[j]))
		}
	}
	return m
}
