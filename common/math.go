package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Pi is math.Pi as a float32, the precision every generator works in.
const Pi = float32(math.Pi)

// Mix linearly interpolates between a and b: a*(1-t) + b*t.
// This is the plain component-wise blend, not a spherical interpolation, so mixing two
// unit vectors yields a point on the chord between them.
//
// Parameters:
//   - a: the value returned at t = 0
//   - b: the value returned at t = 1
//   - t: the blend factor
//
// Returns:
//   - mgl32.Vec3: the blended vector
func Mix(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// AffineInverse inverts a 4x4 affine matrix by inverting its upper 3x3 block and
// rotating the negated translation through it. The bottom row is assumed to be (0, 0, 0, 1).
// A singular 3x3 block produces a zero linear part (mgl32.Mat3.Inv semantics), and NaN
// inputs propagate to the result.
//
// Parameters:
//   - m: the affine matrix to invert (column-major)
//
// Returns:
//   - mgl32.Mat4: the inverse transform
func AffineInverse(m mgl32.Mat4) mgl32.Mat4 {
	inv := m.Mat3().Inv()
	t := inv.Mul3x1(m.Col(3).Vec3()).Mul(-1)
	return mgl32.Mat4FromCols(
		inv.Col(0).Vec4(0),
		inv.Col(1).Vec4(0),
		inv.Col(2).Vec4(0),
		t.Vec4(1),
	)
}

// TransformPoint applies m to the point p (w = 1) and performs the homogeneous divide.
// A w of zero yields infinite or NaN components; callers that can hit the projection
// plane must check the result with IsFinite.
//
// Parameters:
//   - m: the transform to apply (column-major)
//   - p: the point to transform
//
// Returns:
//   - mgl32.Vec3: the transformed point after the divide by w
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}

// TransformAffine applies m to the point p (w = 1) and drops w without dividing.
func TransformAffine(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// IsFinite reports whether every component of v is neither NaN nor infinite.
func IsFinite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}
