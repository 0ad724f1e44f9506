package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

// matNear compares element-wise with an absolute tolerance. mgl32's ApproxEqualThreshold is
// relative and needs |diff| < eps*eps wherever the expected element is zero.
func matNear(a, b mgl32.Mat4, tol float64) bool {
	for i := range a {
		if !(math.Abs(float64(a[i]-b[i])) <= tol) {
			return false
		}
	}
	return true
}

func vecNear(a, b mgl32.Vec3, tol float64) bool {
	for i := range a {
		if !(math.Abs(float64(a[i]-b[i])) <= tol) {
			return false
		}
	}
	return true
}

func TestMix(t *testing.T) {
	a := mgl32.Vec3{1, 0, 0}
	b := mgl32.Vec3{0, 1, 0}
	tests := []struct {
		name string
		t    float32
		want mgl32.Vec3
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"midpoint is on the chord", 0.5, mgl32.Vec3{0.5, 0.5, 0}},
		{"extrapolates", 2, mgl32.Vec3{-1, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(a, b, tt.t); !vecNear(got, tt.want, epsilon) {
				t.Errorf("Mix(%v, %v, %v) = %v, want %v", a, b, tt.t, got, tt.want)
			}
		})
	}
}

func TestAffineInverse(t *testing.T) {
	tests := []struct {
		name string
		m    mgl32.Mat4
	}{
		{"identity", mgl32.Ident4()},
		{"translation", mgl32.Translate3D(1, -2, 3)},
		{"rotation", mgl32.HomogRotate3DY(0.7).Mul4(mgl32.HomogRotate3DX(-0.3))},
		{"rigid with scale", mgl32.Translate3D(4, 5, 6).Mul4(mgl32.HomogRotate3DZ(1.1)).Mul4(mgl32.Scale3D(2, 0.5, 3))},
		{"round-off near zero", mgl32.Translate3D(-3, 0.25, 2).Mul4(mgl32.HomogRotate3DZ(0.3)).Mul4(mgl32.HomogRotate3DX(2.2)).Mul4(mgl32.Scale3D(1.5, 1.5, 0.5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := AffineInverse(tt.m)
			if got := inv.Mul4(tt.m); !matNear(got, mgl32.Ident4(), epsilon) {
				t.Errorf("AffineInverse(m) * m = %v, want identity", got)
			}
			if !matNear(inv, tt.m.Inv(), 1e-4) {
				t.Errorf("AffineInverse disagrees with the general inverse")
			}
		})
	}
}

func TestAffineInverseSingularBlock(t *testing.T) {
	inv := AffineInverse(mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(0, 1, 1)))
	for i := 0; i < 15; i++ {
		if inv[i] != 0 {
			t.Fatalf("singular inverse element %d = %v, want 0 (got %v)", i, inv[i], inv)
		}
	}
	if inv[15] != 1 {
		t.Errorf("singular inverse w = %v, want 1", inv[15])
	}
}

func TestTransformPoint(t *testing.T) {
	const near, far = float32(0.5), float32(100)
	proj := mgl32.Perspective(Pi/4, 1, near, far)
	tests := []struct {
		name  string
		p     mgl32.Vec3
		wantZ float32
	}{
		{"near plane", mgl32.Vec3{0, 0, -near}, -1},
		{"far plane", mgl32.Vec3{0, 0, -far}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformPoint(proj, tt.p)
			if math.Abs(float64(got.Z()-tt.wantZ)) > 1e-4 {
				t.Errorf("TransformPoint z = %v, want %v", got.Z(), tt.wantZ)
			}
		})
	}

	if got := TransformPoint(mgl32.Translate3D(1, 2, 3), mgl32.Vec3{1, 1, 1}); got != (mgl32.Vec3{2, 3, 4}) {
		t.Errorf("TransformPoint(translate) = %v, want (2, 3, 4)", got)
	}
	if got := TransformPoint(proj, mgl32.Vec3{1, 0, 0}); IsFinite(got) {
		t.Errorf("point on the eye plane projected to finite %v", got)
	}
}

func TestTransformAffineIgnoresW(t *testing.T) {
	m := mgl32.Translate3D(0, 1, 0)
	m[15] = 2
	if got := TransformAffine(m, mgl32.Vec3{1, 1, 1}); got != (mgl32.Vec3{1, 2, 1}) {
		t.Errorf("TransformAffine = %v, want (1, 2, 1)", got)
	}
}

func TestIsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		v    mgl32.Vec3
		want bool
	}{
		{mgl32.Vec3{0, 1, -1}, true},
		{mgl32.Vec3{nan, 0, 0}, false},
		{mgl32.Vec3{0, -inf, 0}, false},
		{mgl32.Vec3{}.Normalize(), false},
	}
	for _, tt := range tests {
		if got := IsFinite(tt.v); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSliceToBytes(t *testing.T) {
	if SliceToBytes([]uint32{}) != nil {
		t.Error("SliceToBytes(empty) should be nil")
	}
	b := SliceToBytes([]VertexPosNormal{{}, {}})
	if len(b) != 2*6*4 {
		t.Errorf("len(SliceToBytes(2 vertices)) = %d, want 48", len(b))
	}
	if got := SliceToBytes([]uint32{1}); got[0] != 1 && got[3] != 1 {
		t.Errorf("SliceToBytes([1]) = %v, want the raw little- or big-endian bytes", got)
	}
}
