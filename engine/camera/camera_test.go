package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

func matNear(a, b mgl32.Mat4, tol float64) bool {
	for i := range a {
		if !(math.Abs(float64(a[i]-b[i])) <= tol) {
			return false
		}
	}
	return true
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Position() != (mgl32.Vec3{0.1, 0.1, 1}) || c.Heading() != 0 || c.Pitch() != 0 {
		t.Errorf("pose = %v / %v / %v", c.Position(), c.Heading(), c.Pitch())
	}
	if c.Fov() != common.Pi/4 || c.Near() != 0.02 || c.Far() != 10000 || c.Aspect() != 1 {
		t.Errorf("lens = fov %v near %v far %v aspect %v", c.Fov(), c.Near(), c.Far(), c.Aspect())
	}
	if !matNear(c.ViewMatrix().Mul4(c.WorldMatrix()), mgl32.Ident4(), 1e-5) {
		t.Error("view matrix is not the inverse of the world matrix")
	}
}

func TestWorldMatrixIsYawThenPitch(t *testing.T) {
	heading, pitch := float32(0.6), float32(-0.2)
	c := NewCamera(WithHeading(heading), WithPitch(pitch), WithPosition(mgl32.Vec3{1, 2, 3}))

	want := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DY(heading)).Mul4(mgl32.HomogRotate3DX(pitch))
	if !matNear(c.WorldMatrix(), want, 1e-5) {
		t.Errorf("WorldMatrix = %v, want %v", c.WorldMatrix(), want)
	}
	if got := c.ViewProjectionMatrix(); !matNear(got, c.ProjectionMatrix().Mul4(c.ViewMatrix()), 1e-5) {
		t.Error("ViewProjectionMatrix != Projection * View")
	}
}

func TestPointAheadProjectsToCenter(t *testing.T) {
	c := NewCamera(WithPosition(mgl32.Vec3{0, 0, 5}))
	ndc := common.TransformPoint(c.ViewProjectionMatrix(), mgl32.Vec3{0, 0, 0})
	if math.Abs(float64(ndc.X())) > 1e-6 || math.Abs(float64(ndc.Y())) > 1e-6 || ndc.Z() <= -1 || ndc.Z() >= 1 {
		t.Errorf("origin seen from +Z projects to %v, want the screen center inside the depth range", ndc)
	}
}

func TestSetPitchClamps(t *testing.T) {
	limit := 0.45 * common.Pi
	tests := []struct {
		in, want float32
	}{
		{0.3, 0.3},
		{2, limit},
		{-2, -limit},
	}
	c := NewCamera()
	for _, tt := range tests {
		c.SetPitch(tt.in)
		if c.Pitch() != tt.want {
			t.Errorf("SetPitch(%v) -> %v, want %v", tt.in, c.Pitch(), tt.want)
		}
	}
}

func TestFrameKeepsSphereInView(t *testing.T) {
	tests := []struct {
		name   string
		center mgl32.Vec3
		radius float32
		aspect float32
	}{
		{"unit sphere", mgl32.Vec3{}, 1, 1},
		{"wide viewport", mgl32.Vec3{1.5, 0, 0}, 1.9, 16.0 / 9},
		{"tall viewport", mgl32.Vec3{0, 0.1, 0}, 0.15, 0.5},
		{"huge capture", mgl32.Vec3{9000, 1900, -700}, 34000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(WithAspect(tt.aspect), WithHeading(0.4))
			c.Frame(tt.center, tt.radius)

			vp := c.ViewProjectionMatrix()
			ndc := common.TransformPoint(vp, tt.center)
			if math.Abs(float64(ndc.X())) > 1e-3 || math.Abs(float64(ndc.Y())) > 1e-3 {
				t.Errorf("center projects to %v, want the screen center", ndc)
			}
			right := c.WorldMatrix().Col(0).Vec3()
			up := c.WorldMatrix().Col(1).Vec3()
			for _, p := range []mgl32.Vec3{
				tt.center.Add(right.Mul(tt.radius * 0.99)),
				tt.center.Sub(up.Mul(tt.radius * 0.99)),
			} {
				q := common.TransformPoint(vp, p)
				if q.X() < -1 || q.X() > 1 || q.Y() < -1 || q.Y() > 1 || q.Z() < -1 || q.Z() > 1 {
					t.Errorf("sphere edge %v projects outside the view: %v", p, q)
				}
			}
		})
	}
}
