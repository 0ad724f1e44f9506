package immediate

import (
	"testing"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

func requireContractViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if _, ok := recover().(*common.ContractViolation); !ok {
			t.Fatal("expected a *common.ContractViolation panic")
		}
	}()
	fn()
}

func TestNewRendererStartsReset(t *testing.T) {
	r := NewRenderer()
	if r.ColorDepth() != 1 || r.TransformDepth() != 1 || !r.Balanced() {
		t.Fatalf("depths = %d/%d, want 1/1", r.ColorDepth(), r.TransformDepth())
	}
	if !r.Frame().Empty() {
		t.Fatal("new renderer has primitives")
	}
	r.DrawPoint(mgl32.Vec3{1, 2, 3})
	got := r.Frame().Points[0]
	if got.Color != common.White || got.Pos != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("point = %+v, want white at (1, 2, 3)", got)
	}
}

func TestColorStack(t *testing.T) {
	r := NewRenderer()
	r.PushColor(common.Red)
	r.DrawLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	r.PushColor(common.Blue)
	r.DrawPoint(mgl32.Vec3{})
	r.PopColor()
	r.DrawTriangle(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	if r.Balanced() {
		t.Error("renderer balanced with one color pushed")
	}
	r.PopColor()
	r.DrawPoint(mgl32.Vec3{})

	f := r.Frame()
	tests := []struct {
		name string
		got  mgl32.Vec4
		want mgl32.Vec4
	}{
		{"line under red", f.Lines[0][1].Color, common.Red},
		{"point under blue", f.Points[0].Color, common.Blue},
		{"triangle after popping blue", f.Triangles[0][2].Color, common.Red},
		{"point after popping everything", f.Points[1].Color, common.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("color = %v, want %v", tt.got, tt.want)
			}
		})
	}
	if !r.Balanced() {
		t.Error("renderer unbalanced after matching pops")
	}
}

func TestTransformStackComposes(t *testing.T) {
	r := NewRenderer()
	r.PushTransform(mgl32.Translate3D(1, 0, 0))
	r.PushTransform(mgl32.Scale3D(2, 2, 2))
	r.DrawPoint(mgl32.Vec3{1, 1, 1})
	if r.TransformDepth() != 3 {
		t.Errorf("TransformDepth = %d, want 3", r.TransformDepth())
	}
	r.PopTransform()
	r.DrawPoint(mgl32.Vec3{1, 1, 1})
	r.PopTransform()
	r.DrawPoint(mgl32.Vec3{1, 1, 1})

	want := []mgl32.Vec3{{3, 2, 2}, {2, 1, 1}, {1, 1, 1}}
	for i, w := range want {
		if got := r.Frame().Points[i].Pos; got != w {
			t.Errorf("point %d = %v, want %v", i, got, w)
		}
	}
}

func TestPopBaseEntryPanics(t *testing.T) {
	r := NewRenderer()
	requireContractViolation(t, r.PopColor)
	requireContractViolation(t, r.PopTransform)
}

func TestResetClearsFrameAndStacks(t *testing.T) {
	r := NewRenderer(WithBaseColor(common.Green), WithCapacity(4, 4, 4))
	r.PushColor(common.Red)
	r.PushTransform(mgl32.Translate3D(5, 5, 5))
	r.DrawPoint(mgl32.Vec3{})
	r.DrawLine(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	r.DrawTriangle(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	if got := r.Frame().Primitives(); got != 3 {
		t.Fatalf("Primitives = %d, want 3", got)
	}

	r.Reset()
	if !r.Frame().Empty() || !r.Balanced() {
		t.Fatalf("after Reset: %d primitives, depths %d/%d", r.Frame().Primitives(), r.ColorDepth(), r.TransformDepth())
	}
	r.DrawPoint(mgl32.Vec3{})
	if got := r.Frame().Points[0]; got.Color != common.Green || got.Pos != (mgl32.Vec3{}) {
		t.Errorf("point after Reset = %+v, want green at the origin", got)
	}
}
