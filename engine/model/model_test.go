package model

import (
	"bytes"
	"math"
	"testing"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

func TestFromCylinder(t *testing.T) {
	c := mesh.NewCylinder(0.1, 0, 0.2, 8)
	m := FromCylinder("cylinder", c)

	if m.Name() != "cylinder" {
		t.Errorf("Name = %q", m.Name())
	}
	if m.VertexCount() != 32 || m.IndexCount() != 84 || m.TriangleCount() != 28 {
		t.Errorf("counts = %d/%d/%d, want 32/84/28", m.VertexCount(), m.IndexCount(), m.TriangleCount())
	}
	if m.VertexStride() != 24 {
		t.Errorf("VertexStride = %d, want 24", m.VertexStride())
	}
	if len(m.VertexData()) != 32*24 || len(m.IndexData()) != 84*4 {
		t.Errorf("byte sizes = %d/%d, want %d/%d", len(m.VertexData()), len(m.IndexData()), 32*24, 84*4)
	}
	if !bytes.Equal(m.IndexData(), common.SliceToBytes(c.Indices)) {
		t.Error("index bytes differ from the mesh indices")
	}

	want := float32(math.Sqrt(0.1*0.1 + 0.2*0.2))
	if math.Abs(float64(m.BoundingRadius()-want)) > 1e-6 {
		t.Errorf("BoundingRadius = %v, want %v", m.BoundingRadius(), want)
	}
}

func TestFromMeshBuilderCopies(t *testing.T) {
	mb := mesh.NewMeshBuilder()
	mb.AddQuadStrip([]common.VertexPosTexCoord{
		{Pos: mgl32.Vec3{0, 0, -1}}, {Pos: mgl32.Vec3{0, 0, 1}},
		{Pos: mgl32.Vec3{1, 0, -1}}, {Pos: mgl32.Vec3{1, 0, 1}},
	})
	m := FromMeshBuilder("strip", mb)
	before := append([]byte(nil), m.VertexData()...)

	mb.Reset()
	mb.AddQuadStrip([]common.VertexPosTexCoord{
		{Pos: mgl32.Vec3{5, 5, 5}}, {Pos: mgl32.Vec3{6, 5, 5}},
		{Pos: mgl32.Vec3{5, 6, 5}}, {Pos: mgl32.Vec3{6, 6, 5}},
	})
	if !bytes.Equal(before, m.VertexData()) {
		t.Error("model data changed when the builder was reused")
	}
	if m.VertexStride() != 32 || m.VertexCount() != 4 || m.IndexCount() != 6 {
		t.Errorf("stride/verts/inds = %d/%d/%d, want 32/4/6", m.VertexStride(), m.VertexCount(), m.IndexCount())
	}
}

func TestFromIcosphere(t *testing.T) {
	cache := mesh.NewIcosphereCache()
	level := cache.Level(2)
	original := append([]byte(nil), common.SliceToBytes(level.Vertices())...)

	tests := []struct {
		name       string
		normalized bool
	}{
		{"planar", false},
		{"normalized", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromIcosphere("ico", level, tt.normalized)
			if m.VertexCount() != 162 || m.IndexCount() != 960 || m.VertexStride() != 12 {
				t.Errorf("verts/inds/stride = %d/%d/%d", m.VertexCount(), m.IndexCount(), m.VertexStride())
			}
			if math.Abs(float64(m.BoundingRadius()-1)) > 1e-5 {
				t.Errorf("BoundingRadius = %v, want 1", m.BoundingRadius())
			}
			same := bytes.Equal(m.VertexData(), original)
			if same == tt.normalized {
				t.Errorf("vertex data equal to the cache = %v, want %v", same, !tt.normalized)
			}
		})
	}
	if !bytes.Equal(original, common.SliceToBytes(level.Vertices())) {
		t.Error("normalizing modified the cached level")
	}
}

func TestNewModelOptions(t *testing.T) {
	m := NewModel(
		WithName("points"),
		WithVertices([]mgl32.Vec3{{3, 4, 0}, {0, 1, 0}}, func(p mgl32.Vec3) mgl32.Vec3 { return p }),
		WithBoundingRadius(10),
	)
	if m.BoundingRadius() != 10 || m.VertexCount() != 2 || m.IndexCount() != 0 {
		t.Errorf("model = radius %v, %d vertices, %d indices", m.BoundingRadius(), m.VertexCount(), m.IndexCount())
	}
}
