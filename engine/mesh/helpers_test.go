package mesh

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

// requireContractViolation runs fn and fails unless it panics with a *common.ContractViolation.
func requireContractViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a contract violation, got none")
		}
		if _, ok := r.(*common.ContractViolation); !ok {
			t.Fatalf("panic value %T (%v), want *common.ContractViolation", r, r)
		}
	}()
	fn()
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

func nearlyEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func vecNearlyEqual(a, b mgl32.Vec3) bool {
	return nearlyEqual(a[0], b[0]) && nearlyEqual(a[1], b[1]) && nearlyEqual(a[2], b[2])
}

// directedEdges counts every directed edge of the triangle list.
func directedEdges(inds []uint32) map[[2]uint32]int {
	edges := make(map[[2]uint32]int, len(inds))
	for i := 0; i+2 < len(inds); i += 3 {
		a, b, c := inds[i], inds[i+1], inds[i+2]
		edges[[2]uint32{a, b}]++
		edges[[2]uint32{b, c}]++
		edges[[2]uint32{c, a}]++
	}
	return edges
}
