package frustum

import "github.com/go-gl/mathgl/mgl32"

// Plane is ax + by + cz + d = 0 with (a, b, c) the normal and d the distance from the origin.
// The positive half-space is inside the frustum.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the distance of p from the plane, positive on the inside.
func (p Plane) SignedDistance(pt mgl32.Vec3) float32 {
	return p.Normal.Dot(pt) + p.Distance
}

// Planes are the six clip planes of a view-projection matrix.
type Planes [6]Plane

// Plane indices into Planes.
const (
	Left = iota
	Right
	Bottom
	Top
	Near
	Far
)

// ExtractPlanes extracts the clip planes from a view-projection matrix (Gribb/Hartmann).
// Each plane is row 3 of the matrix plus or minus one of rows 0 to 2.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined projection * view matrix (column-major)
//
// Returns:
//   - Planes: the extracted planes with unit normals
func ExtractPlanes(viewProj mgl32.Mat4) Planes {
	w := viewProj.Row(3)
	rows := [3]mgl32.Vec4{viewProj.Row(0), viewProj.Row(1), viewProj.Row(2)}

	var ps Planes
	for axis, row := range rows {
		ps[2*axis] = planeFromRow(w.Add(row))
		ps[2*axis+1] = planeFromRow(w.Sub(row))
	}
	return ps
}

func planeFromRow(r mgl32.Vec4) Plane {
	p := Plane{Normal: r.Vec3(), Distance: r.W()}
	if l := p.Normal.Len(); l > 0 {
		p.Normal = p.Normal.Mul(1 / l)
		p.Distance /= l
	}
	return p
}

// InFrontOfNear reports whether every point lies strictly on the visible side of the near plane.
func (ps Planes) InFrontOfNear(pts ...mgl32.Vec3) bool {
	for _, pt := range pts {
		if !(ps[Near].SignedDistance(pt) > 0) {
			return false
		}
	}
	return true
}

// Outside reports whether all points lie outside a single plane, in which case the primitive
// they span cannot be visible.
func (ps Planes) Outside(pts ...mgl32.Vec3) bool {
	for _, p := range ps {
		out := true
		for _, pt := range pts {
			if p.SignedDistance(pt) >= 0 {
				out = false
				break
			}
		}
		if out {
			return true
		}
	}
	return false
}
