package sandbox

import (
	"strings"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/frustum"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/go-gl/mathgl/mgl32"
)

// FrustumFlags selects the point sets drawn by the frustum sandbox.
type FrustumFlags uint8

const (
	// FrustumOriginal draws the captured world-space frustum.
	FrustumOriginal FrustumFlags = 1 << iota
	// FrustumLocal draws the points in the frustum's own basis.
	FrustumLocal
	// FrustumProjected draws the local points after the divide by depth.
	FrustumProjected
	// FrustumScaled draws the projected points scaled to the unit square.
	FrustumScaled
	// FrustumCombined draws the points through the single combined matrix.
	FrustumCombined
	// FrustumBasis draws the frustum's X, Y and Z axes in red, green and blue.
	FrustumBasis

	// FrustumAll enables every point set and the basis.
	FrustumAll = FrustumOriginal | FrustumLocal | FrustumProjected | FrustumScaled | FrustumCombined | FrustumBasis
)

var frustumFlagNames = []struct {
	flag FrustumFlags
	name string
}{
	{FrustumOriginal, "original"},
	{FrustumLocal, "local"},
	{FrustumProjected, "projected"},
	{FrustumScaled, "scaled"},
	{FrustumCombined, "combined"},
	{FrustumBasis, "basis"},
}

// ParseFrustumFlags parses a comma-separated list such as "original,combined,basis".
// "all" selects every flag and an empty string selects none.
//
// Parameters:
//   - s: the flag list
//
// Returns:
//   - FrustumFlags: the parsed flags
//   - bool: false if any name is unknown
func ParseFrustumFlags(s string) (FrustumFlags, bool) {
	var flags FrustumFlags
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part == "all" {
			flags |= FrustumAll
			continue
		}
		found := false
		for _, fn := range frustumFlagNames {
			if fn.name == part {
				flags |= fn.flag
				found = true
			}
		}
		if !found {
			return 0, false
		}
	}
	return flags, true
}

func (f FrustumFlags) String() string {
	var names []string
	for _, fn := range frustumFlagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, ",")
}

// frustumSandbox re-runs the frustum visualizer every frame and draws the selected stages.
type frustumSandbox struct {
	flags  FrustumFlags
	points [frustum.PointCount]mgl32.Vec3
	warned bool
}

var (
	_ Sandbox = &frustumSandbox{}
	_ Framer  = &frustumSandbox{}
)

func newFrustum(s *settings) Sandbox {
	return &frustumSandbox{flags: s.frustumFlags, points: s.frustumPts}
}

func (fs *frustumSandbox) Name() string { return FrustumName }

func (fs *frustumSandbox) Init() {}

func (fs *frustumSandbox) Draw(dt float32, d immediate.Drawer) {
	r := frustum.Visualize(fs.points)
	if r.Degenerate() && !fs.warned {
		common.Logger().Warn("degenerate frustum input", "points", fs.points)
		fs.warned = true
	}

	stages := []struct {
		flag FrustumFlags
		pts  *[frustum.PointCount]mgl32.Vec3
	}{
		{FrustumOriginal, &r.Original},
		{FrustumLocal, &r.Local},
		{FrustumProjected, &r.Projected},
		{FrustumScaled, &r.Scaled},
		{FrustumCombined, &r.Combined},
	}
	for _, st := range stages {
		if fs.flags&st.flag != 0 {
			drawFrustum(d, st.pts)
		}
	}

	if fs.flags&FrustumBasis != 0 {
		axes := []struct {
			color mgl32.Vec4
			axis  mgl32.Vec3
		}{
			{common.Red, r.AxisX},
			{common.Green, r.AxisY},
			{common.Blue, r.AxisZ},
		}
		for _, a := range axes {
			d.PushColor(a.color)
			d.DrawLine(mgl32.Vec3{}, a.axis)
			d.PopColor()
		}
	}
}

// Focus frames the world-space capture when only it is drawn, the local capture when only
// that is drawn, and the unit-scale stages otherwise.
func (fs *frustumSandbox) Focus() (mgl32.Vec3, float32) {
	var radius float32
	for _, p := range fs.points[1:] {
		radius = max(radius, p.Sub(fs.points[0]).Len())
	}
	switch fs.flags &^ FrustumBasis {
	case FrustumOriginal:
		return fs.points[0], radius
	case FrustumLocal:
		return mgl32.Vec3{}, radius
	}
	return mgl32.Vec3{0, 0, 0.5}, 1.6
}

// drawFrustum draws the apex edges from pts[0] and the loop through the four corners.
func drawFrustum(d immediate.Drawer, pts *[frustum.PointCount]mgl32.Vec3) {
	for i := 1; i < frustum.PointCount; i++ {
		d.DrawLine(pts[0], pts[i])
		d.DrawLine(pts[i], pts[i%4+1])
	}
}
