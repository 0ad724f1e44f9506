package sandbox

import (
	"github.com/Carmen-Shannon/giterate/engine/frustum"
	"github.com/Carmen-Shannon/giterate/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// settings carries the toggles of every sandbox; each sandbox reads the ones it uses.
type settings struct {
	wireframe    bool
	wireframeSet bool
	normals      bool
	level        int
	normalize    bool
	frustumFlags FrustumFlags
	frustumPts   [frustum.PointCount]mgl32.Vec3
}

func defaultSettings() *settings {
	return &settings{
		normals:      true,
		level:        3,
		frustumFlags: FrustumCombined | FrustumBasis,
		frustumPts:   frustum.DefaultPoints,
	}
}

// wireframeOr returns the configured wireframe flag, or def when none was set.
func (s *settings) wireframeOr(def bool) bool {
	if s.wireframeSet {
		return s.wireframe
	}
	return def
}

// SandboxBuilderOption is a functional option for configuring a Sandbox via New.
type SandboxBuilderOption func(*settings)

// WithWireframe is an option builder that draws mesh triangles as their three edges.
// Cylinder defaults to filled, icosphere to wireframe.
//
// Parameters:
//   - wireframe: true to draw edges instead of filled triangles
//
// Returns:
//   - SandboxBuilderOption: a function that applies the option to the sandbox settings
func WithWireframe(wireframe bool) SandboxBuilderOption {
	return func(s *settings) {
		s.wireframe = wireframe
		s.wireframeSet = true
	}
}

// WithNormals is an option builder that toggles the per-vertex normal lines of the
// cylinder and quad strip sandboxes. Enabled by default.
//
// Parameters:
//   - normals: true to draw normal lines
//
// Returns:
//   - SandboxBuilderOption: a function that applies the option to the sandbox settings
func WithNormals(normals bool) SandboxBuilderOption {
	return func(s *settings) {
		s.normals = normals
	}
}

// WithLevel is an option builder that sets the icosphere subdivision level, clamped to
// [0, mesh.MaxIcosphereLevel]. Defaults to 3.
//
// Parameters:
//   - level: the subdivision level
//
// Returns:
//   - SandboxBuilderOption: a function that applies the option to the sandbox settings
func WithLevel(level int) SandboxBuilderOption {
	return func(s *settings) {
		s.level = clampLevel(level)
	}
}

// WithNormalize is an option builder that projects icosphere positions onto the unit sphere
// at draw time.
//
// Parameters:
//   - normalize: true to draw the sphere instead of the subdivided icosahedron
//
// Returns:
//   - SandboxBuilderOption: a function that applies the option to the sandbox settings
func WithNormalize(normalize bool) SandboxBuilderOption {
	return func(s *settings) {
		s.normalize = normalize
	}
}

// WithFrustumFlags is an option builder that selects which point sets the frustum sandbox draws.
//
// Parameters:
//   - flags: a combination of the Frustum* flags
//
// Returns:
//   - SandboxBuilderOption: a function that applies the option to the sandbox settings
func WithFrustumFlags(flags FrustumFlags) SandboxBuilderOption {
	return func(s *settings) {
		s.frustumFlags = flags
	}
}

// WithFrustumPoints is an option builder that replaces the captured frustum.
//
// Parameters:
//   - points: apex followed by four corners
//
// Returns:
//   - SandboxBuilderOption: a function that applies the option to the sandbox settings
func WithFrustumPoints(points [frustum.PointCount]mgl32.Vec3) SandboxBuilderOption {
	return func(s *settings) {
		s.frustumPts = points
	}
}

func clampLevel(level int) int {
	return max(0, min(level, mesh.MaxIcosphereLevel))
}
