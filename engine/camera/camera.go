package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is clamped to this fraction of Pi either side of the horizon.
const maxPitchFraction = 0.45

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	heading  float32
	pitch    float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	worldMatrix          mgl32.Mat4
	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera defines the interface for the fly camera.
// The pose is a position plus heading (rotation about +Y) and pitch (rotation about +X);
// the camera looks down its local -Z axis. Matrices are recomputed on every change.
type Camera interface {
	// Position returns the camera position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Heading returns the rotation about the world Y axis in radians.
	//
	// Returns:
	//   - float32: the heading
	Heading() float32

	// Pitch returns the rotation about the camera X axis in radians.
	//
	// Returns:
	//   - float32: the pitch
	Pitch() float32

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// WorldMatrix returns RotY(heading) * RotX(pitch) with the position as translation.
	//
	// Returns:
	//   - mgl32.Mat4: the camera-to-world matrix
	WorldMatrix() mgl32.Mat4

	// ViewMatrix returns the affine inverse of the world matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// SetPosition moves the camera.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// SetHeading sets the heading in radians.
	//
	// Parameters:
	//   - heading: rotation about +Y
	SetHeading(heading float32)

	// SetPitch sets the pitch in radians, clamped to +-0.45*Pi.
	//
	// Parameters:
	//   - pitch: rotation about +X
	SetPitch(pitch float32)

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Frame moves the camera back along its current view direction until a sphere of the
	// given radius around center fills the narrower field of view. The far plane grows if
	// the sphere would otherwise be clipped.
	//
	// Parameters:
	//   - center: sphere center in world space
	//   - radius: sphere radius (must be positive)
	Frame(center mgl32.Vec3, radius float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at (0.1, 0.1, 1) looking down -Z with a Pi/4 vertical
// field of view, near 0.02 and far 10000.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		position: mgl32.Vec3{0.1, 0.1, 1},
		fov:      common.Pi / 4,
		aspect:   1.0,
		near:     0.02,
		far:      10000.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Heading() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.heading
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) WorldMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldMatrix
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
	c.updateMatrices()
}

func (c *cameraImpl) SetHeading(heading float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.heading = heading
	c.updateMatrices()
}

func (c *cameraImpl) SetPitch(pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = clampPitch(pitch)
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Frame(center mgl32.Vec3, radius float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	common.Require(radius > 0, "camera.Frame", "radius %v is not positive", radius)

	halfY := float64(c.fov) / 2
	halfX := math.Atan(math.Tan(halfY) * float64(c.aspect))
	dist := radius / float32(math.Sin(math.Min(halfX, halfY)))

	back := c.worldMatrix.Col(2).Vec3()
	c.position = center.Add(back.Mul(dist))
	c.far = max(c.far, 2*(dist+radius))
	c.updateMatrices()
}

// updateMatrices recalculates the world, view, projection and view-projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.worldMatrix = mgl32.HomogRotate3DY(c.heading).Mul4(mgl32.HomogRotate3DX(c.pitch))
	c.worldMatrix.SetCol(3, c.position.Vec4(1))
	c.viewMatrix = common.AffineInverse(c.worldMatrix)
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

func clampPitch(pitch float32) float32 {
	limit := maxPitchFraction * common.Pi
	return max(-limit, min(pitch, limit))
}
