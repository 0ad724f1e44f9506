// Package sandbox holds the demo programs that exercise the mesh generators and the frustum
// visualizer through the immediate draw interface. A sandbox, its meshes and its cache
// belong to one goroutine.
package sandbox

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/Carmen-Shannon/giterate/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// Sandbox is a demo program driven by the frame loop.
type Sandbox interface {
	// Name returns the registry name of the sandbox.
	//
	// Returns:
	//   - string: the sandbox name
	Name() string

	// Init builds the sandbox's meshes. It runs once before the first Draw.
	Init()

	// Draw submits the sandbox's primitives for one frame. Every push is matched by a pop.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	//   - d: the primitive sink for this frame
	Draw(dt float32, d immediate.Drawer)
}

// Modeler is implemented by sandboxes whose geometry is a single indexed mesh.
type Modeler interface {
	// Model packages the current mesh. Only valid after Init.
	//
	// Returns:
	//   - model.Model: the packaged mesh
	Model() model.Model
}

// Framer is implemented by sandboxes that know where their geometry sits, so a presenter
// can point the camera at it.
type Framer interface {
	// Focus returns the center and radius of a sphere enclosing what the sandbox draws.
	//
	// Returns:
	//   - center: the sphere center in world space
	//   - radius: the sphere radius
	Focus() (center mgl32.Vec3, radius float32)
}

// ErrUnknownSandbox is returned by New for names that are not registered.
var ErrUnknownSandbox = errors.New("unknown sandbox")

// Registry names.
const (
	CylinderName  = "cylinder"
	QuadStripName = "quad_strip"
	IcosphereName = "icosphere"
	FrustumName   = "frustum"
)

var registry = map[string]func(*settings) Sandbox{
	CylinderName:  newCylinder,
	QuadStripName: newQuadStrip,
	IcosphereName: newIcosphere,
	FrustumName:   newFrustum,
}

// Names returns the registered sandbox names in sorted order.
//
// Returns:
//   - []string: the sandbox names
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named sandbox with the specified options applied. Options that do not
// concern the chosen sandbox are ignored. The sandbox is not initialized.
//
// Parameters:
//   - name: one of Names()
//   - options: a variadic list of SandboxBuilderOption functions
//
// Returns:
//   - Sandbox: the new sandbox
//   - error: wraps ErrUnknownSandbox if name is not registered
func New(name string, options ...SandboxBuilderOption) (Sandbox, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownSandbox, name, Names())
	}
	s := defaultSettings()
	for _, opt := range options {
		opt(s)
	}
	return ctor(s), nil
}
