package sandbox

import (
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/Carmen-Shannon/giterate/engine/mesh"
	"github.com/Carmen-Shannon/giterate/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// Icosphere is the icosphere sandbox; its level can change between frames.
type Icosphere interface {
	Sandbox

	// Level returns the subdivision level currently drawn.
	Level() int

	// SetLevel switches the drawn level, building it on first use.
	//
	// Parameters:
	//   - level: the requested level, clamped to [0, mesh.MaxIcosphereLevel]
	//
	// Returns:
	//   - int: the level actually selected
	SetLevel(level int) int

	// Cache returns the level cache backing the sandbox.
	Cache() *mesh.IcosphereCache
}

type icosphereSandbox struct {
	level     int
	wireframe bool
	normalize bool
	cache     *mesh.IcosphereCache
}

var (
	_ Icosphere = &icosphereSandbox{}
	_ Modeler   = &icosphereSandbox{}
	_ Framer    = &icosphereSandbox{}
)

func newIcosphere(s *settings) Sandbox {
	return &icosphereSandbox{
		level:     s.level,
		wireframe: s.wireframeOr(true),
		normalize: s.normalize,
		cache:     mesh.NewIcosphereCache(),
	}
}

func (ico *icosphereSandbox) Name() string { return IcosphereName }

func (ico *icosphereSandbox) Init() {
	ico.cache.Level(ico.level)
}

func (ico *icosphereSandbox) Level() int { return ico.level }

func (ico *icosphereSandbox) SetLevel(level int) int {
	ico.level = clampLevel(level)
	ico.cache.Level(ico.level)
	return ico.level
}

func (ico *icosphereSandbox) Cache() *mesh.IcosphereCache { return ico.cache }

func (ico *icosphereSandbox) Draw(dt float32, d immediate.Drawer) {
	m := ico.cache.Level(ico.level)
	verts := m.Vertices()
	pos := func(i uint32) mgl32.Vec3 { return verts[i] }
	if ico.normalize {
		pos = func(i uint32) mgl32.Vec3 { return mesh.NormalizedPosition(verts[i]) }
	}

	d.PushColor(common.Red)
	drawIndexed(d, m.Indices(), pos, ico.wireframe)
	d.PopColor()
}

func (ico *icosphereSandbox) Model() model.Model {
	return model.FromIcosphere(IcosphereName, ico.cache.Level(ico.level), ico.normalize)
}

func (ico *icosphereSandbox) Focus() (mgl32.Vec3, float32) {
	return mgl32.Vec3{}, 1
}
