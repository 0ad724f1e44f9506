package mesh

import (
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/go-gl/mathgl/mgl32"
)

// IcosphereMesh is one immutable cache entry: the positions and indices of a single level.
type IcosphereMesh struct {
	level    int
	vertices []mgl32.Vec3
	indices  []uint32
}

// Level returns the subdivision level this mesh was generated for.
func (m *IcosphereMesh) Level() int { return m.level }

// Vertices returns the un-normalized positions. Callers must not modify the slice.
func (m *IcosphereMesh) Vertices() []mgl32.Vec3 { return m.vertices }

// Indices returns the triangle indices. Callers must not modify the slice.
func (m *IcosphereMesh) Indices() []uint32 { return m.indices }

// NumVerts returns the vertex count.
func (m *IcosphereMesh) NumVerts() uint32 { return uint32(len(m.vertices)) }

// NumInds returns the index count.
func (m *IcosphereMesh) NumInds() uint32 { return uint32(len(m.indices)) }

// IcosphereCache lazily builds and retains one IcosphereMesh per subdivision level.
// Entries are built on first request from level-0 data, never rebuilt and never evicted.
// An IcosphereCache is owned by a single goroutine; it does no locking.
type IcosphereCache struct {
	levels [MaxIcosphereLevel + 1]*IcosphereMesh
}

// NewIcosphereCache creates an empty cache.
//
// Returns:
//   - *IcosphereCache: a cache with no levels built
func NewIcosphereCache() *IcosphereCache {
	return &IcosphereCache{}
}

// Built reports whether the given level has already been generated.
//
// Parameters:
//   - level: subdivision level in [0, MaxIcosphereLevel]
//
// Returns:
//   - bool: true if Level(level) will return without generating
func (c *IcosphereCache) Built(level int) bool {
	requireCacheLevel(level)
	return c.levels[level] != nil
}

// Level returns the mesh for the given level, generating it on the first call.
// Repeated calls return the same entry.
//
// Parameters:
//   - level: subdivision level in [0, MaxIcosphereLevel]
//
// Returns:
//   - *IcosphereMesh: the cached mesh
func (c *IcosphereCache) Level(level int) *IcosphereMesh {
	requireCacheLevel(level)
	if m := c.levels[level]; m != nil {
		return m
	}

	nv, ni := IcosphereSizes(level)
	m := &IcosphereMesh{
		level:    level,
		vertices: make([]mgl32.Vec3, nv),
		indices:  make([]uint32, ni),
	}
	GenerateIcosphere(level, m.vertices, m.indices)
	c.levels[level] = m

	common.Logger().Debug("icosphere level built", "level", level, "vertices", nv, "indices", ni)
	return m
}

func requireCacheLevel(level int) {
	common.Require(level >= 0 && level <= MaxIcosphereLevel, "mesh.IcosphereCache",
		"level %d outside [0, %d]", level, MaxIcosphereLevel)
}
