package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/giterate/common"
)

// Stats is one reporting window of the profiler.
type Stats struct {
	// FPS is the number of frames per second over the window.
	FPS float64
	// Frames is the number of frames in the window.
	Frames int
	// PrimitivesPerFrame is the mean number of points, lines and triangles drawn per frame.
	PrimitivesPerFrame float64
	// HeapMB is the live heap at the end of the window.
	HeapMB float64
	// AllocRateMB is the heap allocation rate in MB/s.
	AllocRateMB float64
	// GCCount is the cumulative number of collections.
	GCCount uint32
	// MaxPauseUs is the longest GC pause within the window, in microseconds.
	MaxPauseUs uint64
	// SysMB is the memory obtained from the OS.
	SysMB float64
}

// Profiler tracks frame rate, primitive counts and memory statistics.
// Outputs stats to the module logger at a configurable interval.
type Profiler struct {
	frameCount     int
	primitiveCount int
	lastTime       time.Time
	updateInterval time.Duration
	now            func() time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// NewProfiler creates a new Profiler with the specified options applied.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame with the number of primitives the frame drew.
// Logs performance statistics when the update interval has elapsed.
//
// Parameters:
//   - primitives: points + lines + triangles submitted this frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(primitives int) bool {
	p.frameCount++
	p.primitiveCount += primitives
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	// PauseNs is a circular buffer of the last 256 pauses
	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	for i := startIdx; i < gcCount; i++ {
		maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
	}

	p.last = Stats{
		FPS:                float64(p.frameCount) / elapsed.Seconds(),
		Frames:             p.frameCount,
		PrimitivesPerFrame: float64(p.primitiveCount) / float64(p.frameCount),
		HeapMB:             float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:        float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:            gcCount,
		MaxPauseUs:         maxPauseUs,
		SysMB:              float64(p.memStats.Sys) / 1024 / 1024,
	}

	common.Logger().Info("profiler",
		"fps", p.last.FPS,
		"primitives_per_frame", p.last.PrimitivesPerFrame,
		"heap_mb", p.last.HeapMB,
		"alloc_rate_mb_s", p.last.AllocRateMB,
		"gc", gcCount,
		"max_pause_us", maxPauseUs,
		"sys_mb", p.last.SysMB,
	)

	p.frameCount = 0
	p.primitiveCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the statistics of the most recent completed window.
//
// Returns:
//   - Stats: the last reported window, zero before the first report
func (p *Profiler) Last() Stats {
	return p.last
}
