// Package profiler tracks frame rate and memory statistics for performance
// monitoring, combining Go runtime stats with the native library's own frame
// timing when a window exists.
package profiler

import (
	"log"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Profiler tracks frame rate and memory statistics.
// Outputs stats to the log at a configurable interval. Drive it from the
// frame loop; it is not safe for concurrent use.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: loop FPS, the native library's FPS and frame time
// (when a window exists), heap usage, allocation rate, and GC count.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc: bytes of live heap objects. TotalAlloc: cumulative heap bytes,
	// increases forever and tracks churn.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// The native library measures the frame on its side of the draw pass;
	// comparing its FPS with the loop FPS shows how much time the Go side
	// adds per frame.
	if rl.IsWindowReady() {
		log.Printf("[Profiler] FPS: %.2f | Native FPS: %d | Native frame: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
			fps, rl.GetFPS(), rl.GetFrameTime()*1000, allocMB, allocRateMB, p.memStats.NumGC)
	} else {
		log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
			fps, allocMB, allocRateMB, p.memStats.NumGC)
	}

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
