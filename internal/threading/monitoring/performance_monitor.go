package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Names accepted by ProfiledFunction.
const (
	SectionPhysics   = "physics"
	SectionBehaviors = "behaviors"
	SectionRender    = "render"
)

// PerformanceMonitor tracks frame timing and per-section costs of the sandbox
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Simulation metrics
	physicsTime  atomic.Uint64
	behaviorTime atomic.Uint64
	renderTime   atomic.Uint64

	creatures atomic.Int32
	disturbed atomic.Int32

	// Statistics
	mutex        sync.RWMutex
	avgFrameTime float64
	totalFrame   uint64
	startTime    time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime: time.Now(),
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	frameTime := uint64(time.Since(ft.startTime).Nanoseconds())
	ft.monitor.frameTime.Store(frameTime)
	count := ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.totalFrame += frameTime
	ft.monitor.avgFrameTime = float64(ft.monitor.totalFrame) / float64(count)
	ft.monitor.mutex.Unlock()
}

// UpdatePopulation records how many creatures exist and how many are spooked.
func (pm *PerformanceMonitor) UpdatePopulation(creatures, disturbed int) {
	pm.creatures.Store(int32(creatures))
	pm.disturbed.Store(int32(disturbed))
}

// SandboxMetrics is a snapshot of the monitor
type SandboxMetrics struct {
	Frames       uint64
	TickRate     float64 // achievable ticks per second for the last frame
	AvgFrameTime time.Duration
	PhysicsTime  time.Duration
	BehaviorTime time.Duration
	RenderTime   time.Duration
	Creatures    int
	Disturbed    int
	MemoryUsedMB uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() SandboxMetrics {
	pm.mutex.RLock()
	avg := pm.avgFrameTime
	pm.mutex.RUnlock()

	frameTime := pm.frameTime.Load()
	rate := 0.0
	if frameTime > 0 {
		rate = 1000000000.0 / float64(frameTime) // Convert nanoseconds to ticks per second
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return SandboxMetrics{
		Frames:       pm.frameCount.Load(),
		TickRate:     rate,
		AvgFrameTime: time.Duration(avg),
		PhysicsTime:  time.Duration(pm.physicsTime.Load()),
		BehaviorTime: time.Duration(pm.behaviorTime.Load()),
		RenderTime:   time.Duration(pm.renderTime.Load()),
		Creatures:    int(pm.creatures.Load()),
		Disturbed:    int(pm.disturbed.Load()),
		MemoryUsedMB: memStats.Alloc / 1024 / 1024,
	}
}

// Uptime returns the time since creation or the last Reset.
func (pm *PerformanceMonitor) Uptime() time.Duration {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return time.Since(pm.startTime)
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.physicsTime.Store(0)
	pm.behaviorTime.Store(0)
	pm.renderTime.Store(0)
	pm.creatures.Store(0)
	pm.disturbed.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.totalFrame = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	// Store timing based on function name
	switch name {
	case SectionPhysics:
		pm.physicsTime.Store(uint64(duration.Nanoseconds()))
	case SectionBehaviors:
		pm.behaviorTime.Store(uint64(duration.Nanoseconds()))
	case SectionRender:
		pm.renderTime.Store(uint64(duration.Nanoseconds()))
	}

	return duration
}
