package tme

// Ramp is a progress value that rises linearly from 0 to 1 over a fixed
// duration. It is advanced from the frame loop with the engine clock, so
// animations stay on the loop's thread.
type Ramp struct {
	duration float64
	start    float64
	running  bool
}

// NewRamp returns a finished ramp of the given duration in seconds.
func NewRamp(duration float64) *Ramp {
	return &Ramp{duration: duration}
}

// Start restarts the ramp at time now.
func (r *Ramp) Start(now float64) {
	r.start = now
	r.running = true
}

// Value returns the progress at time now, in 0..1. A ramp that was never
// started reports 1.
func (r *Ramp) Value(now float64) float32 {
	if !r.running || r.duration <= 0 {
		return 1
	}
	p := (now - r.start) / r.duration
	if p >= 1 {
		r.running = false
		return 1
	}
	if p < 0 {
		return 0
	}
	return float32(p)
}

// Done reports whether the ramp has reached 1 at time now.
func (r *Ramp) Done(now float64) bool {
	return r.Value(now) >= 1
}
