package reel

import "github.com/lucasb-eyer/go-colorful"

// minDuration is the smallest effective scene duration. Constructing a scene
// with a non-positive or near-zero duration clamps to this value so progress
// computation never divides by zero.
const minDuration = 1e-4

// Scene is a timed unit on an [Animation] timeline. It tracks elapsed time
// against a fixed duration and carries two ordered callback lists: start
// actions, run when the scene activates, and finish actions, run when it
// completes. Specializations such as [InterpolatorScene] attach per-tick
// behavior through the tick hook.
//
// All Scene operations are total; none of them can fail.
type Scene struct {
	duration float64
	elapsed  float64

	start  []func()
	finish []func()

	// tick runs after each Update accumulates time. Nil for a plain
	// delay scene.
	tick func()
}

// NewScene creates a scene that lasts for the given duration in seconds.
// Durations below minDuration (including zero and negatives) are clamped.
func NewScene(duration float64) *Scene {
	if duration < minDuration {
		duration = minDuration
	}
	return &Scene{duration: duration}
}

// Update advances the scene's clock by dt seconds and runs the per-tick hook.
func (s *Scene) Update(dt float64) {
	s.elapsed += dt
	if s.tick != nil {
		s.tick()
	}
}

// Duration returns the effective (clamped) duration in seconds.
func (s *Scene) Duration() float64 {
	return s.duration
}

// ElapsedTime returns the time accumulated since the scene last (re)started.
func (s *Scene) ElapsedTime() float64 {
	return s.elapsed
}

// ElapsedPercentage returns elapsed time as a fraction of the duration.
// It exceeds 1.0 once the scene has run past its duration; callers truncate
// as needed.
func (s *Scene) ElapsedPercentage() float64 {
	return s.elapsed / s.duration
}

// RemainingTime returns the time left before the scene finishes. It goes
// negative once the scene has run past its duration.
func (s *Scene) RemainingTime() float64 {
	return s.duration - s.elapsed
}

// Finished reports whether the scene has run strictly past its duration.
// A scene sitting exactly at its duration is not finished; it takes one more
// tick to cross the line, which gives interpolators a final past-the-end
// tick before the sequencer detects completion.
func (s *Scene) Finished() bool {
	return s.elapsed > s.duration
}

// OnStart runs the start actions in insertion order, then rewinds the clock.
func (s *Scene) OnStart() {
	for _, f := range s.start {
		f()
	}
	s.elapsed = 0
}

// OnFinish runs the finish actions in insertion order, then rewinds the
// clock so the scene replays cleanly on a looped timeline.
func (s *Scene) OnFinish() {
	for _, f := range s.finish {
		f()
	}
	s.elapsed = 0
}

// AddStartAction appends f to the start actions. Returns s for chaining.
func (s *Scene) AddStartAction(f func()) *Scene {
	s.start = append(s.start, f)
	return s
}

// AddFinishAction appends f to the finish actions. Returns s for chaining.
func (s *Scene) AddFinishAction(f func()) *Scene {
	s.finish = append(s.finish, f)
	return s
}

// AddStartMessage appends a start action that posts text to the sink for the
// given number of seconds when the scene activates. Returns s for chaining.
func (s *Scene) AddStartMessage(sink MessageSink, text string, c colorful.Color, duration float64) *Scene {
	return s.AddStartAction(func() {
		sink.AddMessage(text, c, duration)
	})
}

// AddFinishMessage appends a finish action that posts text to the sink for
// the given number of seconds when the scene completes. Returns s for
// chaining.
func (s *Scene) AddFinishMessage(sink MessageSink, text string, c colorful.Color, duration float64) *Scene {
	return s.AddFinishAction(func() {
		sink.AddMessage(text, c, duration)
	})
}
