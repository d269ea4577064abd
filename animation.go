package reel

import "github.com/lucasb-eyer/go-colorful"

// playLevel is the pause debounce ceiling. Levels run 0 (paused) through 2
// (fully playing); Pause and Play move one level per call.
const playLevel = 2

// Animation owns an ordered list of scenes and plays them back one at a
// time. An external frame loop calls Update once per frame with the elapsed
// time in seconds; the animation forwards it to the current scene, detects
// completion, fires callbacks, and advances.
//
// A new Animation starts paused. Call [Animation.Play] to start playback.
//
// Animation is not safe for concurrent use; drive it from a single loop.
type Animation struct {
	scenes []*Scene
	cursor int

	// started records whether the current scene's start actions have run
	// since it became current.
	started bool

	paused          int
	pauseAfterScene bool
	loop            bool
}

// NewAnimation creates an empty, paused animation.
func NewAnimation() *Animation {
	return &Animation{
		scenes: make([]*Scene, 0, 16),
	}
}

// Update advances playback by dt seconds. Each call moves the timeline
// through at most one phase, in this order of precedence:
//
//  1. Cursor past the last scene: rewind if looping, otherwise do nothing.
//  2. Paused: do nothing. No time is consumed and no callbacks fire.
//  3. Current scene finished: run its finish actions, advance the cursor,
//     and auto-pause if PauseAfterEveryScene is set. dt is not consumed.
//  4. Current scene not yet started: run its start actions. dt is not
//     consumed; activation and the first tick are distinct calls.
//  5. Otherwise: tick the current scene by dt.
//
// Driving a scene from activation to completion therefore takes several
// calls, which keeps every call O(1) with bounded side effects.
func (a *Animation) Update(dt float64) {
	if a.cursor >= len(a.scenes) {
		if a.loop {
			a.Reset()
		}
		return
	}

	if a.Paused() {
		return
	}

	current := a.scenes[a.cursor]

	if current.Finished() {
		current.OnFinish()
		a.cursor++
		a.started = false
		if a.pauseAfterScene {
			a.paused = 0
		}
		return
	}

	if !a.started {
		current.OnStart()
		a.started = true
		return
	}

	current.Update(dt)
}

// Reset rewinds playback to the first scene. The pause level is untouched.
func (a *Animation) Reset() {
	a.cursor = 0
	a.started = false
}

// Add appends a prebuilt scene to the timeline and returns it.
//
// Appending rewinds playback to the first scene, even mid-playback.
func (a *Animation) Add(s *Scene) *Scene {
	a.scenes = append(a.scenes, s)
	a.Reset()
	return s
}

// AddDelay appends a plain timed scene with no tick behavior. Useful as a
// beat between interpolations, or as a carrier for start/finish actions.
func (a *Animation) AddDelay(duration float64) *Scene {
	return a.Add(NewScene(duration))
}

// AddMessage appends a one-second scene that posts text to the sink when it
// activates. The message stays up for the sink's default five seconds.
func (a *Animation) AddMessage(sink MessageSink, text string, c colorful.Color) *Scene {
	s := NewScene(1.0)
	s.AddStartMessage(sink, text, c, 5.0)
	return a.Add(s)
}

// AddTween appends an interpolator scene with an explicit start value and
// returns its embedded [Scene] for chaining actions onto it.
func AddTween[T any](a *Animation, target *T, from, to T, duration float64, interp InterpolateFunc[T]) *Scene {
	return a.Add(&NewInterpolatorScene(target, from, to, duration, interp).Scene)
}

// AddTweenTo appends an interpolator scene that captures its start value
// from the target on the first tick after activation (see
// [NewInterpolatorTo]) and returns its embedded [Scene] for chaining.
func AddTweenTo[T any](a *Animation, target *T, to T, duration float64, interp InterpolateFunc[T]) *Scene {
	return a.Add(&NewInterpolatorTo(target, to, duration, interp).Scene)
}

// Paused reports whether playback is paused (pause level 0).
func (a *Animation) Paused() bool {
	return a.paused == 0
}

// Pause lowers the pause level by one, but only while the caller's
// pause-toggle hold signal is false. Callers running under a frame loop pass
// whether the toggle key is currently held; the guard turns a key held
// across many frames into a single effective transition. Two calls take a
// fully playing animation to paused.
func (a *Animation) Pause(toggleHeld bool) {
	if a.paused > 0 && !toggleHeld {
		a.paused--
	}
}

// Play raises the pause level by one, up to the ceiling of 2.
func (a *Animation) Play() {
	if a.paused < playLevel {
		a.paused++
	}
}

// PauseAfterEveryScene makes playback pause itself each time a scene
// completes. Enabling it pauses immediately; playback then waits for
// [Animation.Play].
func (a *Animation) PauseAfterEveryScene(pause bool) {
	a.pauseAfterScene = pause
	if pause {
		a.paused = 0
	}
}

// SetLoop controls whether reaching the end of the timeline rewinds to the
// first scene instead of stopping.
func (a *Animation) SetLoop(loop bool) {
	a.loop = loop
}

// Looping reports whether the timeline loops.
func (a *Animation) Looping() bool {
	return a.loop
}

// Len returns the number of scenes on the timeline.
func (a *Animation) Len() int {
	return len(a.scenes)
}

// Index returns the cursor position: the index of the current scene, or
// [Animation.Len] when playback has run past the last scene.
func (a *Animation) Index() int {
	return a.cursor
}

// Current returns the scene at the cursor, or nil when playback has run past
// the last scene.
func (a *Animation) Current() *Scene {
	if a.cursor >= len(a.scenes) {
		return nil
	}
	return a.scenes[a.cursor]
}
