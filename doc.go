// Package reel is a frame-driven animation sequencer.
//
// Reel composes a timeline out of discrete, timed scenes (typically linear
// interpolations of some value from a start to an end state over a duration)
// and plays them back in order, one scene at a time, with per-scene start and
// finish callbacks, pause control, and optional looping.
//
// # Quick start
//
// Build an [Animation], queue scenes on it, and call [Animation.Update] once
// per frame with the elapsed time in seconds:
//
//	x := 0.0
//	anim := reel.NewAnimation()
//	reel.AddTween(anim, &x, 0, 320, 1.5, reel.Eased(ease.OutQuad))
//	anim.AddDelay(0.5)
//	reel.AddTweenTo(anim, &x, 0, 1.5, reel.Lerp)
//	anim.SetLoop(true)
//	anim.Play()
//
//	// each frame:
//	anim.Update(dt)
//
// A single Update call advances at most one phase of the current scene
// (activate, tick, or complete), so callbacks are always ordered: start
// actions run before any interpolation tick, and finish actions run exactly
// once before the cursor moves on.
//
// # Scenes
//
// A [Scene] is the timed unit: it tracks elapsed time against a duration and
// carries two ordered callback lists. [InterpolatorScene] specializes it to
// drive a caller-owned value through an [InterpolateFunc]. Built-in
// interpolators cover float64 ([Lerp], [Eased], [Curve]), [Vec2]
// ([LerpVec2]), and colors ([BlendRGB], [BlendHCL]). Any function with the
// right shape works, so easing can come from gween/ease, fogleman/ease, or
// your own curve.
//
// Interpolator scenes write through a pointer the caller owns. That storage
// must outlive the Animation; reel performs no liveness checks.
//
// # Pausing
//
// Pause state is a three-level debounce rather than a boolean: [Animation.Play]
// raises the level (capped at 2) and [Animation.Pause] lowers it, but only
// while the caller-supplied toggle-hold signal is false. Playback is paused
// at level 0. Calling Play every frame a key is held and Pause every frame it
// is not damps a held key into a single effective transition. A new Animation
// starts paused.
package reel
