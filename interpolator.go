package reel

// InterpolateFunc returns the value a fraction t of the way from from to to.
// It must be defined for t in a neighborhood of [0, 1]: the sequencer lets a
// scene run one tick past its duration before detecting completion, so t can
// land slightly above 1 and the function must not misbehave there. The
// built-in constructors in this package either extrapolate linearly or clamp.
type InterpolateFunc[T any] func(t float64, from, to T) T

// InterpolatorScene is a [Scene] that drives a caller-owned value from a
// start to an end state through an [InterpolateFunc] as its clock advances.
//
// The target pointer is not owned by the scene. The storage it refers to must
// outlive the [Animation] holding the scene; no liveness check is performed.
type InterpolatorScene[T any] struct {
	Scene

	target *T
	from   T
	to     T
	interp InterpolateFunc[T]

	// captureFrom defers the start value to the first tick after
	// activation, so a scene queued ahead of playback starts from
	// wherever the target actually is when its turn comes.
	captureFrom bool
}

// NewInterpolatorScene creates an interpolator scene with an explicit start
// value. Each tick sets *target to interp(progress, from, to).
func NewInterpolatorScene[T any](target *T, from, to T, duration float64, interp InterpolateFunc[T]) *InterpolatorScene[T] {
	s := &InterpolatorScene[T]{
		Scene:  *NewScene(duration),
		target: target,
		from:   from,
		to:     to,
		interp: interp,
	}
	s.tick = s.run
	return s
}

// NewInterpolatorTo creates an interpolator scene that infers its start
// value. The current target value is recorded as a placeholder, but the real
// start is captured on the first tick after the scene activates. That first
// tick does not mutate the target.
func NewInterpolatorTo[T any](target *T, to T, duration float64, interp InterpolateFunc[T]) *InterpolatorScene[T] {
	s := NewInterpolatorScene(target, *target, to, duration, interp)
	s.captureFrom = true
	return s
}

func (s *InterpolatorScene[T]) run() {
	t := s.ElapsedPercentage()

	if s.captureFrom {
		s.from = *s.target
		s.captureFrom = false
		return
	}

	*s.target = s.interp(t, s.from, s.to)
}
