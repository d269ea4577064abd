package reel

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

// Lerp linearly interpolates between two float64 values. It extrapolates
// outside [0, 1], which keeps the final past-the-end tick of a scene smooth.
func Lerp(t, from, to float64) float64 {
	return from + (to-from)*t
}

// LerpVec2 linearly interpolates between two points.
func LerpVec2(t float64, from, to Vec2) Vec2 {
	return Vec2{
		X: Lerp(t, from.X, to.X),
		Y: Lerp(t, from.Y, to.Y),
	}
}

// Eased adapts a gween/ease tween function into an [InterpolateFunc].
// Progress is clamped to [0, 1] before the easing function is applied, since
// easing curves are only meaningful inside that range.
func Eased(fn ease.TweenFunc) InterpolateFunc[float64] {
	return func(t, from, to float64) float64 {
		return float64(fn(float32(clamp01(t)), float32(from), float32(to-from), 1))
	}
}

// Curve adapts a plain normalized easing curve (such as the functions in
// github.com/fogleman/ease) into an [InterpolateFunc]. The curve receives
// progress clamped to [0, 1] and its output scales the from-to span.
func Curve(fn func(float64) float64) InterpolateFunc[float64] {
	return func(t, from, to float64) float64 {
		return from + (to-from)*fn(clamp01(t))
	}
}

// BlendRGB interpolates between two colors in RGB space. Progress is clamped
// to [0, 1].
func BlendRGB(t float64, from, to colorful.Color) colorful.Color {
	return from.BlendRgb(to, clamp01(t))
}

// BlendHCL interpolates between two colors in HCL space, which blends
// perceptually without the muddy midpoints RGB blending produces. Progress
// is clamped to [0, 1].
func BlendHCL(t float64, from, to colorful.Color) colorful.Color {
	return from.BlendHcl(to, clamp01(t)).Clamped()
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
