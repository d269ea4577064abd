package reel

import (
	"math"
	"testing"

	fease "github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

func TestInterpolatorExplicitStart(t *testing.T) {
	v := 99.0 // current value is irrelevant with an explicit start
	s := NewInterpolatorScene(&v, 0, 10, 1.0, Lerp)

	s.OnStart()
	s.Update(0.5)

	if math.Abs(v-5) > 1e-9 {
		t.Errorf("v = %f at halfway, want 5", v)
	}

	s.Update(0.25)
	if math.Abs(v-7.5) > 1e-9 {
		t.Errorf("v = %f at 0.75, want 7.5", v)
	}
}

func TestInterpolatorLazyStartCapture(t *testing.T) {
	v := 3.0
	s := NewInterpolatorTo(&v, 10, 1.0, Lerp)

	// The scene sat queued while the target moved elsewhere.
	v = 7.0

	s.OnStart()

	// First tick captures the current value and mutates nothing.
	s.Update(0.25)
	if v != 7.0 {
		t.Fatalf("v = %f after capture tick, want unchanged 7", v)
	}

	// Second tick interpolates from the captured value.
	s.Update(0.25)
	want := 7.0 + (10.0-7.0)*0.5
	if math.Abs(v-want) > 1e-9 {
		t.Errorf("v = %f at halfway, want %f", v, want)
	}
}

func TestInterpolatorLazyCaptureHappensOncePerConstruction(t *testing.T) {
	v := 0.0
	s := NewInterpolatorTo(&v, 10, 1.0, Lerp)

	s.OnStart()
	s.Update(0.5) // capture
	s.Update(0.5) // interpolate: v = 10 at t == 1

	if math.Abs(v-10) > 1e-9 {
		t.Fatalf("v = %f at t == 1, want 10", v)
	}

	// After the capture tick, every tick interpolates, including the first
	// ones of a replay.
	v = 2.0
	s.OnStart()
	s.Update(0.5)
	if math.Abs(v-5) > 1e-9 {
		t.Errorf("v = %f on replay halfway, want 5 (no recapture)", v)
	}
}

func TestInterpolatorTicksPastDuration(t *testing.T) {
	v := 0.0
	s := NewInterpolatorScene(&v, 0, 10, 1.0, Lerp)

	s.OnStart()
	s.Update(1.5)

	// Lerp extrapolates; the point is that an over-1 progress tick is safe.
	if math.Abs(v-15) > 1e-9 {
		t.Errorf("v = %f at t = 1.5, want 15", v)
	}
	if !s.Finished() {
		t.Error("scene should be finished past its duration")
	}
}

func TestEasedEndpointsAndClamp(t *testing.T) {
	f := Eased(ease.Linear)

	if got := f(0, 2, 6); math.Abs(got-2) > 1e-5 {
		t.Errorf("f(0) = %f, want 2", got)
	}
	if got := f(1, 2, 6); math.Abs(got-6) > 1e-5 {
		t.Errorf("f(1) = %f, want 6", got)
	}
	if got := f(0.5, 2, 6); math.Abs(got-4) > 1e-5 {
		t.Errorf("f(0.5) = %f, want 4", got)
	}
	// Progress past 1 clamps to the end value.
	if got := f(1.2, 2, 6); math.Abs(got-6) > 1e-5 {
		t.Errorf("f(1.2) = %f, want 6", got)
	}
}

func TestCurveAdaptsPlainEasing(t *testing.T) {
	f := Curve(fease.InOutQuad)

	if got := f(0, 0, 100); math.Abs(got) > 1e-9 {
		t.Errorf("f(0) = %f, want 0", got)
	}
	if got := f(1, 0, 100); math.Abs(got-100) > 1e-9 {
		t.Errorf("f(1) = %f, want 100", got)
	}
	// InOutQuad is symmetric: exactly half the span at the midpoint.
	if got := f(0.5, 0, 100); math.Abs(got-50) > 1e-9 {
		t.Errorf("f(0.5) = %f, want 50", got)
	}
	if got := f(2, 0, 100); math.Abs(got-100) > 1e-9 {
		t.Errorf("f(2) = %f, want 100 (clamped)", got)
	}
}

func TestLerpVec2(t *testing.T) {
	from := Vec2{X: 0, Y: 10}
	to := Vec2{X: 100, Y: 20}

	got := LerpVec2(0.5, from, to)
	if math.Abs(got.X-50) > 1e-9 || math.Abs(got.Y-15) > 1e-9 {
		t.Errorf("LerpVec2(0.5) = %+v, want {50 15}", got)
	}
}

func TestBlendRGBEndpoints(t *testing.T) {
	red := colorful.Color{R: 1, G: 0, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}

	if got := BlendRGB(0, red, blue); !colorsClose(got, red) {
		t.Errorf("BlendRGB(0) = %+v, want red", got)
	}
	if got := BlendRGB(1, red, blue); !colorsClose(got, blue) {
		t.Errorf("BlendRGB(1) = %+v, want blue", got)
	}
	if got := BlendRGB(2, red, blue); !colorsClose(got, blue) {
		t.Errorf("BlendRGB(2) = %+v, want blue (clamped)", got)
	}

	mid := BlendRGB(0.5, red, blue)
	if math.Abs(mid.R-0.5) > 1e-9 || math.Abs(mid.B-0.5) > 1e-9 {
		t.Errorf("BlendRGB(0.5) = %+v, want R and B at 0.5", mid)
	}
}

func TestBlendHCLEndpoints(t *testing.T) {
	red := colorful.Color{R: 1, G: 0, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}

	if got := BlendHCL(0, red, blue); !colorsClose(got, red) {
		t.Errorf("BlendHCL(0) = %+v, want red", got)
	}
	if got := BlendHCL(1, red, blue); !colorsClose(got, blue) {
		t.Errorf("BlendHCL(1) = %+v, want blue", got)
	}
}

func colorsClose(a, b colorful.Color) bool {
	const tol = 1e-3
	return math.Abs(a.R-b.R) < tol &&
		math.Abs(a.G-b.G) < tol &&
		math.Abs(a.B-b.B) < tol
}
