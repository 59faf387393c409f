package core

import (
	"math"
	"testing"
)

func TestLumaAddScale(t *testing.T) {
	a := Luma(1.5)
	b := Luma(2.25)

	if got := a.Add(b); got != Luma(3.75) {
		t.Errorf("Expected 3.75, got %v", got)
	}

	if got := a.Scale(2.0); got != Luma(3.0) {
		t.Errorf("Expected 3.0, got %v", got)
	}
}

func TestLumaZeroValue(t *testing.T) {
	// The zero value must be the additive identity
	var zero Luma
	v := Luma(0.5)

	if got := v.Add(zero); got != v {
		t.Errorf("Adding zero changed the value: %v != %v", got, v)
	}
}

func TestRGBAdd(t *testing.T) {
	c1 := NewRGB(0.1, 0.2, 0.3)
	c2 := NewRGB(0.4, 0.5, 0.6)

	sum := c1.Add(c2)
	expected := RGB{0.5, 0.7, 0.9}

	if math.Abs(sum.R-expected.R) > 1e-12 ||
		math.Abs(sum.G-expected.G) > 1e-12 ||
		math.Abs(sum.B-expected.B) > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, sum)
	}
}

func TestRGBScale(t *testing.T) {
	c := NewRGB(0.2, 0.4, 0.8)
	scaled := c.Scale(0.5)
	expected := RGB{0.1, 0.2, 0.4}

	if scaled != expected {
		t.Errorf("Expected %v, got %v", expected, scaled)
	}
}

func TestRGBZeroValue(t *testing.T) {
	var zero RGB
	c := NewRGB(0.3, 0.6, 0.9)

	if got := c.Add(zero); got != c {
		t.Errorf("Adding zero changed the value: %v != %v", got, c)
	}
}

func TestRGBLuminance(t *testing.T) {
	// White has luminance 1, black has luminance 0
	if got := NewRGB(1, 1, 1).Luminance(); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected luminance 1.0 for white, got %v", got)
	}
	if got := NewRGB(0, 0, 0).Luminance(); got != 0 {
		t.Errorf("Expected luminance 0 for black, got %v", got)
	}

	// Green contributes more than red, red more than blue
	r := NewRGB(1, 0, 0).Luminance()
	g := NewRGB(0, 1, 0).Luminance()
	b := NewRGB(0, 0, 1).Luminance()
	if !(g > r && r > b) {
		t.Errorf("Expected luminance ordering g > r > b, got r=%v g=%v b=%v", r, g, b)
	}
}

func TestRGBClamp(t *testing.T) {
	c := NewRGB(-0.5, 0.5, 1.5)
	clamped := c.Clamp(0, 1)
	expected := RGB{0, 0.5, 1}

	if clamped != expected {
		t.Errorf("Expected %v, got %v", expected, clamped)
	}
}

func TestRGBGammaCorrect(t *testing.T) {
	c := NewRGB(0.25, 0.25, 0.25)
	corrected := c.GammaCorrect(2.0)

	// 0.25^(1/2) = 0.5
	if math.Abs(corrected.R-0.5) > 1e-12 {
		t.Errorf("Expected 0.5, got %v", corrected.R)
	}
}

func TestRenderFuncAdapter(t *testing.T) {
	fn := RenderFunc[Luma](func(x, y float64) Luma {
		return Luma(x + y)
	})

	if got := fn.Evaluate(1.5, 2.5); got != Luma(4.0) {
		t.Errorf("Expected 4.0, got %v", got)
	}
}
