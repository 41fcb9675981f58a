package common

import (
	"math"
	"testing"
)

func TestLerpVecClampsT(t *testing.T) {
	a := V(0, 0)
	b := V(10, -4)

	cases := []struct {
		name string
		t    float64
		want Vec2
	}{
		{"start", 0, a},
		{"mid", 0.5, V(5, -2)},
		{"end", 1, b},
		{"before", -1, a},
		{"past", 2.5, b},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LerpVec(a, b, c.t)
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
				t.Fatalf("LerpVec(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestCountdown(t *testing.T) {
	cases := []struct {
		name      string
		remaining float64
		dt        float64
		want      float64
	}{
		{"decays", 1, 0.25, 0.75},
		{"clamps_at_zero", 0.1, 0.5, 0},
		{"already_zero", 0, 0.5, 0},
		{"negative_resets", -3, 0.1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Countdown(c.remaining, c.dt); math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("Countdown(%v, %v) = %v, want %v", c.remaining, c.dt, got, c.want)
			}
		})
	}
}

func TestRandRangeStaysInBounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, 2, 3.5)
		if v < 2 || v > 3.5 {
			t.Fatalf("RandRange produced %v outside [2, 3.5]", v)
		}
	}
	if got := RandRange(rng, 4, 1); got != 4 {
		t.Fatalf("reversed range should yield min, got %v", got)
	}
}
