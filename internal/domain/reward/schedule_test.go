package reward

import (
	"math"
	"testing"
)

func TestRateDefaultSchedule(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{0, 0.10},
		{1, 0.25},
		{2, 0.40},
		{3, 0.55},
		{4, 0.70},
		{5, 0.85},
		{6, 0.85},
		{100, 0.85},
	}
	for _, tc := range cases {
		got := Rate(tc.level, nil)
		if got != tc.want {
			t.Fatalf("Rate(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestRateUnknownLevelFallsBack(t *testing.T) {
	// a level outside both the overrides and the built-in schedule gets
	// the base rate rather than an error
	if got := Rate(-1, map[int]float64{0: 0.12, 3: 0.60}); got != BaseRate {
		t.Fatalf("Rate(-1) = %v, want base rate %v", got, BaseRate)
	}
}

func TestRateOverridesTakePrecedence(t *testing.T) {
	overrides := map[int]float64{1: 0.30}

	if got := Rate(1, overrides); got != 0.30 {
		t.Fatalf("Rate(1) with override = %v, want 0.30", got)
	}
	// levels without an override keep the built-in schedule
	if got := Rate(2, overrides); got != 0.40 {
		t.Fatalf("Rate(2) with override map = %v, want schedule rate 0.40", got)
	}
}

func TestRateMaxLevelBeatsOverrideGap(t *testing.T) {
	overrides := map[int]float64{5: 0.90}

	if got := Rate(5, overrides); got != 0.90 {
		t.Fatalf("Rate(5) with override = %v, want 0.90", got)
	}
	if got := Rate(7, overrides); got != MaxRate {
		t.Fatalf("Rate(7) = %v, want max rate %v", got, MaxRate)
	}
}

func TestDiscloseNeverExceedsTrueValue(t *testing.T) {
	values := []float64{0.01, 0.99, 1, 10, 33.33, 100, 12345.67}
	for _, v := range values {
		for level := 0; level <= 10; level++ {
			d := Disclose(v, level, nil)
			if d > v {
				t.Fatalf("Disclose(%v, %d) = %v exceeds true value", v, level, d)
			}
			if d < 0 {
				t.Fatalf("Disclose(%v, %d) = %v is negative", v, level, d)
			}
		}
	}
}

func TestDiscloseRoundsToCents(t *testing.T) {
	cases := []struct {
		value float64
		level int
		want  float64
	}{
		{100, 1, 25},
		{100, 5, 85},
		{33.33, 0, 3.33},  // 3.333 rounds down
		{33.35, 1, 8.34},  // 8.3375 rounds up
		{0.01, 0, 0},      // 0.001 rounds to zero
		{9.99, 2, 4},      // 3.996 rounds to 4.00
	}
	for _, tc := range cases {
		got := Disclose(tc.value, tc.level, nil)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Disclose(%v, %d) = %v, want %v", tc.value, tc.level, got, tc.want)
		}
	}
}

func TestDiscloseIsDeterministic(t *testing.T) {
	first := Disclose(57.89, 3, nil)
	for i := 0; i < 100; i++ {
		if got := Disclose(57.89, 3, nil); got != first {
			t.Fatalf("Disclose is not deterministic: %v != %v", got, first)
		}
	}
}
