package confidence

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNormalizeInRangeIsIdentity(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		if got := Normalize(x); got != x {
			t.Fatalf("Normalize(%v) = %v, want %v", x, got, x)
		}
		want := fmt.Sprintf("%d%%", int(math.Round(x*100)))
		if got := FormatPercent(x); got != want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", x, got, want)
		}
	}
}

func TestNormalizeNonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Normalize(x); got != 0 {
			t.Errorf("Normalize(%v) = %v, want 0", x, got)
		}
		if got := FormatPercent(x); got != "0%" {
			t.Errorf("FormatPercent(%v) = %q, want \"0%%\"", x, got)
		}
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.0001, 0},
		{-5, 0},
		{-math.MaxFloat64, 0},
		{1.0001, 1},
		{42, 1},
		{math.MaxFloat64, 1},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		if got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize not idempotent for %v: %v then %v", tt.in, got, again)
		}
	}
}

func TestFormatPercentRounding(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{0.004, "0%"},
		{0.005, "1%"}, // half rounds up
		{0.125, "13%"},
		{0.5, "50%"},
		{0.999, "100%"},
		{1, "100%"},
		{1.7, "100%"},
		{-0.3, "0%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	b := New(0.5, "")
	if b.Label != DefaultLabel {
		t.Errorf("Label = %q, want %q", b.Label, DefaultLabel)
	}
	if b.Value != 0.5 || b.Percent != "50%" {
		t.Errorf("New(0.5) = %+v", b)
	}
	if got := b.String(); got != "Confidence: 50%" {
		t.Errorf("String() = %q", got)
	}

	b = New(math.NaN(), "Authorship")
	if b.Value != 0 || b.Percent != "0%" || b.Label != "Authorship" {
		t.Errorf("New(NaN, Authorship) = %+v", b)
	}
}

func TestMeets(t *testing.T) {
	b := New(0.65, "")
	if !b.Meets(0.65) {
		t.Error("0.65 should meet threshold 0.65")
	}
	if b.Meets(0.7) {
		t.Error("0.65 should not meet threshold 0.7")
	}
	if !b.Meets(math.NaN()) {
		t.Error("NaN threshold normalizes to 0 and is always met")
	}
	if !New(2, "").Meets(5) {
		t.Error("clamped 1 should meet clamped threshold 1")
	}
}

func TestViewContainsLabelAndPercent(t *testing.T) {
	for _, v := range []float64{0.1, 0.5, 0.9} {
		out := New(v, "Score").View()
		if !strings.Contains(out, "Score:") {
			t.Errorf("View() for %v missing label: %q", v, out)
		}
		if !strings.Contains(out, FormatPercent(v)) {
			t.Errorf("View() for %v missing percent: %q", v, out)
		}
	}
}
