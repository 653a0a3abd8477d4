package pace

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestParsePace(t *testing.T) {
	tests := []struct {
		text     string
		wantPace float64
		wantKind ErrorKind
	}{
		{"630", 6.5, 0},
		{"500", 5.0, 0},
		{"445", 4.75, 0},
		{"1230", 12.5, 0},
		{"059", 59.0 / 60, 0},
		{"100", 1.0, 0},
		{" 630 ", 6.5, 0},
		{"000", 0, KindZeroPace},
		{"0000", 0, KindZeroPace},
		{"670", 0, KindInvalidSeconds},
		{"060", 0, KindInvalidSeconds},
		{"1299", 0, KindInvalidSeconds},
		{"63", 0, KindInvalidFormat},
		{"", 0, KindInvalidFormat},
		{"12345", 0, KindInvalidFormat},
		{"6a0", 0, KindInvalidFormat},
		{"6:30", 0, KindInvalidFormat},
		{"-630", 0, KindInvalidFormat},
		{"６３０", 0, KindInvalidFormat}, // full-width digits
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParsePace(tt.text)
			if tt.wantKind != 0 {
				if err == nil {
					t.Fatalf("ParsePace(%q) = %v, want %v error", tt.text, got, tt.wantKind)
				}
				if KindOf(err) != tt.wantKind {
					t.Errorf("ParsePace(%q) error kind = %v, want %v", tt.text, KindOf(err), tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePace(%q) unexpected error: %v", tt.text, err)
			}
			if math.Abs(got-tt.wantPace) > 1e-12 {
				t.Errorf("ParsePace(%q) = %v, want %v", tt.text, got, tt.wantPace)
			}
		})
	}
}

func TestParsePace_AllValidClockValues(t *testing.T) {
	for m := 0; m < 100; m++ {
		for s := 0; s < 60; s++ {
			if m == 0 && s == 0 {
				continue
			}
			text := fmt.Sprintf("%d%02d", m, s)
			got, err := ParsePace(text)
			if err != nil {
				t.Fatalf("ParsePace(%q) unexpected error: %v", text, err)
			}
			want := float64(m) + float64(s)/60
			if got != want {
				t.Fatalf("ParsePace(%q) = %v, want %v", text, got, want)
			}
		}
	}
}

func TestParsePace_SecondsAtLeastSixty(t *testing.T) {
	for m := 0; m < 100; m++ {
		for s := 60; s < 100; s++ {
			text := fmt.Sprintf("%d%02d", m, s)
			_, err := ParsePace(text)
			if !errors.Is(err, ErrInvalidSeconds) {
				t.Fatalf("ParsePace(%q) error = %v, want ErrInvalidSeconds", text, err)
			}
		}
	}
}

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		text     string
		wantPace float64
		wantKind ErrorKind
	}{
		{"12", 5.0, 0},
		{"12.0", 5.0, 0},
		{"10", 6.0, 0},
		{"7.5", 8.0, 0},
		{" 15 ", 4.0, 0},
		{"0", 0, KindZeroSpeed},
		{"0.0", 0, KindZeroSpeed},
		{"-0", 0, KindZeroSpeed},
		{"", 0, KindInvalidFormat},
		{"abc", 0, KindInvalidFormat},
		{"12,3", 0, KindInvalidFormat},
		{"-5", 0, KindInvalidFormat},
		{"NaN", 0, KindInvalidFormat},
		{"Inf", 0, KindInvalidFormat},
		{"1e999", 0, KindInvalidFormat},
		{"1e-320", 0, KindInvalidFormat},
		{"1e-300", 0, KindInvalidFormat},
		{"1e-15", 0, KindInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSpeed(tt.text)
			if tt.wantKind != 0 {
				if KindOf(err) != tt.wantKind {
					t.Errorf("ParseSpeed(%q) error = %v, want kind %v", tt.text, err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpeed(%q) unexpected error: %v", tt.text, err)
			}
			if math.Abs(got-tt.wantPace) > 1e-12 {
				t.Errorf("ParseSpeed(%q) = %v, want %v", tt.text, got, tt.wantPace)
			}
		})
	}
}

func TestConversionRoundTrip(t *testing.T) {
	paces := []float64{2.5, 3.0, 4.75, 5.0, 6.5, 7.123, 12.5, 59.0 / 60, 99.98}

	for _, p := range paces {
		speed := PaceToSpeed(p)
		back := SpeedToPace(speed)
		if math.Abs(back-p) > 1e-9 {
			t.Errorf("SpeedToPace(PaceToSpeed(%v)) = %v", p, back)
		}
	}
}

func TestConversion_NonPositive(t *testing.T) {
	if got := PaceToSpeed(0); got != 0 {
		t.Errorf("PaceToSpeed(0) = %v, want 0", got)
	}
	if got := SpeedToPace(-1); got != 0 {
		t.Errorf("SpeedToPace(-1) = %v, want 0", got)
	}
}

func TestValidationError_Is(t *testing.T) {
	_, err := ParsePace("abc")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("pace format error should match ErrInvalidFormat")
	}
	_, err = ParseSpeed("abc")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("speed format error should match ErrInvalidFormat")
	}
	if errors.Is(err, ErrZeroSpeed) {
		t.Errorf("speed format error should not match ErrZeroSpeed")
	}

	wrapped := fmt.Errorf("submit: %w", ErrZeroPace)
	if !errors.Is(wrapped, ErrZeroPace) {
		t.Errorf("wrapped error should match ErrZeroPace")
	}
	if KindOf(errors.New("other")) != 0 {
		t.Errorf("KindOf(non-validation error) should be 0")
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		r    Rounding
		x    float64
		want float64
	}{
		{RoundHalfEven, 12658.5, 12658},
		{RoundHalfEven, 12659.5, 12660},
		{RoundHalfEven, 0.5, 0},
		{RoundHalfEven, 1.4, 1},
		{RoundHalfAway, 12658.5, 12659},
		{RoundHalfAway, 0.5, 1},
		{RoundHalfAway, 1.4, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.r, tt.x), func(t *testing.T) {
			if got := tt.r.Round(tt.x); got != tt.want {
				t.Errorf("Round(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestParseRoundingAndMode(t *testing.T) {
	if r, err := ParseRounding(""); err != nil || r != RoundHalfEven {
		t.Errorf("ParseRounding(\"\") = %v, %v", r, err)
	}
	if r, err := ParseRounding("half_away"); err != nil || r != RoundHalfAway {
		t.Errorf("ParseRounding(half_away) = %v, %v", r, err)
	}
	if _, err := ParseRounding("up"); err == nil {
		t.Error("ParseRounding(up) should fail")
	}

	if m, err := ParseMode("autofill"); err != nil || m != ModeAutoFill {
		t.Errorf("ParseMode(autofill) = %v, %v", m, err)
	}
	if m, err := ParseMode(""); err != nil || m != ModeExclusive {
		t.Errorf("ParseMode(\"\") = %v, %v", m, err)
	}
	if _, err := ParseMode("both"); err == nil {
		t.Error("ParseMode(both) should fail")
	}
}
