package utils

import "testing"

func TestParseLeadingInt(t *testing.T) {
	cases := map[string]int{
		"3":       3,
		" 12 ":    12,
		"3.5":     3,
		"8 hours": 8,
		"-2":      -2,
		"abc":     0,
		"":        0,
		"+":       0,
	}
	for in, want := range cases {
		if got := ParseLeadingInt(in); got != want {
			t.Fatalf("ParseLeadingInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseLeadingFloat(t *testing.T) {
	cases := map[string]float64{
		"60":      60,
		"60.50":   60.5,
		"60.5abc": 60.5,
		"1500.":   1500,
		".5":      0.5,
		"x1":      0,
		".":       0,
	}
	for in, want := range cases {
		if got := ParseLeadingFloat(in); got != want {
			t.Fatalf("ParseLeadingFloat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatRupee(1500); got != "₹1500" {
		t.Fatalf("FormatRupee = %q", got)
	}
	if got := FormatRupeeAmount(60); got != "₹60" {
		t.Fatalf("FormatRupeeAmount = %q", got)
	}
	if got := FormatRupeeAmount(60.5); got != "₹60.50" {
		t.Fatalf("FormatRupeeAmount = %q", got)
	}
	if got := FormatRupeeText(150); got != "Rs 150" {
		t.Fatalf("FormatRupeeText = %q", got)
	}
	if got := DisplayDate("2025-03-09"); got != "9/3/2025" {
		t.Fatalf("DisplayDate = %q", got)
	}
	if got := DisplayDate("soon"); got != "soon" {
		t.Fatalf("DisplayDate should pass through, got %q", got)
	}
	if HoursLabel(1) != "1 hour" || HoursLabel(3) != "3 hours" {
		t.Fatalf("HoursLabel wrong")
	}
}
