package utils

import "testing"

func TestFormatRupee(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{1234, "₹1,234"},
		{1234567, "₹12,34,567"},
		{123456789, "₹12,34,56,789"},
		{1234.5, "₹1,234.50"},
		{-1234567, "-₹12,34,567"},
	}
	for _, tc := range cases {
		if got := FormatRupee(tc.amount); got != tc.want {
			t.Errorf("FormatRupee(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := Truncate("সিট-১২৩", 5); got != "সিট-১" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate = %q", got)
	}
}
