package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{25000, "25.000 ₫"},
		{150000, "150.000 ₫"},
		{1234567, "1.234.567 ₫"},
		{99999.6, "100.000 ₫"},
		{-50000, "-50.000 ₫"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
