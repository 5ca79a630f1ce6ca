package helper

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{62.499999, 62.5},
		{8.3300000001, 8.33},
		{0.005, 0.01},
		{100, 100},
		{2.084999, 2.08},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatEUR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0,00 €"},
		{8.33, "8,33 €"},
		{62.5, "62,50 €"},
		{1234.56, "1.234,56 €"},
		{1000000, "1.000.000,00 €"},
		{-45.6, "-45,60 €"},
	}
	for _, c := range cases {
		if got := FormatEUR(c.in); got != c.want {
			t.Errorf("FormatEUR(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
