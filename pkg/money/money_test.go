package money

import "testing"

func TestParseToCentavos(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"15,20", 1520, true},
		{"15.20", 1520, true},
		{"1", 100, true},
		{"1.0", 100, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // arredondamento da terceira casa
		{"1.004", 100, true},
		{" 2,50 ", 250, true},
		{"5000", 500000, true},
		{"0", 0, false},
		{"0,00", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"1,2,3", 0, false},
		{"", 0, false},
		{"  ", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseToCentavos(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q: expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q: expected error, got %d", tc.in, got)
		}
	}
}

func TestFormatCentavos(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{1520, "15,20"},
		{152000, "1.520,00"},
		{500000, "5.000,00"},
		{1, "0,01"},
		{0, "0,00"},
		{-2550, "-25,50"},
		{123456789, "1.234.567,89"},
	}
	for _, tc := range cases {
		if got := FormatCentavos(tc.in); got != tc.out {
			t.Fatalf("FormatCentavos(%d) = %q, expected %q", tc.in, got, tc.out)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	if got := FormatBRL(1520); got != "R$ 15,20" {
		t.Fatalf("FormatBRL(1520) = %q", got)
	}
}
