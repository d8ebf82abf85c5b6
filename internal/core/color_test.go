package core

import "testing"

func TestColorNamesRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", c.String(), got, ok, c)
		}
	}
}

func TestParseColorLenient(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"Bright_Red", ColorBrightRed},
		{" cyan ", ColorCyan},
		{"bright white", ColorBrightWhite},
		{"grey", ColorGray},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}

	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor accepted an unknown name")
	}
	if Color(200).String() != "unknown" {
		t.Error("out-of-range color should print as unknown")
	}
}
