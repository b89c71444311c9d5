package sysinfo

import "testing"

func TestUsageBarASCII(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "[          ]"},
		{4, "[          ]"},
		{5, "[=         ]"},
		{50, "[=====     ]"},
		{87, "[========= ]"},
		{100, "[==========]"},
		{130, "[==========]"},
		{-5, "[          ]"},
	}
	for _, tt := range tests {
		if got := usageBarASCII(tt.percent); got != tt.want {
			t.Errorf("usageBarASCII(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestUsageBarPretty(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, ""},
		{10, ""},
		{50, ""},
		{100, ""},
	}
	for _, tt := range tests {
		got := usageBarPretty(tt.percent)
		if got != tt.want {
			t.Errorf("usageBarPretty(%v) = %q, want %q", tt.percent, got, tt.want)
		}
		// Fixed footprint: two caps around nine rail glyphs.
		if n := len([]rune(got)); n != 11 {
			t.Errorf("usageBarPretty(%v) has %d glyphs, want 11", tt.percent, n)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{3599, "59m"},
		{3600, "1h 0m"},
		{5400, "1h 30m"},
		{93784, "26h 3m"},
	}
	for _, tt := range tests {
		if got := FormatUptime(tt.seconds); got != tt.want {
			t.Errorf("FormatUptime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"zsh", "Zsh"},
		{"Fish", "Fish"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
