package sysinfo

import (
	"fmt"
	"strings"
	"unicode"
)

// UsageBar draws a 10-block usage bar, using nerd-font progress glyphs
// when the terminal font carries them and plain ASCII otherwise.
func UsageBar(percent float64) string {
	if usesNerdFont() {
		return usageBarPretty(percent)
	}
	return usageBarASCII(percent)
}

func usageBarASCII(percent float64) string {
	filled := filledBlocks(percent)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", 10-filled) + "]"
}

// Nerd-font progress glyphs (U+EE00..EE04): cap, rail and fill pieces.
const (
	barStartEmpty  = ""
	barMiddleEmpty = ""
	barEnd         = ""
	barStartFill   = ""
	barMiddleFill  = ""
)

func usageBarPretty(percent float64) string {
	filled := filledBlocks(percent)
	if filled == 0 {
		return barStartEmpty + strings.Repeat(barMiddleEmpty, 9) + barEnd
	}
	return barStartFill +
		strings.Repeat(barMiddleFill, filled-1) +
		strings.Repeat(barMiddleEmpty, 10-filled) +
		barEnd
}

func filledBlocks(percent float64) int {
	if percent < 0 {
		percent = 0
	}
	filled := int(percent/10 + 0.5)
	if filled > 10 {
		filled = 10
	}
	return filled
}

// FormatUptime humanizes seconds as "Nh Mm", dropping the hour part when
// zero.
func FormatUptime(seconds uint64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
