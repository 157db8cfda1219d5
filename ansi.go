package namedcolor

import (
	"fmt"
	"strings"
)

// ESC starts every terminal escape sequence.
const ESC = "\u001b"

// backgroundCode formats a 24-bit background color code for p.
func backgroundCode(p Point) string {
	return fmt.Sprintf("48;2;%d;%d;%d", clampByte(p.R), clampByte(p.G), clampByte(p.B))
}

// foregroundCode picks black or white text, whichever reads better on p.
func foregroundCode(p Point) string {
	luma := 299*int(clampByte(p.R)) + 587*int(clampByte(p.G)) + 114*int(clampByte(p.B))
	if luma > 128*1000 {
		return "38;2;0;0;0"
	}
	return "38;2;255;255;255"
}

// formatANSICode wraps text in the given foreground and background codes
// and resets the terminal afterwards.
func formatANSICode(fg, bg, text string) string {
	var code strings.Builder
	code.WriteString(ESC)
	code.WriteByte('[')
	if fg != "" {
		code.WriteString(fg)
		if bg != "" {
			code.WriteByte(';')
		}
	}
	if bg != "" {
		code.WriteString(bg)
	}
	code.WriteByte('m')
	code.WriteString(text)
	code.WriteString(ESC)
	code.WriteString("[0m")
	return code.String()
}

// Swatch renders p as a block of width spaces painted in its color.
func Swatch(p Point, width int) string {
	if width < 1 {
		width = 1
	}
	return formatANSICode("", backgroundCode(p), strings.Repeat(" ", width))
}

// Label renders text on a background of p's color.
func Label(p Point, text string) string {
	return formatANSICode(foregroundCode(p), backgroundCode(p), " "+text+" ")
}

// FormatMatch renders a match as a single terminal line: the query
// swatch, the matched swatch and its name, hex code and distances.
func FormatMatch(m Match) string {
	return fmt.Sprintf("%s %s %s #%s d=%.2f ΔE=%.2f",
		Swatch(m.Query, 4), Swatch(m.Color, 4),
		Label(m.Color, m.Name()), m.Color.Hex(), m.Distance, m.DeltaE)
}
