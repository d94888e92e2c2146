package main

import (
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// ANSI escape sequence regex for colors/styles
var ansiRE = regexp.MustCompile("\x1b\\[[0-9;?]*[a-zA-Z]")

// stripANSI removes color and style sequences
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// truncateCell shortens plain text to width display cells, ending with an
// ellipsis when something was cut.
func truncateCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// clipAnsiToWidth trims a styled string to the given display width (ANSI-aware)
func clipAnsiToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	// Styling is lost on clipped lines; they only occur on very narrow terminals.
	return runewidth.Truncate(stripANSI(s), width, "")
}

// padRight returns s right-padded with spaces to the given visible width (ANSI-aware)
func padRight(s string, width int) string {
	n := width - lipgloss.Width(s)
	if n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// fitCell pads or clips a styled string to exactly width cells.
func fitCell(s string, width int) string {
	return padRight(clipAnsiToWidth(s, width), width)
}

// normalizeLinesToWidth pads or trims each line to an exact width (ANSI-aware)
func normalizeLinesToWidth(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = fitCell(line, width)
	}
	return strings.Join(lines, "\n")
}

// overlay draws box over base at (x, y). The base is flattened and dimmed so
// the box reads as a modal above a backdrop.
func overlay(base, box string, x, y int) string {
	backdrop := lipgloss.NewStyle().Foreground(dimColor).Background(backdropBG)
	boxLines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)

	lines := strings.Split(base, "\n")
	for i, line := range lines {
		plain := stripANSI(line)
		row := i - y
		if row < 0 || row >= len(boxLines) {
			lines[i] = backdrop.Render(plain)
			continue
		}
		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := runewidth.TruncateLeft(plain, x+boxWidth, "")
		lines[i] = backdrop.Render(left) + padRight(boxLines[row], boxWidth) + backdrop.Render(right)
	}
	return strings.Join(lines, "\n")
}

// centerIn returns the offset that centers size within total, never negative.
func centerIn(total, size int) int {
	return max(0, (total-size)/2)
}
