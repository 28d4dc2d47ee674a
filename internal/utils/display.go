package utils

import (
	"math"

	"github.com/bethropolis/actionpad/internal/config"
	"github.com/rivo/uniseg"
)

// TabStop returns the width of a tab starting at visual column col.
func TabStop(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = config.DefaultTabWidth
	}
	return tabWidth - col%tabWidth
}

// VisualColumn converts a rune index into a screen column, counting wide
// graphemes and tabs.
func VisualColumn(line []byte, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() { // one user-perceived character per step
		if currentRuneIndex >= runeIndex {
			break // reached the target rune
		}
		runes := gr.Runes()
		if runes[0] == '\t' {
			visualWidth += TabStop(visualWidth, tabWidth)
		} else {
			visualWidth += gr.Width() // 2 for wide CJK, 0 for a lone combining mark
		}
		currentRuneIndex += len(runes)
	}
	return visualWidth
}

// GutterWidth returns the line-number column width including its padding,
// and the digit count. The gutter is 0 when the screen is too narrow.
func GutterWidth(lineCount, width int) (int, int) {
	if lineCount == 0 {
		lineCount = 1 // Avoid Log10(0)
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	gutter := maxDigits + 1 // one space between number and text
	if gutter >= width {
		return 0, maxDigits
	}
	return gutter, maxDigits
}
