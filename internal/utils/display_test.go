package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisualColumn(t *testing.T) {
	assert.Equal(t, 0, VisualColumn([]byte("abc"), 0, 4))
	assert.Equal(t, 2, VisualColumn([]byte("abc"), 2, 4))
	assert.Equal(t, 4, VisualColumn([]byte("\tx"), 1, 4))
	assert.Equal(t, 4, VisualColumn([]byte("a\tx"), 2, 4))
	assert.Equal(t, 8, VisualColumn([]byte("\t\tx"), 2, 0)) // default tab width
	assert.Equal(t, 2, VisualColumn([]byte("世x"), 1, 4))
}

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		lines, width   int
		gutter, digits int
	}{
		{0, 80, 2, 1},
		{9, 80, 2, 1},
		{10, 80, 3, 2},
		{1000, 80, 5, 4},
		{10, 3, 0, 2},
	}
	for _, tt := range tests {
		gutter, digits := GutterWidth(tt.lines, tt.width)
		assert.Equal(t, tt.gutter, gutter, "lines=%d width=%d", tt.lines, tt.width)
		assert.Equal(t, tt.digits, digits, "lines=%d width=%d", tt.lines, tt.width)
	}
}
