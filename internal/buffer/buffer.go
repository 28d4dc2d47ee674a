// Package buffer holds the editable text.
package buffer

import "github.com/bethropolis/actionpad/internal/types"

// Buffer defines the text operations the editor and its actions use.
// Positions are clamped to the buffer contents.
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Bytes() []byte
	FilePath() string
	IsModified() bool

	// Insert places text at pos. Text may contain newlines.
	Insert(pos types.Position, text []byte) error
	// Delete removes [start, end). The range may span lines.
	Delete(start, end types.Position) error
	// TextRange returns a copy of the text in [start, end).
	TextRange(start, end types.Position) ([]byte, error)
}
