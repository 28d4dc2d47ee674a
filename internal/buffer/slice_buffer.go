package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/actionpad/internal/types"
	"github.com/bethropolis/actionpad/internal/utils"
)

// SliceBuffer stores the text as one byte slice per line.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer with a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{[]byte("")},
	}
}

// NewSliceBufferFromString creates a buffer holding text.
func NewSliceBufferFromString(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.setContent([]byte(text))
	return sb
}

func (sb *SliceBuffer) setContent(text []byte) {
	parts := bytes.Split(text, []byte("\n"))
	sb.lines = make([][]byte, len(parts))
	for i, p := range parts {
		sb.lines[i] = append([]byte(nil), p...)
	}
}

// Load reads a file into the buffer. A missing file yields an empty buffer
// bound to that path.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.modified = false

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	newLines := [][]byte{}
	for scanner.Scan() {
		newLines = append(newLines, append([]byte(nil), scanner.Bytes()...))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.filePath = filePath
	return nil
}

// Save writes the buffer to filePath, or to the loaded path when empty.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	sb.filePath = path
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes joins the lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// validatePosition clamps pos into the buffer and returns its byte offset
// within the line.
func (sb *SliceBuffer) validatePosition(pos types.Position) (types.Position, int) {
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}

	line := sb.lines[pos.Line]
	offset := utils.RuneIndexToByteOffset(line, pos.Col)
	if offset < 0 {
		pos.Col = utils.ByteOffsetToRuneIndex(line, len(line))
		offset = len(line)
	}
	return pos, offset
}

// validateRange orders and clamps a range.
func (sb *SliceBuffer) validateRange(start, end types.Position) (vStart, vEnd types.Position, startOffset, endOffset int) {
	start, end = types.Ordered(start, end)
	vStart, startOffset = sb.validatePosition(start)
	vEnd, endOffset = sb.validatePosition(end)
	return vStart, vEnd, startOffset, endOffset
}

// Insert inserts text at pos.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) error {
	if len(text) == 0 {
		return nil
	}

	vPos, offset := sb.validatePosition(pos)
	sb.modified = true

	current := sb.lines[vPos.Line]
	tail := append([]byte(nil), current[offset:]...)
	insertLines := bytes.Split(text, []byte("\n"))

	head := append(current[:offset:offset], insertLines[0]...)
	if len(insertLines) == 1 {
		sb.lines[vPos.Line] = append(head, tail...)
		return nil
	}

	newLines := make([][]byte, 0, len(insertLines))
	newLines = append(newLines, head)
	for _, l := range insertLines[1 : len(insertLines)-1] {
		newLines = append(newLines, append([]byte(nil), l...))
	}
	last := append([]byte(nil), insertLines[len(insertLines)-1]...)
	newLines = append(newLines, append(last, tail...))

	rest := sb.lines[vPos.Line+1:]
	merged := make([][]byte, 0, len(sb.lines)+len(newLines)-1)
	merged = append(merged, sb.lines[:vPos.Line]...)
	merged = append(merged, newLines...)
	merged = append(merged, rest...)
	sb.lines = merged
	return nil
}

// Delete removes the text in [start, end).
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	vStart, vEnd, startOffset, endOffset := sb.validateRange(start, end)
	if vStart == vEnd {
		return nil
	}
	sb.modified = true

	startLine := sb.lines[vStart.Line]
	endLine := sb.lines[vEnd.Line]

	joined := make([]byte, 0, startOffset+len(endLine)-endOffset)
	joined = append(joined, startLine[:startOffset]...)
	joined = append(joined, endLine[endOffset:]...)

	lines := make([][]byte, 0, len(sb.lines)-(vEnd.Line-vStart.Line))
	lines = append(lines, sb.lines[:vStart.Line]...)
	lines = append(lines, joined)
	lines = append(lines, sb.lines[vEnd.Line+1:]...)
	sb.lines = lines
	return nil
}

// TextRange returns a copy of the text in [start, end).
func (sb *SliceBuffer) TextRange(start, end types.Position) ([]byte, error) {
	vStart, vEnd, startOffset, endOffset := sb.validateRange(start, end)
	if vStart == vEnd {
		return []byte{}, nil
	}

	if vStart.Line == vEnd.Line {
		return append([]byte(nil), sb.lines[vStart.Line][startOffset:endOffset]...), nil
	}

	var content bytes.Buffer
	content.Write(sb.lines[vStart.Line][startOffset:])
	for i := vStart.Line + 1; i < vEnd.Line; i++ {
		content.WriteByte('\n')
		content.Write(sb.lines[i])
	}
	content.WriteByte('\n')
	content.Write(sb.lines[vEnd.Line][:endOffset])
	return content.Bytes(), nil
}

var _ Buffer = (*SliceBuffer)(nil)
