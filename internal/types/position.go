package types

// Position is a cursor or text position within the buffer.
// Line is the 0-based line index, Col the 0-based rune index within the line.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Col < other.Col)
}

// Ordered returns a and b with the earlier position first.
func Ordered(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
