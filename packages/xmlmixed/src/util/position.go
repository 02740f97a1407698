package util

import "fmt"

// Position is a location in a line-oriented document. Line is 0-based and
// Ch is the byte offset into that line.
type Position struct {
	Line int
	Ch   int
}

// Pos creates a Position
func Pos(line, ch int) Position {
	return Position{Line: line, Ch: ch}
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Ch)
}

// Before reports whether p is strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Ch < other.Ch
}

// Range is a half-open span of a document, used for fold ranges.
type Range struct {
	From Position
	To   Position
}

// String returns a string representation of the range
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.From, r.To)
}

// Contains reports whether pos lies within the range.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.From) && pos.Before(r.To)
}
