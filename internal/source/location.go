package source

import "fmt"

// Position is a 1-based line/column pair. Column 0 means the column is unknown.
type Position struct {
	Line   int
	Column int
}

// Location represents a span of source code with start and end positions
type Location struct {
	Start *Position
	End   *Position
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(start, end *Position) *Location {
	return &Location{
		Start: start,
		End:   end,
	}
}

// AtLine returns a location covering an unknown column range on one line.
func AtLine(line int) Location {
	return Location{Start: &Position{Line: line}}
}

// Line returns the starting line, or 0 for an unknown location.
func (l *Location) Line() int {
	if l == nil || l.Start == nil {
		return 0
	}
	return l.Start.Line
}

func (l *Location) String() string {
	if l == nil || l.Start == nil {
		return "location(unknown)"
	}
	if l.End == nil {
		return fmt.Sprintf("location(%d:%d)", l.Start.Line, l.Start.Column)
	}
	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}
