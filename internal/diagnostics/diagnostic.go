package diagnostics

import (
	"fmt"

	"sealc/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

// Error is the only severity the semantic phase produces.
const Error Severity = iota

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "unknown"
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a compiler diagnostic
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // Error code like "T0001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(filepath string, loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds a primary labeled location
func (d *Diagnostic) WithPrimaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(filepath, loc, message, Primary)
}

// WithSecondaryLabel adds a secondary labeled location
func (d *Diagnostic) WithSecondaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(filepath, loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Primary returns the primary label, if any.
func (d *Diagnostic) Primary() (Label, bool) {
	for _, l := range d.Labels {
		if l.Style == Primary {
			return l, true
		}
	}
	return Label{}, false
}

// Line returns the source line of the primary label, or 0 when the
// diagnostic is not tied to a location (e.g. a missing main function).
func (d *Diagnostic) Line() int {
	if l, ok := d.Primary(); ok {
		return l.Location.Line()
	}
	return 0
}

// String renders the diagnostic on one line as "line: message".
func (d *Diagnostic) String() string {
	if line := d.Line(); line > 0 {
		return fmt.Sprintf("%d: %s", line, d.Message)
	}
	return d.Message
}

// InternalError reports a tree shape the checker cannot handle. It points at
// a defect in the parser boundary, not at the user's program, and is never
// recorded as a diagnostic.
type InternalError struct {
	Line    int
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("FATAL:%d: %s", e.Line, e.Message)
}
