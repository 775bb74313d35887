package diagnostics

import (
	"fmt"
	"io"

	"sealc/internal/source"
)

// DiagnosticBag collects diagnostics during compilation. It is append-only
// and is drained once, after every phase has run.
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	filepath    string
	errorCount  int
}

// NewDiagnosticBag creates a new diagnostic bag for a file
func NewDiagnosticBag(filepath string) *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		filepath:    filepath,
	}
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.diagnostics = append(db.diagnostics, diag)

	// If this is the first diagnostic with a filepath, use it as the bag's filepath
	if db.filepath == "" && diag.FilePath != "" {
		db.filepath = diag.FilePath
	}

	if diag.Severity == Error {
		db.errorCount++
	}
}

// Record adds a plain error at a source line. A line of 0 means the error
// has no position.
func (db *DiagnosticBag) Record(line int, message string) {
	diag := NewError(message)
	if line > 0 {
		loc := source.AtLine(line)
		diag.WithPrimaryLabel(db.filepath, &loc, "")
	}
	db.Add(diag)
}

// Count returns the number of errors recorded so far.
func (db *DiagnosticBag) Count() int {
	return db.errorCount
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	return db.errorCount > 0
}

// Diagnostics returns all diagnostics
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	return db.diagnostics
}

// Codes returns the code of every diagnostic in recording order.
func (db *DiagnosticBag) Codes() []string {
	codes := make([]string, 0, len(db.diagnostics))
	for _, d := range db.diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

// EmitAllToWriter renders every diagnostic followed by a summary. limit caps
// the number of rendered diagnostics; 0 means no cap. Counting is unaffected.
func (db *DiagnosticBag) EmitAllToWriter(w io.Writer, limit int) {
	emitter := NewEmitterWithWriter(w)

	for i, diag := range db.diagnostics {
		if limit > 0 && i >= limit {
			fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", len(db.diagnostics)-limit)
			break
		}
		emitter.Emit(db.filepath, diag)
	}

	if db.errorCount > 0 {
		fmt.Fprintf(w, "\nCompilation failed with %d error(s)\n", db.errorCount)
	}
}
