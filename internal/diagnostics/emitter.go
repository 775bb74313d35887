package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/width"

	"sealc/colors"
)

const (
	STR_MULTIPLIER = "%*d | "
	tabWidth       = 4
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// SetSourceLines pre-populates the cache for a file.
func (sc *SourceCache) SetSourceLines(filepath string, lines []string) {
	sc.files[filepath] = lines
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		loaded, err := readLines(filepath)
		if err != nil {
			return "", err
		}
		sc.files[filepath] = loaded
		lines = loaded
	}

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

func readLines(filepath string) ([]string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache  *SourceCache
	writer io.Writer
}

// NewEmitter creates an emitter writing to stderr.
func NewEmitter() *Emitter {
	return NewEmitterWithWriter(os.Stderr)
}

// NewEmitterWithWriter creates an emitter writing to w.
func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{
		cache:  NewSourceCache(),
		writer: w,
	}
}

// SetSourceLines provides source text for a file instead of reading it from disk.
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.SetSourceLines(filepath, lines)
}

// Emit renders a diagnostic
func (e *Emitter) Emit(filepath string, diag *Diagnostic) {
	// Use filepath from diagnostic if available, otherwise use parameter
	if diag.FilePath != "" {
		filepath = diag.FilePath
	}

	e.printHeader(diag)

	// primary label first, secondaries after it
	var ordered []Label
	if primary, ok := diag.Primary(); ok {
		ordered = append(ordered, primary)
	}
	for _, label := range diag.Labels {
		if label.Style != Primary {
			ordered = append(ordered, label)
		}
	}

	gutter := gutterWidth(ordered)
	for i, label := range ordered {
		e.printLabel(filepath, label, diag.Severity, gutter, i == 0)
	}

	for _, note := range diag.Notes {
		fmt.Fprintf(e.writer, "%s = %s %s\n", strings.Repeat(" ", gutter), colors.BOLD.Sprint("note:"), note.Message)
	}
	if diag.Help != "" {
		fmt.Fprintf(e.writer, "%s = %s %s\n", strings.Repeat(" ", gutter), colors.BOLD_CYAN.Sprint("help:"), diag.Help)
	}
	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := severityColor(diag.Severity)
	header := diag.Severity.String()
	if diag.Code != "" {
		header = fmt.Sprintf("%s[%s]", header, diag.Code)
	}
	fmt.Fprintf(e.writer, "%s: %s\n", color.Sprint(header), colors.BOLD.Sprint(diag.Message))
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity, gutter int, first bool) {
	line := label.Location.Line()
	if line <= 0 {
		return
	}
	col := label.Location.Start.Column

	arrow := "-->"
	if !first {
		arrow = ":::"
	}
	position := fmt.Sprintf("%s:%d", filepath, line)
	if col > 0 {
		position = fmt.Sprintf("%s:%d", position, col)
	}
	fmt.Fprintf(e.writer, "%s%s %s\n", strings.Repeat(" ", gutter), colors.BLUE.Sprint(arrow), position)

	text, err := e.cache.GetLine(filepath, line)
	if filepath == "" || err != nil {
		if label.Message != "" {
			fmt.Fprintf(e.writer, "%s %s %s\n", strings.Repeat(" ", gutter), colors.BLUE.Sprint("|"), label.Message)
		}
		return
	}

	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
	start, length := underlineSpan(text, label)

	marker, color := "^", severityColor(severity)
	if label.Style == Secondary {
		marker, color = "-", colors.BLUE
	}

	fmt.Fprintf(e.writer, "%s %s\n", strings.Repeat(" ", gutter), colors.BLUE.Sprint("|"))
	fmt.Fprint(e.writer, colors.BLUE.Sprintf(STR_MULTIPLIER, gutter, line))
	fmt.Fprintln(e.writer, text)
	fmt.Fprintf(e.writer, "%s %s %s%s\n",
		strings.Repeat(" ", gutter),
		colors.BLUE.Sprint("|"),
		strings.Repeat(" ", start),
		color.Sprint(strings.Repeat(marker, length)+" "+label.Message),
	)
}

// underlineSpan returns the display column and width to underline. Without a
// known column the trimmed line is underlined.
func underlineSpan(text string, label Label) (int, int) {
	loc := label.Location
	if loc.Start.Column > 0 && loc.Start.Column <= len(text) {
		startByte := loc.Start.Column - 1
		endByte := len(text)
		if loc.End != nil && loc.End.Line == loc.Start.Line && loc.End.Column > loc.Start.Column && loc.End.Column-1 <= len(text) {
			endByte = loc.End.Column - 1
		}
		return DisplayWidth(text[:startByte]), max(1, DisplayWidth(text[startByte:endByte]))
	}

	trimmed := strings.TrimLeft(text, " ")
	indent := len(text) - len(trimmed)
	return indent, max(1, DisplayWidth(strings.TrimRight(trimmed, " ")))
}

// DisplayWidth returns the number of terminal cells s occupies; East Asian
// wide and fullwidth runes take two cells.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func gutterWidth(labels []Label) int {
	widest := 1
	for _, l := range labels {
		if n := len(fmt.Sprint(l.Location.Line())); n > widest {
			widest = n
		}
	}
	return widest + 1
}

func severityColor(s Severity) colors.COLOR {
	if s == Error {
		return colors.BOLD_RED
	}
	return colors.BOLD_BLUE
}
