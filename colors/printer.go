package colors

import (
	"fmt"
	"io"
	"strings"
)

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, c.code()+fmt.Sprintf(format, args...)+reset())
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, c.code())
	fmt.Fprint(w, fmt.Sprint(args...))
	fmt.Fprint(w, reset())
	fmt.Fprintln(w)
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, c.code())
	fmt.Fprint(w, args...)
	fmt.Fprint(w, reset())
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return c.code() + fmt.Sprintf(format, args...) + reset()
}

func (c COLOR) Sprint(args ...any) string {
	return c.code() + fmt.Sprint(args...) + reset()
}

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
