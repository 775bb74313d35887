// Package colors holds the ANSI escape sequences used for terminal output.
package colors

type COLOR string

const (
	RESET     COLOR = "\033[0m"
	BOLD      COLOR = "\033[1m"
	RED       COLOR = "\033[31m"
	GREEN     COLOR = "\033[32m"
	YELLOW    COLOR = "\033[33m"
	BLUE      COLOR = "\033[34m"
	PURPLE    COLOR = "\033[35m"
	CYAN      COLOR = "\033[36m"
	GREY      COLOR = "\033[90m"
	BOLD_RED  COLOR = "\033[1;31m"
	BOLD_BLUE COLOR = "\033[1;34m"
	BOLD_CYAN COLOR = "\033[1;36m"
)

// Enabled controls whether the print helpers emit escape sequences.
// The CLI turns it off for --no-color.
var Enabled = true

func (c COLOR) code() string {
	if !Enabled {
		return ""
	}
	return string(c)
}

func reset() string {
	if !Enabled {
		return ""
	}
	return string(RESET)
}
