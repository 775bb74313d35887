// Package cmd implements the sealc command line.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"sealc/colors"
	"sealc/internal/context"
	"sealc/internal/frontend/ast"
	"sealc/internal/frontend/loader"
	"sealc/internal/semantics/checker"
	"sealc/internal/semantics/collector"
)

// HaltMessage is printed when the program has static semantic errors.
const HaltMessage = "Compilation halted due to static semantic errors."

// Exit statuses returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// RegisterPhases wires the semantic phases into the pipeline.
func RegisterPhases() {
	context.CollectorRun = collector.Run
	context.CheckerRun = checker.Run
}

// Run executes the command line in args (without the program name) and
// returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	RegisterPhases()

	fs := flag.NewFlagSet("sealc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debugFlag := fs.Bool("debug", false, "Enable debug output")
	noColorFlag := fs.Bool("no-color", false, "Disable colored diagnostics")
	dumpFlag := fs.Bool("dump-types", false, "Print the type-annotated tree after a successful check")
	maxErrorsFlag := fs.Int("max-errors", 0, "Show at most this many diagnostics (0 shows all)")
	configFlag := fs.String("config", "", "Options file (default "+context.ConfigFileName+" if present)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sealc [flags] <program.yml>\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return ExitUsage
	}

	options, err := loadOptions(*configFlag)
	if err != nil {
		colors.BOLD_RED.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	// Flags given on the command line override the options file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			options.Debug = *debugFlag
		case "no-color":
			options.NoColor = *noColorFlag
		case "dump-types":
			options.DumpTypes = *dumpFlag
		case "max-errors":
			options.MaxErrors = *maxErrorsFlag
		}
	})
	if options.MaxErrors < 0 {
		colors.BOLD_RED.Fprintf(stderr, "error: --max-errors must not be negative\n")
		return ExitUsage
	}
	options.DebugOutput = stderr
	colors.Enabled = !options.NoColor

	return compile(fs.Arg(0), options, stdout, stderr)
}

// loadOptions reads the explicit options file, or sealc.yml when present.
func loadOptions(path string) (*context.CompilerOptions, error) {
	if path != "" {
		return context.LoadOptions(path)
	}
	if _, err := os.Stat(context.ConfigFileName); err == nil {
		return context.LoadOptions(context.ConfigFileName)
	}
	return context.DefaultOptions(), nil
}

func compile(path string, options *context.CompilerOptions, stdout, stderr io.Writer) int {
	pipeline := context.NewPipeline(options)
	ctx := pipeline.Context

	ctx.Debugf("\n[Compilation Started] Entry Point: %s\n", path)

	err := pipeline.Compile(path)
	switch {
	case errors.Is(err, context.ErrSemantic):
		ctx.EmitDiagnostics(stderr)
		colors.RED.Fprintln(stderr, HaltMessage)
		return ExitError
	case err != nil:
		colors.BOLD_RED.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	if options.DumpTypes {
		if err := ast.Fprint(stdout, ctx.Program); err != nil {
			colors.BOLD_RED.Fprintf(stderr, "error: %v\n", err)
			return ExitError
		}
	}

	ctx.Debugf("\n✓ Compilation successful!\n")
	return ExitOK
}

// CheckTree checks a serialized tree held in memory and returns the rendered
// diagnostics, or the decorated tree when the program is valid. ok is false
// when the program was rejected.
func CheckTree(doc string, options *context.CompilerOptions) (output string, ok bool) {
	RegisterPhases()
	if options == nil {
		options = context.DefaultOptions()
	}
	colors.Enabled = !options.NoColor

	pipeline := context.NewPipeline(options)
	ctx := pipeline.Context

	prog, err := loader.Parse([]byte(doc), ctx.Symbols)
	if err != nil {
		return fmt.Sprintf("error: %v\n", err), false
	}

	var buf bytes.Buffer
	err = pipeline.Check(prog)
	switch {
	case errors.Is(err, context.ErrSemantic):
		ctx.EmitDiagnostics(&buf)
		buf.WriteString(HaltMessage + "\n")
		return buf.String(), false
	case err != nil:
		return fmt.Sprintf("error: %v\n", err), false
	}

	if err := ast.Fprint(&buf, prog); err != nil {
		return fmt.Sprintf("error: %v\n", err), false
	}
	return buf.String(), true
}
