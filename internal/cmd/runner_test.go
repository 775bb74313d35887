package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sealc/internal/context"
)

const okTree = `
file: ok.seal
decls:
  - kind: func
    name: main
    type: Void
    line: 1
    body:
      stmts:
        - {kind: expr, line: 2, expr: {kind: call, name: printf, args: [{kind: string, value: "%d"}, {kind: int, value: "7"}]}}
        - {kind: return, line: 3}
`

const badTree = `
file: bad.seal
decls:
  - kind: func
    name: main
    type: Void
    line: 1
    body:
      stmts:
        - {kind: break, line: 2}
        - {kind: expr, line: 3, expr: {kind: ident, name: nope}}
        - {kind: return, line: 4}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunValidProgram(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.yml", okTree)

	code, stdout, stderr := run("--no-color", path)
	if code != ExitOK {
		t.Fatalf("Expected exit %d, got %d\n%s", ExitOK, code, stderr)
	}
	if stdout != "" {
		t.Errorf("Expected no output without --dump-types, got %q", stdout)
	}
}

func TestRunDumpTypes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.yml", okTree)

	code, stdout, _ := run("--no-color", "--dump-types", path)
	if code != ExitOK {
		t.Fatalf("Expected exit %d, got %d", ExitOK, code)
	}
	for _, want := range []string{"func main() Void @1", "call printf : Void", "int 7 : Int"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected dump to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestRunSemanticErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yml", badTree)

	code, _, stderr := run("--no-color", path)
	if code != ExitError {
		t.Fatalf("Expected exit %d, got %d", ExitError, code)
	}
	for _, want := range []string{
		"error[T0019]: break statement outside loop",
		"error[T0002]: variable nope is not defined",
		"Compilation failed with 2 error(s)",
		HaltMessage,
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("Expected stderr to contain %q, got:\n%s", want, stderr)
		}
	}
}

func TestRunMaxErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yml", badTree)

	code, _, stderr := run("--no-color", "--max-errors", "1", path)
	if code != ExitError {
		t.Fatalf("Expected exit %d, got %d", ExitError, code)
	}
	if strings.Contains(stderr, "T0002") {
		t.Errorf("Expected the second diagnostic to be hidden, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "... 1 more diagnostic(s) not shown") {
		t.Errorf("Expected a truncation line, got:\n%s", stderr)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "ok.yml", okTree)
	config := writeFile(t, dir, "opts.yml", "no_color: true\ndump_types: true\n")

	code, stdout, _ := run("--config", config, tree)
	if code != ExitOK {
		t.Fatalf("Expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(stdout, "program ok.seal") {
		t.Errorf("Expected the config to enable the dump, got:\n%s", stdout)
	}
}

func TestRunFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "ok.yml", okTree)
	config := writeFile(t, dir, "opts.yml", "dump_types: true\n")

	_, stdout, _ := run("--no-color", "--config", config, "--dump-types=false", tree)
	if stdout != "" {
		t.Errorf("Expected the flag to disable the dump, got:\n%s", stdout)
	}
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "ok.yml", okTree)
	config := writeFile(t, dir, "opts.yml", "colour: false\n")

	code, _, stderr := run("--no-color", "--config", config, tree)
	if code != ExitError {
		t.Errorf("Expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr, "colour") {
		t.Errorf("Expected the unknown key in the error, got:\n%s", stderr)
	}
}

func TestRunUsage(t *testing.T) {
	code, _, stderr := run()
	if code != ExitUsage {
		t.Errorf("Expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(stderr, "Usage: sealc") {
		t.Errorf("Expected usage text, got:\n%s", stderr)
	}
}

func TestRunMalformedTree(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.yml", "decls: [{kind: class, name: A}]\n")

	code, _, stderr := run("--no-color", path)
	if code != ExitError {
		t.Errorf("Expected exit %d, got %d", ExitError, code)
	}
	if strings.Contains(stderr, HaltMessage) {
		t.Errorf("Expected a load error, not semantic errors:\n%s", stderr)
	}
}

func TestCheckTree(t *testing.T) {
	output, ok := CheckTree(okTree, &context.CompilerOptions{NoColor: true})
	if !ok || !strings.Contains(output, "call printf : Void") {
		t.Errorf("Expected a decorated tree, got ok=%v:\n%s", ok, output)
	}

	output, ok = CheckTree(badTree, &context.CompilerOptions{NoColor: true})
	if ok || !strings.Contains(output, HaltMessage) {
		t.Errorf("Expected rejected program, got ok=%v:\n%s", ok, output)
	}
}
