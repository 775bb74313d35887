//go:build !(js && wasm)

package main

import (
	"os"

	"sealc/internal/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
