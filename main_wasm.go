//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"sealc/internal/cmd"
	"sealc/internal/context"
)

// sealCheckJS is the JavaScript-callable function: sealCheck(tree, debug).
func sealCheckJS(this js.Value, args []js.Value) interface{} {
	defer func() {
		if r := recover(); r != nil {
			js.Global().Get("console").Call("error", "PANIC in checker:", fmt.Sprint(r))
		}
	}()

	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "Expected at least 1 argument (program tree)",
		}
	}

	options := context.DefaultOptions()
	options.NoColor = true
	if len(args) > 1 {
		options.Debug = args[1].Bool()
	}

	output, ok := cmd.CheckTree(args[0].String(), options)
	if !ok {
		return map[string]interface{}{
			"success": false,
			"error":   output,
		}
	}
	return map[string]interface{}{
		"success": true,
		"output":  output,
	}
}

func main() {
	c := make(chan struct{})

	js.Global().Set("sealCheck", js.FuncOf(sealCheckJS))
	js.Global().Set("sealWasmVersion", "v0.1.0")

	fmt.Println("Seal WASM checker ready")

	<-c
}
