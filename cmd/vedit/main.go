// Package main is the entry point for the vedit terminal editor.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(runProgram).Execute(); err != nil {
		os.Exit(1)
	}
}
