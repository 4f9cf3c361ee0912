// Package main provides the buildkit CLI, a thin driver over the builders.
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
