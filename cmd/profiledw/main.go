// Package main is the entry point for profiledw.
package main

import (
	"fmt"
	"os"

	"github.com/upcasem/profiledw/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
