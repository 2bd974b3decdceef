// Package main - entry point for the retail price CLI
package main

import (
	"os"

	"retail-price/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
