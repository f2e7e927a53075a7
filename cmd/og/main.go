// Package main is the entry point for the og CLI tool.
package main

import (
	"github.com/anthropics/og/internal/cmd"
)

func main() {
	cmd.Execute()
}
