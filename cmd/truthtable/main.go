// Package main provides the truthtable command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/truthtable/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
