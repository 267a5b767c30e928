// Package main provides the prepkit CLI entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/prepkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
