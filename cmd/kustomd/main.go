// Package main is the entry point for the kustomd CLI.
package main

import (
	"os"

	"github.com/jmylchreest/kustomd/cmd/kustomd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
