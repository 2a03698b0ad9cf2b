// Package main provides the entry point for the fleetsync CLI tool.
package main

import (
	"github.com/planequery/fleetsync/cmd/fleetsync/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
