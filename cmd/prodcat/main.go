// Package main provides the entry point for the prodcat CLI tool.
package main

import "github.com/shopfolk/prodcat/cmd/prodcat/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
