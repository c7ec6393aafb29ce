// Package main is the single-binary entrypoint for VegiRise.
package main

import "github.com/vegirise/vegirise/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
