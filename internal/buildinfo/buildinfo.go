// Package buildinfo holds version metadata injected at link time, e.g.:
//
//	go build -ldflags "-X github.com/dmitrijs2005/gophauth/internal/buildinfo.BuildVersion=v1.0.0" ./cmd/cli
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// PrintBuildData writes the build metadata to w, one field per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}
