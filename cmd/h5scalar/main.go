// Package main provides the h5scalar command-line utility.
// It prints the integer stored at a dataset path inside an HDF5 file.
//
// Usage:
//
//	h5scalar [--dataset a/b/data] [--verbose] <file.h5>
package main

import (
	"os"

	"github.com/scigolib/h5scalar/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
