//go:build ignore
// +build ignore

// Writes testdata/sample.h5: an int32 value of 42 at /a/b/data.
// Run from the repository root: go run testdata/generators/generate_sample.go
package main

import (
	"log"

	"github.com/scigolib/hdf5"
)

func main() {
	fw, err := hdf5.CreateForWrite("testdata/sample.h5", hdf5.CreateTruncate)
	if err != nil {
		log.Fatalf("Failed to create file: %v", err)
	}
	defer func() { _ = fw.Close() }()

	for _, g := range []string{"/a", "/a/b"} {
		if _, err := fw.CreateGroup(g); err != nil {
			log.Fatalf("Failed to create group %s: %v", g, err)
		}
	}

	dw, err := fw.CreateDataset("/a/b/data", hdf5.Int32, []uint64{1})
	if err != nil {
		log.Fatalf("Failed to create dataset: %v", err)
	}
	if err := dw.Write([]int32{42}); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}

	if err := fw.Close(); err != nil {
		log.Fatalf("Failed to close file: %v", err)
	}
	log.Println("Created testdata/sample.h5")
}
