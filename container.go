// Package h5scalar reads a single integer value out of an HDF5 container.
// Container parsing is delegated to github.com/scigolib/hdf5; this package
// resolves a slash-delimited dataset path and converts the stored element
// to an int32, reporting shape and type mismatches as errors.
package h5scalar

import (
	"github.com/scigolib/hdf5"
)

// DefaultDatasetPath is the dataset read when no other path is requested.
const DefaultDatasetPath = "a/b/data"

// Container is a read-only handle on an open HDF5 file.
type Container struct {
	name string
	file *hdf5.File
}

// Open opens an HDF5 file for reading. Missing files, unreadable files and
// files that are not valid HDF5 containers fail with a StageOpen *Error.
func Open(filename string) (*Container, error) {
	f, err := hdf5.Open(filename)
	if err != nil {
		return nil, wrapError(StageOpen, filename, err)
	}
	return &Container{name: filename, file: f}, nil
}

// Name returns the file name the container was opened from.
func (c *Container) Name() string {
	return c.name
}

// SuperblockVersion returns the container's superblock format version.
func (c *Container) SuperblockVersion() uint8 {
	if c.file == nil {
		return 0
	}
	return c.file.SuperblockVersion()
}

// Close releases the file. It is safe to call Close multiple times.
func (c *Container) Close() error {
	if c.file == nil {
		return nil // Already closed.
	}
	err := c.file.Close()
	c.file = nil
	return err
}

// ReadInt opens filename, resolves datasetPath and returns its value.
// The container is closed before ReadInt returns, on every path.
func ReadInt(filename, datasetPath string) (int32, error) {
	c, err := Open(filename)
	if err != nil {
		return 0, err
	}
	defer func() { _ = c.Close() }()

	ds, err := c.Resolve(datasetPath)
	if err != nil {
		return 0, err
	}
	return ds.ReadInt()
}
