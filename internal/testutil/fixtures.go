// Package testutil builds HDF5 fixture files for tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/scigolib/hdf5"
	"github.com/stretchr/testify/require"
)

// Dataset describes one dataset to place in a fixture container.
type Dataset struct {
	Path string // Absolute path, e.g. "/a/b/data".
	Type hdf5.Datatype
	Dims []uint64
	Data interface{}
}

// Int32 describes a single-element int32 dataset at p.
func Int32(p string, v int32) Dataset {
	return Dataset{Path: p, Type: hdf5.Int32, Dims: []uint64{1}, Data: []int32{v}}
}

// WriteContainer writes a new HDF5 file under tb.TempDir() holding the given
// datasets and returns its path. Parent groups are created as needed.
func WriteContainer(tb testing.TB, datasets ...Dataset) string {
	tb.Helper()

	filename := filepath.Join(tb.TempDir(), "fixture.h5")
	fw, err := hdf5.CreateForWrite(filename, hdf5.CreateTruncate)
	require.NoError(tb, err)
	defer func() { _ = fw.Close() }()

	for _, g := range parentGroups(datasets) {
		_, err := fw.CreateGroup(g)
		require.NoError(tb, err, "create group %s", g)
	}

	for _, d := range datasets {
		dw, err := fw.CreateDataset(d.Path, d.Type, d.Dims)
		require.NoError(tb, err, "create dataset %s", d.Path)
		require.NoError(tb, dw.Write(d.Data), "write dataset %s", d.Path)
	}

	require.NoError(tb, fw.Close())
	return filename
}

// Sample writes the canonical fixture: an int32 value at /a/b/data.
func Sample(tb testing.TB, v int32) string {
	tb.Helper()
	return WriteContainer(tb, Int32("/a/b/data", v))
}

// WriteGarbage writes a file that is not an HDF5 container.
func WriteGarbage(tb testing.TB) string {
	tb.Helper()

	filename := filepath.Join(tb.TempDir(), "garbage.h5")
	require.NoError(tb, os.WriteFile(filename, []byte("this is not an HDF5 file\n"), 0o600))
	return filename
}

// parentGroups lists every group that must exist before the datasets can
// be created, parents before children.
func parentGroups(datasets []Dataset) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, d := range datasets {
		parts := strings.Split(strings.Trim(d.Path, "/"), "/")
		for i := 1; i < len(parts); i++ {
			g := "/" + strings.Join(parts[:i], "/")
			if !seen[g] {
				seen[g] = true
				groups = append(groups, g)
			}
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return strings.Count(groups[i], "/") < strings.Count(groups[j], "/")
	})
	return groups
}
