package h5scalar

import (
	"fmt"
	"path"
	"strings"

	"github.com/scigolib/hdf5"
)

// splitPath breaks a slash-delimited dataset path into its components.
// Leading, trailing and repeated slashes are ignored.
func splitPath(p string) []string {
	fields := strings.Split(p, "/")
	parts := fields[:0]
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return parts
}

// baseName normalizes an object name as reported by the storage library,
// which may carry a leading slash or the object's full path.
func baseName(name string) string {
	name = strings.Trim(name, "/")
	if name == "" {
		return ""
	}
	return path.Base(name)
}

func findChild(g *hdf5.Group, name string) hdf5.Object {
	for _, child := range g.Children() {
		if baseName(child.Name()) == name {
			return child
		}
	}
	return nil
}

// Resolve walks the group tree from the root and returns the dataset at p.
// A missing component yields ErrNotFound; a leaf that is a group yields
// ErrNotDataset. Both are wrapped in a StageResolve *Error.
func (c *Container) Resolve(p string) (*Dataset, error) {
	if c.file == nil {
		return nil, wrapError(StageResolve, p, ErrClosed)
	}

	parts := splitPath(p)
	if len(parts) == 0 {
		return nil, wrapError(StageResolve, p, ErrEmptyPath)
	}

	var obj hdf5.Object = c.file.Root()
	for i, part := range parts {
		g, ok := obj.(*hdf5.Group)
		if !ok {
			prefix := strings.Join(parts[:i], "/")
			return nil, wrapError(StageResolve, p, fmt.Errorf("%w: %q is not a group", ErrNotFound, prefix))
		}

		obj = findChild(g, part)
		if obj == nil {
			prefix := strings.Join(parts[:i+1], "/")
			return nil, wrapError(StageResolve, p, fmt.Errorf("%w: %q", ErrNotFound, prefix))
		}
	}

	ds, ok := obj.(*hdf5.Dataset)
	if !ok {
		return nil, wrapError(StageResolve, p, fmt.Errorf("%w: %T", ErrNotDataset, obj))
	}

	return &Dataset{
		container: c,
		path:      strings.Join(parts, "/"),
		ds:        ds,
	}, nil
}
