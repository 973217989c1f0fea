package h5scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/scigolib/hdf5"
)

// Dataset is a resolved dataset inside an open Container.
type Dataset struct {
	container *Container
	path      string
	ds        *hdf5.Dataset
}

// Path returns the normalized dataset path, without a leading slash.
func (d *Dataset) Path() string {
	return d.path
}

// Info returns the storage library's metadata summary for the dataset,
// e.g. "Dataset: integer (size=4 bytes), scalar, ...".
func (d *Dataset) Info() (string, error) {
	if d.container.file == nil {
		return "", wrapError(StageRead, d.path, ErrClosed)
	}
	info, err := d.ds.Info()
	if err != nil {
		return "", wrapError(StageRead, d.path, err)
	}
	return info, nil
}

// ReadInt reads the dataset and returns its single element as an int32.
// The dataset must hold exactly one 4- or 8-byte element of an integer class
// whose value fits in an int32; anything else is a StageRead *Error.
//
// The storage library decodes unsigned integers as signed ones of the same
// width and its summary does not report signedness, so a uint32 above
// math.MaxInt32 comes back wrapped to a negative value and is not detected.
func (d *Dataset) ReadInt() (int32, error) {
	if d.container.file == nil {
		return 0, wrapError(StageRead, d.path, ErrClosed)
	}

	// A summary the library cannot produce is not fatal here; the element
	// checks below still apply.
	if info, err := d.ds.Info(); err == nil {
		if class := datatypeClass(info); class != "" && class != "integer" {
			return 0, wrapError(StageRead, d.path, fmt.Errorf("%w: stored class is %s", ErrNotInteger, class))
		}
		// Only 4- and 8-byte integers are decoded by the library.
		if size := datatypeSize(info); size != 0 && size != 4 && size != 8 {
			return 0, wrapError(StageRead, d.path, fmt.Errorf("%w: %d-byte integer", ErrUnsupportedWidth, size))
		}
	}

	values, err := d.ds.Read()
	if err != nil {
		return 0, wrapError(StageRead, d.path, err)
	}

	v, err := toInt32(values)
	if err != nil {
		return 0, wrapError(StageRead, d.path, err)
	}
	return v, nil
}

// datatypeClass extracts the datatype class name from a dataset summary.
// It returns "" when the summary does not have the expected shape.
func datatypeClass(info string) string {
	rest, ok := strings.CutPrefix(info, "Dataset: ")
	if !ok {
		return ""
	}
	class, _, ok := strings.Cut(rest, " (")
	if !ok {
		return ""
	}
	return class
}

// datatypeSize extracts the element size in bytes from a dataset summary.
// It returns 0 when the summary does not carry a size.
func datatypeSize(info string) int {
	_, rest, ok := strings.Cut(info, "(size=")
	if !ok {
		return 0
	}
	digits, _, ok := strings.Cut(rest, " bytes)")
	if !ok {
		return 0
	}
	size, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return size
}

func toInt32(values []float64) (int32, error) {
	if len(values) != 1 {
		return 0, fmt.Errorf("%w: got %d elements", ErrNotScalar, len(values))
	}

	v := values[0]
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, v)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %.0f", ErrOutOfRange, v)
	}
	return int32(v), nil
}
