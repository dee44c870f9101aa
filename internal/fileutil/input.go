// Package fileutil opens conversion inputs and writes conversion outputs.
package fileutil

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/ccss2edr/core/errors"
)

// Input is an opened source file, decompressed when its name ends in .xz
// or .gz.
type Input struct {
	io.Reader
	file         *os.File
	decompressor io.Closer
}

// OpenInput opens path for reading. The caller must Close the result.
func OpenInput(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}

	in := &Input{Reader: f, file: f}
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &errors.ParseError{Format: "xz", Path: path, Message: err.Error(), Err: err}
		}
		in.Reader = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &errors.ParseError{Format: "gzip", Path: path, Message: err.Error(), Err: err}
		}
		in.Reader = gzr
		in.decompressor = gzr
	}
	return in, nil
}

// Close closes the decompressor, if any, and the file.
func (in *Input) Close() error {
	var first error
	if in.decompressor != nil {
		first = in.decompressor.Close()
	}
	if err := in.file.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

// ReadAll reads the whole decompressed content of path.
func ReadAll(path string) ([]byte, error) {
	in, err := OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}
