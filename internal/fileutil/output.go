package fileutil

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/ccss2edr/core/errors"
)

// outputMode is the permission of written outputs.
const outputMode = 0o644

// osRename is a variable to allow testing of rename errors.
var osRename = os.Rename

// Written describes a completed output file.
type Written struct {
	Path   string
	Size   int64
	BLAKE3 string // hex digest of the file content
}

type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// WriteFile creates path atomically. write receives a writer backed by a
// temporary file in the same directory; the file is renamed into place only
// when write and close both succeed, so a failed conversion leaves nothing
// behind.
func WriteFile(path string, write func(w io.Writer) error) (*Written, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, errors.NewIO("create", path, err)
	}
	tmpPath := tmp.Name()

	hasher := blake3.New()
	counter := &countingWriter{}
	if err := write(io.MultiWriter(tmp, hasher, counter)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return nil, err
	}
	if err := tmp.Chmod(outputMode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return nil, errors.NewIO("chmod", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, errors.NewIO("close", tmpPath, err)
	}
	if err := osRename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return nil, errors.NewIO("rename", path, err)
	}

	return &Written{
		Path:   path,
		Size:   counter.n,
		BLAKE3: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// Digest returns the hex BLAKE3 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
