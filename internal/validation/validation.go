// Package validation checks the paths and content handed to the converters
// before any work is done.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits on accepted inputs.
const (
	// MaxFileSize is the maximum accepted input size (256 MB).
	MaxFileSize = 256 << 20
	// MaxPathLength is the maximum accepted path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrNotRegular       = errors.New("not a regular file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrSameFile         = errors.New("output would overwrite input")
	ErrContentMismatch  = errors.New("content does not match file name")
)

// ValidatePath checks a path for length limits and invalid characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ValidateInput checks that path names a readable regular file within the
// size limit.
func ValidateInput(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() > MaxFileSize {
		return fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, path, info.Size(), MaxFileSize)
	}
	return nil
}

// ValidateOutput checks that output can be created next to existing files
// and does not point at input.
func ValidateOutput(input, output string) error {
	if err := ValidatePath(output); err != nil {
		return err
	}
	dir := filepath.Dir(output)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotRegular, output)
	}

	inAbs, err1 := filepath.Abs(input)
	outAbs, err2 := filepath.Abs(output)
	if err1 == nil && err2 == nil && inAbs == outAbs {
		return fmt.Errorf("%w: %s", ErrSameFile, output)
	}
	if inInfo, err := os.Stat(input); err == nil {
		if outInfo, err := os.Stat(output); err == nil && os.SameFile(inInfo, outInfo) {
			return fmt.Errorf("%w: %s", ErrSameFile, output)
		}
	}
	return nil
}

// Content kinds recognized by DetectContent.
type Content string

const (
	ContentXZ      Content = "xz"
	ContentGzip    Content = "gzip"
	ContentText    Content = "text"
	ContentUnknown Content = "unknown"
)

var magicBytes = []struct {
	kind  Content
	magic []byte
}{
	{ContentXZ, []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},
	{ContentGzip, []byte{0x1F, 0x8B}},
}

// DetectContent sniffs the leading bytes of a file.
func DetectContent(buf []byte) Content {
	for _, m := range magicBytes {
		if bytes.HasPrefix(buf, m.magic) {
			return m.kind
		}
	}
	if isLikelyText(buf) {
		return ContentText
	}
	return ContentUnknown
}

// expectedContent derives the content kind implied by a file name.
func expectedContent(name string) Content {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xz":
		return ContentXZ
	case ".gz":
		return ContentGzip
	default:
		return ContentText
	}
}

// ValidateContent reads up to 512 bytes from r and checks that they match
// the compression implied by name: xz for .xz, gzip for .gz, text otherwise.
func ValidateContent(r io.Reader, name string) (Content, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return ContentUnknown, fmt.Errorf("failed to read content: %w", err)
	}
	got := DetectContent(buf[:n])
	if want := expectedContent(name); got != want {
		return got, fmt.Errorf("%w: %s looks like %s, expected %s", ErrContentMismatch, name, got, want)
	}
	return got, nil
}

// ValidateInputFile runs ValidateInput and ValidateContent on path.
func ValidateInputFile(path string) error {
	if err := ValidateInput(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = ValidateContent(f, path)
	return err
}

// isLikelyText reports whether buf looks like ASCII or UTF-8 text.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}

	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable := 0
	control := 0
	for _, b := range buf {
		if b >= 0x20 && b <= 0x7e || b == '\t' || b == '\n' || b == '\r' {
			printable++
		} else if b < 0x20 {
			control++
		}
	}

	return printable > 0 && float64(printable)/float64(printable+control) > 0.95
}
