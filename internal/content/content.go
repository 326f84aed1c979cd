package content

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding indicates the file is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("file does not contain valid UTF-8")

// Reader loads the full text of a file.
type Reader interface {
	Read(path string) (string, error)
}

// FileReader reads files from the local filesystem.
type FileReader struct{}

// NewFileReader returns a Reader backed by the local filesystem.
func NewFileReader() FileReader {
	return FileReader{}
}

// Read loads the whole file into memory. The file handle is closed before
// Read returns.
func (FileReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}
