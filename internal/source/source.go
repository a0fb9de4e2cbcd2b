// Package source materializes search input from files or standard input.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinName is the argument and display name used for standard input.
const StdinName = "-"

// ErrTooLarge is returned when an input exceeds the configured byte limit.
var ErrTooLarge = errors.New("input exceeds max_bytes")

// Source is one fully buffered input.
type Source struct {
	Name     string
	Contents string
}

// IsStdin reports whether name refers to standard input.
func IsStdin(name string) bool {
	return name == "" || name == StdinName
}

// Open reads path, or stdin when path is empty or "-". maxBytes <= 0 means
// no limit.
func Open(path string, stdin io.Reader, maxBytes int) (Source, error) {
	if IsStdin(path) {
		if stdin == nil {
			stdin = os.Stdin
		}
		contents, err := Read(stdin, "(standard input)", maxBytes)
		if err != nil {
			return Source{}, err
		}
		return Source{Name: StdinName, Contents: contents}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Source{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	info, err := f.Stat()
	if err != nil {
		return Source{}, err
	}
	if info.IsDir() {
		return Source{}, &os.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	contents, err := Read(f, path, maxBytes)
	if err != nil {
		return Source{}, err
	}
	return Source{Name: path, Contents: contents}, nil
}

// Read buffers r completely. Bytes are kept as-is; invalid UTF-8 is not
// rejected.
func Read(r io.Reader, name string, maxBytes int) (string, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, int64(maxBytes)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return "", fmt.Errorf("%s: %w (%d bytes)", name, ErrTooLarge, maxBytes)
	}
	return string(data), nil
}
