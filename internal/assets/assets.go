// Package assets holds the error taxonomy shared by the file loaders and
// the lookup of demo media files.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrFormat is wrapped by every error caused by malformed file contents.
var ErrFormat = errors.New("invalid file format")

// Formatf returns an error wrapping ErrFormat.
func Formatf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}

// IOError reports a file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("could not read %s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// MediaDirs are searched in order by Find. They hold the textures and
// objects shipped with the demos.
var MediaDirs = []string{"media", filepath.Join("..", "media"), filepath.Join("..", "..", "media")}

// Find resolves name against MediaDirs. Absolute names and names that exist
// relative to the working directory are returned unchanged.
func Find(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	for _, dir := range MediaDirs {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return name
}

// ReadFile reads a media file, wrapping failures in *IOError.
func ReadFile(name string) ([]byte, error) {
	path := Find(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return data, nil
}
