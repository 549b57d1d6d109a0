// Package storage reads and writes whole documents on the local disk.
package storage

import (
	"errors"
	"io/fs"
	"os"
)

// IOError is a failed load or save of one file.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// IsNotExist reports whether err says the file does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

const newFileMode fs.FileMode = 0o644

// Disk implements the load/save contract with os calls.
type Disk struct{}

// Load returns the contents of path as text.
func (Disk) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "load", Path: path, Err: err}
	}
	return string(data), nil
}

// Save overwrites path with text. An existing file keeps its permission
// bits; a new one is created 0644.
func (Disk) Save(path, text string) error {
	mode := newFileMode
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return &IOError{Op: "save", Path: path, Err: errors.New("is a directory")}
		}
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}
