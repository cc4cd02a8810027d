// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive history file.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// Load calls read with the contents of the history file at path. An empty
// path or a missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save calls write to replace the history file at path. An empty path
// disables saving.
func Save(path string, write func(w io.Writer) (int, error)) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
