// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL's command history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const name = ".lisp_history"

// Load calls read with the history file, if it exists.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	defer f.Close()

	err = lock(f, false)
	if err != nil {
		return err
	}

	defer unlock(f) //nolint:errcheck

	_, err = read(f)

	return err
}

// Save calls write with the truncated history file.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(path(), os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	err = lock(f, true)
	if err != nil {
		f.Close()

		return err
	}

	// The file is only truncated while the lock is held.
	err = f.Truncate(0)
	if err == nil {
		_, err = write(f)
	}

	uerr := unlock(f)

	cerr := f.Close()

	switch {
	case err != nil:
		return err
	case uerr != nil:
		return uerr
	}

	return cerr
}

func path() string {
	return filepath.Join(os.Getenv("HOME"), name)
}
