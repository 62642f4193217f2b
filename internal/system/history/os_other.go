// Released under an MIT license. See LICENSE.

//go:build !unix

package history

import (
	"os"
)

func lock(_ *os.File, _ bool) error {
	return nil
}

func unlock(_ *os.File) error {
	return nil
}
