package secret

import (
	"errors"
	"os"
)

// readFile reads the file at path; a missing file is reported as ok=false
// rather than an error.
func readFile(path string) (b []byte, ok bool, err error) {
	b, err = os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// loosePermissions reports whether a secret file is readable by group or others.
func loosePermissions(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().Perm()&0o077 != 0
}
