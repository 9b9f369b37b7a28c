// Package fsutil provides the file system lookups the evaluation engine
// needs.
package fsutil

import (
	"os"
	"time"
)

// Timestamp returns the modification time of the named file. Missing or
// unreadable files map to the zero time, which orders before any real
// modification time.
func Timestamp(name string) time.Time {
	st, err := os.Stat(name)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}
