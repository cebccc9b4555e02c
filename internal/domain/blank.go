package domain

import "bytes"

// IsBlank reports whether line is empty after trimming surrounding white
// space. The line terminator counts as white space.
func IsBlank(line []byte) bool {
	return len(bytes.TrimSpace(line)) == 0
}
