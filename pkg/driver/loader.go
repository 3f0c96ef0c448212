package driver

import (
	"bytes"
	"fmt"
	"os"
)

// ConcatSources joins source buffers in order, inserting a newline after
// any buffer that does not already end with one so that the last line of
// one file never runs into the first line of the next.
func ConcatSources(parts ...[]byte) []byte {
	size := 0
	for _, part := range parts {
		size += len(part) + 1
	}
	var buf bytes.Buffer
	buf.Grow(size)
	for idx, part := range parts {
		buf.Write(part)
		if idx < len(parts)-1 && len(part) > 0 && part[len(part)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// LoadFiles reads each path in order and concatenates the contents.
func LoadFiles(paths []string) ([]byte, error) {
	parts := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loader: read %s: %w", path, err)
		}
		parts = append(parts, data)
	}
	return ConcatSources(parts...), nil
}
