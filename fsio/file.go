package fsio

import (
	"fmt"
	"os"
)

// WriteString writes content to path as UTF-8, creating the file if needed
// and truncating any existing content.
func WriteString(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("fsio: write %s: %w", path, err)
	}
	return nil
}

// ReadString reads the entire file at path as a UTF-8 string.
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fsio: read %s: %w", path, err)
	}
	return string(data), nil
}
