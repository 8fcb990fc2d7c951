package utils

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename strips path components and replaces whitespace so a
// user-supplied filename is safe to use in an object-storage key.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Join(strings.Fields(name), "_")
	name = strings.ReplaceAll(name, "/", "_")
	return name
}
