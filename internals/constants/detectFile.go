package constants

import (
	"path/filepath"
	"strings"
)

const DataFileExt = ".json"

// IsDataFile reports whether a bundled file should be read as a student list.
func IsDataFile(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == DataFileExt
}
