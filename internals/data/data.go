// Package data bundles the per-class student lists shipped with the binary.
// Layout: students/<n>-ano/<L>.json and students/<n>-medio/<L>.json.
package data

import (
	"embed"
	"io/fs"
)

//go:embed students
var bundle embed.FS

// Students returns the bundle rooted at the students directory, so paths
// look like "1-ano/A.json".
func Students() fs.FS {
	sub, err := fs.Sub(bundle, "students")
	if err != nil {
		// fs.Sub only fails on an invalid name; "students" is a constant.
		panic(err)
	}
	return sub
}
