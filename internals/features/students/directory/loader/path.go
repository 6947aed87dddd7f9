package loader

import (
	"regexp"
	"strconv"

	"contatorapido_backend/internals/constants"
)

// Placement is the (grade, class) pair encoded in a data file's path.
type Placement struct {
	Grade constants.Grade
	Class constants.Class
}

// Last two segments only: "<n>-<suffix>/<L>.json". Anything in front is ignored.
var rePlacement = regexp.MustCompile(`(?:^|/)([1-9])-([a-z]+)/([A-E])\.json$`)

// ParseStudentPath maps a logical path to its placement.
// ok=false for paths outside the convention, unknown suffixes, and
// years the level does not have (e.g. "4-medio").
func ParseStudentPath(path string) (Placement, bool) {
	m := rePlacement.FindStringSubmatch(path)
	if m == nil {
		return Placement{}, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return Placement{}, false
	}
	grade, ok := constants.NewGrade(year, m[2])
	if !ok {
		return Placement{}, false
	}
	return Placement{Grade: grade, Class: constants.Class(m[3])}, true
}
