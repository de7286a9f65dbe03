// Package latitude turns human-written latitude strings such as "42 N",
// "42.5 N", "42,5,N" or "37'21 N" into a normalized models.Latitude.
//
// Input is split on '.', ',', '\'' and ' '. The first segment is the whole
// degree magnitude and the last, when there is more than one, is the N/S
// direction letter. Segments in between (arc-minutes and arc-seconds) are
// dropped: the tilt model works at whole-degree resolution.
package latitude

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/1F47E/sol/pkg/models"
)

// MaxDegrees is the largest accepted latitude magnitude
const MaxDegrees = 90

// Usage describes the accepted input shape for flag help
const Usage = `LAT is whole degrees, optional minutes and seconds, then N or S,
separated by spaces, '.', ',' or an apostrophe, e.g. "42 N", "42.5 N", "37'21 S"`

var (
	// ErrEmpty means the input had no segments at all
	ErrEmpty = errors.New("no latitude given")
	// ErrDegrees means the degree segment is not an integer in [0, 90]
	ErrDegrees = errors.New("degrees must be an integer between 0 and 90")
)

func isDelimiter(r rune) bool {
	return r == '.' || r == ',' || r == '\'' || r == ' '
}

// Parse converts s into a Latitude. It never fails: input that cannot be
// understood yields models.SentinelLatitude.
func Parse(s string) models.Latitude {
	lat, err := ParseStrict(s)
	if err != nil {
		return models.SentinelLatitude
	}
	return lat
}

// ParseStrict is Parse for callers that want to report why the input fell back.
// On error the returned value is already models.SentinelLatitude, so it can be
// used as is. An unrecognized direction letter is not an error; the hemisphere
// is left unspecified.
func ParseStrict(s string) (models.Latitude, error) {
	segments := strings.FieldsFunc(s, isDelimiter)
	if len(segments) == 0 {
		return models.SentinelLatitude, ErrEmpty
	}

	deg, err := parseDegrees(segments[0])
	if err != nil {
		return models.SentinelLatitude, err
	}

	lat := models.Latitude{Degrees: deg}
	if len(segments) > 1 {
		lat.Hemisphere = ParseDirection(segments[len(segments)-1])
	}
	return lat, nil
}

// ParseDirection maps "N"/"n" to North and "S"/"s" to South.
// Anything else is HemisphereUnspecified.
func ParseDirection(s string) models.Hemisphere {
	switch strings.ToLower(s) {
	case "n":
		return models.North
	case "s":
		return models.South
	default:
		return models.HemisphereUnspecified
	}
}

func parseDegrees(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDegrees, s)
	}
	if v > MaxDegrees {
		return 0, fmt.Errorf("%w: %d", ErrDegrees, v)
	}
	return uint8(v), nil
}
