package models

import "fmt"

// Hemisphere tags which side of the equator a latitude lies on
type Hemisphere uint8

const (
	HemisphereUnspecified Hemisphere = iota
	North
	South
)

func (h Hemisphere) String() string {
	switch h {
	case North:
		return "north"
	case South:
		return "south"
	default:
		return "unspecified"
	}
}

// MarshalText implements encoding.TextMarshaler
func (h Hemisphere) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Latitude is an unsigned latitude magnitude in whole degrees plus a hemisphere tag.
// Degrees is always within [0, 90] when produced by the latitude parser.
type Latitude struct {
	Degrees    uint8      `json:"degrees"`
	Hemisphere Hemisphere `json:"hemisphere"`
}

// SentinelLatitude is returned when a latitude cannot be recovered from input
var SentinelLatitude = Latitude{Degrees: 0, Hemisphere: HemisphereUnspecified}

func (l Latitude) String() string {
	if l.Hemisphere == HemisphereUnspecified {
		return fmt.Sprintf("%d°", l.Degrees)
	}
	return fmt.Sprintf("%d° %s", l.Degrees, l.Hemisphere)
}

// Orientation is the cardinal direction a panel should face
type Orientation uint8

const (
	OrientationUnknown Orientation = iota
	FaceNorth
	FaceSouth
)

func (o Orientation) String() string {
	switch o {
	case FaceNorth:
		return "face_north"
	case FaceSouth:
		return "face_south"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// OrientationFor returns the equator-facing orientation for a hemisphere.
// A northern site faces south and a southern site faces north.
func OrientationFor(h Hemisphere) Orientation {
	switch h {
	case North:
		return FaceSouth
	case South:
		return FaceNorth
	default:
		return OrientationUnknown
	}
}

// TiltAdvisory is a year-round placement recommendation
type TiltAdvisory struct {
	Tilt        float64     `json:"tilt"`
	Orientation Orientation `json:"orientation"`
}

// SeasonalAdvisory is a placement recommendation for a panel re-tilted twice a year
type SeasonalAdvisory struct {
	Summer      float64     `json:"summer_tilt"`
	Winter      float64     `json:"winter_tilt"`
	Orientation Orientation `json:"orientation"`
}
