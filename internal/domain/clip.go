package domain

import (
	"encoding/json"
	"fmt"

	"github.com/w3w-geocoder/internal/pkg/errors"
)

const clipField = "clip"

// ClipRegion restricts legacy autosuggest results to an area. The set of
// implementations is closed: NoClip, FocusClip, RadiusClip and BBoxClip.
type ClipRegion interface {
	fmt.Stringer
	Validate(field string) error
	isClipRegion()
}

// NoClip disables clipping.
type NoClip struct{}

// FocusClip clips to DistanceKm around the request's focus point.
type FocusClip struct {
	DistanceKm float64
}

// RadiusClip clips to DistanceKm around Center.
type RadiusClip struct {
	Center     Coordinate
	DistanceKm float64
}

// BBoxClip clips to a bounding box.
type BBoxClip struct {
	Box BoundingBox
}

func (NoClip) isClipRegion()     {}
func (FocusClip) isClipRegion()  {}
func (RadiusClip) isClipRegion() {}
func (BBoxClip) isClipRegion()   {}

func (NoClip) String() string { return "none" }

func (c FocusClip) String() string {
	return "focus(" + formatDistance(c.DistanceKm) + ")"
}

func (c RadiusClip) String() string {
	return "radius(" + c.Center.String() + "," + formatDistance(c.DistanceKm) + ")"
}

func (c BBoxClip) String() string {
	return "bbox(" + c.Box.CornerString() + ")"
}

func (NoClip) Validate(string) error { return nil }

func (c FocusClip) Validate(field string) error {
	return validateDistance(field, c.DistanceKm)
}

func (c RadiusClip) Validate(field string) error {
	if err := c.Center.Validate(field); err != nil {
		return err
	}
	return validateDistance(field, c.DistanceKm)
}

func (c BBoxClip) Validate(field string) error {
	return c.Box.Validate(field)
}

func NewFocusClip(distanceKm float64) (ClipRegion, error) {
	c := FocusClip{DistanceKm: distanceKm}
	if err := c.Validate(clipField); err != nil {
		return nil, err
	}
	return c, nil
}

func NewRadiusClip(center Coordinate, distanceKm float64) (ClipRegion, error) {
	c := RadiusClip{Center: center, DistanceKm: distanceKm}
	if err := c.Validate(clipField); err != nil {
		return nil, err
	}
	return c, nil
}

func NewBBoxClip(northEast, southWest Coordinate) (ClipRegion, error) {
	c := BBoxClip{Box: BoundingBox{NorthEast: northEast, SouthWest: southWest}}
	if err := c.Validate(clipField); err != nil {
		return nil, err
	}
	return c, nil
}

func validateDistance(field string, km float64) error {
	if !finite(km) || km <= 0 {
		return errors.InvalidShape(field, "clip distance must be a positive number of kilometres, got %v", km)
	}
	return nil
}

// clipJSON is the loosely typed wire form accepted from callers, e.g.
// {"type":"radius","lat":51.5,"lng":-0.1,"distance":5}.
type clipJSON struct {
	Type     string      `json:"type"`
	Lat      *float64    `json:"lat"`
	Lng      *float64    `json:"lng"`
	Distance *float64    `json:"distance"`
	NE       *Coordinate `json:"ne"`
	SW       *Coordinate `json:"sw"`
}

// ParseClipRegion decodes the JSON form of a clip region. Absent sub-fields
// are reported as InvalidParameterShape rather than defaulted.
func ParseClipRegion(data []byte) (ClipRegion, error) {
	var raw clipJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.InvalidShape(clipField, "malformed clip region: %v", err)
	}

	switch raw.Type {
	case "none":
		return NoClip{}, nil
	case "focus":
		if raw.Distance == nil {
			return nil, errors.InvalidShape(clipField, "focus clip requires distance")
		}
		return NewFocusClip(*raw.Distance)
	case "radius":
		if raw.Lat == nil || raw.Lng == nil {
			return nil, errors.InvalidShape(clipField, "radius clip requires lat and lng")
		}
		if raw.Distance == nil {
			return nil, errors.InvalidShape(clipField, "radius clip requires distance")
		}
		return NewRadiusClip(Coordinate{Lat: *raw.Lat, Lng: *raw.Lng}, *raw.Distance)
	case "bbox":
		if raw.NE == nil || raw.SW == nil {
			return nil, errors.InvalidShape(clipField, "bbox clip requires ne and sw")
		}
		return NewBBoxClip(*raw.NE, *raw.SW)
	case "":
		return nil, errors.InvalidShape(clipField, "clip region requires type")
	default:
		return nil, errors.InvalidShape(clipField, "unknown clip type %q", raw.Type)
	}
}

// ClipSpec lets a ClipRegion be embedded in JSON request bodies.
type ClipSpec struct {
	Region ClipRegion
}

func (s *ClipSpec) UnmarshalJSON(data []byte) error {
	region, err := ParseClipRegion(data)
	if err != nil {
		return err
	}
	s.Region = region
	return nil
}
