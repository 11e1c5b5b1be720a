package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/w3w-geocoder/internal/pkg/errors"
)

// Coordinate is a WGS84 point. Longitude may exceed ±180 for boxes that cross
// the anti-meridian and is passed to the API unchanged.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String encodes the coordinate as "lat,lng" with six fixed decimals.
func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// Validate checks the latitude range and rejects non-finite values.
func (c Coordinate) Validate(field string) error {
	if !finite(c.Lat) || !finite(c.Lng) {
		return errors.InvalidShape(field, "coordinate must be finite, got %v,%v", c.Lat, c.Lng)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return errors.InvalidShape(field, "latitude must be within [-90, 90], got %v", c.Lat)
	}
	return nil
}

// BoundingBox is described by its north-east and south-west corners.
type BoundingBox struct {
	NorthEast Coordinate `json:"ne"`
	SouthWest Coordinate `json:"sw"`
}

// String is the v3 wire form: south_lat,west_lng,north_lat,east_lng.
func (b BoundingBox) String() string {
	return fmt.Sprintf("%f,%f,%f,%f",
		b.SouthWest.Lat, b.SouthWest.Lng,
		b.NorthEast.Lat, b.NorthEast.Lng)
}

// CornerString lists the north-east corner before the south-west one:
// ne_lat,ne_lng,sw_lat,sw_lng.
func (b BoundingBox) CornerString() string {
	return b.NorthEast.String() + "," + b.SouthWest.String()
}

func (b BoundingBox) Validate(field string) error {
	if err := b.NorthEast.Validate(field); err != nil {
		return err
	}
	if err := b.SouthWest.Validate(field); err != nil {
		return err
	}
	if b.NorthEast.Lat < b.SouthWest.Lat {
		return errors.InvalidShape(field, "north-east latitude %v is below south-west latitude %v",
			b.NorthEast.Lat, b.SouthWest.Lat)
	}
	return nil
}

// Circle restricts results to RadiusKm around Center.
type Circle struct {
	Center   Coordinate `json:"center"`
	RadiusKm float64    `json:"radius_km"`
}

// String encodes the circle as "lat,lng,km".
func (c Circle) String() string {
	return c.Center.String() + "," + formatDistance(c.RadiusKm)
}

func (c Circle) Validate(field string) error {
	if err := c.Center.Validate(field); err != nil {
		return err
	}
	if !finite(c.RadiusKm) || c.RadiusKm <= 0 {
		return errors.InvalidShape(field, "radius must be a positive number of kilometres, got %v", c.RadiusKm)
	}
	return nil
}

// MinPolygonPoints is the smallest closed ring the API accepts.
const MinPolygonPoints = 4

// Polygon is a closed ring: the first point is repeated as the last.
type Polygon []Coordinate

// String flattens the ring as lat,lng,lat,lng,...
func (p Polygon) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func (p Polygon) Validate(field string) error {
	if len(p) < MinPolygonPoints {
		return errors.InvalidShape(field, "polygon needs at least %d points, got %d", MinPolygonPoints, len(p))
	}
	for _, c := range p {
		if err := c.Validate(field); err != nil {
			return err
		}
	}
	if p[0] != p[len(p)-1] {
		return errors.InvalidShape(field, "polygon is not closed: first point %s differs from last point %s",
			p[0], p[len(p)-1])
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// formatDistance renders kilometres without trailing zeros ("10", "2.5").
func formatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}

// ParseCoordinate reads the "lat,lng" form produced by Coordinate.String.
func ParseCoordinate(field, s string) (Coordinate, error) {
	v, err := parseFloats(field, s, 2)
	if err != nil {
		return Coordinate{}, err
	}
	c := Coordinate{Lat: v[0], Lng: v[1]}
	return c, c.Validate(field)
}

// ParseBoundingBox reads the v3 wire form south_lat,west_lng,north_lat,east_lng.
func ParseBoundingBox(field, s string) (BoundingBox, error) {
	v, err := parseFloats(field, s, 4)
	if err != nil {
		return BoundingBox{}, err
	}
	b := BoundingBox{
		SouthWest: Coordinate{Lat: v[0], Lng: v[1]},
		NorthEast: Coordinate{Lat: v[2], Lng: v[3]},
	}
	return b, b.Validate(field)
}

func parseFloats(field, s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.InvalidShape(field, "expected %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.InvalidShape(field, "%q is not a number", p)
		}
		out[i] = f
	}
	return out, nil
}
