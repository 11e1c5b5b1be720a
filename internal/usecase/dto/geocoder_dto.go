package dto

import (
	"encoding/json"

	"github.com/w3w-geocoder/internal/domain"
)

// ConvertTo3waRequest - coordinates to three word address
type ConvertTo3waRequest struct {
	Coordinates string `query:"coordinates" validate:"required"`
	Language    string `query:"language" validate:"omitempty,min=2,max=5"`
	Format      string `query:"format" validate:"omitempty,oneof=json geojson"`
}

// ConvertToCoordinatesRequest - three word address to coordinates
type ConvertToCoordinatesRequest struct {
	Words  string `query:"words" validate:"required,threewords"`
	Format string `query:"format" validate:"omitempty,oneof=json geojson"`
}

// ConvertResponse - result of either conversion. GeoJSON is set instead of
// the address when format=geojson was requested.
type ConvertResponse struct {
	*domain.ConvertedAddress
	GeoJSON json.RawMessage `json:"geojson,omitempty" swaggertype:"object"`
}

// AutosuggestRequest - autosuggest input and its clipping and focus options
type AutosuggestRequest struct {
	Input             string              `json:"input" validate:"required"`
	Language          string              `json:"language,omitempty" validate:"omitempty,min=2,max=5"`
	NResults          int                 `json:"n_results,omitempty" validate:"omitempty,min=1,max=100"`
	Focus             *domain.Coordinate  `json:"focus,omitempty"`
	NFocusResults     int                 `json:"n_focus_results,omitempty" validate:"omitempty,min=1,max=100"`
	InputType         string              `json:"input_type,omitempty" validate:"omitempty,oneof=text vocon-hybrid nmdp-asr generic-voice"`
	PreferLand        *bool               `json:"prefer_land,omitempty"`
	ClipToCountry     []string            `json:"clip_to_country,omitempty" validate:"omitempty,dive,country2"`
	ClipToCircle      *domain.Circle      `json:"clip_to_circle,omitempty"`
	ClipToBoundingBox *domain.BoundingBox `json:"clip_to_bounding_box,omitempty"`
	ClipToPolygon     []domain.Coordinate `json:"clip_to_polygon,omitempty"`
}

// AutosuggestResponse - ranked suggestions
type AutosuggestResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
	Total       int                 `json:"total"`
}

// GridSectionRequest - box in south_lat,west_lng,north_lat,east_lng form
type GridSectionRequest struct {
	BoundingBox string `query:"bounding-box" validate:"required"`
	Format      string `query:"format" validate:"omitempty,oneof=json geojson"`
}

type GridSectionResponse struct {
	*domain.GridSection
	GeoJSON json.RawMessage `json:"geojson,omitempty" swaggertype:"object"`
}

// AddressTextRequest - free text for the address matcher endpoints
type AddressTextRequest struct {
	Text string `query:"text" validate:"required"`
}

type PossibleResponse struct {
	Text     string `json:"text"`
	Possible bool   `json:"possible"`
}

type FindResponse struct {
	Matches []string `json:"matches"`
	Total   int      `json:"total"`
}

type ValidResponse struct {
	Text  string `json:"text"`
	Valid bool   `json:"valid"`
}

// LegacyAutosuggestRequest - v2 autosuggest, standardblend and their -ml variants
type LegacyAutosuggestRequest struct {
	Addr     string             `json:"addr" validate:"required"`
	Language string             `json:"lang,omitempty" validate:"omitempty,min=2,max=5"`
	Focus    *domain.Coordinate `json:"focus,omitempty"`
	Clip     *domain.ClipSpec   `json:"clip,omitempty" swaggertype:"object"`
}
