package repository

import (
	"context"
	"encoding/json"

	"github.com/w3w-geocoder/internal/domain"
	"github.com/w3w-geocoder/internal/request"
)

// GeocoderRepository is the remote what3words API.
type GeocoderRepository interface {
	// ConvertTo3wa returns the three word address of the square containing coord.
	ConvertTo3wa(ctx context.Context, coord domain.Coordinate, language string) (*domain.ConvertedAddress, error)

	// ConvertToCoordinates resolves a three word address to its square.
	ConvertToCoordinates(ctx context.Context, words string) (*domain.ConvertedAddress, error)

	// Autosuggest returns candidate addresses for partial or mistyped input.
	Autosuggest(ctx context.Context, input string, opts ...request.AutosuggestOption) (*domain.AutosuggestResult, error)

	GridSection(ctx context.Context, box domain.BoundingBox) (*domain.GridSection, error)

	AvailableLanguages(ctx context.Context) (*domain.Languages, error)

	// IsValid3wa reports whether text is an existing three word address.
	IsValid3wa(ctx context.Context, text string) (bool, error)

	// Raw builds and runs any operation and returns the undecoded body.
	// Used for geojson output and the legacy v2 API.
	Raw(ctx context.Context, op request.Operation, params request.Params) (json.RawMessage, error)
}
