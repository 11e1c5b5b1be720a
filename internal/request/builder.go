package request

import (
	"fmt"
	"strings"

	"github.com/w3w-geocoder/internal/domain"
	"github.com/w3w-geocoder/internal/pkg/errors"
)

// Params is the typed input to Build. Each operation reads only the fields
// it recognises and ignores the rest.
type Params struct {
	Coordinates *domain.Coordinate
	Words       string
	Input       string
	BoundingBox *domain.BoundingBox
	Language    string
	Format      Format
	Options     []AutosuggestOption

	// Legacy v2 autosuggest and standardblend only.
	Focus *domain.Coordinate
	Clip  domain.ClipRegion
}

// Spec is a fully validated request, ready for the HTTP executor.
type Spec struct {
	Operation Operation
	Query     Values
}

func (s *Spec) Path() string {
	return s.Operation.Path()
}

// Encode returns the query string without a leading '?'.
func (s *Spec) Encode() string {
	return s.Query.Encode()
}

// URL joins base, the operation path and the query. base is expected to end in '/'.
func (s *Spec) URL(base string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u := base + s.Path()
	if q := s.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// Build validates p for op and encodes it into the API's query vocabulary.
// Required fields come first, then defaulted and optional fields in a fixed
// per-operation order. Build has no side effects.
func Build(op Operation, p Params) (*Spec, error) {
	var (
		q   Values
		err error
	)

	switch op {
	case ConvertTo3wa:
		q, err = buildConvertTo3wa(p)
	case ConvertToCoordinates:
		q, err = buildConvertToCoordinates(p)
	case Autosuggest:
		q, err = buildAutosuggest(p)
	case GridSection:
		q, err = buildGridSection(p)
	case AvailableLanguages:
		q, err = buildAvailableLanguages(p)
	case LegacyForward, LegacyReverse, LegacyAutosuggest, LegacyAutosuggestML,
		LegacyStandardBlend, LegacyStandardBlendML, LegacyGrid, LegacyLanguages:
		q, err = buildLegacy(op, p)
	default:
		return nil, errors.InvalidShape("operation", "unknown operation %q", op)
	}
	if err != nil {
		return nil, err
	}

	return &Spec{Operation: op, Query: q}, nil
}

func buildConvertTo3wa(p Params) (Values, error) {
	if p.Coordinates == nil {
		return nil, errors.MissingField("coordinates")
	}
	if err := p.Coordinates.Validate("coordinates"); err != nil {
		return nil, err
	}
	format, err := formatOrDefault(p.Format, FormatJSON, FormatGeoJSON)
	if err != nil {
		return nil, err
	}

	var q Values
	q.set("coordinates", p.Coordinates.String())
	q.set(KeyLanguage, languageOrDefault(p.Language))
	q.set(KeyFormat, string(format))
	return q, nil
}

func buildConvertToCoordinates(p Params) (Values, error) {
	words := strings.TrimSpace(p.Words)
	if words == "" {
		return nil, errors.MissingField("words")
	}
	format, err := formatOrDefault(p.Format, FormatJSON, FormatGeoJSON)
	if err != nil {
		return nil, err
	}

	var q Values
	q.set("words", words)
	q.set(KeyFormat, string(format))
	return q, nil
}

func buildAutosuggest(p Params) (Values, error) {
	if strings.TrimSpace(p.Input) == "" {
		return nil, errors.MissingField(KeyInput)
	}
	format, err := formatOrDefault(p.Format, FormatJSON)
	if err != nil {
		return nil, err
	}

	merged := map[string]string{
		KeyInput:  p.Input,
		KeyFormat: string(format),
	}
	if p.Language != "" {
		merged[KeyLanguage] = p.Language
	}
	for _, opt := range p.Options {
		if opt.key == "" {
			return nil, errors.InvalidShape("options", "zero value option")
		}
		if err := opt.check(); err != nil {
			return nil, err
		}
		merged[opt.key] = opt.value
	}

	_, explicitLanguage := merged[KeyLanguage]
	if InputType(merged[KeyInputType]).IsVoice() && !explicitLanguage {
		return nil, errors.MissingField(KeyLanguage)
	}
	if !explicitLanguage {
		merged[KeyLanguage] = DefaultLanguage
	}

	q := make(Values, 0, len(merged))
	for _, key := range autosuggestOrder {
		if v, ok := merged[key]; ok {
			q.set(key, v)
		}
	}
	return q, nil
}

func buildGridSection(p Params) (Values, error) {
	if p.BoundingBox == nil {
		return nil, errors.MissingField("bounding-box")
	}
	if err := p.BoundingBox.Validate("bounding-box"); err != nil {
		return nil, err
	}
	format, err := formatOrDefault(p.Format, FormatJSON, FormatGeoJSON)
	if err != nil {
		return nil, err
	}

	var q Values
	q.set("bounding-box", p.BoundingBox.String())
	q.set(KeyFormat, string(format))
	return q, nil
}

func buildAvailableLanguages(p Params) (Values, error) {
	format, err := formatOrDefault(p.Format, FormatJSON)
	if err != nil {
		return nil, err
	}

	var q Values
	q.set(KeyFormat, string(format))
	return q, nil
}

func languageOrDefault(language string) string {
	if language == "" {
		return DefaultLanguage
	}
	return language
}

// formatOrDefault returns allowed[0] for an empty format.
func formatOrDefault(f Format, allowed ...Format) (Format, error) {
	if f == "" {
		return allowed[0], nil
	}
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return "", errors.InvalidShape(KeyFormat, "unsupported format %q, expected one of %s", f, joinFormats(allowed))
}

func joinFormats(formats []Format) string {
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = fmt.Sprintf("%q", f)
	}
	return strings.Join(parts, ", ")
}
