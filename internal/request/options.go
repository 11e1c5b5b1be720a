package request

import (
	"slices"
	"strconv"
	"strings"

	"github.com/w3w-geocoder/internal/domain"
	"github.com/w3w-geocoder/internal/pkg/errors"
)

// Autosuggest parameter keys, in the order they are emitted.
const (
	KeyInput             = "input"
	KeyLanguage          = "language"
	KeyNResults          = "n-results"
	KeyFocus             = "focus"
	KeyNFocusResults     = "n-focus-results"
	KeyInputType         = "input-type"
	KeyPreferLand        = "prefer-land"
	KeyClipToCountry     = "clip-to-country"
	KeyClipToCircle      = "clip-to-circle"
	KeyClipToBoundingBox = "clip-to-bounding-box"
	KeyClipToPolygon     = "clip-to-polygon"
	KeyFormat            = "format"
)

var autosuggestOrder = []string{
	KeyInput,
	KeyLanguage,
	KeyNResults,
	KeyFocus,
	KeyNFocusResults,
	KeyInputType,
	KeyPreferLand,
	KeyClipToCountry,
	KeyClipToCircle,
	KeyClipToBoundingBox,
	KeyClipToPolygon,
	KeyFormat,
}

// AutosuggestOption is one autosuggest parameter. Options are plain values:
// build them with the functions below and pass any number to Build.
type AutosuggestOption struct {
	key      string
	value    string
	validate func() error
}

func (o AutosuggestOption) Key() string   { return o.key }
func (o AutosuggestOption) Value() string { return o.value }

func (o AutosuggestOption) check() error {
	if o.validate == nil {
		return nil
	}
	return o.validate()
}

// FallbackLanguage guides autosuggest when text input is messy. Voice input
// requires it.
func FallbackLanguage(language string) AutosuggestOption {
	return AutosuggestOption{
		key:   KeyLanguage,
		value: language,
		validate: func() error {
			if strings.TrimSpace(language) == "" {
				return errors.InvalidShape(KeyLanguage, "language must not be empty")
			}
			return nil
		},
	}
}

// NumberResults sets how many suggestions to return. The API caps it at 100.
func NumberResults(n int) AutosuggestOption {
	return AutosuggestOption{
		key:      KeyNResults,
		value:    strconv.Itoa(n),
		validate: positive(KeyNResults, n),
	}
}

// Focus weights results towards a point without excluding distant ones.
func Focus(c domain.Coordinate) AutosuggestOption {
	return AutosuggestOption{
		key:      KeyFocus,
		value:    c.String(),
		validate: func() error { return c.Validate(KeyFocus) },
	}
}

// NumberFocusResults limits how many of the results honour the focus.
func NumberFocusResults(n int) AutosuggestOption {
	return AutosuggestOption{
		key:      KeyNFocusResults,
		value:    strconv.Itoa(n),
		validate: positive(KeyNFocusResults, n),
	}
}

func InputTypeOption(t InputType) AutosuggestOption {
	return AutosuggestOption{
		key:   KeyInputType,
		value: string(t),
		validate: func() error {
			if !t.valid() {
				return errors.InvalidShape(KeyInputType, "unsupported input type %q", t)
			}
			return nil
		},
	}
}

func PreferLand(land bool) AutosuggestOption {
	return AutosuggestOption{key: KeyPreferLand, value: strconv.FormatBool(land)}
}

// ClipToCountry restricts results to ISO 3166-1 alpha-2 countries.
func ClipToCountry(countries ...string) AutosuggestOption {
	countries = slices.Clone(countries)
	return AutosuggestOption{
		key:   KeyClipToCountry,
		value: strings.Join(countries, ","),
		validate: func() error {
			if len(countries) == 0 {
				return errors.InvalidShape(KeyClipToCountry, "at least one country code is required")
			}
			for _, c := range countries {
				if !IsCountryCode(c) {
					return errors.InvalidShape(KeyClipToCountry, "%q is not a two letter country code", c)
				}
			}
			return nil
		},
	}
}

func ClipToCircle(center domain.Coordinate, radiusKm float64) AutosuggestOption {
	circle := domain.Circle{Center: center, RadiusKm: radiusKm}
	return AutosuggestOption{
		key:      KeyClipToCircle,
		value:    circle.String(),
		validate: func() error { return circle.Validate(KeyClipToCircle) },
	}
}

func ClipToBoundingBox(box domain.BoundingBox) AutosuggestOption {
	return AutosuggestOption{
		key:      KeyClipToBoundingBox,
		value:    box.String(),
		validate: func() error { return box.Validate(KeyClipToBoundingBox) },
	}
}

// ClipToPolygon restricts results to a closed ring of at least four points.
func ClipToPolygon(points ...domain.Coordinate) AutosuggestOption {
	polygon := domain.Polygon(slices.Clone(points))
	return AutosuggestOption{
		key:      KeyClipToPolygon,
		value:    polygon.String(),
		validate: func() error { return polygon.Validate(KeyClipToPolygon) },
	}
}

// IsCountryCode reports whether s is two ASCII letters, in either case.
func IsCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func positive(field string, n int) func() error {
	return func() error {
		if n <= 0 {
			return errors.InvalidShape(field, "must be greater than zero, got %d", n)
		}
		return nil
	}
}
