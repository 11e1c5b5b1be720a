package request

import (
	"strings"

	"github.com/w3w-geocoder/internal/domain"
	"github.com/w3w-geocoder/internal/pkg/errors"
)

// Legacy v2 parameter names.
const (
	legacyKeyAddr   = "addr"
	legacyKeyCoords = "coords"
	legacyKeyLang   = "lang"
	legacyKeyFocus  = "focus"
	legacyKeyClip   = "clip"
	legacyKeyBBox   = "bbox"
)

func buildLegacy(op Operation, p Params) (Values, error) {
	format, err := formatOrDefault(p.Format, FormatJSON, FormatGeoJSON)
	if err != nil {
		return nil, err
	}

	var q Values
	switch op {
	case LegacyForward:
		words := strings.TrimSpace(p.Words)
		if words == "" {
			return nil, errors.MissingField(legacyKeyAddr)
		}
		q.set(legacyKeyAddr, words)
		q.set(legacyKeyLang, languageOrDefault(p.Language))

	case LegacyReverse:
		if p.Coordinates == nil {
			return nil, errors.MissingField(legacyKeyCoords)
		}
		if err := p.Coordinates.Validate(legacyKeyCoords); err != nil {
			return nil, err
		}
		q.set(legacyKeyCoords, p.Coordinates.String())
		q.set(legacyKeyLang, languageOrDefault(p.Language))

	case LegacyAutosuggest, LegacyAutosuggestML, LegacyStandardBlend, LegacyStandardBlendML:
		if strings.TrimSpace(p.Input) == "" {
			return nil, errors.MissingField(legacyKeyAddr)
		}
		q.set(legacyKeyAddr, p.Input)
		q.set(legacyKeyLang, languageOrDefault(p.Language))
		if p.Focus != nil {
			if err := p.Focus.Validate(legacyKeyFocus); err != nil {
				return nil, err
			}
			q.set(legacyKeyFocus, p.Focus.String())
		}
		if p.Clip != nil && !op.acceptsClip() {
			return nil, errors.InvalidShape(legacyKeyClip, "%s does not accept clip", op.Path())
		}
		if p.Clip != nil {
			if err := legacyClip(p.Clip, p.Focus); err != nil {
				return nil, err
			}
			q.set(legacyKeyClip, p.Clip.String())
		}

	case LegacyGrid:
		if p.BoundingBox == nil {
			return nil, errors.MissingField(legacyKeyBBox)
		}
		if err := p.BoundingBox.Validate(legacyKeyBBox); err != nil {
			return nil, err
		}
		q.set(legacyKeyBBox, p.BoundingBox.CornerString())

	case LegacyLanguages:
	}

	q.set(KeyFormat, string(format))
	return q, nil
}

// legacyClip validates a clip region; focus(d) is relative to the focus
// parameter and cannot be sent without it.
func legacyClip(clip domain.ClipRegion, focus *domain.Coordinate) error {
	if err := clip.Validate(legacyKeyClip); err != nil {
		return err
	}
	if _, ok := clip.(domain.FocusClip); ok && focus == nil {
		return errors.MissingField(legacyKeyFocus)
	}
	return nil
}
