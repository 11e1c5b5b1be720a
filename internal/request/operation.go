package request

// APIVersion selects the base URL an operation is served under.
type APIVersion int

const (
	V3 APIVersion = iota
	V2
)

// Operation names a remote API call.
type Operation string

const (
	ConvertTo3wa         Operation = "convert-to-3wa"
	ConvertToCoordinates Operation = "convert-to-coordinates"
	Autosuggest          Operation = "autosuggest"
	GridSection          Operation = "grid-section"
	AvailableLanguages   Operation = "available-languages"

	// Legacy v2 operations.
	LegacyForward         Operation = "v2/forward"
	LegacyReverse         Operation = "v2/reverse"
	LegacyAutosuggest     Operation = "v2/autosuggest"
	LegacyAutosuggestML   Operation = "v2/autosuggest-ml"
	LegacyStandardBlend   Operation = "v2/standardblend"
	LegacyStandardBlendML Operation = "v2/standardblend-ml"
	LegacyGrid            Operation = "v2/grid"
	LegacyLanguages       Operation = "v2/languages"
)

type operationInfo struct {
	path    string
	version APIVersion
}

var operations = map[Operation]operationInfo{
	ConvertTo3wa:          {path: "convert-to-3wa", version: V3},
	ConvertToCoordinates:  {path: "convert-to-coordinates", version: V3},
	Autosuggest:           {path: "autosuggest", version: V3},
	GridSection:           {path: "grid-section", version: V3},
	AvailableLanguages:    {path: "available-languages", version: V3},
	LegacyForward:         {path: "forward", version: V2},
	LegacyReverse:         {path: "reverse", version: V2},
	LegacyAutosuggest:     {path: "autosuggest", version: V2},
	LegacyAutosuggestML:   {path: "autosuggest-ml", version: V2},
	LegacyStandardBlend:   {path: "standardblend", version: V2},
	LegacyStandardBlendML: {path: "standardblend-ml", version: V2},
	LegacyGrid:            {path: "grid", version: V2},
	LegacyLanguages:       {path: "languages", version: V2},
}

// Path is the URL path segment appended to the base URL.
func (o Operation) Path() string {
	return operations[o].path
}

func (o Operation) Version() APIVersion {
	return operations[o].version
}

// IsLegacySuggestion reports whether o is one of the v2 free text suggestion
// calls (autosuggest, standardblend and their multilingual variants).
func (o Operation) IsLegacySuggestion() bool {
	switch o {
	case LegacyAutosuggest, LegacyAutosuggestML, LegacyStandardBlend, LegacyStandardBlendML:
		return true
	}
	return false
}

// acceptsClip is false for the standardblend family, which has no clip parameter.
func (o Operation) acceptsClip() bool {
	return o == LegacyAutosuggest || o == LegacyAutosuggestML
}

func (o Operation) Known() bool {
	_, ok := operations[o]
	return ok
}

// Format is the response encoding requested from the API.
type Format string

const (
	FormatJSON    Format = "json"
	FormatGeoJSON Format = "geojson"
)

// InputType tells autosuggest whether the input came from text or a voice engine.
type InputType string

const (
	InputText         InputType = "text"
	InputVoconHybrid  InputType = "vocon-hybrid"
	InputNMDPASR      InputType = "nmdp-asr"
	InputGenericVoice InputType = "generic-voice"
)

func (t InputType) valid() bool {
	switch t {
	case InputText, InputVoconHybrid, InputNMDPASR, InputGenericVoice:
		return true
	}
	return false
}

// IsVoice reports whether t names a speech recognition engine.
func (t InputType) IsVoice() bool {
	return t.valid() && t != InputText
}

const DefaultLanguage = "en"
