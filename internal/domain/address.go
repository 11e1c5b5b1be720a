package domain

// Square is the 3m x 3m grid square a three word address refers to.
type Square struct {
	SouthWest Coordinate `json:"southwest"`
	NorthEast Coordinate `json:"northeast"`
}

// Box returns the square as a BoundingBox.
func (s Square) Box() BoundingBox {
	return BoundingBox{NorthEast: s.NorthEast, SouthWest: s.SouthWest}
}

// ConvertedAddress is returned by both convert-to-3wa and convert-to-coordinates.
type ConvertedAddress struct {
	Country      string     `json:"country"`
	Square       Square     `json:"square"`
	NearestPlace string     `json:"nearestPlace"`
	Coordinates  Coordinate `json:"coordinates"`
	Words        string     `json:"words"`
	Language     string     `json:"language"`
	Map          string     `json:"map"`
}

// Suggestion is one autosuggest candidate.
type Suggestion struct {
	Country           string   `json:"country"`
	NearestPlace      string   `json:"nearestPlace"`
	Words             string   `json:"words"`
	DistanceToFocusKm *float64 `json:"distanceToFocusKm,omitempty"`
	Rank              int      `json:"rank"`
	Language          string   `json:"language"`
}

type AutosuggestResult struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Words lists the address of every suggestion in rank order.
func (r *AutosuggestResult) Words() []string {
	words := make([]string, len(r.Suggestions))
	for i, s := range r.Suggestions {
		words[i] = s.Words
	}
	return words
}

// GridLine is one segment of the what3words grid.
type GridLine struct {
	Start Coordinate `json:"start"`
	End   Coordinate `json:"end"`
}

type GridSection struct {
	Lines []GridLine `json:"lines"`
}

// Language is a supported three word address language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

type Languages struct {
	Languages []Language `json:"languages"`
}

// APIError is the "error" object the API embeds in failed responses.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
