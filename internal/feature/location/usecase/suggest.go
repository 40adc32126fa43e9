// Package usecase implements the location suggestion engine and the
// current-location resolution flow.
package usecase

import "strings"

// DefaultGazetteer is the fixed list of known location names offered
// while typing, in display order.
var DefaultGazetteer = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai",
	"Kolkata", "Pune", "Ahmedabad", "Jaipur", "Surat",
}

// CurrentLocationLabel is the synthetic suggestion that triggers a
// geolocation lookup instead of naming a gazetteer entry.
const CurrentLocationLabel = "Use Current Location"

// Suggestion is one entry of the ranked suggestion list.
type Suggestion struct {
	Label string
	// UseCurrentLocation marks the synthetic entry; selecting it
	// starts the Field.UseCurrent flow rather than filling the label
	// in directly.
	UseCurrentLocation bool
}

// SuggestionEngine resolves partial location text against a fixed gazetteer.
type SuggestionEngine struct {
	gazetteer []string
}

// NewSuggestionEngine creates an engine over the given gazetteer,
// falling back to DefaultGazetteer when none is provided.
func NewSuggestionEngine(gazetteer []string) *SuggestionEngine {
	if len(gazetteer) == 0 {
		gazetteer = DefaultGazetteer
	}
	return &SuggestionEngine{gazetteer: gazetteer}
}

// Suggest returns the ranked suggestions for a partially typed query.
// The synthetic current-location entry always comes first. When the
// query exactly matches a gazetteer entry (case-insensitive) the whole
// gazetteer is offered: the user has committed to a known name, so all
// alternatives are shown instead of a single redundant echo. Otherwise
// entries containing the query as a case-insensitive substring are
// offered, minus the entry equal to the query itself.
func (e *SuggestionEngine) Suggest(query string) []Suggestion {
	out := []Suggestion{{Label: CurrentLocationLabel, UseCurrentLocation: true}}

	exact := false
	for _, name := range e.gazetteer {
		if strings.EqualFold(name, query) {
			exact = true
			break
		}
	}

	q := strings.ToLower(query)
	for _, name := range e.gazetteer {
		if exact {
			out = append(out, Suggestion{Label: name})
			continue
		}
		if strings.Contains(strings.ToLower(name), q) && !strings.EqualFold(name, query) {
			out = append(out, Suggestion{Label: name})
		}
	}

	return out
}
