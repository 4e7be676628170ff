package places

import (
	"time"

	"github.com/trailglass/geocore/spatial"
)

// PlaceCategory classifies what kind of location a place is
type PlaceCategory string

// Place categories
const (
	CategoryHome      PlaceCategory = "HOME"
	CategoryWork      PlaceCategory = "WORK"
	CategoryFood      PlaceCategory = "FOOD"
	CategoryShopping  PlaceCategory = "SHOPPING"
	CategoryFitness   PlaceCategory = "FITNESS"
	CategoryTransit   PlaceCategory = "TRANSIT"
	CategoryEducation PlaceCategory = "EDUCATION"
	CategoryLeisure   PlaceCategory = "LEISURE"
	CategoryOther     PlaceCategory = "OTHER"
)

// Confidence describes how certain a category label is
type Confidence string

// Confidence levels
const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// Significance describes how important a place is to the user
type Significance string

// Significance levels
const (
	SignificanceLow    Significance = "LOW"
	SignificanceMedium Significance = "MEDIUM"
	SignificanceHigh   Significance = "HIGH"
)

// PlaceVisit is a time-bounded stay at a location. Visits are produced by
// upstream visit detection and consumed read-only here
type PlaceVisit struct {
	ID        string             `json:"id"`
	Center    spatial.Coordinate `json:"center"`
	StartTime time.Time          `json:"startTime"`
	EndTime   time.Time          `json:"endTime"`

	// Optional human-readable metadata
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	Category     PlaceCategory `json:"category,omitempty"`
	Confidence   Confidence    `json:"confidence,omitempty"`
	Significance Significance  `json:"significance,omitempty"`

	// Key of the frequent place this visit was assigned to, if any
	FrequentPlaceID string `json:"frequentPlaceId,omitempty"`
}

// Duration returns the length of the stay
func (v PlaceVisit) Duration() time.Duration {
	return v.EndTime.Sub(v.StartTime)
}

// Categorizer infers category and significance for clustered visits.
// It is supplied by the caller
type Categorizer interface {
	// Categorize infers the category of a visit given the other visits in
	// its cluster
	Categorize(visit PlaceVisit, neighbors []PlaceVisit) (PlaceCategory, Confidence)

	// DetermineSignificance rates a place given how often, how long and how
	// recently it was visited
	DetermineSignificance(visitCount int, totalDuration time.Duration, lastVisit time.Time) Significance
}
