package places

import (
	"time"

	"github.com/trailglass/geocore/spatial"
)

// FrequentPlace aggregates spatially co-located visits into one semantically
// meaningful location
type FrequentPlace struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	Center       spatial.Coordinate `json:"center"`
	RadiusMeters float64            `json:"radiusMeters"`

	VisitCount    int           `json:"visitCount"`
	TotalDuration time.Duration `json:"totalDuration"`
	AvgDuration   time.Duration `json:"avgDuration"`
	FirstVisit    time.Time     `json:"firstVisit"`
	LastVisit     time.Time     `json:"lastVisit"`

	Category     PlaceCategory `json:"category"`
	Confidence   Confidence    `json:"confidence"`
	Significance Significance  `json:"significance"`

	// Descriptive fields taken from the most recent visit that has any
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	// Revisit regularity derived from inter-visit intervals
	AvgIntervalHours float64 `json:"avgIntervalHours,omitempty"`
	RegularityScore  float64 `json:"regularityScore,omitempty"`
	IsHabitual       bool    `json:"isHabitual,omitempty"`

	// User customization; merged across recomputes, never derived
	Label      string `json:"label,omitempty"`
	Notes      string `json:"notes,omitempty"`
	IsFavorite bool   `json:"isFavorite,omitempty"`
}

// MergeCustomizations copies the user customization fields from a previous
// generation of places onto freshly recomputed ones, matched by ID. The
// aggregate statistics of the fresh places are left untouched
func MergeCustomizations(fresh, previous []FrequentPlace) []FrequentPlace {
	byID := make(map[string]FrequentPlace, len(previous))
	for _, p := range previous {
		byID[p.ID] = p
	}

	merged := make([]FrequentPlace, len(fresh))
	copy(merged, fresh)
	for i, p := range merged {
		prev, ok := byID[p.ID]
		if !ok {
			continue
		}
		merged[i].Label = prev.Label
		merged[i].Notes = prev.Notes
		merged[i].IsFavorite = prev.IsFavorite
	}

	return merged
}
