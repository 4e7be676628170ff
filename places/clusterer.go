package places

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/trailglass/geocore/internal/stats"
	"github.com/trailglass/geocore/spatial"
)

// Default clustering parameters
const (
	DefaultClusterRadiusMeters = 50.0
	DefaultMinVisitsForPlace   = 2
)

// ClustererSettings holds the clustering tuning knobs
type ClustererSettings struct {
	ClusterRadiusMeters float64
	MinVisitsForPlace   int
}

// LoadClustererSettings reads the clustering parameters from environment
// variables, falling back to the defaults
func LoadClustererSettings() ClustererSettings {
	s := ClustererSettings{
		ClusterRadiusMeters: DefaultClusterRadiusMeters,
		MinVisitsForPlace:   DefaultMinVisitsForPlace,
	}

	if v := os.Getenv("PLACE_CLUSTER_RADIUS_M"); v != "" {
		if radius, err := strconv.ParseFloat(v, 64); err == nil && radius > 0 {
			s.ClusterRadiusMeters = radius
		}
	}
	if v := os.Getenv("PLACE_MIN_VISITS"); v != "" {
		if minVisits, err := strconv.Atoi(v); err == nil && minVisits > 0 {
			s.MinVisitsForPlace = minVisits
		}
	}

	return s
}

// Clusterer groups place visits into frequent places using greedy
// radius-based clustering. Each call is a pure function of its inputs; the
// clusterer itself holds no state between calls and is safe for concurrent
// use
type Clusterer struct {
	ClusterRadiusMeters float64
	MinVisitsForPlace   int

	categorizer Categorizer
	distance    spatial.DistanceAlgorithm
}

// NewClusterer creates a clusterer. categorizer must not be nil. A nil
// distance algorithm selects haversine; non-positive settings fall back to
// the defaults
func NewClusterer(categorizer Categorizer, distance spatial.DistanceAlgorithm, settings ClustererSettings) *Clusterer {
	if distance == nil {
		distance = spatial.HaversineDistance{}
	}

	radius := settings.ClusterRadiusMeters
	if radius <= 0 {
		radius = DefaultClusterRadiusMeters
	}
	minVisits := settings.MinVisitsForPlace
	if minVisits <= 0 {
		minVisits = DefaultMinVisitsForPlace
	}

	return &Clusterer{
		ClusterRadiusMeters: radius,
		MinVisitsForPlace:   minVisits,
		categorizer:         categorizer,
		distance:            distance,
	}
}

// ClusterVisits groups visits into frequent places. Visits are sorted by
// start time, then clustered in a greedy single pass: the first unclustered
// visit seeds a cluster and every remaining visit within the radius of that
// seed joins it. Clusters smaller than the minimum are dropped. The result
// is sorted by descending visit count. Empty input yields an empty result
func (c *Clusterer) ClusterVisits(visits []PlaceVisit, userID string) []FrequentPlace {
	if len(visits) == 0 {
		return []FrequentPlace{}
	}

	sorted := make([]PlaceVisit, len(visits))
	copy(sorted, visits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	// Membership is tested against the seed visit, not the running centroid,
	// so output is deterministic in sort order
	visited := make([]bool, len(sorted))
	var clusters [][]PlaceVisit
	for i := range sorted {
		if visited[i] {
			continue
		}
		visited[i] = true

		cluster := []PlaceVisit{sorted[i]}
		for j := i + 1; j < len(sorted); j++ {
			if visited[j] {
				continue
			}
			if c.distance.Calculate(sorted[i].Center, sorted[j].Center) <= c.ClusterRadiusMeters {
				cluster = append(cluster, sorted[j])
				visited[j] = true
			}
		}

		if len(cluster) >= c.MinVisitsForPlace {
			clusters = append(clusters, cluster)
		}
	}

	result := make([]FrequentPlace, 0, len(clusters))
	for _, cluster := range clusters {
		result = append(result, c.buildPlace(cluster, userID))
	}

	sortByVisitCount(result)
	return result
}

// UpdateFrequentPlaces folds new visits into existing places. A visit joins
// the nearest existing place whose centroid lies within the cluster radius;
// its duration and timestamps are folded in but the place's centroid and
// category stay untouched (only a full ClusterVisits pass recomputes those).
// Visits matching no place are clustered into new places. The result is
// re-sorted by descending visit count
func (c *Clusterer) UpdateFrequentPlaces(newVisits []PlaceVisit, existing []FrequentPlace, userID string) []FrequentPlace {
	updated := make([]FrequentPlace, len(existing))
	copy(updated, existing)

	var unmatched []PlaceVisit
	for _, visit := range newVisits {
		idx := c.nearestPlace(updated, visit)
		if idx == -1 {
			unmatched = append(unmatched, visit)
			continue
		}
		c.absorbVisit(&updated[idx], visit)
	}

	updated = append(updated, c.ClusterVisits(unmatched, userID)...)

	sortByVisitCount(updated)
	return updated
}

// nearestPlace returns the index of the closest place whose centroid is
// within the cluster radius of the visit, or -1 when none qualifies
func (c *Clusterer) nearestPlace(candidates []FrequentPlace, visit PlaceVisit) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, p := range candidates {
		d := c.distance.Calculate(p.Center, visit.Center)
		if d <= c.ClusterRadiusMeters && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// absorbVisit folds one visit into an existing place's aggregates
func (c *Clusterer) absorbVisit(place *FrequentPlace, visit PlaceVisit) {
	place.VisitCount++
	place.TotalDuration += visit.Duration()
	place.AvgDuration = place.TotalDuration / time.Duration(place.VisitCount)
	if visit.StartTime.Before(place.FirstVisit) {
		place.FirstVisit = visit.StartTime
	}
	if visit.EndTime.After(place.LastVisit) {
		place.LastVisit = visit.EndTime
	}
	place.Significance = c.categorizer.DetermineSignificance(place.VisitCount, place.TotalDuration, place.LastVisit)
}

// buildPlace aggregates one cluster of visits into a frequent place.
// The cluster is non-empty and already sorted by start time
func (c *Clusterer) buildPlace(cluster []PlaceVisit, userID string) FrequentPlace {
	centers := make([]spatial.Coordinate, len(cluster))
	for i, v := range cluster {
		centers[i] = v.Center
	}
	center := spatial.Centroid(centers)

	var radius float64
	var total time.Duration
	first := cluster[0].StartTime
	last := cluster[0].EndTime
	for _, v := range cluster {
		if d := c.distance.Calculate(center, v.Center); d > radius {
			radius = d
		}
		total += v.Duration()
		if v.StartTime.Before(first) {
			first = v.StartTime
		}
		if v.EndTime.After(last) {
			last = v.EndTime
		}
	}

	category, confidence := c.voteCategory(cluster)

	place := FrequentPlace{
		ID:            placeID(center, first),
		UserID:        userID,
		Center:        center,
		RadiusMeters:  radius,
		VisitCount:    len(cluster),
		TotalDuration: total,
		AvgDuration:   total / time.Duration(len(cluster)),
		FirstVisit:    first,
		LastVisit:     last,
		Category:      category,
		Confidence:    confidence,
		Significance:  c.categorizer.DetermineSignificance(len(cluster), total, last),
	}

	fillDescriptiveFields(&place, cluster)
	fillRegularity(&place, cluster)
	return place
}

// voteCategory picks the majority category across the cluster's visits.
// Confidence follows the vote consensus: at least 80% of the votes gives
// HIGH, at least 50% MEDIUM, anything less LOW
func (c *Clusterer) voteCategory(cluster []PlaceVisit) (PlaceCategory, Confidence) {
	votes := make(map[PlaceCategory]int, len(cluster))
	for i, v := range cluster {
		neighbors := make([]PlaceVisit, 0, len(cluster)-1)
		neighbors = append(neighbors, cluster[:i]...)
		neighbors = append(neighbors, cluster[i+1:]...)

		category, _ := c.categorizer.Categorize(v, neighbors)
		votes[category]++
	}

	var top PlaceCategory
	max := 0
	for category, n := range votes {
		// Lexicographic tie-break keeps the result deterministic
		if n > max || (n == max && category < top) {
			top = category
			max = n
		}
	}

	ratio := float64(max) / float64(len(cluster))
	switch {
	case ratio >= 0.8:
		return top, ConfidenceHigh
	case ratio >= 0.5:
		return top, ConfidenceMedium
	default:
		return top, ConfidenceLow
	}
}

// fillDescriptiveFields copies name/address/city/country from the most
// recent visit in the cluster that has any of them populated
func fillDescriptiveFields(place *FrequentPlace, cluster []PlaceVisit) {
	best := -1
	for i, v := range cluster {
		if v.Name == "" && v.Address == "" && v.City == "" && v.Country == "" {
			continue
		}
		if best == -1 || v.StartTime.After(cluster[best].StartTime) {
			best = i
		}
	}
	if best == -1 {
		return
	}

	v := cluster[best]
	place.Name = v.Name
	place.Address = v.Address
	place.City = v.City
	place.Country = v.Country
}

// fillRegularity derives revisit regularity from the gaps between successive
// visit starts. The regularity score is 1/(1+cv) where cv is the coefficient
// of variation of the intervals
func fillRegularity(place *FrequentPlace, cluster []PlaceVisit) {
	if len(cluster) < 2 {
		return
	}

	intervals := make([]float64, 0, len(cluster)-1)
	for i := 1; i < len(cluster); i++ {
		intervals = append(intervals, cluster[i].StartTime.Sub(cluster[i-1].StartTime).Hours())
	}

	avg := stats.Mean(intervals)
	if avg <= 0 {
		return
	}

	cv := stats.StdDev(intervals) / avg
	place.AvgIntervalHours = avg
	place.RegularityScore = 1.0 / (1.0 + cv)
	place.IsHabitual = place.VisitCount >= 5 && place.RegularityScore > 0.7
}

// placeID derives a deterministic key from the cluster centroid and the
// first visit time
func placeID(center spatial.Coordinate, first time.Time) string {
	return fmt.Sprintf("%s-%d", spatial.EncodeGeohash(center.Lat, center.Lon, 8), first.Unix())
}

func sortByVisitCount(result []FrequentPlace) {
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].VisitCount > result[j].VisitCount
	})
}
