package spatial

import (
	"os"
)

// DistanceAlgorithmType selects a distance implementation
type DistanceAlgorithmType string

// Distance algorithm selections
const (
	DistanceHaversine DistanceAlgorithmType = "HAVERSINE"
	DistanceVincenty  DistanceAlgorithmType = "VINCENTY"
	DistanceSimple    DistanceAlgorithmType = "SIMPLE"
)

// BearingAlgorithmType selects a bearing implementation
type BearingAlgorithmType string

// Bearing algorithm selections
const (
	BearingInitial   BearingAlgorithmType = "INITIAL"
	BearingFinal     BearingAlgorithmType = "FINAL"
	BearingRhumbLine BearingAlgorithmType = "RHUMB_LINE"
)

// InterpolationAlgorithmType selects an interpolation implementation
type InterpolationAlgorithmType string

// Interpolation algorithm selections
const (
	InterpolationLinear InterpolationAlgorithmType = "LINEAR"
	InterpolationSlerp  InterpolationAlgorithmType = "SLERP"
	InterpolationCubic  InterpolationAlgorithmType = "CUBIC"
)

// NewDistanceAlgorithm maps a selection to a fresh implementation.
// Unknown values fall back to haversine
func NewDistanceAlgorithm(t DistanceAlgorithmType) DistanceAlgorithm {
	switch t {
	case DistanceVincenty:
		return VincentyDistance{}
	case DistanceSimple:
		return SimpleDistance{}
	default:
		return HaversineDistance{}
	}
}

// NewBearingAlgorithm maps a selection to a fresh implementation.
// Unknown values fall back to the initial bearing
func NewBearingAlgorithm(t BearingAlgorithmType) BearingAlgorithm {
	switch t {
	case BearingFinal:
		return FinalBearing{}
	case BearingRhumbLine:
		return RhumbLineBearing{}
	default:
		return InitialBearing{}
	}
}

// NewInterpolationAlgorithm maps a selection to a fresh implementation.
// Unknown values fall back to spherical interpolation
func NewInterpolationAlgorithm(t InterpolationAlgorithmType) InterpolationAlgorithm {
	switch t {
	case InterpolationLinear:
		return LinearInterpolation{}
	case InterpolationCubic:
		return CubicInterpolation{}
	default:
		return SlerpInterpolation{}
	}
}

// AlgorithmSettings is the immutable algorithm selection triple
type AlgorithmSettings struct {
	Distance      DistanceAlgorithmType
	Bearing       BearingAlgorithmType
	Interpolation InterpolationAlgorithmType
}

// DefaultSettings returns the default algorithm selections
func DefaultSettings() AlgorithmSettings {
	return AlgorithmSettings{
		Distance:      DistanceHaversine,
		Bearing:       BearingInitial,
		Interpolation: InterpolationSlerp,
	}
}

// LoadSettings reads the algorithm selections from environment variables,
// falling back to the defaults
func LoadSettings() AlgorithmSettings {
	s := DefaultSettings()

	if v := os.Getenv("GEO_DISTANCE_ALGORITHM"); v != "" {
		s.Distance = DistanceAlgorithmType(v)
	}
	if v := os.Getenv("GEO_BEARING_ALGORITHM"); v != "" {
		s.Bearing = BearingAlgorithmType(v)
	}
	if v := os.Getenv("GEO_INTERPOLATION_ALGORITHM"); v != "" {
		s.Interpolation = InterpolationAlgorithmType(v)
	}

	return s
}

// Provider maps the current settings to concrete algorithm instances on every
// access, so a settings change takes effect without restart
type Provider struct {
	settings func() AlgorithmSettings
}

// NewProvider creates a provider backed by a settings source. A nil source
// means the defaults
func NewProvider(settings func() AlgorithmSettings) *Provider {
	if settings == nil {
		settings = DefaultSettings
	}
	return &Provider{settings: settings}
}

// Distance returns the currently selected distance algorithm
func (p *Provider) Distance() DistanceAlgorithm {
	return NewDistanceAlgorithm(p.settings().Distance)
}

// Bearing returns the currently selected bearing algorithm
func (p *Provider) Bearing() BearingAlgorithm {
	return NewBearingAlgorithm(p.settings().Bearing)
}

// Interpolation returns the currently selected interpolation algorithm
func (p *Provider) Interpolation() InterpolationAlgorithm {
	return NewInterpolationAlgorithm(p.settings().Interpolation)
}
