package spatial

import (
	"testing"
)

func TestNewDistanceAlgorithm(t *testing.T) {
	if _, ok := NewDistanceAlgorithm(DistanceHaversine).(HaversineDistance); !ok {
		t.Error("HAVERSINE did not select HaversineDistance")
	}
	if _, ok := NewDistanceAlgorithm(DistanceVincenty).(VincentyDistance); !ok {
		t.Error("VINCENTY did not select VincentyDistance")
	}
	if _, ok := NewDistanceAlgorithm(DistanceSimple).(SimpleDistance); !ok {
		t.Error("SIMPLE did not select SimpleDistance")
	}
	if _, ok := NewDistanceAlgorithm("BOGUS").(HaversineDistance); !ok {
		t.Error("unknown selection did not fall back to HaversineDistance")
	}
}

func TestNewBearingAlgorithm(t *testing.T) {
	if _, ok := NewBearingAlgorithm(BearingInitial).(InitialBearing); !ok {
		t.Error("INITIAL did not select InitialBearing")
	}
	if _, ok := NewBearingAlgorithm(BearingFinal).(FinalBearing); !ok {
		t.Error("FINAL did not select FinalBearing")
	}
	if _, ok := NewBearingAlgorithm(BearingRhumbLine).(RhumbLineBearing); !ok {
		t.Error("RHUMB_LINE did not select RhumbLineBearing")
	}
	if _, ok := NewBearingAlgorithm("").(InitialBearing); !ok {
		t.Error("unknown selection did not fall back to InitialBearing")
	}
}

func TestNewInterpolationAlgorithm(t *testing.T) {
	if _, ok := NewInterpolationAlgorithm(InterpolationLinear).(LinearInterpolation); !ok {
		t.Error("LINEAR did not select LinearInterpolation")
	}
	if _, ok := NewInterpolationAlgorithm(InterpolationSlerp).(SlerpInterpolation); !ok {
		t.Error("SLERP did not select SlerpInterpolation")
	}
	if _, ok := NewInterpolationAlgorithm(InterpolationCubic).(CubicInterpolation); !ok {
		t.Error("CUBIC did not select CubicInterpolation")
	}
	if _, ok := NewInterpolationAlgorithm("BOGUS").(SlerpInterpolation); !ok {
		t.Error("unknown selection did not fall back to SlerpInterpolation")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("GEO_DISTANCE_ALGORITHM", "")
	t.Setenv("GEO_BEARING_ALGORITHM", "")
	t.Setenv("GEO_INTERPOLATION_ALGORITHM", "")

	got := LoadSettings()
	if got != DefaultSettings() {
		t.Errorf("got %+v, want defaults %+v", got, DefaultSettings())
	}
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	t.Setenv("GEO_DISTANCE_ALGORITHM", "VINCENTY")
	t.Setenv("GEO_BEARING_ALGORITHM", "RHUMB_LINE")
	t.Setenv("GEO_INTERPOLATION_ALGORITHM", "CUBIC")

	got := LoadSettings()
	want := AlgorithmSettings{
		Distance:      DistanceVincenty,
		Bearing:       BearingRhumbLine,
		Interpolation: InterpolationCubic,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestProviderReselectsOnEachAccess(t *testing.T) {
	settings := DefaultSettings()
	p := NewProvider(func() AlgorithmSettings { return settings })

	if _, ok := p.Distance().(HaversineDistance); !ok {
		t.Fatal("expected haversine before reconfiguration")
	}

	// Live reconfiguration: no new provider needed
	settings.Distance = DistanceVincenty
	if _, ok := p.Distance().(VincentyDistance); !ok {
		t.Error("expected vincenty after reconfiguration")
	}
}

func TestProviderNilSettingsSource(t *testing.T) {
	p := NewProvider(nil)
	if _, ok := p.Interpolation().(SlerpInterpolation); !ok {
		t.Error("nil settings source should use the defaults")
	}
}
