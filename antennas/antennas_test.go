package antennas

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/pipebots/t6-rflib/internal/logging"
	"github.com/pipebots/t6-rflib/rferr"
)

type captureLogger struct {
	warns []string
}

func (c *captureLogger) With(...logging.Field) logging.Logger            { return c }
func (c *captureLogger) Debug(context.Context, string, ...logging.Field) {}
func (c *captureLogger) Info(context.Context, string, ...logging.Field)  {}
func (c *captureLogger) Warn(_ context.Context, msg string, _ ...logging.Field) {
	c.warns = append(c.warns, msg)
}

func swapLogger(t *testing.T, l logging.Logger) {
	t.Helper()
	old := logger
	logger = l
	t.Cleanup(func() { logger = old })
}

func relDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}

func TestHertzianDipoleCurrentRoundTripsPower(t *testing.T) {
	const (
		freq   = 1.0   // GHz
		length = 0.005 // m, well under lambda/10 at 1 GHz
		power  = 2.5   // W
	)

	current, err := HertzianDipoleCurrent(freq, power, length, "W")
	if err != nil {
		t.Fatalf("HertzianDipoleCurrent: %v", err)
	}

	wavelength := 299792458.0 / (freq * 1e9)
	radiated := current * current * 40 * math.Pi * math.Pi * (length / wavelength) * (length / wavelength)
	if relDiff(radiated, power) > 1e-12 {
		t.Errorf("current %g A radiates %g W, want %g W", current, radiated, power)
	}
}

func TestHertzianDipoleCurrentDBmMatchesWatts(t *testing.T) {
	// 30 dBm is exactly 1 W.
	fromDBm, err := HertzianDipoleCurrent(1.0, 30, 0.005, "dBm")
	if err != nil {
		t.Fatalf("dBm mode: %v", err)
	}
	fromWatts, err := HertzianDipoleCurrent(1.0, 1.0, 0.005, "w")
	if err != nil {
		t.Fatalf("W mode: %v", err)
	}

	if relDiff(fromDBm, fromWatts) > 1e-12 {
		t.Errorf("30 dBm gives %g A, 1 W gives %g A", fromDBm, fromWatts)
	}
}

func TestHertzianDipoleCurrentZeroPowerWatts(t *testing.T) {
	_, err := HertzianDipoleCurrent(1.0, 0, 1e-6, "W")
	if !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("zero power in W mode: got %v, want ErrDomain", err)
	}
}

func TestHertzianDipoleCurrentInvalidInputs(t *testing.T) {
	if _, err := HertzianDipoleCurrent(1.0, 1.0, 0.005, "furlongs"); !errors.Is(err, rferr.ErrInvalidArgument) {
		t.Errorf("bad units: got %v, want ErrInvalidArgument", err)
	}
	if _, err := HertzianDipoleCurrent(0, 1.0, 0.005, "W"); !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("zero frequency: got %v, want ErrDomain", err)
	}
	if _, err := HertzianDipoleCurrent(-2.4, 1.0, 0.005, "W"); !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("negative frequency: got %v, want ErrDomain", err)
	}
	if _, err := HertzianDipoleCurrent(1.0, 1.0, 0, "W"); !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("zero length: got %v, want ErrDomain", err)
	}
}

func TestHertzianDipoleCurrentWarnsWhenNotElectricallySmall(t *testing.T) {
	capture := &captureLogger{}
	swapLogger(t, capture)

	// Half a wavelength at 1 GHz, well past the lambda/10 advisory bound.
	current, err := HertzianDipoleCurrent(1.0, 1.0, 0.15, "W")
	if err != nil {
		t.Fatalf("HertzianDipoleCurrent: %v", err)
	}
	if current <= 0 {
		t.Errorf("current = %g, want > 0 despite advisory", current)
	}
	if len(capture.warns) != 1 {
		t.Fatalf("got %d warnings, want 1", len(capture.warns))
	}
}

func TestHertzianDipoleCurrentSmallDipoleNoWarning(t *testing.T) {
	capture := &captureLogger{}
	swapLogger(t, capture)

	if _, err := HertzianDipoleCurrent(1.0, 1.0, 0.005, "W"); err != nil {
		t.Fatalf("HertzianDipoleCurrent: %v", err)
	}
	if len(capture.warns) != 0 {
		t.Errorf("got %d warnings, want none for an electrically small dipole", len(capture.warns))
	}
}

func TestMaxSeparationFullAndApproxConverge(t *testing.T) {
	// The approximate formula assumes separation >> wavelength, so the two
	// must agree ever more closely as radius grows against the wavelength.
	const freq = 2.4

	prev := math.Inf(1)
	for _, radius := range []float64{1, 10, 100} {
		full, err := MaxSeparationFull(freq, radius, "normal")
		if err != nil {
			t.Fatalf("MaxSeparationFull(r=%g): %v", radius, err)
		}
		approx, err := MaxSeparationApprox(freq, radius, "normal")
		if err != nil {
			t.Fatalf("MaxSeparationApprox(r=%g): %v", radius, err)
		}

		diff := relDiff(full, approx)
		if diff >= prev {
			t.Errorf("relative difference %g at r=%g did not shrink (previous %g)", diff, radius, prev)
		}
		prev = diff
	}
	if prev > 1e-6 {
		t.Errorf("relative difference at r=100 is %g, want < 1e-6", prev)
	}
}

func TestMaxSeparationCheekyRelaxesRadius(t *testing.T) {
	normal, err := MaxSeparationApprox(2.4, 1.0, "normal")
	if err != nil {
		t.Fatalf("normal mode: %v", err)
	}
	cheeky, err := MaxSeparationApprox(2.4, 1.0, "CHEEKY")
	if err != nil {
		t.Fatalf("cheeky mode: %v", err)
	}

	// Cheeky divides the radius by 0.6, so the approximate separation grows
	// by 1/0.36.
	if relDiff(cheeky, normal/0.36) > 1e-12 {
		t.Errorf("cheeky = %g, want %g", cheeky, normal/0.36)
	}
}

func TestMaxSeparationNegativeResultReturned(t *testing.T) {
	// A tiny target radius makes the exact formula go negative. That is
	// accepted and returned for the caller to interpret.
	separation, err := MaxSeparationFull(1.0, 0.01, "normal")
	if err != nil {
		t.Fatalf("MaxSeparationFull: %v", err)
	}
	if separation >= 0 {
		t.Errorf("separation = %g, want negative for r=0.01 m at 1 GHz", separation)
	}
}

func TestMaxSeparationInvalidInputs(t *testing.T) {
	if _, err := MaxSeparationFull(0, 1.0, "normal"); !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("zero frequency: got %v, want ErrDomain", err)
	}
	if _, err := MaxSeparationFull(2.4, 1.0, "sneaky"); !errors.Is(err, rferr.ErrInvalidArgument) {
		t.Errorf("bad mode: got %v, want ErrInvalidArgument", err)
	}
	if _, err := MaxSeparationApprox(0, 1.0, "normal"); !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("approx zero frequency: got %v, want ErrDomain", err)
	}
	if _, err := MaxSeparationApprox(2.4, 1.0, "sneaky"); !errors.Is(err, rferr.ErrInvalidArgument) {
		t.Errorf("approx bad mode: got %v, want ErrInvalidArgument", err)
	}
}

func TestFresnelZoneRadiusSymmetric(t *testing.T) {
	ab, err := FresnelZoneRadius(2.4, 30, 70)
	if err != nil {
		t.Fatalf("FresnelZoneRadius(30, 70): %v", err)
	}
	ba, err := FresnelZoneRadius(2.4, 70, 30)
	if err != nil {
		t.Fatalf("FresnelZoneRadius(70, 30): %v", err)
	}

	if ab != ba {
		t.Errorf("radius not symmetric: %g vs %g", ab, ba)
	}
}

func TestFresnelZoneRadiusMidpoint(t *testing.T) {
	const (
		freq = 2.4
		d    = 50.0
	)
	radius, err := FresnelZoneRadius(freq, d, d)
	if err != nil {
		t.Fatalf("FresnelZoneRadius: %v", err)
	}

	wavelength := 299792458.0 / (freq * 1e9)
	want := math.Sqrt(wavelength * d / 2)
	if relDiff(radius, want) > 1e-12 {
		t.Errorf("midpoint radius = %g, want %g", radius, want)
	}
}

func TestFresnelZoneRadiusInvalidInputs(t *testing.T) {
	if _, err := FresnelZoneRadius(0, 10, 10); !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("zero frequency: got %v, want ErrDomain", err)
	}
	if _, err := FresnelZoneRadius(2.4, 0, 0); !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("both distances zero: got %v, want ErrDomain", err)
	}
	if _, err := FresnelZoneRadius(2.4, -10, 5); !errors.Is(err, rferr.ErrComputation) {
		t.Errorf("negative area under root: got %v, want ErrComputation", err)
	}
}

func TestFarFieldDistanceByAntennaType(t *testing.T) {
	const freq = 2.4
	wavelength := 299792458.0 / (freq * 1e9)

	tests := []struct {
		name        string
		antennaType string
		dimension   float64
		want        float64
	}{
		{"monopole ignores dimension", "monopole", 123, wavelength / 8},
		{"dipole ignores dimension", "Dipole", 123, wavelength / 2},
		{"array scales with element count", "array", 4, 8 * wavelength},
		{"unknown type uses raw dimension", "horn", 0.1, 2 * 0.1 * 0.1 / wavelength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FarFieldDistance(freq, tc.dimension, tc.antennaType)
			if err != nil {
				t.Fatalf("FarFieldDistance: %v", err)
			}
			if relDiff(got, tc.want) > 1e-12 {
				t.Errorf("distance = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestFarFieldDistanceZeroFrequency(t *testing.T) {
	if _, err := FarFieldDistance(0, 1, "dipole"); !errors.Is(err, rferr.ErrDomain) {
		t.Errorf("zero frequency: got %v, want ErrDomain", err)
	}
}
