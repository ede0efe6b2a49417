package ecg

import (
	"errors"
	"math"
	"math/rand"
)

// Params controls the synthetic PQRST generator.
type Params struct {
	SamplingRate int     `json:"sampling_rate"`
	Duration     float64 `json:"duration_seconds"`
	BeatPeriod   float64 `json:"beat_period_seconds"`
	Jitter       float64 `json:"jitter"`
}

// DefaultParams: 360 Hz, 10 s, one beat every 0.8 s (75 BPM).
func DefaultParams() Params {
	return Params{
		SamplingRate: 360,
		Duration:     10,
		BeatPeriod:   0.8,
		Jitter:       0.02,
	}
}

var (
	ErrSamplingRate = errors.New("sampling rate must be positive")
	ErrDuration     = errors.New("duration must be positive")
	ErrBeatPeriod   = errors.New("beat period must be positive")
	ErrJitter       = errors.New("jitter must not be negative")
)

func (p Params) Validate() error {
	switch {
	case p.SamplingRate <= 0:
		return ErrSamplingRate
	case p.Duration <= 0:
		return ErrDuration
	case p.BeatPeriod <= 0:
		return ErrBeatPeriod
	case p.Jitter < 0:
		return ErrJitter
	}
	return nil
}

// SampleCount is samplingRate × duration.
func (p Params) SampleCount() int {
	return int(math.Round(float64(p.SamplingRate) * p.Duration))
}

// Segment is one deflection of the cardiac cycle, a half-sine pulse over
// [Start, End) of the beat phase.
type Segment struct {
	Name      string  `json:"name"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Amplitude float64 `json:"amplitude"`
}

// Segments partitions [0,1) with no gaps.
var Segments = []Segment{
	{Name: "P", Start: 0.00, End: 0.10, Amplitude: 0.15},
	{Name: "PR", Start: 0.10, End: 0.16, Amplitude: 0},
	{Name: "Q", Start: 0.16, End: 0.18, Amplitude: -0.1},
	{Name: "R", Start: 0.18, End: 0.22, Amplitude: 1.0},
	{Name: "S", Start: 0.22, End: 0.26, Amplitude: -0.2},
	{Name: "ST", Start: 0.26, End: 0.35, Amplitude: 0},
	{Name: "T", Start: 0.35, End: 0.55, Amplitude: 0.3},
	{Name: "TP", Start: 0.55, End: 1.00, Amplitude: 0},
}

// SegmentAt returns the segment covering phase.
func SegmentAt(phase float64) (Segment, bool) {
	for _, s := range Segments {
		if phase >= s.Start && phase < s.End {
			return s, true
		}
	}
	return Segment{}, false
}

// Voltage is the noise-free waveform value at a beat phase. Phases no
// segment covers read as 0.
func Voltage(phase float64) float64 {
	s, ok := SegmentAt(phase)
	if !ok || s.Amplitude == 0 {
		return 0
	}
	return s.Amplitude * math.Sin(math.Pi*(phase-s.Start)/(s.End-s.Start))
}

// Phase maps elapsed seconds to the position inside the current beat.
func Phase(t, beatPeriod float64) float64 {
	return math.Mod(t, beatPeriod) / beatPeriod
}

// Generate builds the whole sample sequence eagerly. Each sample carries
// independent uniform noise in [-Jitter/2, Jitter/2).
func Generate(p Params, rng *rand.Rand) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.SampleCount()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(p.SamplingRate)
		v := Voltage(Phase(t, p.BeatPeriod))
		if p.Jitter > 0 {
			v += (rng.Float64() - 0.5) * p.Jitter
		}
		out[i] = v
	}
	return out, nil
}

// Bounds is the union of segment amplitude ranges widened by the noise term.
func Bounds(p Params) (lo, hi float64) {
	for _, s := range Segments {
		lo = math.Min(lo, s.Amplitude)
		hi = math.Max(hi, s.Amplitude)
	}
	half := p.Jitter / 2
	return lo - half, hi + half
}
