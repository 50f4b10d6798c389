package engine

import (
	"math"
	"math/rand"
	"time"
)

// ShakeResource reconstructs a smooth, decaying 2D camera offset from
// precomputed uniform noise samples. Deterministic once triggered: the
// offset is purely a function of elapsed shake time over the sample arrays
type ShakeResource struct {
	IsShaking bool
	Duration  time.Duration
	Frequency float64 // samples per second
	Amplitude float64
	Time      time.Duration
	SamplesX  []float64
	SamplesY  []float64
	OffsetX   float64
	OffsetY   float64

	rng *rand.Rand
}

// NewShakeResource creates an inactive shake generator with the given
// duration, sample frequency and amplitude
func NewShakeResource(duration time.Duration, frequency, amplitude float64) *ShakeResource {
	return &ShakeResource{
		Duration:  duration,
		Frequency: frequency,
		Amplitude: amplitude,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed replaces the sample source, used by tests for deterministic offsets
func (s *ShakeResource) Seed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Trigger restarts the shake with fresh sample arrays
func (s *ShakeResource) Trigger() {
	count := int(s.Duration.Seconds()*s.Frequency) + 1
	s.SamplesX = uniformSamples(s.rng, count)
	s.SamplesY = uniformSamples(s.rng, count)
	s.Time = 0
	s.IsShaking = true
}

// Advance accumulates raw (never scaled) step time and updates the offset.
// Past the configured duration the generator deactivates and the offset
// returns to zero until the next trigger
func (s *ShakeResource) Advance(rawDelta time.Duration) (x, y float64) {
	if !s.IsShaking {
		s.OffsetX, s.OffsetY = 0, 0
		return 0, 0
	}

	s.Time += rawDelta
	if s.Time > s.Duration {
		s.IsShaking = false
		s.OffsetX, s.OffsetY = 0, 0
		return 0, 0
	}

	decay := (s.Duration - s.Time).Seconds() / s.Duration.Seconds()
	pos := s.Time.Seconds() * s.Frequency
	s.OffsetX = s.Amplitude * decay * sampleLerp(s.SamplesX, pos)
	s.OffsetY = s.Amplitude * decay * sampleLerp(s.SamplesY, pos)
	return s.OffsetX, s.OffsetY
}

// sampleLerp linearly interpolates between neighbouring noise samples at a
// continuous sample-space position. Out-of-range indices read as zero
func sampleLerp(samples []float64, pos float64) float64 {
	s0 := int(math.Floor(pos))
	frac := pos - float64(s0)

	at := func(i int) float64 {
		if i < 0 || i >= len(samples) {
			return 0
		}
		return samples[i]
	}

	return at(s0) + (at(s0+1)-at(s0))*frac
}

// uniformSamples draws count uniform values in [-1, 1]
func uniformSamples(rng *rand.Rand, count int) []float64 {
	samples := make([]float64, count)
	for i := range samples {
		samples[i] = rng.Float64()*2 - 1
	}
	return samples
}
