// Package synth generates believable but fake band levels for the demo. It
// stands in for a real analyzer: levels follow a pink-noise tilt, drift with
// a slow sweep and jump to random targets, smoothed by springs.
package synth

import (
	"math"
	"math/rand"

	"github.com/olivier-w/rtameter/internal/rta"
)

const (
	lowHz  = 20
	highHz = 20000

	tiltPerOctave = -3.0 // dB, pink noise
	refHz         = 1000
	baseDB        = -12.0
	sweepDepth    = 9.0 // dB
	sweepRate     = 0.15
	retargetProb  = 0.08
	jitterDB      = 18.0
)

// LogFrequencies returns n band centers spaced evenly on a log scale from
// 20 Hz to 20 kHz.
func LogFrequencies(n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{refHz}
	}
	freqs := make([]int, n)
	for i := 0; i < n; i++ {
		f := lowHz * math.Pow(float64(highHz)/lowHz, float64(i)/float64(n-1))
		freqs[i] = int(math.Round(f))
	}
	return freqs
}

// Source produces one frame of bands per call to Next.
type Source struct {
	freqs   []int
	fps     int
	rng     *rand.Rand
	offsets []float64 // random dB offset per band
	smooth  springField
	frame   int
}

// New returns a source of n bands advanced at fps frames per second. The
// same seed always yields the same sequence.
func New(n, fps int, seed int64) *Source {
	if fps < 1 {
		fps = 1
	}
	s := &Source{
		freqs:   LogFrequencies(n),
		fps:     fps,
		rng:     rand.New(rand.NewSource(seed)),
		offsets: make([]float64, n),
		smooth:  newSpringField(fps, 7.0, 0.6),
	}
	s.smooth.resize(n, baseDB-jitterDB)
	return s
}

// Frequencies returns the band centers in Hz.
func (s *Source) Frequencies() []int {
	return s.freqs
}

func (s *Source) targetDB(i int, t float64) float64 {
	octaves := math.Log2(float64(s.freqs[i]) / refHz)
	phase := 2 * math.Pi * (sweepRate*t + float64(i)/float64(len(s.freqs)))
	return baseDB + tiltPerOctave*octaves + sweepDepth*math.Sin(phase) + s.offsets[i]
}

// Next advances one frame and returns a fresh slice of bands whose values
// are the smoothed levels mapped onto minDB.
func (s *Source) Next(minDB float64) []rta.Band {
	t := float64(s.frame) / float64(s.fps)
	s.frame++

	bands := make([]rta.Band, len(s.freqs))
	for i, hz := range s.freqs {
		if s.rng.Float64() < retargetProb {
			s.offsets[i] = -s.rng.Float64() * jitterDB
		}
		db := math.Min(s.smooth.step(i, s.targetDB(i, t)), 0)
		bands[i] = rta.NewBand(0, hz)
		bands[i].SetDB(db, minDB)
	}
	return bands
}
