package synth

import "github.com/charmbracelet/harmonica"

// springField smooths one value per band toward a moving target.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(fps int, frequency, damping float64) springField {
	return springField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// resize reallocates the field for n bands, starting every spring at start.
func (s *springField) resize(n int, start float64) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
	for i := range s.pos {
		s.pos[i] = start
	}
}

func (s *springField) step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}
