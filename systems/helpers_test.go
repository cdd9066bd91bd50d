package systems

import (
	"github.com/pthm-cable/snakesize/config"
)

func init() {
	config.MustInit("")
}

// scriptedRand replays fixed Float64 draws in order and cycles when exhausted.
type scriptedRand struct {
	floats []float64
	i      int
	draws  int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[s.i%len(s.floats)]
	s.i++
	s.draws++
	return v
}

func (s *scriptedRand) Intn(n int) int {
	return 0
}
