package dataset

import (
	"os"
	"testing"

	_ "github.com/lacquerai/pricenews/internal/testhelper"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

// scriptedRand replays fixed draws and reverses on shuffle.
type scriptedRand struct {
	values []int
	bounds []int
}

func (s *scriptedRand) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	v := s.values[0] % n
	s.values = s.values[1:]
	return v
}

func (s *scriptedRand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}
