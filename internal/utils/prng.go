// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService обёртка над генератором случайных чисел, чтобы один сид
// давал одинаковую последовательность стен.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое в [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Between возвращает случайное целое в [min, max] включительно.
// При max < min возвращается min.
func (s *PRNGService) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
