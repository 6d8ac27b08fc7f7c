// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел Go,
// чтобы вся симуляция использовала один предсказуемый (seeded) источник.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange возвращает случайное целое число в диапазоне [lo, hi] включительно.
func (s *PRNGService) IntRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform возвращает случайное число в диапазоне [lo, hi].
func (s *PRNGService) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Sample выбирает k различных индексов из [0, n) без повторений.
// Если k > n, возвращает все n индексов в случайном порядке.
func (s *PRNGService) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	return s.rng.Perm(n)[:k]
}
