package utils

import "time"

// populationSmoothing is the weight of the newest sample in AveragePopulation
const populationSmoothing = 0.1

// Stats tracks throughput and population over a run
type Stats struct {
	StartTime         time.Time
	Generation        int
	LivingCells       int
	AveragePopulation float64
	LastFrame         time.Duration

	samples int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the state of the world reached at generation
func (s *Stats) Update(generation, population int, frame time.Duration) {
	s.Generation = generation
	s.LivingCells = population
	s.LastFrame = frame

	s.samples++
	if s.samples == 1 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation += populationSmoothing * (float64(population) - s.AveragePopulation)
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// GenerationsPerSecond averages throughput over the whole run
func (s *Stats) GenerationsPerSecond() float64 {
	return s.rateAt(time.Now())
}

func (s *Stats) rateAt(now time.Time) float64 {
	elapsed := now.Sub(s.StartTime).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Generation) / elapsed
}
