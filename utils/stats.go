package utils

// Stats tracks population over a run
type Stats struct {
	TotalGenerations  int
	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int
	PeakGeneration    int
	AveragePopulation float64
}

func NewStats(population int) *Stats {
	return &Stats{
		InitialPopulation: population,
		FinalPopulation:   population,
		PeakPopulation:    population,
		AveragePopulation: float64(population),
	}
}

// Update records the population after the given generation
func (s *Stats) Update(generation int, population int) {
	s.TotalGenerations = generation
	s.FinalPopulation = population
	if population > s.PeakPopulation {
		s.PeakPopulation = population
		s.PeakGeneration = generation
	}

	// Running mean over the initial state plus every generation so far
	n := float64(generation + 1)
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / n
}

// Extinct reports whether the last recorded generation had no living cells
func (s *Stats) Extinct() bool {
	return s.FinalPopulation == 0
}
