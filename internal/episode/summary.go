package episode

import "github.com/samdwyer/ghostlygrid/internal/grid"

// Summary aggregates results across episodes.
type Summary struct {
	Episodes    int
	Escaped     int
	Caught      int
	Truncated   int
	TotalSteps  int
	TotalReward int
}

// Add folds one result into the summary.
func (s *Summary) Add(r Result) {
	s.Episodes++
	s.TotalSteps += r.Steps
	s.TotalReward += r.TotalReward
	switch r.Outcome {
	case grid.OutcomeEscaped:
		s.Escaped++
	case grid.OutcomeCaught:
		s.Caught++
	case grid.OutcomeTruncated:
		s.Truncated++
	}
}

// SuccessRate is the fraction of episodes that reached the target.
func (s Summary) SuccessRate() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.Escaped) / float64(s.Episodes)
}

// MeanSteps is the average episode length.
func (s Summary) MeanSteps() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.TotalSteps) / float64(s.Episodes)
}
