package console

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
)

var metricNames = map[string]domain.Metric{
	"weight":   domain.MetricCurrentWeight,
	"current":  domain.MetricCurrentWeight,
	"ideal":    domain.MetricIdealWeight,
	"bench":    domain.MetricBenchPressPR,
	"squat":    domain.MetricSquatPR,
	"deadlift": domain.MetricDeadliftPR,
}

var metricLabels = map[domain.Metric]string{
	domain.MetricCurrentWeight: "Current weight",
	domain.MetricIdealWeight:   "Ideal weight",
	domain.MetricBenchPressPR:  "Bench Press PR",
	domain.MetricSquatPR:       "Squat PR",
	domain.MetricDeadliftPR:    "Deadlift PR",
}

func (s *Shell) set(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("set weight|ideal|bench|squat|deadlift <kg>")
	}
	m, ok := metricNames[strings.ToLower(args[0])]
	if !ok {
		return usageError("set weight|ideal|bench|squat|deadlift <kg>")
	}
	username, err := s.requireSession()
	if err != nil {
		return err
	}

	v, err := s.Progress.Set(ctx, username, m, args[1])
	if err != nil {
		return err
	}
	s.printf("%s updated successfully to %gkg\n", metricLabels[m], v)
	return nil
}

func (s *Shell) progress(ctx context.Context) error {
	username, err := s.requireSession()
	if err != nil {
		return err
	}
	p, err := s.Progress.Progress(ctx, username)
	if err != nil {
		return err
	}

	s.printf("Current weight: %gkg\n", p.CurrentWeight)
	s.printf("Ideal weight:   %gkg\n", p.IdealWeight)
	switch {
	case p.WeightDelta > 0:
		s.printf("Gain %gkg to reach your goal\n", p.WeightDelta)
	case p.WeightDelta < 0:
		s.printf("Lose %gkg to reach your goal\n", -p.WeightDelta)
	default:
		s.println("You are at your goal weight")
	}
	s.printf("Bench Press PR: %gkg\n", p.BenchPressPR)
	s.printf("Squat PR:       %gkg\n", p.SquatPR)
	s.printf("Deadlift PR:    %gkg\n", p.DeadliftPR)

	s.println("Achievements:")
	for _, a := range p.Achievements() {
		mark := " "
		if a.Achieved {
			mark = "x"
		}
		s.printf("  [%s] %s\n", mark, a.Title)
	}
	return nil
}
