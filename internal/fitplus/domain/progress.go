package domain

import "fmt"

// Metric names one tracked progress value. The set is closed; stores map
// each value to a fixed column.
type Metric int

const (
	MetricCurrentWeight Metric = iota + 1
	MetricIdealWeight
	MetricBenchPressPR
	MetricSquatPR
	MetricDeadliftPR
)

func (m Metric) String() string {
	switch m {
	case MetricCurrentWeight:
		return "current_weight"
	case MetricIdealWeight:
		return "ideal_weight"
	case MetricBenchPressPR:
		return "bench_press_pr"
	case MetricSquatPR:
		return "squat_pr"
	case MetricDeadliftPR:
		return "deadlift_pr"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Max is the inclusive upper bound accepted for the metric, in kg.
func (m Metric) Max() float64 {
	switch m {
	case MetricCurrentWeight, MetricIdealWeight:
		return MaxWeightKg
	default:
		return MaxLiftKg
	}
}

type Progress struct {
	CurrentWeight float64
	IdealWeight   float64
	BenchPressPR  float64
	SquatPR       float64
	DeadliftPR    float64
	// WeightDelta is IdealWeight - CurrentWeight: positive means gain,
	// negative means lose, zero means at goal.
	WeightDelta float64
}

type Achievement struct {
	Title    string
	Achieved bool
}

var (
	benchThresholds    = []float64{20, 40, 60, 80, 100}
	squatThresholds    = []float64{20, 40, 60, 80, 100}
	deadliftThresholds = []float64{60, 80, 100, 120, 140}
)

// Achievements derives the lift milestones from the stored PRs.
func (p Progress) Achievements() []Achievement {
	out := make([]Achievement, 0, len(benchThresholds)+len(squatThresholds)+len(deadliftThresholds))
	add := func(lift string, pr float64, thresholds []float64) {
		for _, kg := range thresholds {
			out = append(out, Achievement{
				Title:    fmt.Sprintf("Reach a %gkg %s", kg, lift),
				Achieved: pr >= kg,
			})
		}
	}
	add("bench press", p.BenchPressPR, benchThresholds)
	add("squat", p.SquatPR, squatThresholds)
	add("deadlift", p.DeadliftPR, deadliftThresholds)
	return out
}
