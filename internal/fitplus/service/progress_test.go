package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/validate"
	"github.com/stretchr/testify/require"
)

func TestWeightBoundaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	v, err := f.progress.SetCurrentWeight(ctx, "alice", "500")
	require.NoError(t, err)
	require.InDelta(t, 500, v, 1e-9)

	for _, raw := range []string{"501", "-1"} {
		_, err := f.progress.SetCurrentWeight(ctx, "alice", raw)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, raw)
		require.Equal(t, validate.OutOfRange, ve.Reason, raw)
	}

	_, err = f.progress.SetIdealWeight(ctx, "alice", "heavy")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "ideal_weight", ve.Field)
	require.Equal(t, validate.NotANumber, ve.Reason)

	require.InDelta(t, 500, f.user(t, "alice").CurrentWeight, 1e-9)
}

func TestLiftSetters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	_, err := f.progress.SetBenchPressPR(ctx, "alice", "62.5")
	require.NoError(t, err)
	_, err = f.progress.SetSquatPR(ctx, "alice", "1000")
	require.NoError(t, err)
	_, err = f.progress.SetDeadliftPR(ctx, "alice", "1000.5")
	require.Error(t, err)
	_, err = f.progress.SetDeadliftPR(ctx, "alice", "120")
	require.NoError(t, err)

	u := f.user(t, "alice")
	require.InDelta(t, 62.5, u.BenchPressPR, 1e-9)
	require.InDelta(t, 1000, u.SquatPR, 1e-9)
	require.InDelta(t, 120, u.DeadliftPR, 1e-9)
	require.Zero(t, u.CurrentWeight)
}

func TestProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	_, err := f.progress.SetCurrentWeight(ctx, "alice", "82")
	require.NoError(t, err)
	_, err = f.progress.SetIdealWeight(ctx, "alice", "75")
	require.NoError(t, err)
	_, err = f.progress.SetBenchPressPR(ctx, "alice", "45")
	require.NoError(t, err)

	p, err := f.progress.Progress(ctx, "alice")
	require.NoError(t, err)
	require.InDelta(t, -7, p.WeightDelta, 1e-9)

	achieved := map[string]bool{}
	for _, a := range p.Achievements() {
		achieved[a.Title] = a.Achieved
	}
	require.True(t, achieved["Reach a 20kg bench press"])
	require.True(t, achieved["Reach a 40kg bench press"])
	require.False(t, achieved["Reach a 60kg bench press"])
	require.False(t, achieved["Reach a 60kg deadlift"])

	_, err = f.progress.Progress(ctx, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = f.progress.SetSquatPR(ctx, "ghost", "10")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProgressSetMetricNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	for _, m := range []domain.Metric{
		domain.MetricCurrentWeight,
		domain.MetricIdealWeight,
		domain.MetricBenchPressPR,
		domain.MetricSquatPR,
		domain.MetricDeadliftPR,
	} {
		_, err := f.progress.Set(ctx, "alice", m, "-5")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, m.String(), ve.Field)
	}
}
