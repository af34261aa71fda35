package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/validate"
	"github.com/aussiebroadwan/fitplus/pkg/slogx"
)

type ProgressService struct {
	Store store.Store
}

func (s *ProgressService) SetCurrentWeight(ctx context.Context, username, raw string) (float64, error) {
	return s.Set(ctx, username, domain.MetricCurrentWeight, raw)
}

func (s *ProgressService) SetIdealWeight(ctx context.Context, username, raw string) (float64, error) {
	return s.Set(ctx, username, domain.MetricIdealWeight, raw)
}

func (s *ProgressService) SetBenchPressPR(ctx context.Context, username, raw string) (float64, error) {
	return s.Set(ctx, username, domain.MetricBenchPressPR, raw)
}

func (s *ProgressService) SetSquatPR(ctx context.Context, username, raw string) (float64, error) {
	return s.Set(ctx, username, domain.MetricSquatPR, raw)
}

func (s *ProgressService) SetDeadliftPR(ctx context.Context, username, raw string) (float64, error) {
	return s.Set(ctx, username, domain.MetricDeadliftPR, raw)
}

// Set parses raw against the metric's range and stores it.
func (s *ProgressService) Set(ctx context.Context, username string, m domain.Metric, raw string) (float64, error) {
	username = strings.TrimSpace(username)

	v, err := validate.Numeric(raw, 0, m.Max())
	if err != nil {
		return 0, invalid(m.String(), err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().UpdateMetric(ctx, username, m, v)
	})
	if err = classify("set "+m.String(), err); err != nil {
		return 0, err
	}

	slogx.FromContext(ctx).Info("progress updated",
		slog.String("user", username),
		slog.String("metric", m.String()),
		slog.Float64("value", v),
	)
	return v, nil
}

// Progress returns the tracked values and the weight still to gain or lose.
func (s *ProgressService) Progress(ctx context.Context, username string) (domain.Progress, error) {
	username = strings.TrimSpace(username)

	var user domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, found, err := tx.Users().FindUser(ctx, username)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		user = u
		return nil
	})
	if err = classify("progress", err); err != nil {
		return domain.Progress{}, err
	}
	return user.Progress(), nil
}
