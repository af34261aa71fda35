package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/fitplus/internal/fitplus/domain"
	"github.com/aussiebroadwan/fitplus/internal/fitplus/store"
	"github.com/aussiebroadwan/fitplus/pkg/slogx"
)

// RolloverPolicy zeroes a user's nutrition ledgers lazily, on the first
// nutrition read or write of a new calendar day.
type RolloverPolicy struct {
	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

func (p *RolloverPolicy) now() time.Time {
	if p == nil || p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// Today is the current local calendar day.
func (p *RolloverPolicy) Today() domain.Day {
	return domain.DayOf(p.now())
}

// IsStale reports whether a record last touched on last must be reset
// before use on today. A record never touched is always stale.
func (p *RolloverPolicy) IsStale(last, today domain.Day) bool {
	return last.Before(today)
}

// Apply resets u in users when it is stale and returns the record as it
// now stands, plus whether a reset happened. Run it inside the same
// transaction as the read or write that follows.
func (p *RolloverPolicy) Apply(ctx context.Context, users store.Users, u domain.User) (domain.User, bool, error) {
	today := p.Today()
	if !p.IsStale(u.LastUpdate, today) {
		return u, false, nil
	}

	if err := users.ResetIntake(ctx, u.Username, today); err != nil {
		return u, false, err
	}

	slogx.FromContext(ctx).Debug("daily rollover",
		"user", u.Username,
		"last_update", u.LastUpdate.String(),
		"today", today.String(),
	)

	u.Intake = domain.Nutrients{}
	u.LastUpdate = today
	return u, true, nil
}
