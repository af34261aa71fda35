package domain

import (
	"time"

	"github.com/aussiebroadwan/fitplus/pkg/idx"
)

// Defaults applied to a freshly registered user.
const (
	DefaultCalorieLimit = 2000
	MinCalorieLimit     = 500
	MaxCalorieLimit     = 5000
	MaxWeightKg         = 500
	MaxLiftKg           = 1000
)

type User struct {
	Username         string
	Password         string // plaintext or argon2id PHC, depending on credential mode
	SecurityQuestion string
	SecurityAnswer   string
	CalorieLimit     int
	Intake           Nutrients
	CurrentWeight    float64
	IdealWeight      float64
	BenchPressPR     float64
	SquatPR          float64
	DeadliftPR       float64
	LastUpdate       Day // empty until the first nutrition write or rollover
	CreatedAt        time.Time
}

// Remaining is the calorie budget left for the day. Negative means over.
func (u User) Remaining() float64 {
	return float64(u.CalorieLimit) - u.Intake.Calories
}

// Progress projects the tracked body and lift values out of the record.
func (u User) Progress() Progress {
	return Progress{
		CurrentWeight: u.CurrentWeight,
		IdealWeight:   u.IdealWeight,
		BenchPressPR:  u.BenchPressPR,
		SquatPR:       u.SquatPR,
		DeadliftPR:    u.DeadliftPR,
		WeightDelta:   u.IdealWeight - u.CurrentWeight,
	}
}

// Session is an authenticated user at the console. It replaces any notion of
// a process-wide "current user".
type Session struct {
	ID        idx.ID
	Username  string
	StartedAt time.Time
}
