package domain

import "time"

const dayLayout = "2006-01-02"

// Day is a local calendar date in "2006-01-02" form. The zero value means
// the date is absent. Lexical order is chronological order.
type Day string

func DayOf(t time.Time) Day {
	return Day(t.In(time.Local).Format(dayLayout))
}

func ParseDay(s string) (Day, error) {
	if _, err := time.ParseInLocation(dayLayout, s, time.Local); err != nil {
		return "", err
	}
	return Day(s), nil
}

func (d Day) IsZero() bool { return d == "" }

func (d Day) String() string { return string(d) }

// Before reports whether d is strictly earlier than other. An absent day is
// before every present day.
func (d Day) Before(other Day) bool {
	if d.IsZero() {
		return !other.IsZero()
	}
	return d < other
}
