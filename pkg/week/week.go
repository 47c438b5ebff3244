// Package week computes Monday-to-Sunday meeting weeks. Meeting content is
// addressed by the ISO date of the Monday starting the week, independent of
// the locale's first-day-of-week convention.
package week

import (
	"fmt"
	"time"
)

// Info describes a single meeting week.
type Info struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Label     string
}

// Key returns the ISO date of the week's Monday, the addressing scheme used
// by the cache and the fallback tables.
func (i Info) Key() string {
	return i.WeekStart.Format("2006-01-02")
}

// Calculator derives week boundaries from a clock. The zero value is not
// usable; construct with NewCalculator.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a calculator backed by the given clock. Passing nil
// uses time.Now.
func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// Current returns the week containing today.
func (c *Calculator) Current() Info {
	return weekOf(c.now())
}

// ForOffset returns the week at the given whole-week offset from today.
// Offset 0 is the current week, -1 last week, +1 next week.
func (c *Calculator) ForOffset(offsetWeeks int) Info {
	return weekOf(c.now().AddDate(0, 0, offsetWeeks*7))
}

// WeekOf returns the Monday-Sunday week containing the given date.
func WeekOf(date time.Time) Info {
	return weekOf(date)
}

func weekOf(date time.Time) Info {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	// time.Weekday numbers Sunday as 0; meeting weeks start on Monday.
	daysSinceMonday := (int(date.Weekday()) + 6) % 7
	start := date.AddDate(0, 0, -daysSinceMonday)
	end := start.AddDate(0, 0, 6)

	return Info{
		WeekStart: start,
		WeekEnd:   end,
		Label:     fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2")),
	}
}
