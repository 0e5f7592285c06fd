// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"time"

	"polypress/internal/models"
)

// Window translates a relative date filter into a half-open [from, to)
// interval computed against the given reference time. All calendar windows
// use the reference's location; weeks start on Monday. Returns ok == false
// for DateAll or an unknown filter value.
func Window(f models.DateFilter, now time.Time) (from, to time.Time, ok bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	year := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	switch f {
	case models.DateToday:
		return day, day.AddDate(0, 0, 1), true
	case models.DateThisWeek:
		offset := int(now.Weekday()-time.Monday+7) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), true
	case models.DateThisMonth:
		return month, month.AddDate(0, 1, 0), true
	case models.DatePrevMonth:
		return month.AddDate(0, -1, 0), month, true
	case models.DatePrev3Months:
		return now.AddDate(0, -3, 0), now, true
	case models.DatePrev6Months:
		return now.AddDate(0, -6, 0), now, true
	case models.DatePrev12Months:
		return now.AddDate(0, -12, 0), now, true
	case models.DateThisYear:
		return year, year.AddDate(1, 0, 0), true
	case models.DatePrevYear:
		return year.AddDate(-1, 0, 0), year, true
	case models.DateLast24Hours:
		return now.Add(-24 * time.Hour), now, true
	case models.DateLast48Hours:
		return now.Add(-48 * time.Hour), now, true
	}
	return time.Time{}, time.Time{}, false
}
