// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"
	"time"

	"polypress/internal/models"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGroupTimesByHourOfDay(t *testing.T) {
	// Different dates land in the same hour-of-day bucket.
	rows := GroupTimes([]time.Time{
		ts("2026-03-01 10:05"),
		ts("2026-03-07 10:55"),
		ts("2026-03-01 14:00"),
	}, models.GroupHour)

	if len(rows) != 2 {
		t.Fatalf("buckets: got %d, want 2", len(rows))
	}
	if rows[0].Label != "10:00" || rows[0].Count != 2 {
		t.Errorf("first bucket: got %+v", rows[0])
	}
	if rows[1].Label != "14:00" || rows[1].Count != 1 {
		t.Errorf("second bucket: got %+v", rows[1])
	}
}

func TestGroupTimesByDayOfMonth(t *testing.T) {
	// Different months land in the same day-of-month bucket.
	rows := GroupTimes([]time.Time{
		ts("2026-03-02 23:59"),
		ts("2026-03-01 00:00"),
		ts("2026-04-01 12:00"),
	}, models.GroupDay)

	if len(rows) != 2 {
		t.Fatalf("buckets: got %d, want 2", len(rows))
	}
	// Ascending regardless of input order.
	if rows[0].Label != "1" || rows[0].Count != 2 {
		t.Errorf("first bucket: got %+v", rows[0])
	}
	if rows[1].Label != "2" || rows[1].Count != 1 {
		t.Errorf("second bucket: got %+v", rows[1])
	}
}

func TestGroupTimesMonthIsDefault(t *testing.T) {
	times := []time.Time{ts("2026-01-15 08:00"), ts("2026-01-20 09:00"), ts("2026-02-01 10:00")}

	for _, group := range []models.GroupBy{models.GroupMonth, models.GroupNone} {
		rows := GroupTimes(times, group)
		if len(rows) != 2 {
			t.Fatalf("group %d: buckets got %d, want 2", group, len(rows))
		}
		if rows[0].Label != "January 2026" || rows[0].Count != 2 {
			t.Errorf("group %d first bucket: got %+v", group, rows[0])
		}
		if rows[1].Label != "February 2026" || rows[1].Count != 1 {
			t.Errorf("group %d second bucket: got %+v", group, rows[1])
		}
	}
}

func TestGroupTimesByYear(t *testing.T) {
	rows := GroupTimes([]time.Time{
		ts("2025-12-31 23:59"),
		ts("2026-01-01 00:00"),
	}, models.GroupYear)

	if len(rows) != 2 {
		t.Fatalf("buckets: got %d, want 2", len(rows))
	}
	if rows[0].Label != "2025" || rows[1].Label != "2026" {
		t.Errorf("labels: got %q, %q", rows[0].Label, rows[1].Label)
	}
}

func TestGroupTimesEmpty(t *testing.T) {
	if rows := GroupTimes(nil, models.GroupDay); len(rows) != 0 {
		t.Errorf("empty input: got %+v", rows)
	}
}
