// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"sort"
	"time"

	"polypress/internal/models"
)

// ReportRow is one aggregate bucket: a time bucket (Label only) or a
// category bucket (Label plus category identity).
type ReportRow struct {
	Label      string `json:"label"`
	Count      int64  `json:"count"`
	CategoryID int64  `json:"category_id,omitempty"`
	Term       string `json:"term,omitempty"`
}

// GroupTimes buckets creation timestamps in memory, ascending by bucket
// key. Hour buckets by hour-of-day (0-23) across all dates and Day by
// day-of-month (1-31) across all months, so these modes answer "when during
// the day/month is content published", not "how much per calendar slot".
// GroupNone shares the monthly rendering ("January 2026"); GroupCategories
// is handled in SQL, not here.
func GroupTimes(times []time.Time, group models.GroupBy) []ReportRow {
	counts := make(map[int]int64, len(times))
	labels := make(map[int]string, len(times))

	for _, ts := range times {
		var key int
		var label string
		switch group {
		case models.GroupHour:
			key = ts.Hour()
			label = fmt.Sprintf("%02d:00", key)
		case models.GroupDay:
			key = ts.Day()
			label = fmt.Sprintf("%d", key)
		case models.GroupYear:
			key = ts.Year()
			label = fmt.Sprintf("%d", key)
		default:
			key = ts.Year()*12 + int(ts.Month()) - 1
			label = ts.Format("January 2006")
		}
		counts[key]++
		labels[key] = label
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	rows := make([]ReportRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, ReportRow{Label: labels[k], Count: counts[k]})
	}
	return rows
}
