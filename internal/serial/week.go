// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package serial

import "time"

// DateLayout is the format used when rendering a manufacture date.
const DateLayout = "2006-01-02"

// WeekStart returns the Monday of ISO-8601 week `week` of `year`, in UTC.
// Week 1 is the week containing January 4th. Out-of-range weeks are applied
// leniently: week 0 is the Monday before week 1 and weeks past the end of the
// year continue into the next one.
func WeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	// days since Monday, with Sunday as 6
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset+(week-1)*7)
}
