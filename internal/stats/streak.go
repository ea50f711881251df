package stats

import (
	"math"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DefaultWeekday is returned by BestWeekday when the calendar is empty.
const DefaultWeekday = "Monday"

// CalendarDay is one day bucket of the rolling activity window.
type CalendarDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LastSevenDays builds the 7-day activity window ending at today
// (inclusive), zero-filled for days without activity. When several calendar
// entries map to the same date the last one written wins; entries are never
// summed. The judge emits at most one entry per day so this only matters
// for malformed input.
func LastSevenDays(cal Calendar, today time.Time) []CalendarDay {
	today = today.UTC()

	window := make([]CalendarDay, 0, 7)
	for i := 6; i >= 0; i-- {
		window = append(window, CalendarDay{
			Date: today.AddDate(0, 0, -i).Format(dateLayout),
		})
	}

	for key, count := range cal {
		ts, ok := parseKey(key)
		if !ok {
			continue
		}

		date := ts.Time().Format(dateLayout)
		for i := range window {
			if window[i].Date == date {
				window[i].Count = count
				break
			}
		}
	}

	return window
}

// LongestStreak returns the length of the longest run of consecutive days
// with at least one submission. An empty calendar yields 0, a single active
// day yields 1.
func LongestStreak(cal Calendar) int {
	days := make([]int64, 0, len(cal))
	for key, count := range cal {
		if count <= 0 {
			continue
		}
		if ts, ok := parseKey(key); ok {
			days = append(days, ts.DayIndex())
		}
	}

	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			current++
			if current > longest {
				longest = current
			}
		} else if days[i] != days[i-1] {
			current = 1
		}
	}

	return longest
}

// AverageDaily returns the mean submission count over active days, rounded
// to one decimal place. 0 when the calendar has no active days.
func AverageDaily(cal Calendar) float64 {
	total := 0
	activeDays := 0
	for _, count := range cal {
		if count > 0 {
			activeDays++
			total += count
		}
	}

	if activeDays == 0 {
		return 0
	}

	return math.Round(float64(total)/float64(activeDays)*10) / 10
}

// BestWeekday returns the weekday name with the highest total submission
// count. Ties resolve to the first weekday reaching the maximum, scanning
// Sunday through Saturday. An empty calendar yields DefaultWeekday.
func BestWeekday(cal Calendar) string {
	if len(cal) == 0 {
		return DefaultWeekday
	}

	var buckets [7]int
	for key, count := range cal {
		if count <= 0 {
			continue
		}
		if ts, ok := parseKey(key); ok {
			buckets[int(ts.Time().Weekday())] += count
		}
	}

	best := 0
	for i := 1; i < len(buckets); i++ {
		if buckets[i] > buckets[best] {
			best = i
		}
	}

	return weekdayNames[best]
}
