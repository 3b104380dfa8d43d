package roster

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MonthKey formats the month of t as "month/year" without zero padding, e.g. "2/2024"
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}

// ParseMonthKey is the inverse of MonthKey
func ParseMonthKey(key string) (time.Month, int, error) {
	monthPart, yearPart, ok := strings.Cut(key, "/")
	if !ok {
		return 0, 0, fmt.Errorf("invalid month key: %q", key)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month key: %q", key)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key: %q", key)
	}
	return time.Month(month), year, nil
}

// MonthlyTally counts duties per professional per month. It is sparse: a missing professional or
// month means zero, so read it through Get.
type MonthlyTally map[string]map[string]int

// NewMonthlyTally groups events by professional and month
func NewMonthlyTally(events []DutyEvent) MonthlyTally {
	t := make(MonthlyTally)
	for _, e := range events {
		t.Add(e.Professional, e.MonthKey())
	}
	return t
}

// Add counts one duty
func (t MonthlyTally) Add(professional, monthKey string) {
	months, ok := t[professional]
	if !ok {
		months = make(map[string]int)
		t[professional] = months
	}
	months[monthKey] = t.Get(professional, monthKey) + 1
}

// Get returns the count for a professional and month, zero when absent
func (t MonthlyTally) Get(professional, monthKey string) int {
	months, ok := t[professional]
	if !ok {
		return 0
	}
	return months[monthKey]
}

// Total sums every month of a professional
func (t MonthlyTally) Total(professional string) int {
	total := 0
	for _, n := range t[professional] {
		total += n
	}
	return total
}

// Professionals returns the tallied professionals sorted by name
func (t MonthlyTally) Professionals() []string {
	out := make([]string, 0, len(t))
	for p := range t {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Months returns every month key present in chronological order
func (t MonthlyTally) Months() []string {
	seen := make(map[string]struct{})
	for _, months := range t {
		for k := range months {
			seen[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		mi, yi, _ := ParseMonthKey(keys[i])
		mj, yj, _ := ParseMonthKey(keys[j])
		if yi != yj {
			return yi < yj
		}
		if mi != mj {
			return mi < mj
		}
		return keys[i] < keys[j]
	})

	return keys
}
