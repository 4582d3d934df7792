// Package trending fetches recently created, popular repositories per time window
// and enriches them with true follower counts.
package trending

import (
	"fmt"
	"time"
)

// Window is one reporting period: repositories created in the last Days days with
// more than MinStars stars.
type Window struct {
	Key        string
	Days       int
	MinStars   int
	RawFile    string
	OutputFile string
}

// DefaultWindowKey is the window shown when none is requested.
const DefaultWindowKey = "30d"

// Windows lists the reporting periods in processing order. Larger windows use a
// higher star threshold to keep the result volume bounded.
var Windows = []Window{
	{Key: "7d", Days: 7, MinStars: 50, RawFile: "repos_last_7_days_raw.json", OutputFile: "repos_last_7_days.json"},
	{Key: "30d", Days: 30, MinStars: 100, RawFile: "repos_last_30_days_raw.json", OutputFile: "repos_last_30_days.json"},
	{Key: "90d", Days: 90, MinStars: 200, RawFile: "repos_last_3_months_raw.json", OutputFile: "repos_last_3_months.json"},
}

// WindowByKey returns the window with the given key.
func WindowByKey(key string) (Window, bool) {
	for _, w := range Windows {
		if w.Key == key {
			return w, true
		}
	}
	return Window{}, false
}

// Since returns the creation-date lower bound relative to now.
func (w Window) Since(now time.Time) time.Time {
	return now.AddDate(0, 0, -w.Days)
}

// Query builds the search query string, e.g. "created:>2024-02-23 stars:>50".
func (w Window) Query(now time.Time) string {
	return fmt.Sprintf("created:>%s stars:>%d", w.Since(now).Format("2006-01-02"), w.MinStars)
}
