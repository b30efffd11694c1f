package feed

import (
	"fmt"
	"time"
)

// recencyWindowDays is how long an item keeps its "New" label.
const recencyWindowDays = 7

// RecencyLabel returns the freshness label for publishedAt as seen from now:
// "New today" on the publish day, "New {n}d ago" through day 7, and "" once
// the item is older than a week. Future timestamps count as today.
func RecencyLabel(now, publishedAt time.Time) string {
	if publishedAt.IsZero() {
		return ""
	}
	days := int(now.Sub(publishedAt).Hours() / 24)
	switch {
	case days <= 0:
		return "New today"
	case days <= recencyWindowDays:
		return fmt.Sprintf("New %dd ago", days)
	default:
		return ""
	}
}
