package leave

import (
	"math"
	"time"
)

// Days counts the leave span inclusively: a single-day request is one
// day, and partial-day spans round up before the inclusive +1.
func Days(start, end time.Time) int {
	diff := end.Sub(start)
	days := int(math.Ceil(diff.Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}
