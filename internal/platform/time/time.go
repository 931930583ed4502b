// Package time contains time related helpers
package time

import "time"

// Now returns the current time in UTC
// persisted timestamps always go through this so runs compare cleanly across hosts
func Now() time.Time {
	return time.Now().UTC()
}
