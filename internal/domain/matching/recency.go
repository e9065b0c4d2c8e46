package matching

import "time"

// recencyWindowDays is also the admission window the listings client
// enforces; the two must stay numerically consistent.
const recencyWindowDays = 5

// RecencyBonus decays linearly from 1.0 for a posting dated now to 0.0 at
// five days. Unknown posting dates earn nothing.
func RecencyBonus(postedAt *time.Time, now time.Time) float64 {
	if postedAt == nil {
		return 0.0
	}

	daysOld := int(now.Sub(*postedAt).Hours() / 24)
	if daysOld < 0 {
		daysOld = 0
	}
	if daysOld >= recencyWindowDays {
		return 0.0
	}
	return 1.0 - float64(daysOld)/float64(recencyWindowDays)
}
