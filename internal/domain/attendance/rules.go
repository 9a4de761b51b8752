package attendance

import "time"

// lateCheckInHour is the local hour from which a check-in counts as late.
const lateCheckInHour = 10

// IsLateCheckIn reports whether a check-in at t is past the on-time
// window. The comparison uses t's own location, so callers pass the
// wall-clock time the check-in happened at.
func IsLateCheckIn(t time.Time) bool {
	return t.Hour() >= lateCheckInHour
}

// CheckInStatus derives the status written at check-in time. A status
// set later by an admin (absent) is never derived here.
func CheckInStatus(t time.Time) Status {
	if IsLateCheckIn(t) {
		return StatusLate
	}
	return StatusPresent
}
