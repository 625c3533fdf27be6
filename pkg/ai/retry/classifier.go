package retry

import "strings"

// transientMarkers are matched case-insensitively against provider error
// text. Overload, rate limiting and quota exhaustion are worth retrying or
// failing over; anything else (auth, malformed request, DNS) recurs
// identically and must propagate at once.
var transientMarkers = []string{
	"503",
	"service unavailable",
	"overloaded",
	"rate",
	"quota",
}

// IsTransient reports whether a provider error is expected to succeed on
// retry or with a different model candidate.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
