package constants

import "time"

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultLimit = 10
	MaxLimit     = 50

	// Session lifetime before login; login stretches it to SessionLongTTL.
	SessionDefaultTTL = 24 * time.Hour
	SessionLongTTL    = 30 * 24 * time.Hour

	SessionCookieName = "neotube_session"
)
