package users

import "time"

// SQLite stores created_at as unix seconds.
func fromUnix(v int64) time.Time {
	return time.Unix(v, 0).UTC()
}
