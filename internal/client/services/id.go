package services

import "time"

// nextID returns now in milliseconds, bumped past any id already taken.
func nextID(now time.Time, taken func(int64) bool) int64 {
	id := now.UnixMilli()
	for taken(id) {
		id++
	}
	return id
}
