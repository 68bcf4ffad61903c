package models

// DiaryEntry is an explicitly saved snapshot of a message. Entries are
// never edited or deleted.
type DiaryEntry struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}
