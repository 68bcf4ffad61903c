// Package models defines the user-owned entities persisted by glitterpage.
//
// Every entity is a value type: repositories hand out copies and never share
// backing arrays with callers. JSON field names match the stored format.
package models

// Date layouts used when stamping new entities.
const (
	// DiaryDateLayout is a date and time, e.g. "10/14/2026, 3:04:05 PM".
	DiaryDateLayout = "1/2/2006, 3:04:05 PM"
	// ScrapbookDateLayout is a date only, e.g. "10/14/2026".
	ScrapbookDateLayout = "1/2/2006"
)
