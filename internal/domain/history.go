package domain

import "time"

// HistoryEntry records a keyword search that returned results
type HistoryEntry struct {
	ID         string
	Keyword    string
	SearchedAt time.Time
	TotalCount int
}
