package storage

import "time"

// SearchHistoryModel is the GORM model for the search_history table
type SearchHistoryModel struct {
	CreatedAt  time.Time
	ID         string    `gorm:"primaryKey"`
	Keyword    string    `gorm:"not null;uniqueIndex:idx_keyword"`
	SearchedAt time.Time `gorm:"not null;index:idx_searched_at"`
	TotalCount int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SearchHistoryModel) TableName() string { return "search_history" }
