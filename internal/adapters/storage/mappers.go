package storage

import (
	"github.com/ghscout/ghscout/internal/domain"
)

// historyModelToDomain converts a SearchHistoryModel (GORM) to domain.HistoryEntry
func historyModelToDomain(m SearchHistoryModel) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:         m.ID,
		Keyword:    m.Keyword,
		SearchedAt: m.SearchedAt,
		TotalCount: m.TotalCount,
	}
}

// domainToHistoryModel converts a domain.HistoryEntry to SearchHistoryModel (GORM)
func domainToHistoryModel(e domain.HistoryEntry) SearchHistoryModel {
	return SearchHistoryModel{
		ID:         e.ID,
		Keyword:    e.Keyword,
		SearchedAt: e.SearchedAt,
		TotalCount: e.TotalCount,
	}
}
