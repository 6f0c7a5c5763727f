package ports

import (
	"context"

	"github.com/ghscout/ghscout/internal/domain"
)

// SearchHistoryReader reads past searches
type SearchHistoryReader interface {
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}

// SearchHistoryWriter records and forgets searches
type SearchHistoryWriter interface {
	Clear(ctx context.Context) error
	Record(ctx context.Context, entry domain.HistoryEntry) error
}

// SearchHistoryRepository is the full history store (composite interface)
type SearchHistoryRepository interface {
	SearchHistoryReader
	SearchHistoryWriter
	Close() error
}
