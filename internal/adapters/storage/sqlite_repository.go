package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ghscout/ghscout/internal/domain"
	"github.com/ghscout/ghscout/internal/logging"
	"github.com/ghscout/ghscout/internal/ports"
)

// maxHistoryEntries bounds the table; older keywords are pruned on Record
const maxHistoryEntries = 500

// SQLiteRepository implements ports.SearchHistoryRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SearchHistoryRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (and migrates) the history database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the TUI and a concurrent CLI call share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&SearchHistoryModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate search history schema: %w", err)
		}
	}

	logging.Logger.Debug("Opened history database", "path", dbPath)

	return &SQLiteRepository{db: db}, nil
}

// Record stores a search, replacing any earlier entry for the same keyword
func (r *SQLiteRepository) Record(ctx context.Context, entry domain.HistoryEntry) error {
	entry.Keyword = strings.TrimSpace(entry.Keyword)
	if entry.Keyword == "" {
		return domain.ErrEmptyKeyword
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.SearchedAt.IsZero() {
		entry.SearchedAt = time.Now().UTC()
	}

	model := domainToHistoryModel(entry)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "keyword"}},
				DoUpdates: clause.AssignmentColumns([]string{"searched_at", "total_count", "updated_at"}),
			}).Create(&model).Error
			if err != nil {
				return fmt.Errorf("failed to record search %q: %w", entry.Keyword, err)
			}

			// Keep only the newest maxHistoryEntries rows
			keep := tx.Model(&SearchHistoryModel{}).
				Select("id").
				Order("searched_at DESC").
				Limit(maxHistoryEntries)
			if err := tx.Where("id NOT IN (?)", keep).Delete(&SearchHistoryModel{}).Error; err != nil {
				return fmt.Errorf("failed to prune search history: %w", err)
			}
			return nil
		})
	}, 3)
}

// Recent returns up to limit entries, newest first
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		return []domain.HistoryEntry{}, nil
	}

	var models []SearchHistoryModel
	err := r.db.WithContext(ctx).
		Order("searched_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list search history: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, historyModelToDomain(m))
	}
	return entries, nil
}

// Clear removes every recorded search
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return withRetry(func() error {
		err := r.db.WithContext(ctx).
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&SearchHistoryModel{}).Error
		if err != nil {
			return fmt.Errorf("failed to clear search history: %w", err)
		}
		return nil
	}, 3)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
