package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type SettingsRepositoryAdapter struct {
	db *sqlx.DB
}

func NewSettingsRepositoryAdapter(db *sqlx.DB) *SettingsRepositoryAdapter {
	return &SettingsRepositoryAdapter{db: db}
}

func (r *SettingsRepositoryAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM platform_settings WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить настройку")
	}
	return value, true, nil
}

type crawlCursorRow struct {
	Key     string `db:"key"`
	StartAt int64  `db:"start_at"`
	Value   int64  `db:"value"`
}

// GetCursor возвращает нулевую позицию для ключа, который ещё не сохранялся.
func (r *SettingsRepositoryAdapter) GetCursor(ctx context.Context, key string) (*entity.CrawlCursor, error) {
	var row crawlCursorRow
	err := r.db.GetContext(ctx, &row, `SELECT key, start_at, value FROM last_index_crawl WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.CrawlCursor{Key: key}, nil
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить позицию обхода")
	}
	return &entity.CrawlCursor{Key: row.Key, StartAt: row.StartAt, Value: row.Value}, nil
}

func (r *SettingsRepositoryAdapter) SaveCursor(ctx context.Context, cursor *entity.CrawlCursor) error {
	query := `
		INSERT INTO last_index_crawl (key, start_at, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET start_at = EXCLUDED.start_at, value = EXCLUDED.value
	`
	if _, err := r.db.ExecContext(ctx, query, cursor.Key, cursor.StartAt, cursor.Value); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить позицию обхода")
	}
	return nil
}
