package repository

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
)

type SettingsRepository interface {
	// Get возвращает found=false, если ключ не задан.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	GetCursor(ctx context.Context, key string) (*entity.CrawlCursor, error)
	SaveCursor(ctx context.Context, cursor *entity.CrawlCursor) error
}
