package lifecycle

import (
	"context"
	"strings"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
	"github.com/ignatzorin/web3-freelance/internal/validation"
)

const maxCursorKeyLength = 64

// GetCursorUseCase отдаёт сохранённую позицию обходчика, для нового ключа - нулевую.
type GetCursorUseCase struct {
	settingsRepo repository.SettingsRepository
}

func NewGetCursorUseCase(settingsRepo repository.SettingsRepository) *GetCursorUseCase {
	return &GetCursorUseCase{settingsRepo: settingsRepo}
}

func (uc *GetCursorUseCase) Execute(ctx context.Context, key string) (*entity.CrawlCursor, error) {
	key, err := cursorKey(key)
	if err != nil {
		return nil, err
	}
	return uc.settingsRepo.GetCursor(ctx, key)
}

type SaveCursorUseCase struct {
	settingsRepo repository.SettingsRepository
}

func NewSaveCursorUseCase(settingsRepo repository.SettingsRepository) *SaveCursorUseCase {
	return &SaveCursorUseCase{settingsRepo: settingsRepo}
}

func (uc *SaveCursorUseCase) Execute(ctx context.Context, cursor entity.CrawlCursor) (*entity.CrawlCursor, error) {
	key, err := cursorKey(cursor.Key)
	if err != nil {
		return nil, err
	}
	if cursor.StartAt < 0 || cursor.Value < 0 {
		return nil, apperror.Validation("Cursor positions cannot be negative")
	}
	if cursor.Value < cursor.StartAt {
		return nil, apperror.Validation("Cursor value cannot be behind start_at")
	}

	cursor.Key = key
	if err := uc.settingsRepo.SaveCursor(ctx, &cursor); err != nil {
		return nil, err
	}
	return &cursor, nil
}

func cursorKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", apperror.Validation("Cursor key is required")
	}
	if err := validation.ValidateLength("key", key, 0, maxCursorKeyLength); err != nil {
		return "", err
	}
	return key, nil
}
