package settings

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/logger"
)

type PlatformFeeUseCase struct {
	settingsRepo repository.SettingsRepository
}

func NewPlatformFeeUseCase(settingsRepo repository.SettingsRepository) *PlatformFeeUseCase {
	return &PlatformFeeUseCase{settingsRepo: settingsRepo}
}

// Execute возвращает комиссию платформы в процентах.
// Пока значение не задано или не разбирается как число, действует комиссия по умолчанию.
func (uc *PlatformFeeUseCase) Execute(ctx context.Context) (float64, error) {
	raw, found, err := uc.settingsRepo.Get(ctx, entity.PlatformFeeKey)
	if err != nil {
		return 0, err
	}
	if !found {
		return entity.DefaultPlatformFee, nil
	}

	fee, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || fee < 0 {
		logger.Get().WithFields(logrus.Fields{"value": raw}).Warn("некорректная комиссия платформы в настройках")
		return entity.DefaultPlatformFee, nil
	}
	return fee, nil
}
