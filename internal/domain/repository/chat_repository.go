package repository

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, msg *entity.ChatMessage) error
	List(ctx context.Context, filter ChatFilter) ([]entity.ChatMessageView, error)
}

// ChatFilter ограничивает переписку парой кошельков, только если заданы оба.
type ChatFilter struct {
	JobID   int64
	WalletA string
	WalletB string
}

func (f ChatFilter) HasPair() bool {
	return f.WalletA != "" && f.WalletB != ""
}
