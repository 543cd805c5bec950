// Package access решает, кто может читать и писать переписку по заданию.
package access

import (
	"context"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// PickChecker - часть репозитория откликов, нужная для проверки доступа.
type PickChecker interface {
	Exists(ctx context.Context, jobID, freelancerID int64) (bool, error)
}

type Guard struct {
	picks PickChecker
}

func NewGuard(picks PickChecker) *Guard {
	return &Guard{picks: picks}
}

// CanAccessChat: заказчик задания или фрилансер, откликнувшийся на него.
func (g *Guard) CanAccessChat(ctx context.Context, userID int64, job *entity.Job) (bool, error) {
	if job.IsOwnedBy(userID) {
		return true, nil
	}
	return g.picks.Exists(ctx, job.ID, userID)
}

// RequireChatAccess возвращает ErrChatForbidden, если доступа нет.
func (g *Guard) RequireChatAccess(ctx context.Context, userID int64, job *entity.Job) error {
	ok, err := g.CanAccessChat(ctx, userID, job)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrChatForbidden
	}
	return nil
}
