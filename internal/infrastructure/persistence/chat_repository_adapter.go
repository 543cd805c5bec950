package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type ChatRepositoryAdapter struct {
	db *sqlx.DB
}

func NewChatRepositoryAdapter(db *sqlx.DB) *ChatRepositoryAdapter {
	return &ChatRepositoryAdapter{db: db}
}

func (r *ChatRepositoryAdapter) Create(ctx context.Context, msg *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (job_id, sender_id, receiver_id, content, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		msg.JobID,
		msg.SenderID,
		msg.ReceiverID,
		msg.Content,
		msg.Timestamp,
	).Scan(&msg.ID)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить сообщение")
	}
	return nil
}

type chatMessageRow struct {
	ID              int64     `db:"id"`
	SenderAddress   string    `db:"sender_address"`
	SenderName      string    `db:"sender_name"`
	ReceiverAddress string    `db:"receiver_address"`
	ReceiverName    string    `db:"receiver_name"`
	Content         string    `db:"content"`
	Timestamp       time.Time `db:"timestamp"`
}

func (r *ChatRepositoryAdapter) List(ctx context.Context, filter repository.ChatFilter) ([]entity.ChatMessageView, error) {
	query := `
		SELECT m.id, s.wallet_address AS sender_address, COALESCE(s.name, '') AS sender_name,
		       r.wallet_address AS receiver_address, COALESCE(r.name, '') AS receiver_name,
		       m.content, m.timestamp
		FROM chat_messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users r ON r.id = m.receiver_id
		WHERE m.job_id = $1`
	args := []interface{}{filter.JobID}

	if filter.HasPair() {
		query += `
		  AND ((s.wallet_address = $2 AND r.wallet_address = $3)
		    OR (s.wallet_address = $3 AND r.wallet_address = $2))`
		args = append(args, filter.WalletA, filter.WalletB)
	}
	query += ` ORDER BY m.timestamp ASC, m.id ASC`

	var rows []chatMessageRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить сообщения")
	}

	result := make([]entity.ChatMessageView, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.ChatMessageView{
			ID:              row.ID,
			SenderAddress:   row.SenderAddress,
			SenderName:      row.SenderName,
			ReceiverAddress: row.ReceiverAddress,
			ReceiverName:    row.ReceiverName,
			Content:         row.Content,
			Timestamp:       row.Timestamp,
		})
	}
	return result, nil
}
