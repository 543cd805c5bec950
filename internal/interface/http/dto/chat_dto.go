package dto

import (
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
)

type SendMessageRequest struct {
	ReceiverAddress string `json:"receiver_address"`
	Content         string `json:"content"`
}

type ChatMessageDTO struct {
	ID              int64     `json:"id"`
	SenderAddress   string    `json:"sender_address"`
	SenderName      string    `json:"sender_name"`
	ReceiverAddress string    `json:"receiver_address"`
	ReceiverName    string    `json:"receiver_name"`
	Content         string    `json:"content"`
	Timestamp       time.Time `json:"timestamp"`
}

func ToChatMessages(views []entity.ChatMessageView) []ChatMessageDTO {
	out := make([]ChatMessageDTO, 0, len(views))
	for _, v := range views {
		out = append(out, ChatMessageDTO{
			ID:              v.ID,
			SenderAddress:   v.SenderAddress,
			SenderName:      v.SenderName,
			ReceiverAddress: v.ReceiverAddress,
			ReceiverName:    v.ReceiverName,
			Content:         v.Content,
			Timestamp:       v.Timestamp,
		})
	}
	return out
}

type SendMessageResponse struct {
	Message   string    `json:"message"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}
