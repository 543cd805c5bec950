package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

const MaxMessageLength = 5000

type ChatMessage struct {
	ID         int64
	JobID      int64
	SenderID   int64
	ReceiverID int64
	Content    string
	Timestamp  time.Time
}

func NewChatMessage(jobID, senderID, receiverID int64, content string) (*ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.Validation("Message content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return nil, apperror.Validation("Message content is too long")
	}
	return &ChatMessage{
		JobID:      jobID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
	}, nil
}

// ChatMessageView - сообщение с данными отправителя и получателя.
type ChatMessageView struct {
	ID              int64
	SenderAddress   string
	SenderName      string
	ReceiverAddress string
	ReceiverName    string
	Content         string
	Timestamp       time.Time
}
