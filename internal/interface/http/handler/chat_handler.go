package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/dto"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/usecase/chat"
)

type ChatHandler struct {
	sendUC *chat.SendMessageUseCase
	listUC *chat.ListMessagesUseCase
}

func NewChatHandler(sendUC *chat.SendMessageUseCase, listUC *chat.ListMessagesUseCase) *ChatHandler {
	return &ChatHandler{sendUC: sendUC, listUC: listUC}
}

// ListMessages обрабатывает GET /api/jobs/:id/chat?user_A=&user_B=.
// Имена в нижнем регистре тоже принимаются.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	messages, err := h.listUC.Execute(c.Request.Context(), chat.ListMessagesInput{
		JobID:       jobID,
		RequesterID: user.ID,
		UserA:       queryAny(c, "user_A", "user_a"),
		UserB:       queryAny(c, "user_B", "user_b"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToChatMessages(messages))
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.sendUC.Execute(c.Request.Context(), chat.SendMessageInput{
		JobID:           jobID,
		SenderID:        user.ID,
		ReceiverAddress: req.ReceiverAddress,
		Content:         req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SendMessageResponse{
		Message:   "Message sent successfully",
		ID:        msg.ID,
		Timestamp: msg.Timestamp,
	})
}
