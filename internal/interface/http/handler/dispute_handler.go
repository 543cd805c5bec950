package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/dto"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/usecase/dispute"
)

type DisputeHandler struct {
	openUC *dispute.OpenDisputeUseCase
	getUC  *dispute.GetDisputeUseCase
}

func NewDisputeHandler(openUC *dispute.OpenDisputeUseCase, getUC *dispute.GetDisputeUseCase) *DisputeHandler {
	return &DisputeHandler{openUC: openUC, getUC: getUC}
}

func (h *DisputeHandler) Open(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	d, err := h.openUC.Execute(c.Request.Context(), dispute.OpenDisputeInput{JobID: jobID, UserID: user.ID})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToDisputeResponse(d))
}

func (h *DisputeHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	d, err := h.getUC.Execute(c.Request.Context(), dispute.GetDisputeInput{JobID: jobID, UserID: user.ID})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToDisputeResponse(d))
}
