package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/dto"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
	"github.com/ignatzorin/web3-freelance/internal/usecase/dispute"
	"github.com/ignatzorin/web3-freelance/internal/usecase/lifecycle"
)

// OperatorHandler обслуживает служебные маршруты обходчика событий смарт-контракта.
type OperatorHandler struct {
	reportUC    *lifecycle.ReportEventUseCase
	getCursorUC *lifecycle.GetCursorUseCase
	putCursorUC *lifecycle.SaveCursorUseCase
	resolveUC   *dispute.ResolveDisputeUseCase
}

func NewOperatorHandler(
	reportUC *lifecycle.ReportEventUseCase,
	getCursorUC *lifecycle.GetCursorUseCase,
	putCursorUC *lifecycle.SaveCursorUseCase,
	resolveUC *dispute.ResolveDisputeUseCase,
) *OperatorHandler {
	return &OperatorHandler{
		reportUC:    reportUC,
		getCursorUC: getCursorUC,
		putCursorUC: putCursorUC,
		resolveUC:   resolveUC,
	}
}

// ReportEvent обрабатывает POST /api/internal/jobs/:id/events.
func (h *OperatorHandler) ReportEvent(c *gin.Context) {
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ReportEventRequest
	if !bindJSON(c, &req) {
		return
	}

	j, err := h.reportUC.Execute(c.Request.Context(), lifecycle.ReportEventInput{
		JobID:            jobID,
		Event:            req.Event,
		TxHash:           req.TxHash,
		ClientWallet:     req.ClientWallet,
		FreelancerWallet: req.FreelancerWallet,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToJobResponse(j))
}

func (h *OperatorHandler) GetCursor(c *gin.Context) {
	cursor, err := h.getCursorUC.Execute(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCrawlCursorResponse(cursor))
}

func (h *OperatorHandler) SaveCursor(c *gin.Context) {
	var req dto.CrawlCursorRequest
	if !bindJSON(c, &req) {
		return
	}

	cursor, err := h.putCursorUC.Execute(c.Request.Context(), entity.CrawlCursor{
		Key:     c.Param("key"),
		StartAt: req.StartAt,
		Value:   req.Value,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCrawlCursorResponse(cursor))
}

// ResolveDispute обрабатывает POST /api/internal/jobs/:id/dispute/resolve.
func (h *OperatorHandler) ResolveDispute(c *gin.Context) {
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ResolveDisputeRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.InFavorOfFreelancer == nil {
		response.Error(c, apperror.Validation("in_favor_of_freelancer is required"))
		return
	}

	d, err := h.resolveUC.Execute(c.Request.Context(), dispute.ResolveDisputeInput{
		JobID:               jobID,
		InFavorOfFreelancer: *req.InFavorOfFreelancer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToDisputeResponse(d))
}
