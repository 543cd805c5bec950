package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/dto"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/usecase/settings"
)

type SettingsHandler struct {
	feeUC *settings.PlatformFeeUseCase
}

func NewSettingsHandler(feeUC *settings.PlatformFeeUseCase) *SettingsHandler {
	return &SettingsHandler{feeUC: feeUC}
}

func (h *SettingsHandler) PlatformFee(c *gin.Context) {
	fee, err := h.feeUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.PlatformFeeResponse{PlatformFee: fee})
}
