package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/dto"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/usecase/account"
	"github.com/ignatzorin/web3-freelance/internal/usecase/resume"
)

type AccountHandler struct {
	loginUC  *account.LoginUseCase
	infoUC   *account.GetUserInfoUseCase
	updateUC *account.UpdateProfileUseCase
	resumeUC *resume.PublicResumeUseCase
}

func NewAccountHandler(
	loginUC *account.LoginUseCase,
	infoUC *account.GetUserInfoUseCase,
	updateUC *account.UpdateProfileUseCase,
	resumeUC *resume.PublicResumeUseCase,
) *AccountHandler {
	return &AccountHandler{
		loginUC:  loginUC,
		infoUC:   infoUC,
		updateUC: updateUC,
		resumeUC: resumeUC,
	}
}

// Login обрабатывает POST /api/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.loginUC.Execute(c.Request.Context(), account.LoginInput{WalletAddress: req.WalletAddress})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToLoginResponse(out.Token, out.ExpiresAt, out.User))
}

func (h *AccountHandler) GetInfo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	fresh, err := h.infoUC.Execute(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToUserInfoResponse(fresh))
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), account.UpdateProfileInput{
		UserID: user.ID,
		Patch:  req.ToPatch(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.UpdateProfileResponse{
		Message: "User information updated successfully.",
		User:    dto.ToUserInfoResponse(updated),
	})
}

// PublicResume обрабатывает GET /api/users/:wallet/resume.
func (h *AccountHandler) PublicResume(c *gin.Context) {
	r, err := h.resumeUC.Execute(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToResumeResponse(r))
}
