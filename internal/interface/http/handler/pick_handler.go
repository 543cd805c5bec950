package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/dto"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/usecase/pick"
)

type PickHandler struct {
	pickUC *pick.PickJobUseCase
	listUC *pick.ListPicksUseCase
}

func NewPickHandler(pickUC *pick.PickJobUseCase, listUC *pick.ListPicksUseCase) *PickHandler {
	return &PickHandler{pickUC: pickUC, listUC: listUC}
}

// PickJob обрабатывает POST /api/jobs/:id/pick.
func (h *PickHandler) PickJob(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	j, err := h.pickUC.Execute(c.Request.Context(), pick.PickJobInput{JobID: jobID, FreelancerID: user.ID})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.PickResponse{
		Message: pick.SuccessMessage(j),
		Job:     dto.ToJobResponse(j),
	})
}

// ListPicks отдаёт заказчику откликнувшихся фрилансеров.
func (h *PickHandler) ListPicks(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	freelancers, err := h.listUC.Execute(c.Request.Context(), pick.ListPicksInput{JobID: jobID, ClientID: user.ID})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToFreelancerProfiles(freelancers))
}
