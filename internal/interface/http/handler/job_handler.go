package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/web3-freelance/internal/interface/http/dto"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/response"
	"github.com/ignatzorin/web3-freelance/internal/usecase/job"
)

// JobUseCases собирает use case'ы реестра заданий для JobHandler.
type JobUseCases struct {
	Create         *job.CreateJobUseCase
	Get            *job.GetJobUseCase
	Delete         *job.DeleteJobUseCase
	List           *job.ListJobsUseCase
	ListByClient   *job.ListClientJobsUseCase
	ListFreelancer *job.ListFreelancerJobsUseCase
	Newest         *job.ListNewestJobsUseCase
	TopFreelancers *job.TopFreelancersUseCase
	JobTypes       *job.ListJobTypesUseCase
}

type JobHandler struct {
	uc JobUseCases
}

func NewJobHandler(uc JobUseCases) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.uc.Create.Execute(c.Request.Context(), job.CreateJobInput{
		ClientID:    user.ID,
		Title:       req.Title,
		Description: req.Description,
		Info:        req.Info,
		Amount:      req.Amount,
		JobTypeID:   req.TypeID(),
		Image:       req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToJobResponse(created))
}

// ListJobs обрабатывает GET /api/jobs с фильтрами job_type_id, min_amount,
// max_amount, status и search.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobTypeID, err := parseInt64Query(c, "job_type_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	minAmount, err := parseDecimalQuery(c, "min_amount")
	if err != nil {
		response.Error(c, err)
		return
	}
	maxAmount, err := parseDecimalQuery(c, "max_amount")
	if err != nil {
		response.Error(c, err)
		return
	}

	jobs, err := h.uc.List.Execute(c.Request.Context(), job.ListJobsInput{
		JobTypeID: jobTypeID,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		Status:    c.Query("status"),
		Search:    c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToJobResponses(jobs))
}

func (h *JobHandler) ListByClient(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	jobs, err := h.uc.ListByClient.Execute(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToJobResponses(jobs))
}

func (h *JobHandler) ListByFreelancer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	jobs, err := h.uc.ListFreelancer.Execute(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToJobResponses(jobs))
}

func (h *JobHandler) ListNewest(c *gin.Context) {
	jobs, err := h.uc.Newest.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToJobResponses(jobs))
}

func (h *JobHandler) TopFreelancers(c *gin.Context) {
	ranks, err := h.uc.TopFreelancers.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToTopFreelancers(ranks))
}

func (h *JobHandler) ListJobTypes(c *gin.Context) {
	types, err := h.uc.JobTypes.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToJobTypes(types))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	j, err := h.uc.Get.Execute(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToJobResponse(j))
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), job.DeleteJobInput{JobID: jobID, ClientID: user.ID}); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.Message{Message: "Job deleted successfully"})
}
