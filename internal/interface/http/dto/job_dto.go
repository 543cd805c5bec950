package dto

import (
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
)

// CreateJobRequest: amount принимается числом или строкой, дробная часть запрещена.
// Тип задания передаётся как job_type_id или job_type.
type CreateJobRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Info        string             `json:"info"`
	Amount      valueobject.Amount `json:"amount"`
	JobTypeID   int64              `json:"job_type_id"`
	JobType     int64              `json:"job_type"`
	Image       string             `json:"image"`
}

// TypeID отдаёт job_type_id, а если он не задан - job_type.
func (r CreateJobRequest) TypeID() int64 {
	if r.JobTypeID != 0 {
		return r.JobTypeID
	}
	return r.JobType
}

type JobTypeDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func ToJobTypeDTO(jt *entity.JobType) *JobTypeDTO {
	if jt == nil {
		return nil
	}
	return &JobTypeDTO{ID: jt.ID, Name: jt.Name, Description: jt.Description}
}

func ToJobTypes(types []*entity.JobType) []JobTypeDTO {
	out := make([]JobTypeDTO, 0, len(types))
	for _, jt := range types {
		out = append(out, *ToJobTypeDTO(jt))
	}
	return out
}

type JobResponse struct {
	ID                     int64              `json:"id"`
	Title                  string             `json:"title"`
	Description            string             `json:"description"`
	Info                   string             `json:"info"`
	Image                  string             `json:"image"`
	Amount                 valueobject.Amount `json:"amount"`
	Status                 string             `json:"status"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
	Client                 *UserSummaryDTO    `json:"client"`
	Freelancer             *UserSummaryDTO    `json:"freelancer"`
	JobType                *JobTypeDTO        `json:"job_type"`
	TransactionCreate      *string            `json:"transaction_create"`
	TransactionAcceptJob   *string            `json:"transaction_accept_job"`
	TransactionCompleteJob *string            `json:"transaction_complete_job"`
}

func ToJobResponse(job *entity.Job) JobResponse {
	return JobResponse{
		ID:                     job.ID,
		Title:                  job.Title,
		Description:            job.Description,
		Info:                   job.Info,
		Image:                  job.Image,
		Amount:                 job.Amount,
		Status:                 job.Status.String(),
		CreatedAt:              job.CreatedAt,
		UpdatedAt:              job.UpdatedAt,
		Client:                 ToUserSummaryDTO(job.Client),
		Freelancer:             ToUserSummaryDTO(job.Freelancer),
		JobType:                ToJobTypeDTO(job.JobType),
		TransactionCreate:      job.TransactionCreate,
		TransactionAcceptJob:   job.TransactionAcceptJob,
		TransactionCompleteJob: job.TransactionCompleteJob,
	}
}

func ToJobResponses(jobs []*entity.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, ToJobResponse(j))
	}
	return out
}

type PickResponse struct {
	Message string      `json:"message"`
	Job     JobResponse `json:"job"`
}
