package dto

import (
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
)

type ReportEventRequest struct {
	Event            string `json:"event"`
	TxHash           string `json:"tx_hash"`
	ClientWallet     string `json:"client_wallet"`
	FreelancerWallet string `json:"freelancer_wallet"`
}

type CrawlCursorRequest struct {
	StartAt int64 `json:"start_at"`
	Value   int64 `json:"value"`
}

type CrawlCursorResponse struct {
	Key     string `json:"key"`
	StartAt int64  `json:"start_at"`
	Value   int64  `json:"value"`
}

func ToCrawlCursorResponse(c *entity.CrawlCursor) CrawlCursorResponse {
	return CrawlCursorResponse{Key: c.Key, StartAt: c.StartAt, Value: c.Value}
}

type ResolveDisputeRequest struct {
	InFavorOfFreelancer *bool `json:"in_favor_of_freelancer"`
}

type DisputeResponse struct {
	ID                          int64      `json:"id"`
	JobID                       int64      `json:"job_id"`
	InitiatorID                 int64      `json:"initiator_id"`
	Resolved                    bool       `json:"resolved"`
	ResolvedInFavorOfFreelancer *bool      `json:"resolved_in_favor_of_freelancer"`
	ResolutionDate              *time.Time `json:"resolution_date"`
	CreatedAt                   time.Time  `json:"created_at"`
}

func ToDisputeResponse(d *entity.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:                          d.ID,
		JobID:                       d.JobID,
		InitiatorID:                 d.InitiatorID,
		Resolved:                    d.Resolved,
		ResolvedInFavorOfFreelancer: d.ResolvedInFavorOfFreelancer,
		ResolutionDate:              d.ResolutionDate,
		CreatedAt:                   d.CreatedAt,
	}
}

type PlatformFeeResponse struct {
	PlatformFee float64 `json:"platform_fee"`
}

type UploadResponse struct {
	Message  string `json:"message"`
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
}
