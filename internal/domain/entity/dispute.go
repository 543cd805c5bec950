package entity

import (
	"time"

	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type Dispute struct {
	ID                          int64
	JobID                       int64
	InitiatorID                 int64
	Resolved                    bool
	ResolvedInFavorOfFreelancer *bool
	ResolutionDate              *time.Time
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

func NewDispute(jobID, initiatorID int64) *Dispute {
	now := time.Now()
	return &Dispute{
		JobID:       jobID,
		InitiatorID: initiatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (d *Dispute) Resolve(inFavorOfFreelancer bool) error {
	if d.Resolved {
		return apperror.New(apperror.ErrCodeConflict, "Dispute is already resolved")
	}
	now := time.Now()
	d.Resolved = true
	d.ResolvedInFavorOfFreelancer = &inFavorOfFreelancer
	d.ResolutionDate = &now
	d.UpdatedAt = now
	return nil
}
