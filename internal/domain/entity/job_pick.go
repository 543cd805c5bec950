package entity

import "time"

type JobPick struct {
	ID           int64
	JobID        int64
	FreelancerID int64
	PickedAt     time.Time
}

func NewJobPick(jobID, freelancerID int64) *JobPick {
	return &JobPick{
		JobID:        jobID,
		FreelancerID: freelancerID,
		PickedAt:     time.Now(),
	}
}
