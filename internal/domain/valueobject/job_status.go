package valueobject

import "github.com/ignatzorin/web3-freelance/internal/pkg/apperror"

type JobStatus string

const (
	JobStatusNew       JobStatus = "NEW"
	JobStatusPushed    JobStatus = "PUSHED"
	JobStatusAccepted  JobStatus = "ACCEPTED"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusDisputed  JobStatus = "DISPUTED"
	JobStatusResolved  JobStatus = "RESOLVED"
)

// jobTransitions описывает жизненный цикл задания: публикация в сети,
// принятие фрилансером, завершение или спор с последующим разрешением.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusNew:       {JobStatusPushed},
	JobStatusPushed:    {JobStatusAccepted},
	JobStatusAccepted:  {JobStatusCompleted, JobStatusDisputed},
	JobStatusDisputed:  {JobStatusResolved},
	JobStatusCompleted: {},
	JobStatusResolved:  {},
}

func (s JobStatus) IsValid() bool {
	_, ok := jobTransitions[s]
	return ok
}

func (s JobStatus) CanTransitionTo(newStatus JobStatus) bool {
	for _, status := range jobTransitions[s] {
		if status == newStatus {
			return true
		}
	}
	return false
}

func (s JobStatus) String() string {
	return string(s)
}

func NewJobStatus(status string) (JobStatus, error) {
	s := JobStatus(status)
	if !s.IsValid() {
		return "", apperror.Validation("Invalid job status: " + status)
	}
	return s, nil
}
