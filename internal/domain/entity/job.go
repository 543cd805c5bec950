package entity

import (
	"strings"
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

type JobType struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Job struct {
	ID                     int64
	Title                  string
	Description            string
	Info                   string
	Image                  string
	Amount                 valueobject.Amount
	Status                 valueobject.JobStatus
	ClientID               int64
	FreelancerID           *int64
	JobTypeID              *int64
	TransactionCreate      *string
	TransactionAcceptJob   *string
	TransactionCompleteJob *string
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// Заполняются репозиторием при чтении.
	Client     *UserSummary
	Freelancer *UserSummary
	JobType    *JobType

	// fromStatus - статус до последнего перехода, по нему репозиторий проверяет,
	// что запись не изменилась с момента чтения.
	fromStatus valueobject.JobStatus
}

func NewJob(clientID int64, title, description, info string, amount valueobject.Amount, jobTypeID int64, image string) (*Job, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, apperror.Validation("Title is required")
	}
	if description == "" {
		return nil, apperror.Validation("Description is required")
	}
	if strings.TrimSpace(image) == "" {
		image = DefaultImage
	}

	now := time.Now()
	return &Job{
		Title:       title,
		Description: description,
		Info:        info,
		Image:       image,
		Amount:      amount,
		Status:      valueobject.JobStatusNew,
		ClientID:    clientID,
		JobTypeID:   &jobTypeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (j *Job) IsOwnedBy(userID int64) bool {
	return j.ClientID == userID
}

func (j *Job) IsAssignedTo(userID int64) bool {
	return j.FreelancerID != nil && *j.FreelancerID == userID
}

// IsParticipant - заказчик или назначенный фрилансер.
func (j *Job) IsParticipant(userID int64) bool {
	return j.IsOwnedBy(userID) || j.IsAssignedTo(userID)
}

func (j *Job) transition(to valueobject.JobStatus) error {
	if !j.Status.CanTransitionTo(to) {
		return apperror.New(apperror.ErrCodeInvalidTransition,
			"Cannot move job from "+j.Status.String()+" to "+to.String())
	}
	j.fromStatus = j.Status
	j.Status = to
	j.UpdatedAt = time.Now()
	return nil
}

// PreviousStatus возвращает статус, из которого задание перешло в текущий.
// Без переходов совпадает с Status.
func (j *Job) PreviousStatus() valueobject.JobStatus {
	if j.fromStatus == "" {
		return j.Status
	}
	return j.fromStatus
}

// MarkPushed фиксирует создание задания в смарт-контракте.
func (j *Job) MarkPushed(txHash string) error {
	if err := j.transition(valueobject.JobStatusPushed); err != nil {
		return err
	}
	j.TransactionCreate = &txHash
	return nil
}

// Accept назначает фрилансера после подтверждения в сети.
func (j *Job) Accept(freelancerID int64, txHash string) error {
	if j.IsOwnedBy(freelancerID) {
		return apperror.Validation("Client cannot be assigned to own job")
	}
	if err := j.transition(valueobject.JobStatusAccepted); err != nil {
		return err
	}
	j.FreelancerID = &freelancerID
	j.TransactionAcceptJob = &txHash
	return nil
}

func (j *Job) Complete(txHash string) error {
	if err := j.transition(valueobject.JobStatusCompleted); err != nil {
		return err
	}
	j.TransactionCompleteJob = &txHash
	return nil
}

func (j *Job) OpenDispute() error {
	return j.transition(valueobject.JobStatusDisputed)
}

func (j *Job) Resolve() error {
	return j.transition(valueobject.JobStatusResolved)
}

// CanBeDeleted - удалять можно только задание, ещё не отправленное в сеть.
func (j *Job) CanBeDeleted() bool {
	return j.Status == valueobject.JobStatusNew
}
