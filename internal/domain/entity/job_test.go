package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

func mustAmount(t *testing.T, raw string) valueobject.Amount {
	t.Helper()
	a, err := valueobject.ParseAmount(raw)
	require.NoError(t, err)
	return a
}

func TestNewJobDefaults(t *testing.T) {
	job, err := NewJob(1, "  Logo  ", "Design a logo", "", mustAmount(t, "100"), 3, "")
	require.NoError(t, err)

	assert.Equal(t, "Logo", job.Title)
	assert.Equal(t, valueobject.JobStatusNew, job.Status)
	assert.Equal(t, DefaultImage, job.Image)
	assert.Equal(t, int64(3), *job.JobTypeID)
	assert.Nil(t, job.FreelancerID)
	assert.True(t, job.IsOwnedBy(1))
	assert.True(t, job.CanBeDeleted())
}

func TestNewJobValidation(t *testing.T) {
	_, err := NewJob(1, "", "desc", "", mustAmount(t, "1"), 1, "")
	assert.True(t, apperror.IsValidation(err))

	_, err = NewJob(1, "title", "   ", "", mustAmount(t, "1"), 1, "")
	assert.True(t, apperror.IsValidation(err))
}

func TestJobLifecycle(t *testing.T) {
	job, err := NewJob(1, "Logo", "Design a logo", "", mustAmount(t, "100"), 3, "img.png")
	require.NoError(t, err)

	require.NoError(t, job.MarkPushed("0xcreate"))
	assert.Equal(t, "0xcreate", *job.TransactionCreate)
	assert.False(t, job.CanBeDeleted())

	require.NoError(t, job.Accept(2, "0xaccept"))
	assert.True(t, job.IsAssignedTo(2))
	assert.True(t, job.IsParticipant(2))
	assert.Equal(t, "0xaccept", *job.TransactionAcceptJob)

	require.NoError(t, job.Complete("0xcomplete"))
	assert.Equal(t, valueobject.JobStatusCompleted, job.Status)
	assert.Equal(t, "0xcomplete", *job.TransactionCompleteJob)
	assert.Equal(t, "0xaccept", *job.TransactionAcceptJob)

	err = job.OpenDispute()
	assert.Equal(t, apperror.ErrCodeInvalidTransition, apperror.CodeOf(err))
}

func TestJobAcceptRejectsClient(t *testing.T) {
	job, _ := NewJob(1, "Logo", "Design a logo", "", mustAmount(t, "100"), 3, "")
	require.NoError(t, job.MarkPushed("0x1"))

	err := job.Accept(1, "0x2")
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, valueobject.JobStatusPushed, job.Status)
}

func TestJobDisputeFlow(t *testing.T) {
	job, _ := NewJob(1, "Logo", "Design a logo", "", mustAmount(t, "100"), 3, "")
	require.NoError(t, job.MarkPushed("0x1"))
	require.NoError(t, job.Accept(2, "0x2"))
	require.NoError(t, job.OpenDispute())
	require.NoError(t, job.Resolve())
	assert.Equal(t, valueobject.JobStatusResolved, job.Status)

	d := NewDispute(job.ID, 1)
	require.NoError(t, d.Resolve(true))
	assert.True(t, *d.ResolvedInFavorOfFreelancer)
	assert.NotNil(t, d.ResolutionDate)
	assert.Error(t, d.Resolve(false))
}

func TestJobPreviousStatus(t *testing.T) {
	job := &Job{ClientID: 1, Status: valueobject.JobStatusAccepted}
	assert.Equal(t, valueobject.JobStatusAccepted, job.PreviousStatus())

	require.NoError(t, job.OpenDispute())
	assert.Equal(t, valueobject.JobStatusDisputed, job.Status)
	assert.Equal(t, valueobject.JobStatusAccepted, job.PreviousStatus())

	// Отклонённый переход не сдвигает исходный статус.
	require.Error(t, job.Complete("0xabc"))
	assert.Equal(t, valueobject.JobStatusAccepted, job.PreviousStatus())
}

func TestUserApplyPatch(t *testing.T) {
	wallet, err := valueobject.NewWalletAddress("0xd1220a0cf47c7b9be7a2e6ba89f429762e7b9adb")
	require.NoError(t, err)

	u := NewUser(wallet)
	assert.Equal(t, "User_0xd1220a0cf47c7b9be7a2e6ba89f429762e7b9adb", u.DisplayUsername())
	assert.True(t, u.IsActive)
	assert.Equal(t, DefaultImage, u.Image)

	u.Bio = "old bio"
	u.Apply(ProfilePatch{
		Name:   valueobject.Some("Alice"),
		Github: valueobject.Some("https://github.com/alice"),
	})

	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "old bio", u.Bio)
	assert.Equal(t, "https://github.com/alice", u.SocialLinks.Github)
	assert.Equal(t, "https://github.com/alice", u.SocialLinks.AsMap()["github"])
	assert.True(t, ProfilePatch{}.IsEmpty())
}

func TestNewChatMessage(t *testing.T) {
	_, err := NewChatMessage(1, 2, 3, "  ")
	assert.True(t, apperror.IsValidation(err))

	msg, err := NewChatMessage(1, 2, 3, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Content)
	assert.False(t, msg.Timestamp.IsZero())
}
