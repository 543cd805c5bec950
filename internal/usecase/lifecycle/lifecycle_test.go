package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
	"github.com/ignatzorin/web3-freelance/internal/testutil/memrepo"
	"github.com/ignatzorin/web3-freelance/internal/usecase/lifecycle"
)

const (
	clientWallet     = "0x00000000000000000000000000000000000000c1"
	freelancerWallet = "0x00000000000000000000000000000000000000f1"
)

func setup() (*memrepo.Store, *entity.Job, *lifecycle.ReportEventUseCase) {
	store := memrepo.NewStore()
	client := store.AddUser(entity.NewUser(clientWallet))
	store.AddUser(entity.NewUser(freelancerWallet))
	job := store.AddJob(&entity.Job{Title: "Logo", Status: valueobject.JobStatusNew, ClientID: client.ID})
	return store, job, lifecycle.NewReportEventUseCase(store.Jobs(), store.Users(), nil)
}

func TestReportEvent_FullLifecycle(t *testing.T) {
	_, job, uc := setup()
	ctx := context.Background()

	steps := []struct {
		input lifecycle.ReportEventInput
		want  valueobject.JobStatus
	}{
		{lifecycle.ReportEventInput{JobID: job.ID, Event: lifecycle.EventCreated, TxHash: "0xaa", ClientWallet: clientWallet}, valueobject.JobStatusPushed},
		{lifecycle.ReportEventInput{JobID: job.ID, Event: lifecycle.EventAccepted, TxHash: "0xbb", FreelancerWallet: freelancerWallet}, valueobject.JobStatusAccepted},
		{lifecycle.ReportEventInput{JobID: job.ID, Event: lifecycle.EventCompleted, TxHash: "0xcc"}, valueobject.JobStatusCompleted},
	}

	var got *entity.Job
	for _, step := range steps {
		var err error
		got, err = uc.Execute(ctx, step.input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", step.input.Event, err)
		}
		if got.Status != step.want {
			t.Fatalf("%s: expected %s, got %s", step.input.Event, step.want, got.Status)
		}
	}

	if got.Freelancer == nil || got.Freelancer.WalletAddress != freelancerWallet {
		t.Errorf("expected assigned freelancer, got %+v", got.Freelancer)
	}
	if got.TransactionCreate == nil || *got.TransactionCreate != "0xaa" ||
		got.TransactionAcceptJob == nil || *got.TransactionAcceptJob != "0xbb" ||
		got.TransactionCompleteJob == nil || *got.TransactionCompleteJob != "0xcc" {
		t.Errorf("transaction hashes not stored: %+v", got)
	}
}

func TestReportEvent_IllegalTransition(t *testing.T) {
	_, job, uc := setup()

	_, err := uc.Execute(context.Background(), lifecycle.ReportEventInput{JobID: job.ID, Event: lifecycle.EventCompleted, TxHash: "0xcc"})
	if apperror.CodeOf(err) != apperror.ErrCodeInvalidTransition {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestReportEvent_ReplayIsNoop(t *testing.T) {
	store, job, uc := setup()
	input := lifecycle.ReportEventInput{JobID: job.ID, Event: lifecycle.EventCreated, TxHash: "0xaa", ClientWallet: clientWallet}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first: %v", err)
	}
	got, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("replay must succeed: %v", err)
	}
	if got.Status != valueobject.JobStatusPushed {
		t.Errorf("expected PUSHED, got %s", got.Status)
	}

	stored, _ := store.Jobs().FindByID(context.Background(), job.ID)
	if stored.Status != valueobject.JobStatusPushed {
		t.Errorf("unexpected stored status %s", stored.Status)
	}
}

func TestReportEvent_Validation(t *testing.T) {
	store, job, uc := setup()
	stranger := store.AddUser(entity.NewUser("0x00000000000000000000000000000000000000aa"))

	cases := map[string]lifecycle.ReportEventInput{
		"missing hash":  {JobID: job.ID, Event: lifecycle.EventCreated, ClientWallet: clientWallet},
		"unknown event": {JobID: job.ID, Event: "cancelled", TxHash: "0x1"},
		"wrong client":  {JobID: job.ID, Event: lifecycle.EventCreated, TxHash: "0x1", ClientWallet: stranger.WalletAddress},
	}
	for name, input := range cases {
		if _, err := uc.Execute(context.Background(), input); !apperror.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}

	_, err := uc.Execute(context.Background(), lifecycle.ReportEventInput{JobID: 999, Event: lifecycle.EventCompleted, TxHash: "0x1"})
	if !errors.Is(err, apperror.ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestReportEvent_ClientCannotAcceptOwnJob(t *testing.T) {
	_, job, uc := setup()
	ctx := context.Background()
	if _, err := uc.Execute(ctx, lifecycle.ReportEventInput{JobID: job.ID, Event: lifecycle.EventCreated, TxHash: "0xaa", ClientWallet: clientWallet}); err != nil {
		t.Fatalf("created: %v", err)
	}

	_, err := uc.Execute(ctx, lifecycle.ReportEventInput{JobID: job.ID, Event: lifecycle.EventAccepted, TxHash: "0xbb", FreelancerWallet: clientWallet})
	if !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCrawlCursor(t *testing.T) {
	store := memrepo.NewStore()
	get := lifecycle.NewGetCursorUseCase(store.Settings())
	save := lifecycle.NewSaveCursorUseCase(store.Settings())
	ctx := context.Background()

	initial, err := get.Execute(ctx, "job_events")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if initial.Value != 0 || initial.StartAt != 0 {
		t.Errorf("expected zero cursor, got %+v", initial)
	}

	if _, err := save.Execute(ctx, entity.CrawlCursor{Key: " job_events ", StartAt: 100, Value: 150}); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved, _ := get.Execute(ctx, "job_events")
	if saved.Value != 150 || saved.StartAt != 100 {
		t.Errorf("unexpected cursor %+v", saved)
	}

	for _, bad := range []entity.CrawlCursor{{Key: ""}, {Key: "k", Value: -1}, {Key: "k", StartAt: 10, Value: 5}} {
		if _, err := save.Execute(ctx, bad); !apperror.IsValidation(err) {
			t.Errorf("%+v: expected validation error, got %v", bad, err)
		}
	}
}
