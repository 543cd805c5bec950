package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/infrastructure/cache"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
	"github.com/ignatzorin/web3-freelance/internal/testutil/memrepo"
	"github.com/ignatzorin/web3-freelance/internal/usecase/job"
)

func mustAmount(t *testing.T, v int64) valueobject.Amount {
	t.Helper()
	a, err := valueobject.NewAmount(decimal.NewFromInt(v))
	if err != nil {
		t.Fatalf("amount: %v", err)
	}
	return a
}

func addUser(store *memrepo.Store, wallet string) *entity.User {
	return store.AddUser(entity.NewUser(valueobject.WalletAddress(wallet)))
}

func addJob(t *testing.T, store *memrepo.Store, clientID int64, title string, amount int64, status valueobject.JobStatus, created time.Time) *entity.Job {
	t.Helper()
	return store.AddJob(&entity.Job{
		Title:       title,
		Description: "description of " + title,
		Amount:      mustAmount(t, amount),
		Status:      status,
		ClientID:    clientID,
		CreatedAt:   created,
		UpdatedAt:   created,
	})
}

func ids(jobs []*entity.Job) []int64 {
	out := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestCreateJobUseCase_Success(t *testing.T) {
	store := memrepo.NewStore()
	client := addUser(store, "0x0000000000000000000000000000000000000001")
	jt := store.AddJobType("Design")
	uc := job.NewCreateJobUseCase(store.Jobs(), store.JobTypes(), nil)

	created, err := uc.Execute(context.Background(), job.CreateJobInput{
		ClientID:    client.ID,
		Title:       "Logo",
		Description: "Design a logo",
		Amount:      mustAmount(t, 100),
		JobTypeID:   jt.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != valueobject.JobStatusNew {
		t.Errorf("expected NEW, got %s", created.Status)
	}
	if created.Image != entity.DefaultImage {
		t.Errorf("expected placeholder image, got %q", created.Image)
	}
	if created.Client == nil || created.Client.ID != client.ID {
		t.Errorf("expected embedded client, got %+v", created.Client)
	}
	if created.JobType == nil || created.JobType.Name != "Design" {
		t.Errorf("expected embedded job type, got %+v", created.JobType)
	}
}

func TestCreateJobUseCase_InvalidJobType(t *testing.T) {
	store := memrepo.NewStore()
	client := addUser(store, "0x0000000000000000000000000000000000000001")
	uc := job.NewCreateJobUseCase(store.Jobs(), store.JobTypes(), nil)

	_, err := uc.Execute(context.Background(), job.CreateJobInput{
		ClientID:    client.ID,
		Title:       "Logo",
		Description: "Design a logo",
		Amount:      mustAmount(t, 100),
		JobTypeID:   999,
	})
	if !errors.Is(err, apperror.ErrInvalidJobType) {
		t.Fatalf("expected ErrInvalidJobType, got %v", err)
	}
	if store.JobCount() != 0 {
		t.Error("job must not be created")
	}
}

func TestCreateJobUseCase_RequiresTitle(t *testing.T) {
	store := memrepo.NewStore()
	jt := store.AddJobType("Design")
	uc := job.NewCreateJobUseCase(store.Jobs(), store.JobTypes(), nil)

	_, err := uc.Execute(context.Background(), job.CreateJobInput{ClientID: 1, Description: "d", JobTypeID: jt.ID})
	if !apperror.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListJobsUseCase_AmountRangeInclusive(t *testing.T) {
	store := memrepo.NewStore()
	now := time.Now()
	for i, amount := range []int64{40, 50, 100, 150, 151} {
		addJob(t, store, 1, "job", amount, valueobject.JobStatusNew, now.Add(time.Duration(i)*time.Second))
	}
	uc := job.NewListJobsUseCase(store.Jobs())

	minAmount, maxAmount := decimal.NewFromInt(50), decimal.NewFromInt(150)
	jobs, err := uc.Execute(context.Background(), job.ListJobsInput{MinAmount: &minAmount, MaxAmount: &maxAmount})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	for _, j := range jobs {
		if j.Amount.Decimal().LessThan(minAmount) || j.Amount.Decimal().GreaterThan(maxAmount) {
			t.Errorf("amount %s outside range", j.Amount)
		}
	}
}

func TestListJobsUseCase_FiltersAndOrder(t *testing.T) {
	store := memrepo.NewStore()
	now := time.Now()
	old := addJob(t, store, 1, "Website redesign", 10, valueobject.JobStatusNew, now.Add(-time.Hour))
	recent := addJob(t, store, 1, "Logo", 10, valueobject.JobStatusPushed, now)
	uc := job.NewListJobsUseCase(store.Jobs())

	all, err := uc.Execute(context.Background(), job.ListJobsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(all); len(got) != 2 || got[0] != recent.ID || got[1] != old.ID {
		t.Errorf("expected newest first, got %v", got)
	}

	bySearch, _ := uc.Execute(context.Background(), job.ListJobsInput{Search: "REDESIGN"})
	if got := ids(bySearch); len(got) != 1 || got[0] != old.ID {
		t.Errorf("search: got %v", got)
	}

	byStatus, _ := uc.Execute(context.Background(), job.ListJobsInput{Status: "pushed"})
	if got := ids(byStatus); len(got) != 1 || got[0] != recent.ID {
		t.Errorf("status: got %v", got)
	}

	_, err = uc.Execute(context.Background(), job.ListJobsInput{Status: "ARCHIVED"})
	if !apperror.IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}
}

func TestListFreelancerJobsUseCase_Deduplicates(t *testing.T) {
	store := memrepo.NewStore()
	client := addUser(store, "0x0000000000000000000000000000000000000001")
	freelancer := addUser(store, "0x0000000000000000000000000000000000000002")
	now := time.Now()

	assigned := addJob(t, store, client.ID, "assigned", 10, valueobject.JobStatusAccepted, now.Add(-2*time.Minute))
	assigned.FreelancerID = &freelancer.ID
	if err := store.Jobs().Update(context.Background(), assigned); err != nil {
		t.Fatalf("update: %v", err)
	}
	picked := addJob(t, store, client.ID, "picked", 10, valueobject.JobStatusNew, now.Add(-time.Minute))
	addJob(t, store, client.ID, "other", 10, valueobject.JobStatusNew, now)

	for _, jobID := range []int64{assigned.ID, picked.ID} {
		if err := store.Picks().Create(context.Background(), entity.NewJobPick(jobID, freelancer.ID)); err != nil {
			t.Fatalf("pick: %v", err)
		}
	}

	jobs, err := job.NewListFreelancerJobsUseCase(store.Jobs()).Execute(context.Background(), freelancer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ids(jobs)
	if len(got) != 2 || got[0] != picked.ID || got[1] != assigned.ID {
		t.Errorf("expected [%d %d], got %v", picked.ID, assigned.ID, got)
	}
}

func TestListNewestJobsUseCase_ExcludesNewAndCaches(t *testing.T) {
	store := memrepo.NewStore()
	now := time.Now()
	addJob(t, store, 1, "draft", 10, valueobject.JobStatusNew, now)
	for i := 0; i < 8; i++ {
		addJob(t, store, 1, "pushed", 10, valueobject.JobStatusPushed, now.Add(-time.Duration(i+1)*time.Minute))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := cache.NewMemoryCache(ctx)
	uc := job.NewListNewestJobsUseCase(store.Jobs(), c, time.Minute)

	jobs, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != job.NewestJobsLimit {
		t.Fatalf("expected %d jobs, got %d", job.NewestJobsLimit, len(jobs))
	}
	for _, j := range jobs {
		if j.Status == valueobject.JobStatusNew {
			t.Errorf("job %d has status NEW", j.ID)
		}
	}

	// Новое задание не видно до инвалидации кэша.
	fresh := addJob(t, store, 1, "fresh", 10, valueobject.JobStatusPushed, now.Add(time.Minute))
	cached, _ := uc.Execute(ctx)
	if cached[0].ID == fresh.ID {
		t.Error("expected cached listing")
	}
	if !cached[0].Amount.Decimal().Equal(decimal.NewFromInt(10)) {
		t.Errorf("amount must survive cache round trip, got %s", cached[0].Amount)
	}

	cache.InvalidateJobListings(ctx, c)
	refreshed, _ := uc.Execute(ctx)
	if refreshed[0].ID != fresh.ID {
		t.Errorf("expected fresh job first after invalidation, got %d", refreshed[0].ID)
	}
}

func TestTopFreelancersUseCase(t *testing.T) {
	store := memrepo.NewStore()
	a := addUser(store, "0x00000000000000000000000000000000000000aa")
	b := addUser(store, "0x00000000000000000000000000000000000000bb")

	complete := func(freelancerID int64, n int) {
		for i := 0; i < n; i++ {
			j := addJob(t, store, 1, "done", 10, valueobject.JobStatusCompleted, time.Now())
			j.FreelancerID = &freelancerID
			_ = store.Jobs().Update(context.Background(), j)
		}
	}
	complete(a.ID, 1)
	complete(b.ID, 3)

	ranks, err := job.NewTopFreelancersUseCase(store.Users(), nil, time.Minute).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranks) != 2 || ranks[0].User.ID != b.ID || ranks[0].CompletedJobsCount != 3 {
		t.Errorf("unexpected ranking: %+v", ranks)
	}
}

func TestGetJobUseCase_NotFound(t *testing.T) {
	_, err := job.NewGetJobUseCase(memrepo.NewStore().Jobs()).Execute(context.Background(), 404)
	if !errors.Is(err, apperror.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestDeleteJobUseCase(t *testing.T) {
	store := memrepo.NewStore()
	client := addUser(store, "0x0000000000000000000000000000000000000001")
	stranger := addUser(store, "0x0000000000000000000000000000000000000002")
	draft := addJob(t, store, client.ID, "draft", 10, valueobject.JobStatusNew, time.Now())
	pushed := addJob(t, store, client.ID, "pushed", 10, valueobject.JobStatusPushed, time.Now())
	_ = store.Picks().Create(context.Background(), entity.NewJobPick(draft.ID, stranger.ID))

	uc := job.NewDeleteJobUseCase(store.Jobs(), nil)

	err := uc.Execute(context.Background(), job.DeleteJobInput{JobID: draft.ID, ClientID: stranger.ID})
	if !apperror.IsForbidden(err) {
		t.Errorf("expected forbidden, got %v", err)
	}

	err = uc.Execute(context.Background(), job.DeleteJobInput{JobID: pushed.ID, ClientID: client.ID})
	if apperror.CodeOf(err) != apperror.ErrCodeInvalidTransition {
		t.Errorf("expected invalid transition, got %v", err)
	}

	if err := uc.Execute(context.Background(), job.DeleteJobInput{JobID: draft.ID, ClientID: client.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.PickCount() != 0 {
		t.Error("expected picks to be removed with the job")
	}
}
