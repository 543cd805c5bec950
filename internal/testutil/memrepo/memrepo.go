// Package memrepo - репозитории в памяти для тестов, в рабочей сборке не используется.
// Повторяет контракты PostgreSQL адаптеров: сентинелы ошибок, порядок выдачи, уникальность откликов
// и проверку прежнего статуса при смене статуса задания.
package memrepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// Store - общее состояние всех репозиториев, чтобы работали связи между таблицами.
type Store struct {
	mu       sync.Mutex
	seq      int64
	users    map[int64]*entity.User
	jobTypes map[int64]*entity.JobType
	jobs     map[int64]*entity.Job
	picks    []*entity.JobPick
	messages []*entity.ChatMessage
	disputes map[int64]*entity.Dispute
	settings map[string]string
	cursors  map[string]entity.CrawlCursor
	failNext error
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int64]*entity.User),
		jobTypes: make(map[int64]*entity.JobType),
		jobs:     make(map[int64]*entity.Job),
		disputes: make(map[int64]*entity.Dispute),
		settings: make(map[string]string),
		cursors:  make(map[string]entity.CrawlCursor),
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *Store) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func (s *Store) Users() *UserRepo { return &UserRepo{s} }

func (s *Store) Jobs() *JobRepo { return &JobRepo{s} }

func (s *Store) JobTypes() *JobTypeRepo { return &JobTypeRepo{s} }

func (s *Store) Picks() *PickRepo { return &PickRepo{s} }

func (s *Store) Chats() *ChatRepo { return &ChatRepo{s} }

func (s *Store) Disputes() *DisputeRepo { return &DisputeRepo{s} }

func (s *Store) Settings() *SettingsRepo { return &SettingsRepo{s} }

func (s *Store) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *Store) PickCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.picks)
}

func (s *Store) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func (s *Store) SetSetting(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
}

// Fail заставляет следующую запись вернуть err.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

// AddUser сохраняет пользователя как есть и возвращает его с присвоенным ID.
func (s *Store) AddUser(u *entity.User) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID()
	if u.DateJoined.IsZero() {
		u.DateJoined = time.Now()
	}
	cp := *u
	s.users[u.ID] = &cp
	return u
}

func (s *Store) AddJobType(name string) *entity.JobType {
	s.mu.Lock()
	defer s.mu.Unlock()
	jt := &entity.JobType{ID: s.nextID(), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.jobTypes[jt.ID] = jt
	return jt
}

// AddJob сохраняет задание в обход use case'ов, например уже назначенное.
func (s *Store) AddJob(j *entity.Job) *entity.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	j.ID = s.nextID()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now()
		j.UpdatedAt = j.CreatedAt
	}
	cp := *j
	s.jobs[j.ID] = &cp
	return j
}

func (s *Store) summary(id int64) *entity.UserSummary {
	if u, ok := s.users[id]; ok {
		return u.Summary()
	}
	return nil
}

// readJob возвращает копию задания с заполненными связями.
func (s *Store) readJob(j *entity.Job) *entity.Job {
	cp := *j
	cp.Client = s.summary(j.ClientID)
	cp.Freelancer = nil
	if j.FreelancerID != nil {
		cp.Freelancer = s.summary(*j.FreelancerID)
	}
	cp.JobType = nil
	if j.JobTypeID != nil {
		if jt, ok := s.jobTypes[*j.JobTypeID]; ok {
			jtCopy := *jt
			cp.JobType = &jtCopy
		}
	}
	return &cp
}

// guardStatus повторяет условие UPDATE ... AND status = $prev из Postgres-адаптера.
func (s *Store) guardStatus(job *entity.Job) error {
	if stored, ok := s.jobs[job.ID]; ok && stored.Status != job.PreviousStatus() {
		return apperror.ErrJobStatusChanged
	}
	return nil
}

func (s *Store) hasPick(jobID, userID int64) bool {
	for _, p := range s.picks {
		if p.JobID == jobID && p.FreelancerID == userID {
			return true
		}
	}
	return false
}

// sortedJobs - created_at DESC, id DESC.
func (s *Store) sortedJobs(match func(*entity.Job) bool) []*entity.Job {
	result := make([]*entity.Job, 0)
	for _, j := range s.jobs {
		if match(j) {
			result = append(result, s.readJob(j))
		}
	}
	sort.Slice(result, func(a, b int) bool {
		if !result[a].CreatedAt.Equal(result[b].CreatedAt) {
			return result[a].CreatedAt.After(result[b].CreatedAt)
		}
		return result[a].ID > result[b].ID
	})
	return result
}

type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperror.ErrUserNotFound
}

func (r *UserRepo) FindByWallet(_ context.Context, wallet string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.WalletAddress == wallet {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.ErrUserNotFound
}

func (r *UserRepo) CreateIfNotExists(ctx context.Context, user *entity.User) (*entity.User, error) {
	if existing, err := r.FindByWallet(ctx, user.WalletAddress); err == nil {
		return existing, nil
	}
	r.s.mu.Lock()
	if err := r.s.takeFailure(); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	r.s.mu.Unlock()
	created := r.s.AddUser(user)
	cp := *created
	return &cp, nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if _, ok := r.s.users[user.ID]; !ok {
		return apperror.ErrUserNotFound
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *UserRepo) TopFreelancers(_ context.Context, limit int) ([]entity.FreelancerRank, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	counts := make(map[int64]int64)
	for _, j := range r.s.jobs {
		if j.Status == valueobject.JobStatusCompleted && j.FreelancerID != nil {
			counts[*j.FreelancerID]++
		}
	}

	result := make([]entity.FreelancerRank, 0, len(counts))
	for id, n := range counts {
		if u, ok := r.s.users[id]; ok {
			result = append(result, entity.FreelancerRank{User: *u.Summary(), CompletedJobsCount: n})
		}
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].CompletedJobsCount != result[b].CompletedJobsCount {
			return result[a].CompletedJobsCount > result[b].CompletedJobsCount
		}
		return result[a].User.ID < result[b].User.ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type JobRepo struct{ s *Store }

var _ repository.JobRepository = (*JobRepo)(nil)

func (r *JobRepo) Create(_ context.Context, job *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	job.ID = r.s.nextID()
	cp := *job
	r.s.jobs[job.ID] = &cp
	return nil
}

func (r *JobRepo) Update(_ context.Context, job *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	stored, ok := r.s.jobs[job.ID]
	if !ok {
		return apperror.ErrJobNotFound
	}
	if stored.Status != job.PreviousStatus() {
		return apperror.ErrJobStatusChanged
	}
	cp := *job
	cp.Client, cp.Freelancer, cp.JobType = nil, nil, nil
	r.s.jobs[job.ID] = &cp
	return nil
}

func (r *JobRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if _, ok := r.s.jobs[id]; !ok {
		return apperror.ErrJobNotFound
	}
	delete(r.s.jobs, id)
	delete(r.s.disputes, id)

	picks := r.s.picks[:0]
	for _, p := range r.s.picks {
		if p.JobID != id {
			picks = append(picks, p)
		}
	}
	r.s.picks = picks

	messages := r.s.messages[:0]
	for _, m := range r.s.messages {
		if m.JobID != id {
			messages = append(messages, m)
		}
	}
	r.s.messages = messages
	return nil
}

func (r *JobRepo) FindByID(_ context.Context, id int64) (*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if j, ok := r.s.jobs[id]; ok {
		return r.s.readJob(j), nil
	}
	return nil, apperror.ErrJobNotFound
}

func (r *JobRepo) FindByIDAndClient(_ context.Context, id, clientID int64) (*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if j, ok := r.s.jobs[id]; ok && j.ClientID == clientID {
		return r.s.readJob(j), nil
	}
	return nil, apperror.ErrJobNoAccess
}

func (r *JobRepo) List(_ context.Context, f repository.JobFilter) ([]*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	search := strings.ToLower(f.Search)
	result := r.s.sortedJobs(func(j *entity.Job) bool {
		if f.JobTypeID != nil && (j.JobTypeID == nil || *j.JobTypeID != *f.JobTypeID) {
			return false
		}
		if f.MinAmount != nil && j.Amount.Decimal().LessThan(*f.MinAmount) {
			return false
		}
		if f.MaxAmount != nil && j.Amount.Decimal().GreaterThan(*f.MaxAmount) {
			return false
		}
		if f.Status != nil && j.Status != *f.Status {
			return false
		}
		if f.ExcludeStatus != nil && j.Status == *f.ExcludeStatus {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(j.Title), search) &&
			!strings.Contains(strings.ToLower(j.Description), search) {
			return false
		}
		return true
	})
	if f.Limit > 0 && len(result) > f.Limit {
		result = result[:f.Limit]
	}
	return result, nil
}

func (r *JobRepo) ListByClient(_ context.Context, clientID int64) ([]*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sortedJobs(func(j *entity.Job) bool { return j.ClientID == clientID }), nil
}

func (r *JobRepo) ListByFreelancer(_ context.Context, userID int64) ([]*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sortedJobs(func(j *entity.Job) bool {
		return j.IsAssignedTo(userID) || r.s.hasPick(j.ID, userID)
	}), nil
}

func (r *JobRepo) ListCompletedByFreelancer(_ context.Context, userID int64) ([]*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sortedJobs(func(j *entity.Job) bool {
		return j.Status == valueobject.JobStatusCompleted && j.IsAssignedTo(userID)
	}), nil
}

type JobTypeRepo struct{ s *Store }

var _ repository.JobTypeRepository = (*JobTypeRepo)(nil)

func (r *JobTypeRepo) FindByID(_ context.Context, id int64) (*entity.JobType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if jt, ok := r.s.jobTypes[id]; ok {
		cp := *jt
		return &cp, nil
	}
	return nil, apperror.ErrInvalidJobType
}

func (r *JobTypeRepo) List(_ context.Context) ([]*entity.JobType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]*entity.JobType, 0, len(r.s.jobTypes))
	for _, jt := range r.s.jobTypes {
		cp := *jt
		result = append(result, &cp)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].ID > result[b].ID })
	return result, nil
}

type PickRepo struct{ s *Store }

var _ repository.PickRepository = (*PickRepo)(nil)

func (r *PickRepo) Create(_ context.Context, pick *entity.JobPick) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if r.s.hasPick(pick.JobID, pick.FreelancerID) {
		return apperror.ErrAlreadyPicked
	}
	pick.ID = r.s.nextID()
	cp := *pick
	r.s.picks = append(r.s.picks, &cp)
	return nil
}

func (r *PickRepo) Exists(_ context.Context, jobID, freelancerID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.hasPick(jobID, freelancerID), nil
}

func (r *PickRepo) ListFreelancers(_ context.Context, jobID int64) ([]entity.UserSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]entity.UserSummary, 0)
	for _, p := range r.s.picks {
		if p.JobID != jobID {
			continue
		}
		if sum := r.s.summary(p.FreelancerID); sum != nil {
			result = append(result, *sum)
		}
	}
	return result, nil
}

type ChatRepo struct{ s *Store }

var _ repository.ChatRepository = (*ChatRepo)(nil)

func (r *ChatRepo) Create(_ context.Context, msg *entity.ChatMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	msg.ID = r.s.nextID()
	cp := *msg
	r.s.messages = append(r.s.messages, &cp)
	return nil
}

func (r *ChatRepo) List(_ context.Context, f repository.ChatFilter) ([]entity.ChatMessageView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]entity.ChatMessageView, 0)
	for _, m := range r.s.messages {
		if m.JobID != f.JobID {
			continue
		}
		sender, receiver := r.s.users[m.SenderID], r.s.users[m.ReceiverID]
		if sender == nil || receiver == nil {
			continue
		}
		if f.HasPair() {
			forward := sender.WalletAddress == f.WalletA && receiver.WalletAddress == f.WalletB
			backward := sender.WalletAddress == f.WalletB && receiver.WalletAddress == f.WalletA
			if !forward && !backward {
				continue
			}
		}
		result = append(result, entity.ChatMessageView{
			ID:              m.ID,
			SenderAddress:   sender.WalletAddress,
			SenderName:      sender.Name,
			ReceiverAddress: receiver.WalletAddress,
			ReceiverName:    receiver.Name,
			Content:         m.Content,
			Timestamp:       m.Timestamp,
		})
	}
	sort.SliceStable(result, func(a, b int) bool {
		if !result[a].Timestamp.Equal(result[b].Timestamp) {
			return result[a].Timestamp.Before(result[b].Timestamp)
		}
		return result[a].ID < result[b].ID
	})
	return result, nil
}

type DisputeRepo struct{ s *Store }

var _ repository.DisputeRepository = (*DisputeRepo)(nil)

func (r *DisputeRepo) Open(_ context.Context, dispute *entity.Dispute, job *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if _, ok := r.s.disputes[dispute.JobID]; ok {
		return apperror.ErrDisputeExists
	}
	if err := r.s.guardStatus(job); err != nil {
		return err
	}
	dispute.ID = r.s.nextID()
	cp := *dispute
	r.s.disputes[dispute.JobID] = &cp
	if stored, ok := r.s.jobs[job.ID]; ok {
		stored.Status = job.Status
		stored.UpdatedAt = job.UpdatedAt
	}
	return nil
}

func (r *DisputeRepo) FindByJobID(_ context.Context, jobID int64) (*entity.Dispute, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d, ok := r.s.disputes[jobID]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, apperror.ErrDisputeNotFound
}

func (r *DisputeRepo) Resolve(_ context.Context, dispute *entity.Dispute, job *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	if err := r.s.guardStatus(job); err != nil {
		return err
	}
	cp := *dispute
	r.s.disputes[dispute.JobID] = &cp
	if stored, ok := r.s.jobs[job.ID]; ok {
		stored.Status = job.Status
		stored.UpdatedAt = job.UpdatedAt
	}
	return nil
}

type SettingsRepo struct{ s *Store }

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

func (r *SettingsRepo) Get(_ context.Context, key string) (string, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.settings[key]
	return v, ok, nil
}

func (r *SettingsRepo) GetCursor(_ context.Context, key string) (*entity.CrawlCursor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.cursors[key]; ok {
		return &c, nil
	}
	return &entity.CrawlCursor{Key: key}, nil
}

func (r *SettingsRepo) SaveCursor(_ context.Context, cursor *entity.CrawlCursor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	r.s.cursors[cursor.Key] = *cursor
	return nil
}
