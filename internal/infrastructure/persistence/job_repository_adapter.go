package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/repository"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// jobSelect читает задание вместе с заказчиком, фрилансером и типом.
const jobSelect = `
	SELECT j.id, j.title, j.description, COALESCE(j.info, '') AS info, j.image, j.amount, j.status,
	       j.client_id, j.freelancer_id, j.job_type_id,
	       j.transaction_create, j.transaction_accept_job, j.transaction_complete_job,
	       j.created_at, j.updated_at,
	       c.username AS client_username, c.wallet_address AS client_wallet,
	       COALESCE(c.name, '') AS client_name, COALESCE(c.bio, '') AS client_bio, c.image AS client_image,
	       f.username AS freelancer_username, f.wallet_address AS freelancer_wallet,
	       f.name AS freelancer_name, f.bio AS freelancer_bio, f.image AS freelancer_image,
	       t.name AS job_type_name, t.description AS job_type_description,
	       t.created_at AS job_type_created_at, t.updated_at AS job_type_updated_at
	FROM jobs j
	JOIN users c ON c.id = j.client_id
	LEFT JOIN users f ON f.id = j.freelancer_id
	LEFT JOIN job_types t ON t.id = j.job_type_id`

const jobOrder = ` ORDER BY j.created_at DESC, j.id DESC`

type jobRow struct {
	ID                     int64           `db:"id"`
	Title                  string          `db:"title"`
	Description            string          `db:"description"`
	Info                   string          `db:"info"`
	Image                  string          `db:"image"`
	Amount                 decimal.Decimal `db:"amount"`
	Status                 string          `db:"status"`
	ClientID               int64           `db:"client_id"`
	FreelancerID           sql.NullInt64   `db:"freelancer_id"`
	JobTypeID              sql.NullInt64   `db:"job_type_id"`
	TransactionCreate      sql.NullString  `db:"transaction_create"`
	TransactionAcceptJob   sql.NullString  `db:"transaction_accept_job"`
	TransactionCompleteJob sql.NullString  `db:"transaction_complete_job"`
	CreatedAt              time.Time       `db:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at"`

	ClientUsername sql.NullString `db:"client_username"`
	ClientWallet   string         `db:"client_wallet"`
	ClientName     string         `db:"client_name"`
	ClientBio      string         `db:"client_bio"`
	ClientImage    string         `db:"client_image"`

	FreelancerUsername sql.NullString `db:"freelancer_username"`
	FreelancerWallet   sql.NullString `db:"freelancer_wallet"`
	FreelancerName     sql.NullString `db:"freelancer_name"`
	FreelancerBio      sql.NullString `db:"freelancer_bio"`
	FreelancerImage    sql.NullString `db:"freelancer_image"`

	JobTypeName        sql.NullString `db:"job_type_name"`
	JobTypeDescription sql.NullString `db:"job_type_description"`
	JobTypeCreatedAt   sql.NullTime   `db:"job_type_created_at"`
	JobTypeUpdatedAt   sql.NullTime   `db:"job_type_updated_at"`
}

func (r jobRow) toEntity() (*entity.Job, error) {
	amount, err := valueobject.NewAmount(r.Amount)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, fmt.Sprintf("некорректная сумма задания %d", r.ID))
	}
	status, err := valueobject.NewJobStatus(r.Status)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, fmt.Sprintf("некорректный статус задания %d", r.ID))
	}

	job := &entity.Job{
		ID:                     r.ID,
		Title:                  r.Title,
		Description:            r.Description,
		Info:                   r.Info,
		Image:                  r.Image,
		Amount:                 amount,
		Status:                 status,
		ClientID:               r.ClientID,
		FreelancerID:           nullInt64Ptr(r.FreelancerID),
		JobTypeID:              nullInt64Ptr(r.JobTypeID),
		TransactionCreate:      nullStringPtr(r.TransactionCreate),
		TransactionAcceptJob:   nullStringPtr(r.TransactionAcceptJob),
		TransactionCompleteJob: nullStringPtr(r.TransactionCompleteJob),
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
		Client: &entity.UserSummary{
			ID:            r.ClientID,
			Username:      r.ClientUsername.String,
			WalletAddress: r.ClientWallet,
			Name:          r.ClientName,
			Bio:           r.ClientBio,
			Image:         r.ClientImage,
		},
	}

	if r.FreelancerID.Valid {
		job.Freelancer = &entity.UserSummary{
			ID:            r.FreelancerID.Int64,
			Username:      r.FreelancerUsername.String,
			WalletAddress: r.FreelancerWallet.String,
			Name:          r.FreelancerName.String,
			Bio:           r.FreelancerBio.String,
			Image:         r.FreelancerImage.String,
		}
	}

	if r.JobTypeID.Valid {
		job.JobType = &entity.JobType{
			ID:          r.JobTypeID.Int64,
			Name:        r.JobTypeName.String,
			Description: r.JobTypeDescription.String,
			CreatedAt:   r.JobTypeCreatedAt.Time,
			UpdatedAt:   r.JobTypeUpdatedAt.Time,
		}
	}

	return job, nil
}

type JobRepositoryAdapter struct {
	db *sqlx.DB
}

func NewJobRepositoryAdapter(db *sqlx.DB) *JobRepositoryAdapter {
	return &JobRepositoryAdapter{db: db}
}

func (r *JobRepositoryAdapter) Create(ctx context.Context, job *entity.Job) error {
	query := `
		INSERT INTO jobs (title, description, info, image, amount, status, client_id, job_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		job.Title,
		job.Description,
		job.Info,
		job.Image,
		job.Amount.Decimal(),
		string(job.Status),
		job.ClientID,
		job.JobTypeID,
		job.CreatedAt,
		job.UpdatedAt,
	).Scan(&job.ID)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать задание")
	}

	return nil
}

// Update применяет переход, только если статус в базе всё ещё тот, из которого
// задание перешло в памяти. Иначе конкурирующая запись уже сменила статус.
func (r *JobRepositoryAdapter) Update(ctx context.Context, job *entity.Job) error {
	query := `
		UPDATE jobs
		SET status = $2, freelancer_id = $3, transaction_create = $4,
		    transaction_accept_job = $5, transaction_complete_job = $6, updated_at = $7
		WHERE id = $1 AND status = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		job.ID,
		string(job.Status),
		job.FreelancerID,
		job.TransactionCreate,
		job.TransactionAcceptJob,
		job.TransactionCompleteJob,
		job.UpdatedAt,
		string(job.PreviousStatus()),
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить задание")
	}

	return checkStatusGuard(result)
}

// Delete явно удаляет зависимые записи, не полагаясь только на каскад внешних ключей.
func (r *JobRepositoryAdapter) Delete(ctx context.Context, id int64) error {
	err := withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, query := range []string{
			`DELETE FROM job_picks WHERE job_id = $1`,
			`DELETE FROM chat_messages WHERE job_id = $1`,
			`DELETE FROM disputes WHERE job_id = $1`,
		} {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return err
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperror.ErrJobNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperror.ErrJobNotFound) {
			return err
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить задание")
	}
	return nil
}

func (r *JobRepositoryAdapter) FindByID(ctx context.Context, id int64) (*entity.Job, error) {
	return r.findOne(ctx, apperror.ErrJobNotFound, jobSelect+` WHERE j.id = $1`, id)
}

func (r *JobRepositoryAdapter) FindByIDAndClient(ctx context.Context, id, clientID int64) (*entity.Job, error) {
	return r.findOne(ctx, apperror.ErrJobNoAccess, jobSelect+` WHERE j.id = $1 AND j.client_id = $2`, id, clientID)
}

func (r *JobRepositoryAdapter) findOne(ctx context.Context, notFound error, query string, args ...interface{}) (*entity.Job, error) {
	var row jobRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить задание")
	}
	return row.toEntity()
}

func (r *JobRepositoryAdapter) List(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
	query, args := buildJobListQuery(filter)
	return r.selectJobs(ctx, query, args...)
}

// buildJobListQuery собирает WHERE из заданных фильтров, все условия через AND.
func buildJobListQuery(filter repository.JobFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.JobTypeID != nil {
		add("j.job_type_id = $%d", *filter.JobTypeID)
	}
	if filter.MinAmount != nil {
		add("j.amount >= $%d", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		add("j.amount <= $%d", *filter.MaxAmount)
	}
	if filter.Status != nil {
		add("j.status = $%d", string(*filter.Status))
	}
	if filter.ExcludeStatus != nil {
		add("j.status <> $%d", string(*filter.ExcludeStatus))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", n, n))
	}

	query := jobSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += jobOrder

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return query, args
}

func (r *JobRepositoryAdapter) ListByClient(ctx context.Context, clientID int64) ([]*entity.Job, error) {
	return r.selectJobs(ctx, jobSelect+` WHERE j.client_id = $1`+jobOrder, clientID)
}

func (r *JobRepositoryAdapter) ListByFreelancer(ctx context.Context, userID int64) ([]*entity.Job, error) {
	query := jobSelect + `
		WHERE j.freelancer_id = $1
		   OR EXISTS (SELECT 1 FROM job_picks p WHERE p.job_id = j.id AND p.freelancer_id = $1)` + jobOrder
	return r.selectJobs(ctx, query, userID)
}

func (r *JobRepositoryAdapter) ListCompletedByFreelancer(ctx context.Context, userID int64) ([]*entity.Job, error) {
	query := jobSelect + ` WHERE j.freelancer_id = $1 AND j.status = 'COMPLETED'` + jobOrder
	return r.selectJobs(ctx, query, userID)
}

func (r *JobRepositoryAdapter) selectJobs(ctx context.Context, query string, args ...interface{}) ([]*entity.Job, error) {
	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить задания")
	}

	jobs := make([]*entity.Job, 0, len(rows))
	for _, row := range rows {
		job, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// escapeLike экранирует спецсимволы шаблона ILIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
