package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

const userColumns = `
	id, wallet_address, username, email,
	COALESCE(name, '') AS name, COALESCE(bio, '') AS bio, image,
	COALESCE(facebook, '') AS facebook, COALESCE(twitter, '') AS twitter,
	COALESCE(linkedin, '') AS linkedin, COALESCE(github, '') AS github,
	COALESCE(instagram, '') AS instagram, is_active, date_joined`

type userRow struct {
	ID            int64          `db:"id"`
	WalletAddress string         `db:"wallet_address"`
	Username      sql.NullString `db:"username"`
	Email         sql.NullString `db:"email"`
	Name          string         `db:"name"`
	Bio           string         `db:"bio"`
	Image         string         `db:"image"`
	Facebook      string         `db:"facebook"`
	Twitter       string         `db:"twitter"`
	Linkedin      string         `db:"linkedin"`
	Github        string         `db:"github"`
	Instagram     string         `db:"instagram"`
	IsActive      bool           `db:"is_active"`
	DateJoined    time.Time      `db:"date_joined"`
}

func (r userRow) toEntity() *entity.User {
	return &entity.User{
		ID:            r.ID,
		WalletAddress: r.WalletAddress,
		Username:      nullStringPtr(r.Username),
		Email:         nullStringPtr(r.Email),
		Name:          r.Name,
		Bio:           r.Bio,
		Image:         r.Image,
		SocialLinks: entity.SocialLinks{
			Facebook:  r.Facebook,
			Twitter:   r.Twitter,
			Linkedin:  r.Linkedin,
			Github:    r.Github,
			Instagram: r.Instagram,
		},
		IsActive:   r.IsActive,
		DateJoined: r.DateJoined,
	}
}

type UserRepositoryAdapter struct {
	db *sqlx.DB
}

func NewUserRepositoryAdapter(db *sqlx.DB) *UserRepositoryAdapter {
	return &UserRepositoryAdapter{db: db}
}

func (r *UserRepositoryAdapter) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepositoryAdapter) FindByWallet(ctx context.Context, wallet string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE wallet_address = $1`, wallet)
}

func (r *UserRepositoryAdapter) findOne(ctx context.Context, query string, arg interface{}) (*entity.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrUserNotFound
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить пользователя")
	}
	return row.toEntity(), nil
}

func (r *UserRepositoryAdapter) CreateIfNotExists(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (wallet_address, username, image, is_active, date_joined)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		user.WalletAddress,
		user.Username,
		user.Image,
		user.IsActive,
		user.DateJoined,
	).Scan(&id)

	// Конфликт по адресу означает, что пользователя уже создал параллельный вход.
	if errors.Is(err, sql.ErrNoRows) {
		return r.FindByWallet(ctx, user.WalletAddress)
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать пользователя")
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *UserRepositoryAdapter) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, bio = $3, image = $4, facebook = $5, twitter = $6,
		    linkedin = $7, github = $8, instagram = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Bio,
		user.Image,
		user.SocialLinks.Facebook,
		user.SocialLinks.Twitter,
		user.SocialLinks.Linkedin,
		user.SocialLinks.Github,
		user.SocialLinks.Instagram,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить профиль")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить результат обновления")
	}
	if rows == 0 {
		return apperror.ErrUserNotFound
	}

	return nil
}

type freelancerRankRow struct {
	userRow
	CompletedJobsCount int64 `db:"completed_jobs_count"`
}

func (r *UserRepositoryAdapter) TopFreelancers(ctx context.Context, limit int) ([]entity.FreelancerRank, error) {
	query := `
		SELECT ` + userColumns + `, stats.completed_jobs_count
		FROM users
		JOIN (
			SELECT freelancer_id, COUNT(*) AS completed_jobs_count
			FROM jobs
			WHERE status = 'COMPLETED' AND freelancer_id IS NOT NULL
			GROUP BY freelancer_id
		) stats ON stats.freelancer_id = users.id
		ORDER BY stats.completed_jobs_count DESC, users.id ASC
		LIMIT $1
	`

	var rows []freelancerRankRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить рейтинг фрилансеров")
	}

	result := make([]entity.FreelancerRank, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.FreelancerRank{
			User:               *row.userRow.toEntity().Summary(),
			CompletedJobsCount: row.CompletedJobsCount,
		})
	}
	return result, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
