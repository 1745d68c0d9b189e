package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type submissionRepo struct {
	db *pgxpool.Pool
}

func NewSubmissionRepository(db *pgxpool.Pool) domain.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Save(ctx context.Context, record *domain.SubmissionRecord) error {
	query := `
		INSERT INTO hire_team_submissions (
			id, name, email, phone, company, project_type, budget, timeline,
			message, preferred_contact, submitted_at, confirmation_sent, warnings, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	s := record.Submission
	warnings := record.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	_, err := r.db.Exec(ctx, query,
		record.ID, s.Name, s.Email, s.Phone, s.Company, s.ProjectType, s.Budget, s.Timeline,
		s.Message, s.PreferredContact, s.SubmittedAt, record.ConfirmationSent, pq.Array(warnings), record.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.New(http.StatusConflict, fmt.Sprintf("Submission %s already archived", record.ID), err)
		}
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) ListRecent(ctx context.Context, limit int) ([]domain.SubmissionRecord, error) {
	query := `
		SELECT
			id, name, email, phone, company, project_type, budget, timeline,
			message, preferred_contact, submitted_at, confirmation_sent, warnings, created_at
		FROM hire_team_submissions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	records := []domain.SubmissionRecord{}
	for rows.Next() {
		var rec domain.SubmissionRecord
		var warnings []string
		s := &rec.Submission
		if err := rows.Scan(
			&rec.ID, &s.Name, &s.Email, &s.Phone, &s.Company, &s.ProjectType, &s.Budget, &s.Timeline,
			&s.Message, &s.PreferredContact, &s.SubmittedAt, &rec.ConfirmationSent, pq.Array(&warnings), &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		rec.Warnings = warnings
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return records, nil
}
