package postgres

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/apperror"
	"cavebeat-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database when TEST_DATABASE_URL is set, after
// migrations/001_hire_team_submissions.sql has been applied.
func TestSubmissionRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := database.NewPostgresConnection(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewSubmissionRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rec := &domain.SubmissionRecord{
		ID: uuid.NewString(),
		Submission: domain.ValidatedSubmission{
			Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+918448802078",
			Company: "Analytical Engines", ProjectType: "Web App", Budget: "$10k",
			Timeline: "1 month", Message: "Hi", PreferredContact: "email", SubmittedAt: now,
		},
		ConfirmationSent: false,
		Warnings:         []string{"confirmation email not delivered"},
		CreatedAt:        now.Add(time.Hour), // newest in the table
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "DELETE FROM hire_team_submissions WHERE id = $1", rec.ID)
	})

	require.NoError(t, repo.Save(ctx, rec))

	var appErr *apperror.AppError
	require.ErrorAs(t, repo.Save(ctx, rec), &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Code)

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, rec.Warnings, got[0].Warnings)
	assert.Equal(t, "Ada Lovelace", got[0].Submission.Name)
	assert.False(t, got[0].ConfirmationSent)
}
