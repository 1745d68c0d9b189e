package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"cavebeat-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier("+918448802078", slog.New(slog.NewTextHandler(&buf, nil)))

	err := n.Notify(context.Background(), "sub-1", domain.ValidatedSubmission{
		Name:        "Ada",
		Company:     "Engines",
		ProjectType: "Web App",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "to=+918448802078")
	assert.Contains(t, out, "submission_id=sub-1")
	assert.Contains(t, out, "New hire team submission from Ada (Engines) - Web App project")
}
