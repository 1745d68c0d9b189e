package notify

import (
	"context"
	"fmt"
	"log/slog"

	"cavebeat-backend/internal/domain"
)

// LogNotifier stands in for a WhatsApp Business integration: it renders the
// alert the team would receive and writes it to the log.
type LogNotifier struct {
	to     string
	logger *slog.Logger
}

// NewLogNotifier constructs a notifier addressed to the given number.
func NewLogNotifier(to string, logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{to: to, logger: logger.With("component", "whatsapp_notifier")}
}

// Notify logs a one-line summary of the submission.
func (n *LogNotifier) Notify(ctx context.Context, submissionID string, sub domain.ValidatedSubmission) error {
	n.logger.InfoContext(ctx, "WhatsApp notification (simulated)",
		"to", n.to,
		"submission_id", submissionID,
		"message", Summary(sub),
	)
	return nil
}

// Summary is the short alert text sent to the team's phone.
func Summary(sub domain.ValidatedSubmission) string {
	return fmt.Sprintf("New hire team submission from %s (%s) - %s project", sub.Name, sub.Company, sub.ProjectType)
}
