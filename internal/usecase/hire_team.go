package usecase

import (
	"context"
	"errors"
	"log/slog"

	"cavebeat-backend/internal/domain"

	"github.com/google/uuid"
)

// Caller-facing result messages.
const (
	MsgSubmissionReceived   = "Submission received successfully"
	MsgInternalError        = "Internal server error"
	MsgServiceUnavailable   = "Hire team service temporarily unavailable"
	warnConfirmationSkipped = "confirmation email not delivered"

	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// HireTeamDeps wires the hire-team usecase. Repository and Notifier are optional.
type HireTeamDeps struct {
	Validator  *SubmissionValidator
	Composer   *MessageComposer
	Transport  domain.MailTransport
	Repository domain.SubmissionRepository
	Notifier   domain.Notifier
	Logger     *slog.Logger
	// ExposeErrors copies internal error text into results. Development only.
	ExposeErrors bool
	// NewID mints submission identifiers. Defaults to random UUIDs.
	NewID func() string
}

type hireTeamUsecase struct {
	validator    *SubmissionValidator
	composer     *MessageComposer
	transport    domain.MailTransport
	repo         domain.SubmissionRepository
	notifier     domain.Notifier
	logger       *slog.Logger
	exposeErrors bool
	newID        func() string
}

// NewHireTeamUsecase creates a new hire-team usecase
func NewHireTeamUsecase(deps HireTeamDeps) domain.HireTeamUsecase {
	uc := &hireTeamUsecase{
		validator:    deps.Validator,
		composer:     deps.Composer,
		transport:    deps.Transport,
		repo:         deps.Repository,
		notifier:     deps.Notifier,
		logger:       deps.Logger,
		exposeErrors: deps.ExposeErrors,
		newID:        deps.NewID,
	}
	if uc.validator == nil {
		uc.validator = NewSubmissionValidator(nil)
	}
	if uc.composer == nil {
		uc.composer = NewMessageComposer(ComposerConfig{})
	}
	if uc.logger == nil {
		uc.logger = slog.Default()
	}
	if uc.newID == nil {
		uc.newID = uuid.NewString
	}
	return uc
}

// Submit runs validation, composition and the two sends in order. The team
// notification is mandatory; the client confirmation is best-effort.
func (uc *hireTeamUsecase) Submit(ctx context.Context, input domain.SubmissionInput) domain.SubmissionResult {
	sub, err := uc.validator.Validate(input)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return domain.SubmissionResult{
				Success:   false,
				Message:   vErr.Message,
				ErrorKind: domain.ErrorKindValidationFailed,
				Details:   vErr.Details,
			}
		}
		uc.logger.ErrorContext(ctx, "Submission validation crashed", "error", err)
		return uc.failure(domain.ErrorKindDeliveryFailed, MsgInternalError, err)
	}

	msgs, err := uc.composer.Compose(sub)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to compose hire team messages", "error", err)
		return uc.failure(domain.ErrorKindDeliveryFailed, MsgInternalError, err)
	}

	id := uc.newID()
	log := uc.logger.With("submission_id", id)

	// An accepted submission runs to completion even if the caller goes away.
	sendCtx := context.WithoutCancel(ctx)

	if _, err := uc.transport.Send(sendCtx, msgs.Team); err != nil {
		log.ErrorContext(ctx, "Team notification failed", "recipient", msgs.Team.Recipient, "error", err)
		if errors.Is(err, domain.ErrTransportNotConfigured) {
			return uc.failure(domain.ErrorKindTransportUnavailable, MsgServiceUnavailable, err)
		}
		return uc.failure(domain.ErrorKindDeliveryFailed, MsgInternalError, err)
	}
	log.InfoContext(ctx, "Team notification sent", "recipient", msgs.Team.Recipient)

	record := &domain.SubmissionRecord{
		ID:               id,
		Submission:       sub,
		ConfirmationSent: true,
		CreatedAt:        sub.SubmittedAt,
	}

	if _, err := uc.transport.Send(sendCtx, msgs.Client); err != nil {
		log.WarnContext(ctx, "Client confirmation failed", "recipient", msgs.Client.Recipient, "error", err)
		record.ConfirmationSent = false
		record.Warnings = append(record.Warnings, warnConfirmationSkipped)
	} else {
		log.InfoContext(ctx, "Client confirmation sent", "recipient", msgs.Client.Recipient)
	}

	if uc.notifier != nil {
		if err := uc.notifier.Notify(sendCtx, id, sub); err != nil {
			log.WarnContext(ctx, "Secondary notification failed", "error", err)
		}
	}

	if uc.repo != nil {
		if err := uc.repo.Save(sendCtx, record); err != nil {
			log.WarnContext(ctx, "Failed to archive submission", "error", err)
		}
	}

	return domain.SubmissionResult{
		Success:      true,
		SubmissionID: id,
		Message:      MsgSubmissionReceived,
	}
}

// RecentSubmissions lists archived submissions, newest first.
func (uc *hireTeamUsecase) RecentSubmissions(ctx context.Context, limit int) ([]domain.SubmissionRecord, error) {
	if uc.repo == nil {
		return nil, domain.ErrArchiveDisabled
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return uc.repo.ListRecent(ctx, limit)
}

func (uc *hireTeamUsecase) failure(kind domain.ErrorKind, message string, cause error) domain.SubmissionResult {
	result := domain.SubmissionResult{
		Success:   false,
		Message:   message,
		ErrorKind: kind,
	}
	if uc.exposeErrors && cause != nil {
		result.Error = cause.Error()
	}
	return result
}
