package domain

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Preferred contact channels offered by the hire-team form.
const (
	ContactByEmail = "email"
	ContactByPhone = "phone"
)

// SubmissionInput is a hire-team form submission exactly as received from the caller.
type SubmissionInput struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Company          string `json:"company" validate:"required"`
	ProjectType      string `json:"projectType" validate:"required"`
	Budget           string `json:"budget" validate:"required"`
	Timeline         string `json:"timeline" validate:"required"`
	Message          string `json:"message" validate:"required"`
	PreferredContact string `json:"preferredContact"`
}

// ValidatedSubmission is a trimmed SubmissionInput that passed validation.
// SubmittedAt is assigned by the server when validation succeeds.
type ValidatedSubmission struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Company          string    `json:"company"`
	ProjectType      string    `json:"projectType"`
	Budget           string    `json:"budget"`
	Timeline         string    `json:"timeline"`
	Message          string    `json:"message"`
	PreferredContact string    `json:"preferredContact"`
	SubmittedAt      time.Time `json:"submittedAt"`
}

// OutboundMessage is one email ready to be handed to a MailTransport.
type OutboundMessage struct {
	Recipient string
	FromName  string
	ReplyTo   string
	Subject   string
	BodyText  string
	BodyHTML  string
}

// ComposedMessages holds the two messages derived from a single submission.
type ComposedMessages struct {
	Team   OutboundMessage
	Client OutboundMessage
}

// DeliveryReceipt is returned by a transport once a message is accepted.
type DeliveryReceipt struct {
	MessageID string
	SentAt    time.Time
}

// MailTransport delivers a composed message. Retries and timeouts are the
// transport's own business.
type MailTransport interface {
	Send(ctx context.Context, msg OutboundMessage) (DeliveryReceipt, error)
}

// Notifier is a secondary, best-effort channel told about accepted submissions.
type Notifier interface {
	Notify(ctx context.Context, submissionID string, sub ValidatedSubmission) error
}

// SubmissionRecord is what the optional archive stores for an accepted submission.
type SubmissionRecord struct {
	ID               string              `json:"id"`
	Submission       ValidatedSubmission `json:"submission"`
	ConfirmationSent bool                `json:"confirmationSent"`
	Warnings         []string            `json:"warnings,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// SubmissionRepository is an external datastore for accepted submissions.
type SubmissionRepository interface {
	Save(ctx context.Context, record *SubmissionRecord) error
	ListRecent(ctx context.Context, limit int) ([]SubmissionRecord, error)
}

// ErrorKind classifies why a submission was not accepted.
type ErrorKind string

const (
	ErrorKindNone                 ErrorKind = ""
	ErrorKindValidationFailed     ErrorKind = "validation_failed"
	ErrorKindDeliveryFailed       ErrorKind = "delivery_failed"
	ErrorKindTransportUnavailable ErrorKind = "transport_unavailable"
)

// HTTPStatus maps the kind onto the status code every adapter responds with.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrorKindNone:
		return http.StatusOK
	case ErrorKindValidationFailed:
		return http.StatusBadRequest
	case ErrorKindTransportUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// SubmissionResult is handed back to whichever adapter received the submission.
type SubmissionResult struct {
	Success      bool      `json:"success"`
	SubmissionID string    `json:"submissionId,omitempty"`
	Message      string    `json:"message"`
	ErrorKind    ErrorKind `json:"-"`
	// Error carries internal detail and is only filled in development mode.
	Error string `json:"error,omitempty"`
	// Details lists per-field validation messages.
	Details []string `json:"details,omitempty"`
}

// ValidationError is a caller-correctable problem with a submission.
type ValidationError struct {
	Message string
	// Fields lists the offending fields in form order.
	Fields []string
	// Details holds one readable line per offending field, e.g. "Email: is required".
	Details []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrTransportNotConfigured is returned by transports lacking credentials.
	ErrTransportNotConfigured = errors.New("email transport is not configured")
	// ErrArchiveDisabled is returned when no SubmissionRepository is wired.
	ErrArchiveDisabled = errors.New("submission archive is not configured")
)

// HireTeamUsecase defines the operations behind the hire-team form.
type HireTeamUsecase interface {
	// Submit validates, composes and dispatches a submission. It never returns
	// an error; every failure is folded into the result.
	Submit(ctx context.Context, input SubmissionInput) SubmissionResult
	// RecentSubmissions lists archived submissions, newest first.
	RecentSubmissions(ctx context.Context, limit int) ([]SubmissionRecord, error)
}
