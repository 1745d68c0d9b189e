package usecase

import (
	"fmt"
	"strings"
	"time"

	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// SubmissionValidator turns untrusted form input into a ValidatedSubmission.
type SubmissionValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewSubmissionValidator wraps a validator built by validation.New. A nil
// validator gets a fresh one.
func NewSubmissionValidator(validate *validator.Validate) *SubmissionValidator {
	if validate == nil {
		validate = validation.New()
	}
	return &SubmissionValidator{validate: validate, now: time.Now}
}

// Validate checks required fields first, then the email shape, then the phone
// format, and stops at the first rule that fails.
func (v *SubmissionValidator) Validate(input domain.SubmissionInput) (domain.ValidatedSubmission, error) {
	in := trimInput(input)

	if err := v.validate.Struct(in); err != nil {
		missing := validation.MissingFields(err)
		if len(missing) == 0 {
			return domain.ValidatedSubmission{}, fmt.Errorf("validate submission: %w", err)
		}
		return domain.ValidatedSubmission{}, &domain.ValidationError{
			Message: "Missing required fields: " + strings.Join(missing, ", "),
			Fields:  missing,
			Details: validation.FormatValidationErrors(err),
		}
	}

	if err := v.validate.Var(in.Email, "email_shape"); err != nil {
		return domain.ValidatedSubmission{}, &domain.ValidationError{
			Message: "Invalid email format",
			Fields:  []string{"email"},
			Details: []string{validation.FieldMessage("email", "email_shape")},
		}
	}

	if err := v.validate.Var(in.Phone, "intl_phone"); err != nil {
		return domain.ValidatedSubmission{}, &domain.ValidationError{
			Message: fmt.Sprintf("Invalid phone number format. Please use international format (e.g., %s)", validation.PhoneExample),
			Fields:  []string{"phone"},
			Details: []string{validation.FieldMessage("phone", "intl_phone")},
		}
	}

	preferred := in.PreferredContact
	if preferred == "" {
		preferred = domain.ContactByEmail
	}

	return domain.ValidatedSubmission{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Company:          in.Company,
		ProjectType:      in.ProjectType,
		Budget:           in.Budget,
		Timeline:         in.Timeline,
		Message:          in.Message,
		PreferredContact: preferred,
		SubmittedAt:      v.now().UTC(),
	}, nil
}

func trimInput(in domain.SubmissionInput) domain.SubmissionInput {
	return domain.SubmissionInput{
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.TrimSpace(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Company:          strings.TrimSpace(in.Company),
		ProjectType:      strings.TrimSpace(in.ProjectType),
		Budget:           strings.TrimSpace(in.Budget),
		Timeline:         strings.TrimSpace(in.Timeline),
		Message:          strings.TrimSpace(in.Message),
		PreferredContact: strings.TrimSpace(in.PreferredContact),
	}
}
