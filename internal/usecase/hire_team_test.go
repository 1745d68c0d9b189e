package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"cavebeat-backend/internal/domain"
	"cavebeat-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const teamInbox = "studio@cavebeat.test"

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(ctx context.Context, msg domain.OutboundMessage) (domain.DeliveryReceipt, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(domain.DeliveryReceipt), args.Error(1)
}

func (m *MockTransport) recipients() []string {
	var out []string
	for _, call := range m.Calls {
		out = append(out, call.Arguments.Get(1).(domain.OutboundMessage).Recipient)
	}
	return out
}

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Save(ctx context.Context, record *domain.SubmissionRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockRepo) ListRecent(ctx context.Context, limit int) ([]domain.SubmissionRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubmissionRecord), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, id string, sub domain.ValidatedSubmission) error {
	return m.Called(ctx, id, sub).Error(0)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() domain.SubmissionInput {
	return domain.SubmissionInput{
		Name:             "Ada Lovelace",
		Email:            "ada@example.com",
		Phone:            "+918448802078",
		Company:          "Analytical Engines",
		ProjectType:      "Web App",
		Budget:           "$10k-$25k",
		Timeline:         "1-3 months",
		Message:          "We need a dashboard.",
		PreferredContact: "phone",
	}
}

func newUsecase(transport domain.MailTransport, opts ...func(*usecase.HireTeamDeps)) domain.HireTeamUsecase {
	deps := usecase.HireTeamDeps{
		Composer:  usecase.NewMessageComposer(usecase.ComposerConfig{TeamInbox: teamInbox}),
		Transport: transport,
		Logger:    quietLogger(),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	return usecase.NewHireTeamUsecase(deps)
}

func TestSubmitHappyPath(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).Return(domain.DeliveryReceipt{MessageID: "m"}, nil)
	uc := newUsecase(transport)

	result := uc.Submit(context.Background(), validInput())

	assert.True(t, result.Success)
	assert.Equal(t, usecase.MsgSubmissionReceived, result.Message)
	assert.NotEmpty(t, result.SubmissionID)
	assert.Equal(t, domain.ErrorKindNone, result.ErrorKind)
	transport.AssertNumberOfCalls(t, "Send", 2)
	assert.Equal(t, []string{teamInbox, "ada@example.com"}, transport.recipients())
}

func TestSubmitValidationFailureSkipsTransport(t *testing.T) {
	transport := new(MockTransport)
	uc := newUsecase(transport)

	result := uc.Submit(context.Background(), domain.SubmissionInput{Name: "Ada", Email: "ada@example.com"})

	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrorKindValidationFailed, result.ErrorKind)
	assert.Equal(t, "Missing required fields: phone, company, projectType, budget, timeline, message", result.Message)
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitTeamSendFailureIsFatal(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).
		Return(domain.DeliveryReceipt{}, errors.New("535 auth failed for secret-user")).Once()
	transport.On("Send", mock.Anything, mock.Anything).
		Return(domain.DeliveryReceipt{MessageID: "m"}, nil)
	repo := new(MockRepo)
	uc := newUsecase(transport, func(d *usecase.HireTeamDeps) { d.Repository = repo })

	result := uc.Submit(context.Background(), validInput())

	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrorKindDeliveryFailed, result.ErrorKind)
	assert.Equal(t, usecase.MsgInternalError, result.Message)
	assert.Empty(t, result.SubmissionID)
	assert.Empty(t, result.Error, "transport detail must not leak outside development mode")
	transport.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, []string{teamInbox}, transport.recipients())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubmitClientSendFailureIsNonFatal(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).
		Return(domain.DeliveryReceipt{MessageID: "m"}, nil).Once()
	transport.On("Send", mock.Anything, mock.Anything).
		Return(domain.DeliveryReceipt{}, errors.New("mailbox unavailable")).Once()
	repo := new(MockRepo)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.SubmissionRecord")).Return(nil).Run(func(args mock.Arguments) {
		record := args.Get(1).(*domain.SubmissionRecord)
		assert.False(t, record.ConfirmationSent)
		assert.NotEmpty(t, record.Warnings)
	})
	uc := newUsecase(transport, func(d *usecase.HireTeamDeps) { d.Repository = repo })

	result := uc.Submit(context.Background(), validInput())

	assert.True(t, result.Success)
	assert.Equal(t, usecase.MsgSubmissionReceived, result.Message)
	assert.NotEmpty(t, result.SubmissionID)
	transport.AssertNumberOfCalls(t, "Send", 2)
	repo.AssertExpectations(t)
}

func TestSubmitUnconfiguredTransport(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).
		Return(domain.DeliveryReceipt{}, fmt.Errorf("send: %w", domain.ErrTransportNotConfigured))
	uc := newUsecase(transport)

	result := uc.Submit(context.Background(), validInput())

	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrorKindTransportUnavailable, result.ErrorKind)
	assert.Equal(t, 503, result.ErrorKind.HTTPStatus())
}

func TestSubmitExposesErrorsInDevelopment(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).
		Return(domain.DeliveryReceipt{}, errors.New("dial tcp: connection refused"))
	uc := newUsecase(transport, func(d *usecase.HireTeamDeps) { d.ExposeErrors = true })

	result := uc.Submit(context.Background(), validInput())

	assert.False(t, result.Success)
	assert.Equal(t, usecase.MsgInternalError, result.Message)
	assert.Equal(t, "dial tcp: connection refused", result.Error)
}

func TestSubmitBestEffortCollaboratorsDoNotFail(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).Return(domain.DeliveryReceipt{}, nil)
	repo := new(MockRepo)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, "fixed-id", mock.AnythingOfType("domain.ValidatedSubmission")).Return(errors.New("whatsapp down"))
	uc := newUsecase(transport, func(d *usecase.HireTeamDeps) {
		d.Repository = repo
		d.Notifier = notifier
		d.NewID = func() string { return "fixed-id" }
	})

	result := uc.Submit(context.Background(), validInput())

	assert.True(t, result.Success)
	assert.Equal(t, "fixed-id", result.SubmissionID)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSubmitIgnoresCallerCancellationOnceAccepted(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).Return(domain.DeliveryReceipt{}, nil).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		assert.NoError(t, ctx.Err())
	})
	uc := newUsecase(transport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := uc.Submit(ctx, validInput())

	assert.True(t, result.Success)
	transport.AssertNumberOfCalls(t, "Send", 2)
}

func TestSubmitConcurrentIDsAreUnique(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).Return(domain.DeliveryReceipt{}, nil)
	uc := newUsecase(transport)

	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- uc.Submit(context.Background(), validInput()).SubmissionID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestRecentSubmissions(t *testing.T) {
	t.Run("Should fail when no archive is configured", func(t *testing.T) {
		uc := newUsecase(new(MockTransport))
		_, err := uc.RecentSubmissions(context.Background(), 10)
		assert.ErrorIs(t, err, domain.ErrArchiveDisabled)
	})

	t.Run("Should clamp the limit", func(t *testing.T) {
		repo := new(MockRepo)
		records := []domain.SubmissionRecord{{ID: "a", CreatedAt: time.Now()}}
		repo.On("ListRecent", mock.Anything, 100).Return(records, nil).Once()
		repo.On("ListRecent", mock.Anything, 20).Return(records, nil).Once()
		uc := newUsecase(new(MockTransport), func(d *usecase.HireTeamDeps) { d.Repository = repo })

		got, err := uc.RecentSubmissions(context.Background(), 5000)
		require.NoError(t, err)
		assert.Equal(t, records, got)

		_, err = uc.RecentSubmissions(context.Background(), 0)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestSubmitTrimsBeforeSending(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Send", mock.Anything, mock.Anything).Return(domain.DeliveryReceipt{}, nil)
	uc := newUsecase(transport)

	in := validInput()
	in.Email = "  ada@example.com  "
	result := uc.Submit(context.Background(), in)

	require.True(t, result.Success)
	client := transport.Calls[1].Arguments.Get(1).(domain.OutboundMessage)
	assert.Equal(t, "ada@example.com", client.Recipient)
	assert.False(t, strings.Contains(client.BodyText, "We need a dashboard."))
}
