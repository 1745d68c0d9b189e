package email

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cavebeat-backend/internal/domain"

	"github.com/google/uuid"
)

// MemoryTransport keeps messages in memory instead of sending them. With a
// logger attached it also prints each message, which is how local
// development runs without SMTP credentials.
type MemoryTransport struct {
	mu       sync.Mutex
	messages []domain.OutboundMessage
	logger   *slog.Logger
}

// NewMemoryTransport constructs an empty memory transport. logger may be nil.
func NewMemoryTransport(logger *slog.Logger) *MemoryTransport {
	return &MemoryTransport{logger: logger}
}

// Send records the message.
func (m *MemoryTransport) Send(ctx context.Context, msg domain.OutboundMessage) (domain.DeliveryReceipt, error) {
	m.mu.Lock()
	m.messages = append(m.messages, msg)
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.InfoContext(ctx, "Email captured",
			"to", msg.Recipient,
			"subject", msg.Subject,
			"body", msg.BodyText,
		)
	}
	return domain.DeliveryReceipt{MessageID: uuid.NewString(), SentAt: time.Now()}, nil
}

// Messages returns a copy of messages seen so far.
func (m *MemoryTransport) Messages() []domain.OutboundMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.OutboundMessage, len(m.messages))
	copy(out, m.messages)
	return out
}
