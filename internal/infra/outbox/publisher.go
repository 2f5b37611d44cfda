package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID         uuid.UUID
	ContractID uuid.UUID
	Kind       string
	Payload    json.RawMessage
	Attempts   int
	CreatedAt  time.Time
}

// Publisher hands an event to whoever consumes contract activity. A returned
// error leaves the event queued until its attempts run out.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher writes each event to the structured log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.InfoContext(ctx, "contract event",
		"event_id", event.ID.String(),
		"kind", event.Kind,
		"contract_id", event.ContractID.String(),
		"attempt", event.Attempts+1,
		"payload", string(event.Payload))
	return nil
}
