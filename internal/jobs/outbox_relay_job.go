package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds how many outbox messages one tick will publish.
const relayBatchSize = 100

// OutboxRelayJob drains unpublished domain events from the outbox table to
// the message broker. Runs every second so events reach consumers with at
// most a second of added latency.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a new job for relaying outbox messages.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the outbox relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if err := j.relay(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the outbox relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relay publishes one batch of pending messages. A message is marked
// published only after the broker accepted it, so a crash between the two
// steps leads to a duplicate, never a loss.
func (j *OutboxRelayJob) relay(ctx context.Context) error {
	messages, err := j.outbox.GetUnpublished(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err := j.publisher.Publish(ctx, message); err != nil {
			return err
		}

		if err := j.outbox.MarkPublished(ctx, message.ID); err != nil {
			return err
		}

		j.logger.DebugContext(ctx, "Published outbox message",
			"event_type", message.EventType, "order_id", message.OrderID.String())
	}

	return nil
}
