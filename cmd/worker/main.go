package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/segmentio/kafka-go"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main runs the outbox dispatcher. It polls outbox_events for rows that
// have not been published yet, writes them to Kafka and stamps
// dispatched_at. Rows are claimed with FOR UPDATE SKIP LOCKED so several
// workers can run side by side without double-publishing.
// Usage: go run cmd/worker/main.go
func main() {
	config.InitDB()
	config.ConnectKafka()
	defer config.CloseKafka()
	defer config.CloseDB()

	interval := 5 * time.Second
	if raw := os.Getenv("OUTBOX_POLL_INTERVAL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			interval = time.Duration(secs) * time.Second
		}
	}

	batchSize := 100
	if raw := os.Getenv("OUTBOX_BATCH_SIZE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 1000 {
			batchSize = n
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("✅ Outbox dispatcher started (interval=%s, batch=%d)", interval, batchSize)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := dispatchBatch(ctx, batchSize); err != nil {
			log.Printf("❌ [outbox] dispatch batch failed: %v", err)
		}

		select {
		case <-ctx.Done():
			log.Println("✅ Outbox dispatcher shutting down")
			return
		case <-ticker.C:
		}
	}
}

// dispatchBatch claims up to limit undispatched rows, publishes them and
// stamps dispatched_at inside the same transaction. A Kafka failure rolls
// the claim back so the rows are retried on the next tick.
func dispatchBatch(ctx context.Context, limit int) error {
	var events []models.OutboxEvent

	tx := config.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := tx.
		Raw(`
			SELECT * FROM outbox_events
			WHERE dispatched_at IS NULL
			ORDER BY created_at ASC
			LIMIT ?
			FOR UPDATE SKIP LOCKED
		`, limit).
		Scan(&events).Error; err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		messages = append(messages, kafka.Message{
			// Keyed by aggregate so one entity's events stay ordered
			Key:   []byte(event.AggregateID.String()),
			Value: event.Payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(event.EventType)},
				{Key: "event_id", Value: []byte(event.ID.String())},
			},
			Time: event.CreatedAt,
		})
	}

	if err := config.EventsWriter.WriteMessages(ctx, messages...); err != nil {
		return err
	}

	ids := make([]string, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID.String())
	}

	now := time.Now()
	if err := tx.
		Model(&models.OutboxEvent{}).
		Where("id IN ?", ids).
		Update("dispatched_at", now).Error; err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	committed = true

	log.Printf("✅ [outbox] dispatched %d events", len(events))
	return nil
}
