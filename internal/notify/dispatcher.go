// Package notify drains the notification outbox. Jobs are written in the
// same transaction as the state change they announce; delivery itself is
// best effort.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pollInterval = 5 * time.Second
	batchSize    = 50
	maxAttempts  = 5
)

// Sender delivers a single notification. Implementations decide the channel
// (log, email, push).
type Sender interface {
	Send(ctx context.Context, recipientID uuid.UUID, topic string, payload []byte) error
}

// LogSender writes notifications to the structured log. It stands in for a
// real delivery channel in development.
type LogSender struct{}

func (LogSender) Send(_ context.Context, recipientID uuid.UUID, topic string, payload []byte) error {
	slog.Info("notification", "recipient_id", recipientID, "topic", topic, "payload", string(payload))
	return nil
}

type Dispatcher struct {
	pool   *pgxpool.Pool
	sender Sender
	done   chan struct{}
}

func NewDispatcher(pool *pgxpool.Pool, sender Sender) *Dispatcher {
	return &Dispatcher{
		pool:   pool,
		sender: sender,
		done:   make(chan struct{}),
	}
}

// Start polls until Stop is called. Run it in its own goroutine.
func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.drainBatch(ctx); err != nil {
				slog.Error("notification batch failed", "error", err)
			}
		}
	}
}

func (d *Dispatcher) Stop() {
	close(d.done)
}

type job struct {
	id          uuid.UUID
	recipientID uuid.UUID
	topic       string
	payload     []byte
	attempts    int
}

func (d *Dispatcher) drainBatch(ctx context.Context) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// SKIP LOCKED lets multiple instances drain the outbox without
	// stepping on each other.
	const claimQuery = `
		SELECT id, recipient_id, topic, payload, attempts
		FROM notifications
		WHERE status = 'pending' AND run_at <= now()
		ORDER BY run_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := tx.Query(ctx, claimQuery, batchSize)
	if err != nil {
		return err
	}

	var jobs []job
	for rows.Next() {
		var j job
		if err := rows.Scan(&j.id, &j.recipientID, &j.topic, &j.payload, &j.attempts); err != nil {
			rows.Close()
			return err
		}
		jobs = append(jobs, j)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, j := range jobs {
		status := "sent"
		if sendErr := d.sender.Send(ctx, j.recipientID, j.topic, j.payload); sendErr != nil {
			slog.Warn("notification send failed",
				"job_id", j.id, "topic", j.topic, "attempts", j.attempts+1, "error", sendErr)
			status = "pending"
			if j.attempts+1 >= maxAttempts {
				status = "failed"
			}
		}

		const updateQuery = `
			UPDATE notifications
			SET status = $2, attempts = attempts + 1, updated_at = now()
			WHERE id = $1`
		if _, err := tx.Exec(ctx, updateQuery, j.id, status); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
