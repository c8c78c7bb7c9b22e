package worker

// email_worker.go
// Processes email jobs from QueueEmail: mails a generated report to the
// requester through the circuit-breaker-guarded SMTP relay. Delivery retries
// with backoff; exhausted jobs land in the DLQ.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/21edclique/preciosMayorista/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxEmailAttempts = 3

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	Attachment string `json:"attachment"`
}

// EmailWorker mails report artifacts via SMTP.
type EmailWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
	rdb    *redis.Client
}

func NewEmailWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, rdb *redis.Client) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb, rdb: rdb}
}

// Process sends the email with the report attached.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return
	}

	err := withRetry(ctx, maxEmailAttempts, func(attempt int) error {
		sendErr := w.cb.Execute(func() error {
			return w.mailer.SendReporte(payload.ToEmail, payload.Subject, payload.Body, payload.Attachment)
		})
		if sendErr != nil {
			log.Warn().
				Err(sendErr).
				Int("attempt", attempt+1).
				Str("to", payload.ToEmail).
				Msg("email_worker: send attempt failed")
		}
		return sendErr
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: delivery failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueEmail, "email", raw, err.Error(), maxEmailAttempts)
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: reporte sent successfully")
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
