package worker

// Processes low-stock alert mail from QueueEmail.

import (
	"context"
	"fmt"

	"groceryhub/internal/service"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender delivers a plain-text message; *infra.Mailer satisfies it.
type Sender interface {
	Send(to, subject, body string) error
}

type EmailWorker struct {
	sender Sender
}

func NewEmailWorker(sender Sender) *EmailWorker {
	return &EmailWorker{sender: sender}
}

func (w *EmailWorker) Register(p *Pool) {
	p.Register(QueueEmail, JobLowStockEmail, w)
}

func (w *EmailWorker) Handle(_ context.Context, job Job) error {
	var payload EmailJobPayload
	if err := decodePayload(job, &payload); err != nil {
		return err
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email, skipping")
		return nil
	}
	if err := w.sender.Send(payload.ToEmail, payload.Subject, payload.Body); err != nil {
		return err
	}
	log.Info().Str("to", payload.ToEmail).Str("subject", payload.Subject).Msg("email_worker: alert sent")
	return nil
}

func lowStockEmail(to string, a service.LowStockAlert) EmailJobPayload {
	return EmailJobPayload{
		ToEmail: to,
		Subject: fmt.Sprintf("Low stock: %s at %s", a.ItemName, a.StoreName),
		Body: fmt.Sprintf(
			"%s at %s is now %s.\n\nQuantity in stock: %d\nReorder level: %d\nItem id: %s\n",
			a.ItemName, a.StoreName, a.StockStatus, a.Quantity, a.ReorderLevel, a.ItemID,
		),
	}
}
