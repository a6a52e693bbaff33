// Package worker consumes report requests from AMQP and publishes the
// computed reports back to the result queue.
package worker

import (
	"context"
	"log/slog"

	"risparmi/internal/amqp"
	"risparmi/internal/services"
)

// ReportWorker turns queued report requests into published results.
type ReportWorker struct {
	service *services.ReportService
}

func NewReportWorker(service *services.ReportService) *ReportWorker {
	return &ReportWorker{service: service}
}

// HandleRequestMessage processes a single report request. Calculation
// failures are published as error results and acknowledged: the engine is
// deterministic, so requeueing a bad request can never succeed. Only
// publication failures are returned for requeue.
func (w *ReportWorker) HandleRequestMessage(ctx context.Context, msg *amqp.ReportRequestMessage) error {
	slog.InfoContext(ctx, "Processing report request",
		"message_id", msg.ID,
		"scheme", msg.Scheme,
		"transactions", len(msg.Transactions))

	req := services.ReturnsRequest{
		Scheme:       msg.Scheme,
		Age:          msg.Age,
		Wage:         msg.Wage,
		Inflation:    msg.Inflation,
		Q:            msg.Q,
		P:            msg.P,
		K:            msg.K,
		Transactions: msg.Transactions,
	}

	report, err := w.service.Calculate(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "Report calculation failed",
			"message_id", msg.ID,
			"error", err)
		return w.service.PublishResult(ctx, msg.ID, nil, err)
	}

	return w.service.PublishResult(ctx, msg.ID, &report, nil)
}

// Run consumes the request queue until the context is cancelled.
func (w *ReportWorker) Run(ctx context.Context, client *amqp.Client) error {
	return client.ConsumeReportRequests(ctx, func(msg *amqp.ReportRequestMessage) error {
		return w.HandleRequestMessage(ctx, msg)
	})
}
