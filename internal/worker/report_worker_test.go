package worker

import (
	"context"
	"testing"

	"risparmi/internal/amqp"
	"risparmi/internal/core"
	"risparmi/internal/services"
)

func TestHandleRequestMessage(t *testing.T) {
	// Without an AMQP client PublishResult is a no-op, so the handler
	// exercises the full calculate-and-publish path in memory.
	w := NewReportWorker(services.NewReportService(nil, nil))

	msg := amqp.NewReportRequestMessage("req_1", core.SchemeIndex, 65, 100000, 0,
		nil, nil,
		[]core.KPeriod{{Start: "2023-01-01 00:00:00", End: "2023-12-31 23:59:59"}},
		[]core.Transaction{{Date: "2023-10-12 20:15:00", Amount: 250, Ceiling: 300, Remanent: 50}},
	)
	if err := w.HandleRequestMessage(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleRequestMessageBadPayloadIsAcked(t *testing.T) {
	w := NewReportWorker(services.NewReportService(nil, nil))

	msg := amqp.NewReportRequestMessage("req_2", core.SchemeNPS, 30, 50000, 0,
		nil, nil, nil,
		[]core.Transaction{{Date: "garbage", Amount: 1, Ceiling: 100, Remanent: 99}},
	)
	// A deterministic calculation failure must not be requeued: the handler
	// publishes an error result and reports success to the consumer loop.
	if err := w.HandleRequestMessage(context.Background(), msg); err != nil {
		t.Fatalf("calculation failures must be acknowledged, got %v", err)
	}
}
