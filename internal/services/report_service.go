package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"risparmi/internal/amqp"
	"risparmi/internal/cache"
	"risparmi/internal/core"
)

// ErrAsyncDisabled is returned when queue-backed processing is requested
// but no AMQP client is configured.
var ErrAsyncDisabled = errors.New("async report processing is not configured")

// ReturnsRequest is one complete returns calculation: scheme, investor
// profile and the request-scoped rule lists.
type ReturnsRequest struct {
	Scheme       core.Scheme        `json:"scheme"`
	Age          int                `json:"age"`
	Wage         float64            `json:"wage"`
	Inflation    float64            `json:"inflation"`
	Q            []core.QPeriod     `json:"q"`
	P            []core.PPeriod     `json:"p"`
	K            []core.KPeriod     `json:"k"`
	Transactions []core.Transaction `json:"transactions"`
}

// ReportService runs returns calculations with an optional report cache and
// an optional AMQP client for publishing results to the result queue.
type ReportService struct {
	cache      *cache.LRUCache[core.Report]
	amqpClient *amqp.Client
}

func NewReportService(reportCache *cache.LRUCache[core.Report], amqpClient *amqp.Client) *ReportService {
	return &ReportService{
		cache:      reportCache,
		amqpClient: amqpClient,
	}
}

// Calculate produces the returns report for one request. The engine is
// deterministic, so results are cached under a structural hash of the
// request; cache failures only disable caching, never the calculation.
func (s *ReportService) Calculate(ctx context.Context, req ReturnsRequest) (core.Report, error) {
	key := ""
	if s.cache != nil {
		var err error
		key, err = cache.Key(req)
		if err != nil {
			slog.WarnContext(ctx, "Failed to derive cache key, skipping cache", "error", err)
		} else if report, found := s.cache.Get(key); found {
			slog.DebugContext(ctx, "Report cache hit", "cache_key", key, "scheme", req.Scheme)
			return report, nil
		}
	}

	report, err := core.CalculateReturns(req.Scheme, req.Age, req.Wage, req.Inflation,
		req.Q, req.P, req.K, req.Transactions)
	if err != nil {
		return core.Report{}, fmt.Errorf("calculate returns: %w", err)
	}

	if s.cache != nil && key != "" {
		s.cache.Set(key, report)
		slog.DebugContext(ctx, "Report cached", "cache_key", key,
			"scheme", req.Scheme, "transactions", len(req.Transactions))
	}
	return report, nil
}

// Enqueue publishes a report request to the request queue for the worker
// to pick up. The caller supplies the message ID it will correlate results
// against.
func (s *ReportService) Enqueue(ctx context.Context, id string, req ReturnsRequest) error {
	if s.amqpClient == nil {
		return ErrAsyncDisabled
	}
	msg := amqp.NewReportRequestMessage(id, req.Scheme, req.Age, req.Wage, req.Inflation,
		req.Q, req.P, req.K, req.Transactions)
	return s.amqpClient.PublishReportRequest(ctx, msg)
}

// PublishResult pushes a computed report (or its failure) to the result
// queue. Without an AMQP client it is a logged no-op.
func (s *ReportService) PublishResult(ctx context.Context, id string, report *core.Report, calcErr error) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping result publication", "message_id", id)
		return nil
	}

	var msg *amqp.ReportResultMessage
	if calcErr != nil {
		msg = amqp.NewReportErrorMessage(id, calcErr)
	} else {
		msg = amqp.NewReportResultMessage(id, report)
	}
	return s.amqpClient.PublishReportResult(ctx, msg)
}

// Close releases the AMQP connection, if any.
func (s *ReportService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close report service: %w", err)
		}
	}
	return nil
}
