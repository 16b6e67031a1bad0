package services

import (
	"context"
	"log/slog"
	"time"
)

// RequestIDKey is the context key the request id middleware stores the id under
const RequestIDKey = "request_id"

// RecommendationLogger provides structured logging for recommendation operations
type RecommendationLogger struct {
	logger *slog.Logger
}

// NewRecommendationLogger creates a new recommendation logger
func NewRecommendationLogger(logger *slog.Logger) RecommendationLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecommendationLogger{
		logger: logger,
	}
}

func (rl *RecommendationLogger) LogRecommendationStarted(ctx context.Context, spendCount, groupSize int) {
	rl.logger.InfoContext(ctx, "recommendation started",
		slog.String("event_type", "recommendation_started"),
		slog.Int("spend_count", spendCount),
		slog.Int("group_size", groupSize),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (rl *RecommendationLogger) LogRecommendationCompleted(ctx context.Context, resultCount, catalogSize int, durationMs int64) {
	rl.logger.InfoContext(ctx, "recommendation completed",
		slog.String("event_type", "recommendation_completed"),
		slog.Int("results_count", resultCount),
		slog.Int("catalog_size", catalogSize),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (rl *RecommendationLogger) LogRecommendationFailed(ctx context.Context, errorMsg string, durationMs int64) {
	rl.logger.WarnContext(ctx, "recommendation failed",
		slog.String("event_type", "recommendation_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (rl *RecommendationLogger) LogCatalogLoaded(ctx context.Context, cardCount int, durationMs int64) {
	rl.logger.DebugContext(ctx, "card catalog loaded",
		slog.String("event_type", "catalog_loaded"),
		slog.Int("card_count", cardCount),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (rl *RecommendationLogger) LogCatalogLoadFailed(ctx context.Context, errorMsg string) {
	rl.logger.ErrorContext(ctx, "card catalog load failed",
		slog.String("event_type", "catalog_load_failed"),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (rl *RecommendationLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	rl.logger.WarnContext(ctx, "circuit breaker state changed",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}

// LogValidationFailure logs validation failures
func (rl *RecommendationLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	rl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
