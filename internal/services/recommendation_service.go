package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"card-advisor/internal/models"
)

var (
	ErrGroupSizeTooLarge = errors.New("group size exceeds the configured maximum")
	ErrInvalidGroupSize  = errors.New("group size cannot be negative")
)

// RecommendationService loads the catalog and runs the recommender for a request
type RecommendationService struct {
	catalog      CatalogServiceInterface
	metrics      MetricsRecorderInterface
	logger       RecommendationLoggerInterface
	maxGroupSize int
}

// NewRecommendationService creates a new recommendation service. Requests asking
// for groups larger than maxGroupSize are rejected.
func NewRecommendationService(
	catalog CatalogServiceInterface,
	metrics MetricsRecorderInterface,
	logger RecommendationLoggerInterface,
	maxGroupSize int,
) RecommendationServiceInterface {
	return &RecommendationService{
		catalog:      catalog,
		metrics:      metrics,
		logger:       logger,
		maxGroupSize: maxGroupSize,
	}
}

func (s *RecommendationService) MaxGroupSize() int {
	return s.maxGroupSize
}

// Recommend returns the ranked recommendations and the per-spend savings table
func (s *RecommendationService) Recommend(ctx context.Context, spending []models.SpendEntry, groupSize int) (*models.RecommendationReport, error) {
	start := time.Now()
	s.logger.LogRecommendationStarted(ctx, len(spending), groupSize)

	if err := s.validateGroupSize(groupSize); err != nil {
		s.logger.LogValidationFailure(ctx, "recommend", err.Error())
		s.metrics.IncrementCounter(MetricRecommendationRequest, map[string]string{"status": "invalid"})
		return nil, err
	}

	if len(spending) == 0 {
		s.metrics.IncrementCounter(MetricRecommendationRequest, map[string]string{"status": "empty"})
		return &models.RecommendationReport{
			Recommendations:    []models.RecommendationResult{},
			SpendToCardSavings: []models.SpendCardSavings{},
			GroupSize:          groupSize,
		}, nil
	}

	cards, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		s.logger.LogRecommendationFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		s.metrics.IncrementCounter(MetricRecommendationRequest, map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	report := &models.RecommendationReport{
		Recommendations:    Recommend(cards, spending, groupSize),
		SpendToCardSavings: SpendToCardSavings(cards, spending),
		GroupSize:          groupSize,
		CatalogSize:        len(cards),
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricRecommendationRequest, map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime(MetricRecommendationDuration, duration)
	s.metrics.RecordGauge(MetricRecommendationResults, float64(len(report.Recommendations)), nil)
	s.logger.LogRecommendationCompleted(ctx, len(report.Recommendations), len(cards), duration.Milliseconds())

	return report, nil
}

func (s *RecommendationService) validateGroupSize(groupSize int) error {
	if groupSize < 0 {
		return ErrInvalidGroupSize
	}
	if groupSize > s.maxGroupSize {
		return fmt.Errorf("%w: %d > %d", ErrGroupSizeTooLarge, groupSize, s.maxGroupSize)
	}
	return nil
}
