package services

import (
	"context"
	"errors"
	"testing"

	"card-advisor/internal/models"
	"card-advisor/internal/repositories"
	"card-advisor/internal/repositories/repository_mocks"
	"card-advisor/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	cardRepo *repository_mocks.MockCardRepositoryInterface
	breaker  *service_mocks.MockCircuitBreakerInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	logger   *service_mocks.MockRecommendationLoggerInterface
	service  CatalogServiceInterface
	ctx      context.Context
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cardRepo = repository_mocks.NewMockCardRepositoryInterface(s.ctrl)
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.logger = service_mocks.NewMockRecommendationLoggerInterface(s.ctrl)
	s.service = NewCatalogService(s.cardRepo, s.breaker, s.metrics, s.logger)
	s.ctx = context.Background()
}

func (s *CatalogServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) expectSuccessfulLoad(cards []models.Card) {
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().GetCatalog(s.ctx).Return(cards, nil)
	s.breaker.EXPECT().RecordSuccess()
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLoad, map[string]string{"status": "success"})
	s.metrics.EXPECT().RecordProcessingTime(MetricCatalogLoadDuration, gomock.Any())
	s.metrics.EXPECT().RecordGauge(MetricCatalogSize, float64(len(cards)), gomock.Nil())
	s.logger.EXPECT().LogCatalogLoaded(s.ctx, len(cards), gomock.Any())
}

func (s *CatalogServiceTestSuite) TestLoadCatalog_Success() {
	cards := lookupCatalog()
	s.expectSuccessfulLoad(cards)

	result, err := s.service.LoadCatalog(s.ctx)

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *CatalogServiceTestSuite) TestLoadCatalog_StoreFailure() {
	storeErr := errors.New("connection refused")
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().GetCatalog(s.ctx).Return(nil, storeErr)
	s.breaker.EXPECT().RecordFailure()
	s.logger.EXPECT().LogCatalogLoadFailed(s.ctx, storeErr.Error())
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLoad, map[string]string{"status": "failed"})

	result, err := s.service.LoadCatalog(s.ctx)

	s.Nil(result)
	s.ErrorIs(err, ErrCatalogUnavailable)
	s.ErrorIs(err, storeErr)
}

func (s *CatalogServiceTestSuite) TestLoadCatalog_CancelledContextDoesNotTripBreaker() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().GetCatalog(ctx).Return(nil, context.Canceled)
	s.breaker.EXPECT().RecordFailure().Times(0)
	s.logger.EXPECT().LogCatalogLoadFailed(ctx, gomock.Any())
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLoad, map[string]string{"status": "failed"})

	_, err := s.service.LoadCatalog(ctx)

	s.ErrorIs(err, context.Canceled)
}

func (s *CatalogServiceTestSuite) TestLoadCatalog_BreakerOpen() {
	s.breaker.EXPECT().IsOpen().Return(true)
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLoad, map[string]string{"status": "rejected"})

	_, err := s.service.LoadCatalog(s.ctx)

	s.ErrorIs(err, ErrCatalogUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
}

func (s *CatalogServiceTestSuite) TestListCategories() {
	s.expectSuccessfulLoad(lookupCatalog())
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLookup, map[string]string{"kind": "category"})

	categories, err := s.service.ListCategories(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"Food", "Shopping", "Travel", "food"}, categories)
}

func (s *CatalogServiceTestSuite) TestListSubcategories() {
	s.expectSuccessfulLoad(lookupCatalog())
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLookup, map[string]string{"kind": "subcategory"})

	subcategories, err := s.service.ListSubcategories(s.ctx, " Food ")

	s.Require().NoError(err)
	s.Equal([]string{"Delivery", "Dining"}, subcategories)
}

func (s *CatalogServiceTestSuite) TestListSubcategories_RequiresCategory() {
	subcategories, err := s.service.ListSubcategories(s.ctx, "  ")

	s.Nil(subcategories)
	s.ErrorIs(err, ErrCategoryRequired)
}

func (s *CatalogServiceTestSuite) TestListBrands() {
	s.expectSuccessfulLoad(lookupCatalog())
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLookup, map[string]string{"kind": "brand"})

	brands, err := s.service.ListBrands(s.ctx, "food", "")

	s.Require().NoError(err)
	s.Equal([]string{"Swiggy", "Zomato"}, brands)
}

func (s *CatalogServiceTestSuite) TestListBrands_CatalogUnavailable() {
	s.breaker.EXPECT().IsOpen().Return(true)
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLoad, map[string]string{"status": "rejected"})

	brands, err := s.service.ListBrands(s.ctx, "", "")

	s.Nil(brands)
	s.ErrorIs(err, ErrCatalogUnavailable)
}

func (s *CatalogServiceTestSuite) TestGetCard() {
	card := newTestCard("Lookup", 500)
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().GetByID(s.ctx, card.ID).Return(&card, nil)
	s.breaker.EXPECT().RecordSuccess()

	result, err := s.service.GetCard(s.ctx, card.ID)

	s.Require().NoError(err)
	s.Equal(card.ID, result.ID)
}

func (s *CatalogServiceTestSuite) TestGetCard_NotFoundIsNotAFailure() {
	id := uuid.New()
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().GetByID(s.ctx, id).Return(nil, repositories.ErrCardNotFound)
	s.breaker.EXPECT().RecordSuccess()

	result, err := s.service.GetCard(s.ctx, id)

	s.Nil(result)
	s.ErrorIs(err, ErrCardNotFound)
	s.NotErrorIs(err, ErrCatalogUnavailable)
}

func (s *CatalogServiceTestSuite) TestListCards() {
	filters := models.CardFilters{Bank: "HDFC"}
	cards := lookupCatalog()
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().List(s.ctx, filters).Return(cards, nil)
	s.breaker.EXPECT().RecordSuccess()

	result, err := s.service.ListCards(s.ctx, filters)

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *CatalogServiceTestSuite) TestListPromotionalCards_StoreFailure() {
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().GetPromotional(s.ctx).Return(nil, errors.New("timeout"))
	s.breaker.EXPECT().RecordFailure()
	s.logger.EXPECT().LogCatalogLoadFailed(s.ctx, "timeout")
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLoad, map[string]string{"status": "failed"})

	result, err := s.service.ListPromotionalCards(s.ctx)

	s.Nil(result)
	s.ErrorIs(err, ErrCatalogUnavailable)
}

func (s *CatalogServiceTestSuite) TestSearchCards() {
	cards := lookupCatalog()
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().Search(s.ctx, "hdfc").Return(cards[:1], nil)
	s.breaker.EXPECT().RecordSuccess()

	result, err := s.service.SearchCards(s.ctx, "  hdfc ")

	s.Require().NoError(err)
	s.Len(result, 1)
}

func (s *CatalogServiceTestSuite) TestSearchCards_BlankQuery() {
	result, err := s.service.SearchCards(s.ctx, "   ")

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *CatalogServiceTestSuite) TestCompareCards_DropsBlankAndRepeatedNames() {
	cards := lookupCatalog()
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().GetByNames(s.ctx, []string{"Millennia", "Flipkart"}).Return(cards, nil)
	s.breaker.EXPECT().RecordSuccess()

	result, err := s.service.CompareCards(s.ctx, []string{"Millennia", " ", "Flipkart", "Millennia "})

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *CatalogServiceTestSuite) TestCompareCards_NoNames() {
	result, err := s.service.CompareCards(s.ctx, nil)

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *CatalogServiceTestSuite) TestListPromotionalBanners() {
	banners := []models.PromotionalBanner{{Title: "Festive offers", Order: 1}}
	s.breaker.EXPECT().IsOpen().Return(false)
	s.cardRepo.EXPECT().GetPromotionalBanners(s.ctx).Return(banners, nil)
	s.breaker.EXPECT().RecordSuccess()

	result, err := s.service.ListPromotionalBanners(s.ctx)

	s.Require().NoError(err)
	s.Equal(banners, result)
}

func (s *CatalogServiceTestSuite) TestListPromotionalBanners_BreakerOpen() {
	s.breaker.EXPECT().IsOpen().Return(true)
	s.metrics.EXPECT().IncrementCounter(MetricCatalogLoad, map[string]string{"status": "rejected"})

	result, err := s.service.ListPromotionalBanners(s.ctx)

	s.Nil(result)
	s.ErrorIs(err, ErrCatalogUnavailable)
}
