package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"card-advisor/internal/models"
	"card-advisor/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CachedCardRepositorySuite struct {
	suite.Suite
	ctrl *gomock.Controller
	next *repository_mocks.MockCardRepositoryInterface
	repo CardRepositoryInterface
	ctx  context.Context
}

func (s *CachedCardRepositorySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.next = repository_mocks.NewMockCardRepositoryInterface(s.ctrl)
	s.ctx = context.Background()

	repo, err := NewCachedCardRepository(s.next, CacheSettings{
		TTL:         time.Minute,
		NumCounters: 100,
		MaxCost:     10,
		BufferItems: 64,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *CachedCardRepositorySuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCachedCardRepositorySuite(t *testing.T) {
	suite.Run(t, new(CachedCardRepositorySuite))
}

func (s *CachedCardRepositorySuite) TestGetCatalog_LoadsOnce() {
	catalog := []models.Card{{ID: uuid.New(), CardName: "Millennia"}}
	s.next.EXPECT().GetCatalog(gomock.Any()).Return(catalog, nil).Times(1)

	first, err := s.repo.GetCatalog(s.ctx)
	s.NoError(err)
	s.Equal(catalog, first)

	second, err := s.repo.GetCatalog(s.ctx)
	s.NoError(err)
	s.Equal(catalog, second)
}

func (s *CachedCardRepositorySuite) TestGetCatalog_ErrorIsNotCached() {
	catalog := []models.Card{{ID: uuid.New(), CardName: "Millennia"}}
	gomock.InOrder(
		s.next.EXPECT().GetCatalog(gomock.Any()).Return(nil, errors.New("connection reset")),
		s.next.EXPECT().GetCatalog(gomock.Any()).Return(catalog, nil),
	)

	_, err := s.repo.GetCatalog(s.ctx)
	s.Error(err)

	cards, err := s.repo.GetCatalog(s.ctx)
	s.NoError(err)
	s.Len(cards, 1)
}

func (s *CachedCardRepositorySuite) TestPassThroughReads() {
	id := uuid.New()
	filters := models.CardFilters{Bank: "HDFC Bank"}

	s.next.EXPECT().GetByID(gomock.Any(), id).Return(&models.Card{ID: id}, nil)
	s.next.EXPECT().List(gomock.Any(), filters).Return([]models.Card{{ID: id}}, nil)
	s.next.EXPECT().GetPromotional(gomock.Any()).Return([]models.Card{}, nil)
	s.next.EXPECT().Search(gomock.Any(), "millennia").Return([]models.Card{{ID: id}}, nil)
	s.next.EXPECT().GetByNames(gomock.Any(), []string{"Millennia"}).Return([]models.Card{{ID: id}}, nil)
	s.next.EXPECT().GetPromotionalBanners(gomock.Any()).Return([]models.PromotionalBanner{{Title: "Festive offers"}}, nil)

	card, err := s.repo.GetByID(s.ctx, id)
	s.NoError(err)
	s.Equal(id, card.ID)

	cards, err := s.repo.List(s.ctx, filters)
	s.NoError(err)
	s.Len(cards, 1)

	cards, err = s.repo.GetPromotional(s.ctx)
	s.NoError(err)
	s.Empty(cards)

	cards, err = s.repo.Search(s.ctx, "millennia")
	s.NoError(err)
	s.Len(cards, 1)

	cards, err = s.repo.GetByNames(s.ctx, []string{"Millennia"})
	s.NoError(err)
	s.Len(cards, 1)

	banners, err := s.repo.GetPromotionalBanners(s.ctx)
	s.NoError(err)
	s.Require().Len(banners, 1)
	s.Equal("Festive offers", banners[0].Title)
}
