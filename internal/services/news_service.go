package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/repository"
)

var errNewsNotFound = apperr.NotFound("news not found")

type NewsService struct {
	news *repository.Repository[models.News]
}

func NewNewsService(database *gorm.DB) *NewsService {
	return &NewsService{news: repository.New[models.News](database)}
}

// Create stores a news item; the author is always the caller, never a
// client-supplied value.
func (s *NewsService) Create(ctx context.Context, title, content string, authorID uint) (*models.News, error) {
	item := models.News{Title: title, Content: content, AuthorID: authorID}
	if err := s.news.Insert(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *NewsService) Delete(ctx context.Context, newsID uint) error {
	item, err := s.news.FindByID(ctx, newsID)
	if err != nil {
		return err
	}
	if item == nil {
		return errNewsNotFound
	}

	rows, err := s.news.Delete(ctx, models.NewsFilter{ID: &newsID})
	return guard(rows, err, errNewsNotFound)
}

func (s *NewsService) Get(ctx context.Context, newsID uint) (*models.News, error) {
	item, err := s.news.FindByID(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errNewsNotFound
	}
	return item, nil
}

func (s *NewsService) All(ctx context.Context) ([]models.News, error) {
	return s.news.FindAll(ctx, nil)
}
