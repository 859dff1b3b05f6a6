package service

import (
	"context"
	"strings"
	"time"

	"bookcms-backend/internal/domains/news/model"
	"bookcms-backend/internal/domains/news/repository"
	"bookcms-backend/internal/shared/utils"
)

type newsService struct {
	repo repository.RepositoryInterface
}

func NewNewsService(repo repository.RepositoryInterface) ServiceInterface {
	return &newsService{
		repo: repo,
	}
}

func (s *newsService) List(ctx context.Context, category string) ([]model.News, error) {
	return s.repo.ListPublished(ctx, strings.TrimSpace(category))
}

func (s *newsService) GetDetail(ctx context.Context, slug string) (*model.News, []model.News, error) {
	news, err := s.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	// The increment is part of the access contract, not decoration: a
	// store fault here fails the request like any other.
	views, err := s.repo.IncrementViews(ctx, news.ID)
	if err != nil {
		return nil, nil, err
	}
	news.ViewsCount = views

	related, err := s.repo.ListRelated(ctx, news.ID, news.Category, RelatedLimit)
	if err != nil {
		return nil, nil, err
	}
	if related == nil {
		related = []model.News{}
	}

	return news, related, nil
}

func (s *newsService) Latest(ctx context.Context, limit int) ([]model.News, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.repo.ListLatest(ctx, limit)
}

func (s *newsService) Create(ctx context.Context, req *model.CreateNewsRequest) (*model.News, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrDuplicateSlug
	}

	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	news := &model.News{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Category:    req.Category,
		Summary:     req.Summary,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
		PublishedAt: publishedAt,
	}

	return s.repo.Create(ctx, news)
}
