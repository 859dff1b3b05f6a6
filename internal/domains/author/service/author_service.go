package service

import (
	"context"
	"strings"

	"bookcms-backend/internal/domains/author/model"
	"bookcms-backend/internal/domains/author/repository"
	"bookcms-backend/internal/shared/utils"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	return s.repo.List(ctx, filter)
}

func (s *authorService) GetBySlug(ctx context.Context, slug string) (*model.Author, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, model.ErrAuthorNotFound
	}

	return s.repo.GetBySlug(ctx, slug)
}

func (s *authorService) Popular(ctx context.Context, limit int) ([]model.Author, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.repo.ListPopular(ctx, limit)
}

func (s *authorService) Categories(ctx context.Context) ([]model.AuthorCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrDuplicateSlug
	}

	author := &model.Author{
		Name:      strings.TrimSpace(req.Name),
		Slug:      slug,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		BirthDate: req.BirthDate,
		IsPopular: req.IsPopular,
	}

	return s.repo.Create(ctx, author, req.CategoryIDs)
}
