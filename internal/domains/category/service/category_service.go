package service

import (
	"context"
	"strings"

	"bookcms-backend/internal/domains/category/model"
	"bookcms-backend/internal/domains/category/repository"
	"bookcms-backend/internal/shared/utils"
)

type categoryService struct {
	repo repository.RepositoryInterface
}

func NewCategoryService(repo repository.RepositoryInterface) ServiceInterface {
	return &categoryService{
		repo: repo,
	}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, model.ErrCategoryNotFound
	}

	return s.repo.GetBySlug(ctx, slug)
}

func (s *categoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	// Fail fast on a taken slug; the DB unique constraint is the
	// authoritative check and still catches races.
	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrDuplicateSlug
	}

	return s.repo.Create(ctx, &model.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
	})
}
