package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcms-backend/internal/domains/category/model"
)

type fakeCategoryRepo struct {
	bySlug map[string]*model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{bySlug: map[string]*model.Category{}}
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, c := range f.bySlug {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*model.Category, error) {
	if c, ok := f.bySlug[slug]; ok {
		return c, nil
	}
	return nil, model.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *model.Category) (*model.Category, error) {
	if _, taken := f.bySlug[category.Slug]; taken {
		return nil, model.ErrDuplicateSlug
	}
	created := *category
	created.ID = uuid.New()
	f.bySlug[created.Slug] = &created
	return &created, nil
}

func (f *fakeCategoryRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	_, ok := f.bySlug[slug]
	return ok, nil
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	created, err := svc.Create(context.Background(), &model.CreateCategoryRequest{
		Name: "Детская литература",
	})
	require.NoError(t, err)
	assert.Equal(t, "detskaya-literatura", created.Slug)
}

func TestCreateCategoryKeepsExplicitSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	created, err := svc.Create(context.Background(), &model.CreateCategoryRequest{
		Name: "Science Fiction",
		Slug: "sci-fi",
	})
	require.NoError(t, err)
	assert.Equal(t, "sci-fi", created.Slug)
}

func TestCreateCategoryRejectsDuplicateSlug(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), &model.CreateCategoryRequest{Name: "Fiction"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &model.CreateCategoryRequest{Name: "Fiction"})
	assert.ErrorIs(t, err, model.ErrDuplicateSlug)
}

func TestCreateCategoryValidatesName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), &model.CreateCategoryRequest{})
	assert.Error(t, err)
}

func TestGetBySlugEmptyIsNotFound(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.GetBySlug(context.Background(), "  ")
	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
}
