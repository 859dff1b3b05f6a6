package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookcms-backend/internal/domains/book/model"
	"bookcms-backend/internal/domains/book/repository"
	"bookcms-backend/internal/shared/utils"
)

type bookService struct {
	repo repository.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{
		repo: repo,
	}
}

func (s *bookService) List(ctx context.Context, filter model.CatalogFilter) ([]model.Book, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *bookService) GetBySlug(ctx context.Context, slug string) (*model.Book, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, model.ErrBookNotFound
	}

	return s.repo.GetBySlug(ctx, slug)
}

// Related resolves the related-books block. The repository returns one
// candidate row per shared category, so a book sharing several
// categories shows up more than once; dedup here keeps the first
// occurrence, which preserves the default ordering.
func (s *bookService) Related(ctx context.Context, book *model.Book) ([]model.Book, error) {
	if book == nil || len(book.Categories) == 0 {
		return []model.Book{}, nil
	}

	categoryIDs := make([]uuid.UUID, 0, len(book.Categories))
	for _, c := range book.Categories {
		categoryIDs = append(categoryIDs, c.ID)
	}

	candidates, err := s.repo.FindRelatedCandidates(ctx, book.ID, categoryIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(candidates))
	related := make([]model.Book, 0, RelatedLimit)
	for _, candidate := range candidates {
		if candidate.ID == book.ID || seen[candidate.ID] {
			continue
		}
		seen[candidate.ID] = true

		related = append(related, candidate)
		if len(related) == RelatedLimit {
			break
		}
	}

	return related, nil
}

func (s *bookService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *bookService) Newest(ctx context.Context, limit int) ([]model.Book, error) {
	if limit <= 0 {
		limit = 8
	}
	return s.repo.ListNewest(ctx, limit)
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
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

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	book := &model.Book{
		Title:           strings.TrimSpace(req.Title),
		Slug:            slug,
		AuthorID:        req.AuthorID,
		Description:     req.Description,
		CoverURL:        req.CoverURL,
		PublicationDate: req.PublicationDate,
		IsAvailable:     available,
		IsBestseller:    req.IsBestseller,
		IsNew:           req.IsNew,
	}

	return s.repo.Create(ctx, book, req.CategoryIDs)
}
