package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcms-backend/internal/domains/book/model"
	"bookcms-backend/internal/domains/book/service"
	"bookcms-backend/internal/shared/response"
	"bookcms-backend/pkg/logger"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// BookDetailResponse is the catalog detail payload: the book plus the
// related block shown beneath it.
type BookDetailResponse struct {
	Book    *model.Book  `json:"book"`
	Related []model.Book `json:"related_books"`
}

// List - GET /v1/catalog?category=&search=&sort=
func (h *BookHandler) List(c *gin.Context) {
	var filter model.CatalogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list books")
		return
	}

	if books == nil {
		books = []model.Book{}
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", books)
}

// GetBySlug - GET /v1/catalog/:slug
func (h *BookHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	book, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		response.InternalServerError(c, "Failed to get book")
		return
	}

	related, err := h.service.Related(c.Request.Context(), book)
	if err != nil {
		// The detail page is still useful without the related block.
		logger.Warn("failed to resolve related books", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		related = []model.Book{}
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", BookDetailResponse{
		Book:    book,
		Related: related,
	})
}

// Create - POST /v1/catalog
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.UnprocessableEntity(c, "Validation failed", verrs)
			return
		}
		response.ErrorResponse(c, model.ToHTTPStatus(err), "BOOK_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", created)
}
