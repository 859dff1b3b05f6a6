package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcms-backend/internal/domains/author/model"
	"bookcms-backend/internal/domains/author/service"
	bookmodel "bookcms-backend/internal/domains/book/model"
	bookservice "bookcms-backend/internal/domains/book/service"
	"bookcms-backend/internal/shared/response"
	"bookcms-backend/pkg/logger"
)

type AuthorHandler struct {
	service     service.ServiceInterface
	bookService bookservice.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface, bookSvc bookservice.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service:     svc,
		bookService: bookSvc,
	}
}

// AuthorDetailResponse is the author page payload: the author plus
// their available books.
type AuthorDetailResponse struct {
	Author *model.Author    `json:"author"`
	Books  []bookmodel.Book `json:"books"`
}

// List - GET /v1/authors?category=&popular=
func (h *AuthorHandler) List(c *gin.Context) {
	var filter model.AuthorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	// Any non-empty value counts; templates link with ?popular=1.
	filter.PopularOnly = c.Query("popular") != ""

	authors, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list authors")
		return
	}

	if authors == nil {
		authors = []model.Author{}
	}

	response.Success(c, http.StatusOK, "Authors retrieved successfully", authors)
}

// GetBySlug - GET /v1/authors/:slug
func (h *AuthorHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	author, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		response.InternalServerError(c, "Failed to get author")
		return
	}

	books, err := h.bookService.ListByAuthor(c.Request.Context(), author.ID)
	if err != nil {
		logger.Warn("failed to list author books", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		books = []bookmodel.Book{}
	}
	if books == nil {
		books = []bookmodel.Book{}
	}

	response.Success(c, http.StatusOK, "Author retrieved successfully", AuthorDetailResponse{
		Author: author,
		Books:  books,
	})
}

// GetCategories - GET /v1/author-categories
func (h *AuthorHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list author categories")
		return
	}

	response.Success(c, http.StatusOK, "Author categories retrieved successfully", categories)
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
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
		response.ErrorResponse(c, model.ToHTTPStatus(err), "AUTHOR_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Author created successfully", created)
}
