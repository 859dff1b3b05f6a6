package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authormodel "bookcms-backend/internal/domains/author/model"
	authorservice "bookcms-backend/internal/domains/author/service"
	bookmodel "bookcms-backend/internal/domains/book/model"
	bookservice "bookcms-backend/internal/domains/book/service"
	newsmodel "bookcms-backend/internal/domains/news/model"
	newsservice "bookcms-backend/internal/domains/news/service"
	"bookcms-backend/internal/shared/response"
	"bookcms-backend/pkg/logger"
)

// Home page block sizes.
const (
	newBooksLimit       = 8
	popularAuthorsLimit = 6
	latestNewsLimit     = 3
)

type HomeHandler struct {
	bookService   bookservice.ServiceInterface
	authorService authorservice.ServiceInterface
	newsService   newsservice.ServiceInterface
}

func NewHomeHandler(
	bookSvc bookservice.ServiceInterface,
	authorSvc authorservice.ServiceInterface,
	newsSvc newsservice.ServiceInterface,
) *HomeHandler {
	return &HomeHandler{
		bookService:   bookSvc,
		authorService: authorSvc,
		newsService:   newsSvc,
	}
}

// HomeResponse aggregates the home page blocks.
type HomeResponse struct {
	NewBooks       []bookmodel.Book     `json:"new_books"`
	PopularAuthors []authormodel.Author `json:"popular_authors"`
	LatestNews     []newsmodel.News     `json:"latest_news"`
}

// Get - GET /v1/home
// Each block degrades independently: a failing section renders empty
// rather than taking the whole page down.
func (h *HomeHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	books, err := h.bookService.Newest(ctx, newBooksLimit)
	if err != nil {
		logger.Warn("home: failed to load new books", map[string]interface{}{"error": err.Error()})
		books = nil
	}

	authors, err := h.authorService.Popular(ctx, popularAuthorsLimit)
	if err != nil {
		logger.Warn("home: failed to load popular authors", map[string]interface{}{"error": err.Error()})
		authors = nil
	}

	news, err := h.newsService.Latest(ctx, latestNewsLimit)
	if err != nil {
		logger.Warn("home: failed to load latest news", map[string]interface{}{"error": err.Error()})
		news = nil
	}

	if books == nil {
		books = []bookmodel.Book{}
	}
	if authors == nil {
		authors = []authormodel.Author{}
	}
	if news == nil {
		news = []newsmodel.News{}
	}

	response.Success(c, http.StatusOK, "Home page retrieved successfully", HomeResponse{
		NewBooks:       books,
		PopularAuthors: authors,
		LatestNews:     news,
	})
}
