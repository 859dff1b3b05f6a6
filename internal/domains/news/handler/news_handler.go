package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcms-backend/internal/domains/news/model"
	"bookcms-backend/internal/domains/news/service"
	"bookcms-backend/internal/shared/response"
)

type NewsHandler struct {
	service service.ServiceInterface
}

func NewNewsHandler(svc service.ServiceInterface) *NewsHandler {
	return &NewsHandler{
		service: svc,
	}
}

// NewsDetailResponse is the article page payload: the article plus the
// same-rubric block shown beneath it.
type NewsDetailResponse struct {
	News    *model.News  `json:"news"`
	Related []model.News `json:"related_news"`
}

// List - GET /v1/news?category=
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.InternalServerError(c, "Failed to list news")
		return
	}

	if items == nil {
		items = []model.News{}
	}

	response.Success(c, http.StatusOK, "News retrieved successfully", items)
}

// GetBySlug - GET /v1/news/:slug
func (h *NewsHandler) GetBySlug(c *gin.Context) {
	news, related, err := h.service.GetDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, model.ErrNewsNotFound) {
			response.NotFound(c, "News article not found")
			return
		}
		response.InternalServerError(c, "Failed to get news article")
		return
	}

	response.Success(c, http.StatusOK, "News article retrieved successfully", NewsDetailResponse{
		News:    news,
		Related: related,
	})
}

// Create - POST /v1/news
func (h *NewsHandler) Create(c *gin.Context) {
	var req model.CreateNewsRequest
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
		response.ErrorResponse(c, model.ToHTTPStatus(err), "NEWS_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "News article created successfully", created)
}
