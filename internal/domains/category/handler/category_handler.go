package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcms-backend/internal/domains/category/model"
	"bookcms-backend/internal/domains/category/service"
	"bookcms-backend/internal/shared/response"
)

type CategoryHandler struct {
	service service.ServiceInterface
}

func NewCategoryHandler(svc service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
	}
}

// GetAll - GET /v1/categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list categories")
		return
	}

	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// Create - POST /v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
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
		response.ErrorResponse(c, model.ToHTTPStatus(err), "CATEGORY_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Category created successfully", created)
}
