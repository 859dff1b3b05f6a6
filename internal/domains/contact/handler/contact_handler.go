package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcms-backend/internal/domains/contact/model"
	"bookcms-backend/internal/domains/contact/service"
	"bookcms-backend/internal/shared/response"
)

type ContactHandler struct {
	service service.ServiceInterface
}

func NewContactHandler(svc service.ServiceInterface) *ContactHandler {
	return &ContactHandler{
		service: svc,
	}
}

// SubjectOption is one entry of the subject dropdown.
type SubjectOption struct {
	Value model.ContactSubject `json:"value"`
	Label string               `json:"label"`
}

// GetSubjects - GET /v1/contacts/subjects
func (h *ContactHandler) GetSubjects(c *gin.Context) {
	subjects := h.service.Subjects()
	options := make([]SubjectOption, 0, len(subjects))
	for _, s := range subjects {
		options = append(options, SubjectOption{Value: s, Label: s.Label()})
	}

	response.Success(c, http.StatusOK, "Subjects retrieved successfully", options)
}

// Submit - POST /v1/contacts
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.SubmitContactRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.UnprocessableEntity(c, "Validation failed", verrs)
			return
		}
		response.InternalServerError(c, "Failed to submit contact message")
		return
	}

	response.Success(c, http.StatusCreated, "Message sent successfully", created)
}

// List - GET /v1/admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list contact messages")
		return
	}

	if messages == nil {
		messages = []model.ContactMessage{}
	}

	response.Success(c, http.StatusOK, "Contact messages retrieved successfully", messages)
}

// MarkProcessed - PATCH /v1/admin/contacts/:id/processed
func (h *ContactHandler) MarkProcessed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contact message ID")
		return
	}

	updated, err := h.service.MarkProcessed(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrContactNotFound) {
			response.NotFound(c, "Contact message not found")
			return
		}
		response.InternalServerError(c, "Failed to update contact message")
		return
	}

	response.Success(c, http.StatusOK, "Contact message updated successfully", updated)
}
