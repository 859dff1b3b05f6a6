package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookcms-backend/internal/domains/contact/model"
	"bookcms-backend/internal/domains/contact/repository"
	"bookcms-backend/internal/infrastructure/email"
	"bookcms-backend/pkg/logger"
)

type contactService struct {
	repo        repository.RepositoryInterface
	email       email.EmailService
	adminEmail  string
	sendTimeout time.Duration
}

func NewContactService(
	repo repository.RepositoryInterface,
	emailSvc email.EmailService,
	adminEmail string,
	sendTimeout time.Duration,
) ServiceInterface {
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	return &contactService{
		repo:        repo,
		email:       emailSvc,
		adminEmail:  adminEmail,
		sendTimeout: sendTimeout,
	}
}

func (s *contactService) Submit(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: req.Subject,
		Message: strings.TrimSpace(req.Message),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.notifyAdmin(ctx, created)

	return created, nil
}

// notifyAdmin sends the admin notification. A failed or slow send is
// logged and swallowed: the submission already succeeded.
func (s *contactService) notifyAdmin(ctx context.Context, msg *model.ContactMessage) {
	if s.email == nil || s.adminEmail == "" {
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	body := fmt.Sprintf(
		"New contact form submission\n\nReceived: %s\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\n%s",
		msg.CreatedAt.Format("2006-01-02 15:04"),
		msg.Name, msg.Email, msg.Phone, msg.Subject.Label(), msg.Message,
	)

	err := s.email.SendEmail(sendCtx, email.EmailRequest{
		To:      []string{s.adminEmail},
		Subject: fmt.Sprintf("[Contact] %s from %s", msg.Subject.Label(), msg.Name),
		Body:    body,
	})
	if err != nil {
		logger.Warn("contact notification failed", map[string]interface{}{
			"contact_id": msg.ID.String(),
			"error":      err.Error(),
		})
	}
}

func (s *contactService) Subjects() []model.ContactSubject {
	return model.ContactSubjects
}

func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *contactService) MarkProcessed(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	return s.repo.MarkProcessed(ctx, id)
}
