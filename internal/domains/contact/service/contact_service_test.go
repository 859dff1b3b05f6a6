package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcms-backend/internal/domains/contact/model"
	"bookcms-backend/internal/infrastructure/email"
)

type fakeContactRepo struct {
	created []model.ContactMessage
}

func (f *fakeContactRepo) Create(_ context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	created := *msg
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.created = append(f.created, created)
	return &created, nil
}

func (f *fakeContactRepo) List(_ context.Context) ([]model.ContactMessage, error) {
	return f.created, nil
}

func (f *fakeContactRepo) MarkProcessed(_ context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			f.created[i].IsProcessed = true
			return &f.created[i], nil
		}
	}
	return nil, model.ErrContactNotFound
}

// fakeNotifier records sends; it can fail or stall on demand.
type fakeNotifier struct {
	err   error
	stall bool
	sent  []email.EmailRequest
}

func (f *fakeNotifier) SendEmail(ctx context.Context, req email.EmailRequest) error {
	if f.stall {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, req)
	return nil
}

func validRequest() *model.SubmitContactRequest {
	return &model.SubmitContactRequest{
		Name:         "Ivan Petrov",
		Email:        "ivan@example.com",
		Subject:      model.SubjectQuestion,
		Message:      "Do you ship abroad?",
		AgreeToTerms: true,
	}
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{}
	svc := NewContactService(repo, notifier, "admin@example.com", time.Second)

	created, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, repo.created, 1)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, []string{"admin@example.com"}, notifier.sent[0].To)
	assert.Contains(t, notifier.sent[0].Body, "ivan@example.com")
	assert.Contains(t, notifier.sent[0].Body, "Do you ship abroad?")
	assert.Contains(t, notifier.sent[0].Body, model.SubjectQuestion.Label())
	assert.Contains(t, notifier.sent[0].Body, created.CreatedAt.Format("2006-01-02 15:04"),
		"notification must carry the formatted creation time")
}

func TestSubmitRequiresConsent(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeNotifier{}, "admin@example.com", time.Second)

	req := validRequest()
	req.AgreeToTerms = false

	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "agree_to_terms")
	assert.Empty(t, repo.created, "nothing may be persisted without consent")
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.SubmitContactRequest)
	}{
		{"missing name", func(r *model.SubmitContactRequest) { r.Name = "" }},
		{"missing email", func(r *model.SubmitContactRequest) { r.Email = "" }},
		{"malformed email", func(r *model.SubmitContactRequest) { r.Email = "not-an-email" }},
		{"unknown subject", func(r *model.SubmitContactRequest) { r.Subject = "spam" }},
		{"missing message", func(r *model.SubmitContactRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			svc := NewContactService(repo, &fakeNotifier{}, "admin@example.com", time.Second)

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req)
			assert.Error(t, err)
			assert.Empty(t, repo.created)
		})
	}
}

func TestSubmitSucceedsWhenNotificationFails(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp: connection refused")}
	svc := NewContactService(repo, notifier, "admin@example.com", time.Second)

	created, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err, "a dead mail server must not fail the submission")
	assert.NotNil(t, created)
	assert.Len(t, repo.created, 1)
}

func TestSubmitIsTimeBoundedByStalledNotifier(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{stall: true}
	svc := NewContactService(repo, notifier, "admin@example.com", 50*time.Millisecond)

	start := time.Now()
	_, err := svc.Submit(context.Background(), validRequest())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, time.Second, "submission must not hang on a stalled mail server")
}

func TestSubjectsAreStable(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, &fakeNotifier{}, "", time.Second)

	subjects := svc.Subjects()
	assert.Equal(t, []model.ContactSubject{
		model.SubjectQuestion,
		model.SubjectOrder,
		model.SubjectCooperation,
		model.SubjectComplaint,
		model.SubjectOther,
	}, subjects)

	for _, s := range subjects {
		assert.True(t, s.IsValid())
		assert.NotEmpty(t, s.Label())
	}
}

func TestMarkProcessed(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeNotifier{}, "", time.Second)

	created, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	updated, err := svc.MarkProcessed(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsProcessed)

	_, err = svc.MarkProcessed(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrContactNotFound)
}
