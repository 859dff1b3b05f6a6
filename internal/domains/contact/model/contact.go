package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ContactSubject is the fixed subject list of the contact form.
type ContactSubject string

const (
	SubjectQuestion    ContactSubject = "question"
	SubjectOrder       ContactSubject = "order"
	SubjectCooperation ContactSubject = "cooperation"
	SubjectComplaint   ContactSubject = "complaint"
	SubjectOther       ContactSubject = "other"
)

// ContactSubjects lists the valid subjects in form order.
var ContactSubjects = []ContactSubject{
	SubjectQuestion,
	SubjectOrder,
	SubjectCooperation,
	SubjectComplaint,
	SubjectOther,
}

func (s ContactSubject) IsValid() bool {
	switch s {
	case SubjectQuestion, SubjectOrder, SubjectCooperation, SubjectComplaint, SubjectOther:
		return true
	}
	return false
}

func (s ContactSubject) Label() string {
	switch s {
	case SubjectQuestion:
		return "General question"
	case SubjectOrder:
		return "Order inquiry"
	case SubjectCooperation:
		return "Cooperation"
	case SubjectComplaint:
		return "Complaint"
	case SubjectOther:
		return "Other"
	default:
		return string(s)
	}
}

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID      uuid.UUID      `json:"id" db:"id"`
	Name    string         `json:"name" db:"name"`
	Email   string         `json:"email" db:"email"`
	Phone   string         `json:"phone,omitempty" db:"phone"`
	Subject ContactSubject `json:"subject" db:"subject"`
	Message string         `json:"message" db:"message"`

	IsProcessed bool      `json:"is_processed" db:"is_processed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SubmitContactRequest - POST /v1/contacts
type SubmitContactRequest struct {
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	Subject      ContactSubject `json:"subject"`
	Message      string         `json:"message"`
	AgreeToTerms bool           `json:"agree_to_terms"`
}

func (r SubmitContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email is invalid"),
		),
		validation.Field(&r.Subject,
			validation.Required.Error("subject is required"),
			validation.By(func(value interface{}) error {
				if !value.(ContactSubject).IsValid() {
					return validation.NewError("validation_invalid", "unknown subject")
				}
				return nil
			}),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(1, 5000),
		),
		// A false bool fails Required, which is exactly the contract:
		// the consent checkbox must be ticked.
		validation.Field(&r.AgreeToTerms,
			validation.Required.Error("consent to data processing is required"),
		),
	)
}
