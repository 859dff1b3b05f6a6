package email

// EmailRequest describes a single outgoing message.
type EmailRequest struct {
	To      []string // Recipients
	Subject string   // Email subject
	Body    string   // Plain-text body
}
